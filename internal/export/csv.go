// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes search results to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// csvHeader is the fixed column order of exported files.
var csvHeader = []string{"title", "authors", "date", "topics", "url"}

// WriteCSV writes one header row plus one row per book to w. Authors
// and topics are joined with ", "; dates are ISO 8601, empty when the
// platform reported none.
func WriteCSV(w io.Writer, books []types.Book) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, b := range books {
		date := ""
		if !b.Issued.IsZero() {
			date = b.Issued.Format("2006-01-02")
		}
		row := []string{
			b.Title,
			strings.Join(b.Authors, ", "),
			date,
			strings.Join(b.Topics, ", "),
			b.URL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// CSV writes the books to a CSV file at path, creating or truncating
// it. The file is closed on every exit path; a failed write may leave
// a partial file behind.
func CSV(path string, books []types.Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, books); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	return f.Close()
}
