// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookfinder/pkg/types"
)

func sampleBooks() []types.Book {
	return []types.Book{
		{
			Title:   "The Go Programming Language",
			Authors: []string{"Alan A. A. Donovan", "Brian W. Kernighan"},
			Issued:  time.Date(2015, 11, 16, 0, 0, 0, 0, time.UTC),
			Topics:  []string{"programming", "software-engineering"},
			URL:     "https://learning.oreilly.com/library/view/gopl/",
		},
		{
			Title:   "Untitled, Undated",
			Authors: []string{"Anonymous"},
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	require.NoError(t, CSV(path, sampleBooks()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header plus one row per book.
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"title", "authors", "date", "topics", "url"}, rows[0])

	assert.Equal(t, []string{
		"The Go Programming Language",
		"Alan A. A. Donovan, Brian W. Kernighan",
		"2015-11-16",
		"programming, software-engineering",
		"https://learning.oreilly.com/library/view/gopl/",
	}, rows[1])

	// Missing date and topics come out as empty columns, the title
	// containing a comma survives quoting.
	assert.Equal(t, []string{"Untitled, Undated", "Anonymous", "", "", ""}, rows[2])
}

func TestCSVEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, CSV(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"title", "authors", "date", "topics", "url"}, rows[0])
}

func TestCSVUnwritablePath(t *testing.T) {
	err := CSV(filepath.Join(t.TempDir(), "missing", "books.csv"), sampleBooks())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}
