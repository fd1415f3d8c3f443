// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds catalog queries for the learning platform's
// search API, executes them, and narrows the results client-side.
package search

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/bookfinder/internal/topics"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Options holds the search parameters assembled from CLI flags.
type Options struct {
	// Query is the free-text search string. May be empty when the user
	// searches by topic or author alone.
	Query string

	// Author narrows results to a single author. Passed through to the
	// platform as its own parameter; the combination with Query is
	// defined by the platform, not computed here.
	Author string

	// Topics are the explicitly requested topic filters. When empty and
	// AllTopics is false, the default data-science/AI subset applies.
	Topics []topics.Topic

	// AllTopics disables the default topic substitution, searching the
	// whole catalog.
	AllTopics bool

	// After and Before bound the publication date client-side. Zero
	// values leave that side unbounded.
	After  time.Time
	Before time.Time

	// Page is the zero-based page number.
	Page int

	// Limit is the number of results per page.
	Limit int
}

// EffectiveTopics returns the topic list the query will actually use:
// explicit topics verbatim, the default subset when none were given,
// or nil when AllTopics is set.
func (o Options) EffectiveTopics() []topics.Topic {
	if len(o.Topics) > 0 {
		return o.Topics
	}
	if o.AllTopics {
		return nil
	}
	return topics.Defaults()
}

// BuildParams translates Options into the query parameters the
// platform's search endpoint expects. Topic filters use the platform's
// "topic:<slug>" syntax appended to the query string. Pure: no network
// or I/O side effects.
func BuildParams(opts Options) url.Values {
	query := opts.Query
	for _, t := range opts.EffectiveTopics() {
		filter := "topic:" + t.Slug
		if query == "" {
			query = filter
		} else {
			query += " " + filter
		}
	}

	params := url.Values{
		"query":   {query},
		"limit":   {strconv.Itoa(opts.Limit)},
		"page":    {strconv.Itoa(opts.Page)},
		"formats": {"book"},
	}
	if opts.Author != "" {
		params.Set("author", opts.Author)
	}
	return params
}

// FilterByDate keeps books whose publication date lies in [after, before].
// A zero bound leaves that side open; books with no date pass only when
// both bounds are zero. Input order is preserved.
func FilterByDate(books []types.Book, after, before time.Time) []types.Book {
	if after.IsZero() && before.IsZero() {
		return books
	}
	var out []types.Book
	for _, b := range books {
		if b.Issued.IsZero() {
			continue
		}
		if !after.IsZero() && b.Issued.Before(after) {
			continue
		}
		if !before.IsZero() && b.Issued.After(before) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FormatBooks writes a human-readable summary of each book to w, in
// input order.
func FormatBooks(books []types.Book, w io.Writer) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for _, b := range books {
		fmt.Fprintf(w, "\nTitle: %s\n", b.Title)
		fmt.Fprintf(w, "Authors: %s\n", strings.Join(b.Authors, ", "))
		if !b.Issued.IsZero() {
			fmt.Fprintf(w, "Published: %s\n", b.Issued.Format("2006-01-02"))
		} else {
			fmt.Fprintln(w, "Published: N/A")
		}
		if len(b.Topics) > 0 {
			fmt.Fprintf(w, "Topics: %s\n", strings.Join(b.Topics, ", "))
		}
		fmt.Fprintf(w, "URL: %s\n", b.URL)
		fmt.Fprintln(w, strings.Repeat("-", 80))
	}

	fmt.Fprintf(w, "\n%d results\n", len(books))
}
