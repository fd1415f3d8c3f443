// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bookfinder CLI.
package types

import "time"

// Book represents a single catalog entry returned by the learning
// platform's search API. Fields are carried verbatim from the API
// response; the CLI filters but never mutates or enriches them.
type Book struct {
	// ID is the platform's identifier for the work (archive ID).
	ID string `json:"id" yaml:"id"`

	// Title is the book title as returned by the platform.
	Title string `json:"title" yaml:"title"`

	// Authors lists the authors in platform order.
	Authors []string `json:"authors" yaml:"authors"`

	// Issued is the publication date. Zero when the platform did not
	// report one or it could not be parsed.
	Issued time.Time `json:"issued" yaml:"issued"`

	// Topics lists the topic slugs the platform tagged the book with.
	Topics []string `json:"topics" yaml:"topics"`

	// URL is the canonical web URL for the book on the platform.
	URL string `json:"url" yaml:"url"`
}
