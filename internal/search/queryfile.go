// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookfinder/internal/topics"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// The user can save a search to a file with --save and re-render it
// later with --load without hitting the platform again.
type QueryFile struct {
	Query   QueryParams  `yaml:"query"`
	Results []types.Book `yaml:"results"`
	Summary QuerySummary `yaml:"summary"`
}

// QueryParams stores the search options in a serializable form.
type QueryParams struct {
	Query     string   `yaml:"query,omitempty"`
	Author    string   `yaml:"author,omitempty"`
	Topics    []string `yaml:"topics,omitempty"`
	AllTopics bool     `yaml:"all_topics,omitempty"`
	After     string   `yaml:"after,omitempty"`
	Before    string   `yaml:"before,omitempty"`
	Page      int      `yaml:"page"`
	Limit     int      `yaml:"limit"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

const dateFmt = "2006-01-02"

// WriteQueryFile saves the search options and results to a YAML file.
// The stored topic list is the effective one, so a saved file records
// exactly what was searched even when defaults applied.
func WriteQueryFile(path string, opts Options, books []types.Book) error {
	qf := QueryFile{
		Query: QueryParams{
			Query:     opts.Query,
			Author:    opts.Author,
			AllTopics: opts.AllTopics,
			Page:      opts.Page,
			Limit:     opts.Limit,
		},
		Results: books,
		Summary: QuerySummary{
			Total:     len(books),
			Timestamp: time.Now(),
		},
	}

	for _, t := range opts.EffectiveTopics() {
		qf.Query.Topics = append(qf.Query.Topics, t.Slug)
	}
	if !opts.After.IsZero() {
		qf.Query.After = opts.After.Format(dateFmt)
	}
	if !opts.Before.IsZero() {
		qf.Query.Before = opts.Before.Format(dateFmt)
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToOptions converts stored QueryParams back into an Options struct.
// Stored topics are resolved through the registry so a file written by
// an older topic list fails loudly rather than silently searching less.
func (p QueryParams) ToOptions() (Options, error) {
	o := Options{
		Query:     p.Query,
		Author:    p.Author,
		AllTopics: p.AllTopics,
		Page:      p.Page,
		Limit:     p.Limit,
	}
	for _, slug := range p.Topics {
		t, err := topics.Resolve(slug)
		if err != nil {
			return o, err
		}
		o.Topics = append(o.Topics, t)
	}
	if p.After != "" {
		t, err := time.Parse(dateFmt, p.After)
		if err != nil {
			return o, fmt.Errorf("invalid after date %q: %w", p.After, err)
		}
		o.After = t
	}
	if p.Before != "" {
		t, err := time.Parse(dateFmt, p.Before)
		if err != nil {
			return o, fmt.Errorf("invalid before date %q: %w", p.Before, err)
		}
		o.Before = t
	}
	return o, nil
}
