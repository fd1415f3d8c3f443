// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topics holds the curated registry of topic filters the
// learning platform recognizes, and the default data-science/AI subset
// applied when the user neither lists topics nor disables filtering.
package topics

import (
	"fmt"
	"strings"
)

// Topic pairs a human-readable display name with the slug the platform's
// search API expects in topic filters.
type Topic struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// registry is the curated list of common platform topics, in display
// order. The platform exposes no topic-listing endpoint, so the list is
// maintained by hand.
var registry = []Topic{
	{Name: "Python", Slug: "python"},
	{Name: "JavaScript", Slug: "javascript"},
	{Name: "Java", Slug: "java"},
	{Name: "Data Science", Slug: "data-science"},
	{Name: "Machine Learning", Slug: "machine-learning"},
	{Name: "Web Development", Slug: "web-development"},
	{Name: "DevOps", Slug: "devops"},
	{Name: "Security", Slug: "security"},
	{Name: "Cloud", Slug: "cloud"},
	{Name: "Databases", Slug: "databases"},
	{Name: "Programming", Slug: "programming"},
	{Name: "Software Engineering", Slug: "software-engineering"},
	{Name: "Artificial Intelligence", Slug: "artificial-intelligence"},
	{Name: "Data Analysis", Slug: "data-analysis"},
	{Name: "Deep Learning", Slug: "deep-learning"},
	{Name: "Statistics", Slug: "statistics"},
	{Name: "Big Data", Slug: "big-data"},
}

// defaultSlugs is the data-science/AI subset searched when the user
// neither passes --topic nor --all-topics.
var defaultSlugs = []string{
	"data-science",
	"machine-learning",
	"artificial-intelligence",
	"data-analysis",
	"deep-learning",
	"statistics",
	"big-data",
}

// All returns every registered topic in display order. The returned
// slice is a copy; callers may mutate it freely.
func All() []Topic {
	out := make([]Topic, len(registry))
	copy(out, registry)
	return out
}

// Defaults returns the default data-science/AI topic subset, in the
// registry's display order.
func Defaults() []Topic {
	out := make([]Topic, 0, len(defaultSlugs))
	for _, slug := range defaultSlugs {
		for _, t := range registry {
			if t.Slug == slug {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// UnknownTopicError reports a --topic value that is not in the registry.
type UnknownTopicError struct {
	Name string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("unknown topic %q: run with --list-topics to see available topics", e.Name)
}

// Resolve maps a user-supplied name to a registered topic. Matching is
// case-insensitive and accepts either the display name or the slug;
// spaces are treated as hyphens so "machine learning" and
// "machine-learning" both resolve.
func Resolve(name string) (Topic, error) {
	norm := normalize(name)
	for _, t := range registry {
		if norm == t.Slug || norm == normalize(t.Name) {
			return t, nil
		}
	}
	return Topic{}, &UnknownTopicError{Name: name}
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
