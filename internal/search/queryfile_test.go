// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookfinder/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")

	opts := Options{
		Query:  "machine learning",
		Author: "Géron",
		After:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Page:   1,
		Limit:  25,
	}
	books := []types.Book{
		{
			ID:      "9781492041139",
			Title:   "Hands-On Machine Learning",
			Authors: []string{"Aurélien Géron"},
			Issued:  time.Date(2019, 9, 5, 0, 0, 0, 0, time.UTC),
			Topics:  []string{"machine-learning"},
			URL:     "https://learning.oreilly.com/library/view/homl/9781492041139/",
		},
	}

	require.NoError(t, WriteQueryFile(path, opts, books))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)

	assert.Equal(t, "machine learning", qf.Query.Query)
	assert.Equal(t, "Géron", qf.Query.Author)
	// Defaults applied at build time are recorded explicitly.
	assert.Len(t, qf.Query.Topics, 7)
	assert.Contains(t, qf.Query.Topics, "data-science")
	assert.Equal(t, "2023-01-01", qf.Query.After)
	assert.Equal(t, "2024-01-01", qf.Query.Before)
	assert.Equal(t, 1, qf.Summary.Total)
	require.Len(t, qf.Results, 1)
	assert.Equal(t, "Hands-On Machine Learning", qf.Results[0].Title)

	back, err := qf.Query.ToOptions()
	require.NoError(t, err)
	assert.Equal(t, opts.Query, back.Query)
	assert.Equal(t, opts.Author, back.Author)
	assert.True(t, back.After.Equal(opts.After))
	assert.True(t, back.Before.Equal(opts.Before))
	assert.Equal(t, opts.Page, back.Page)
	assert.Equal(t, opts.Limit, back.Limit)
	assert.Len(t, back.Topics, 7)
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestToOptionsRejectsBadDates(t *testing.T) {
	_, err := QueryParams{After: "not-a-date"}.ToOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid after date")
}

func TestToOptionsRejectsUnknownTopic(t *testing.T) {
	_, err := QueryParams{Topics: []string{"basket-weaving"}}.ToOptions()
	require.Error(t, err)
}
