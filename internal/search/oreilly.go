// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// oreillySearchBase is the platform's search endpoint. Declared as a
// var so tests can substitute an httptest server.
var oreillySearchBase = "https://learning.oreilly.com/api/v2/search/"

// StatusError reports a non-2xx response from the platform.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search API returned HTTP %d", e.StatusCode)
}

// Client issues catalog searches against the platform's search API.
type Client struct {
	HTTPClient *http.Client
	// BaseURL overrides the platform endpoint. Empty means production.
	BaseURL string
	// UserAgent is sent with every request.
	UserAgent string
}

// NewClient returns a Client using the given HTTP settings.
func NewClient(cfg types.HTTPConfig, baseURL string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		BaseURL:    baseURL,
		UserAgent:  cfg.UserAgent,
	}
}

// Search performs a single GET against the search endpoint and returns
// the page of books the platform matched, in platform relevance order.
// No pagination beyond the requested page and no retries: transport
// failures, non-2xx statuses, and malformed bodies all surface to the
// caller.
func (c *Client) Search(ctx context.Context, opts Options) ([]types.Book, error) {
	base := c.BaseURL
	if base == "" {
		base = oreillySearchBase
	}
	reqURL := base + "?" + BuildParams(opts).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	books := make([]types.Book, 0, len(sr.Results))
	for _, r := range sr.Results {
		books = append(books, types.Book{
			ID:      r.ArchiveID,
			Title:   r.Title,
			Authors: r.Authors,
			Issued:  parseIssued(r.Issued),
			Topics:  r.Topics,
			URL:     r.WebURL,
		})
	}
	return books, nil
}

// parseIssued parses the platform's publication date. The field is
// RFC 3339 in practice but bare dates appear in older records; an
// unparseable value yields the zero time rather than an error.
func parseIssued(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// Platform search API JSON structures.
type searchResponse struct {
	Total   int            `json:"total"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ArchiveID string   `json:"archive_id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Issued    string   `json:"issued"`
	Topics    []string `json:"topics"`
	WebURL    string   `json:"web_url"`
}
