// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for the search client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bookfinder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search command.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Limit is the default number of results per page (default 10).
	Limit int `json:"limit" yaml:"limit"`

	// BaseURL overrides the platform search endpoint. Empty means the
	// production endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}
