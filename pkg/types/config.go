// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Upstream defaults for the Colorado School of Mines directory.
const (
	DefaultSearchURL    = "https://webapps.mines.edu/DirSearch/Home/search"
	DefaultPartialURL   = "https://mastergo.mines.edu/mpapi"
	DefaultDetailPrefix = "/DirSearch/Home/detail/"
	DefaultTimeout      = 30 * time.Second
	DefaultWorkers      = 16
)

// HTTPConfig holds shared HTTP settings for requests to the directory.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "dirsearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DirSearchConfig holds settings for the directory client.
type DirSearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the form-based HTML search endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// PartialURL is the base of the autocomplete service; queries go to
	// {PartialURL}/partial/{query}.
	PartialURL string `json:"partial_url" yaml:"partial_url"`

	// DetailPrefix is the URL path prefix of per-person detail pages linked
	// from multi-result listings.
	DetailPrefix string `json:"detail_prefix" yaml:"detail_prefix"`

	// Workers bounds the number of concurrent HTTP requests (default 16).
	Workers int `json:"workers" yaml:"workers"`
}

// DefaultDirSearchConfig returns the configuration for the public service.
func DefaultDirSearchConfig() DirSearchConfig {
	return DirSearchConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: "dirsearch/dev",
		},
		SearchURL:    DefaultSearchURL,
		PartialURL:   DefaultPartialURL,
		DetailPrefix: DefaultDetailPrefix,
		Workers:      DefaultWorkers,
	}
}
