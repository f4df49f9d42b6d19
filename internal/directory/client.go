// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package directory queries the campus people directory and streams
// deduplicated person records.
//
// Two upstream services are used: the HTML search form (SearchByName) and
// the JSON autocomplete service (SearchByPartial). Search picks between them
// from the shape of the query. All three return lazy sequences: records are
// produced as the underlying requests complete, in completion order, and a
// consumer may stop early. Each call takes an optional *pool.Pool; with a nil
// pool the call creates a private one and closes it before the sequence
// finishes, whichever way it finishes.
package directory

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/pdiddy/dirsearch/internal/httputil"
	"github.com/pdiddy/dirsearch/internal/pool"
	"github.com/pdiddy/dirsearch/pkg/types"
)

// Client talks to the directory services described by its configuration.
type Client struct {
	HTTP   *http.Client
	Config types.DirSearchConfig
	Logger *zap.Logger
}

// NewClient returns a client for cfg. Empty URLs fall back to the public
// service defaults. A nil logger disables logging.
func NewClient(cfg types.DirSearchConfig, logger *zap.Logger) *Client {
	if cfg.SearchURL == "" {
		cfg.SearchURL = types.DefaultSearchURL
	}
	if cfg.PartialURL == "" {
		cfg.PartialURL = types.DefaultPartialURL
	}
	if cfg.DetailPrefix == "" {
		cfg.DetailPrefix = types.DefaultDetailPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[*types.Person, error]) ([]*types.Person, error) {
	var out []*types.Person
	for p, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// get performs one GET inside a pool slot, or directly when p is nil.
func (c *Client) get(ctx context.Context, p *pool.Pool, rawURL string) ([]byte, error) {
	fetch := func() ([]byte, error) {
		c.log().Debug("GET", zap.String("url", rawURL))
		return httputil.Get(ctx, c.HTTP, rawURL, c.Config.UserAgent)
	}
	if p == nil {
		return fetch()
	}
	var body []byte
	err := p.Do(ctx, func() error {
		var err error
		body, err = fetch()
		return err
	})
	return body, err
}

// acquirePool returns p, or a private pool and true when p is nil.
func (c *Client) acquirePool(p *pool.Pool) (*pool.Pool, bool) {
	if p != nil {
		return p, false
	}
	return pool.New(c.Config.Workers), true
}

// serverBase returns the scheme and host of rawURL.
func serverBase(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return u.Scheme + "://" + u.Host, nil
}
