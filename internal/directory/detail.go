// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdiddy/dirsearch/internal/pool"
	"github.com/pdiddy/dirsearch/pkg/types"
)

// FetchDetail downloads one detail page and builds its record. The request
// holds a slot of p while it runs; a nil p issues it directly.
func (c *Client) FetchDetail(ctx context.Context, detailURL string, p *pool.Pool) (*types.Person, error) {
	body, err := c.get(ctx, p, detailURL)
	if err != nil {
		return nil, fmt.Errorf("fetching detail page: %w", err)
	}
	person, err := ParsePerson(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("detail page %s: %w", detailURL, err)
	}
	return person, nil
}
