// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/dirsearch/internal/pool"
	"github.com/pdiddy/dirsearch/pkg/types"
)

// partialResponse is the autocomplete service's JSON body.
type partialResponse struct {
	Results []partialCandidate `json:"results"`
}

type partialCandidate struct {
	First   string `json:"first"`
	Surname string `json:"sn"`
}

// SearchByPartial looks query up in the autocomplete service and runs a name
// search for every candidate it suggests, all on the same pool.
//
// Records whose username does not contain the lower-cased query are dropped;
// records without a username are kept. Each person is yielded once. Records
// arrive grouped by candidate, in the order the candidate searches finish.
func (c *Client) SearchByPartial(ctx context.Context, query string, p *pool.Pool) iter.Seq2[*types.Person, error] {
	return func(yield func(*types.Person, error) bool) {
		p, owned := c.acquirePool(p)
		if owned {
			defer p.Close()
		}

		query = strings.ToLower(query)
		reqURL := strings.TrimRight(c.Config.PartialURL, "/") + "/partial/" + url.PathEscape(query)
		body, err := c.get(ctx, p, reqURL)
		if err != nil {
			yield(nil, fmt.Errorf("partial search for %q: %w", query, err))
			return
		}
		var resp partialResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			yield(nil, fmt.Errorf("parsing partial search response: %w", err))
			return
		}
		c.log().Debug("partial candidates", zap.String("query", query), zap.Int("count", len(resp.Results)))

		type result struct {
			people []*types.Person
			err    error
		}
		results := make(chan result, len(resp.Results))
		for _, cand := range resp.Results {
			fullName := cand.First + " " + cand.Surname
			p.Go(func() {
				people, err := Collect(c.SearchByName(ctx, fullName, NameOptions{Pool: p}))
				results <- result{people: people, err: err}
			})
		}

		seen := types.NewPersonSet()
		for range resp.Results {
			r := <-results
			if r.err != nil {
				yield(nil, r.err)
				return
			}
			for _, person := range r.people {
				if u := person.Username(); u != "" && !strings.Contains(u, query) {
					continue
				}
				if !seen.Add(person) {
					continue
				}
				if !yield(person, nil) {
					return
				}
			}
		}
	}
}
