// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"context"
	"iter"
	"regexp"

	"go.uber.org/zap"

	"github.com/pdiddy/dirsearch/pkg/types"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// LooksLikeUsername reports whether query could be a bare campus username.
func LooksLikeUsername(query string) bool {
	return usernamePattern.MatchString(query)
}

// Search is the combined lookup. When query looks like a username the
// autocomplete search runs first; the name search always runs and skips
// anyone the autocomplete search already yielded. opts applies to the name
// search, and its Pool is shared by both phases.
func (c *Client) Search(ctx context.Context, query string, opts NameOptions) iter.Seq2[*types.Person, error] {
	return func(yield func(*types.Person, error) bool) {
		p, owned := c.acquirePool(opts.Pool)
		if owned {
			defer p.Close()
		}
		nameOpts := opts
		nameOpts.Pool = p

		// Only the autocomplete phase records what it yields; the name
		// search is filtered against that but may list two people who
		// share a name.
		seen := types.NewPersonSet()
		emit := func(seq iter.Seq2[*types.Person, error], record bool) bool {
			for person, err := range seq {
				if err != nil {
					yield(nil, err)
					return false
				}
				if seen.Contains(person) {
					c.log().Debug("duplicate dropped", zap.Stringer("name", person.Name))
					continue
				}
				if record {
					seen.Add(person)
				}
				if !yield(person, nil) {
					return false
				}
			}
			return true
		}

		if LooksLikeUsername(query) {
			if !emit(c.SearchByPartial(ctx, query, p), true) {
				return
			}
		}
		emit(c.SearchByName(ctx, query, nameOpts), false)
	}
}
