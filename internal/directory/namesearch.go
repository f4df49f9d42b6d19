// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"net/url"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/pdiddy/dirsearch/internal/pool"
	"github.com/pdiddy/dirsearch/pkg/types"
)

// noRecordsMarker is the text the search form renders for an empty result.
const noRecordsMarker = "No records found"

// NameOptions narrows a name search. The zero value searches everyone in
// all departments with a private pool.
type NameOptions struct {
	Who         Who
	Departments []Department
	Pool        *pool.Pool
}

func (o NameOptions) allDepartments() bool {
	return len(o.Departments) == 0 || slices.Contains(o.Departments, DepartmentAll)
}

// SearchByName submits query to the HTML search form.
//
// An empty listing yields nothing. A single match is rendered inline and
// yields one record. Several matches are rendered as links to detail pages;
// every page is fetched concurrently and records are yielded in the order the
// fetches complete. The first error ends the sequence.
func (c *Client) SearchByName(ctx context.Context, query string, opts NameOptions) iter.Seq2[*types.Person, error] {
	return func(yield func(*types.Person, error) bool) {
		p, owned := c.acquirePool(opts.Pool)
		if owned {
			defer p.Close()
		}

		reqURL, err := c.nameSearchURL(query, opts)
		if err != nil {
			yield(nil, err)
			return
		}
		body, err := c.get(ctx, p, reqURL)
		if err != nil {
			yield(nil, fmt.Errorf("searching directory for %q: %w", query, err))
			return
		}
		if bytes.Contains(body, []byte(noRecordsMarker)) {
			c.log().Debug("no records", zap.String("query", query))
			return
		}

		doc, err := html.Parse(bytes.NewReader(body))
		if err != nil {
			yield(nil, fmt.Errorf("parsing search results for %q: %w", query, err))
			return
		}

		if !bytes.Contains(body, []byte(c.Config.DetailPrefix)) {
			person, err := BuildPerson(doc)
			if err != nil {
				err = fmt.Errorf("search result for %q: %w", query, err)
			}
			yield(person, err)
			return
		}

		links, err := c.detailLinks(doc)
		if err != nil {
			yield(nil, err)
			return
		}
		c.log().Debug("fetching detail pages", zap.String("query", query), zap.Int("count", len(links)))

		type result struct {
			person *types.Person
			err    error
		}
		// Buffered so abandoned fetches never block.
		results := make(chan result, len(links))
		for _, link := range links {
			p.Go(func() {
				person, err := c.FetchDetail(ctx, link, p)
				results <- result{person: person, err: err}
			})
		}
		for range links {
			r := <-results
			if !yield(r.person, r.err) || r.err != nil {
				return
			}
		}
	}
}

func (c *Client) nameSearchURL(query string, opts NameOptions) (string, error) {
	u, err := url.Parse(c.Config.SearchURL)
	if err != nil {
		return "", fmt.Errorf("invalid search URL: %w", err)
	}
	params := u.Query()
	params.Set("SearchString", query)
	params.Set("SelectedWhoID", opts.Who.Code())
	params.Set("btnSubmit", "Search")
	if opts.allDepartments() {
		params.Set("AllDepartments", "true")
		params.Set("SelectedDepartments", allDepartmentsCode)
	} else {
		params.Set("AllDepartments", "false")
		for _, d := range opts.Departments {
			params.Add("SelectedDepartments", string(d))
		}
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// detailLinks returns the absolute URLs of the distinct detail-page links
// in doc, in document order.
func (c *Client) detailLinks(doc *html.Node) ([]string, error) {
	base, err := serverBase(c.Config.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search URL: %w", err)
	}
	seen := make(map[string]bool)
	var links []string
	for _, a := range findAll(doc, "a") {
		href := attr(a, "href")
		if !strings.HasPrefix(href, c.Config.DetailPrefix) || seen[href] {
			continue
		}
		seen[href] = true
		links = append(links, base+href)
	}
	return links, nil
}
