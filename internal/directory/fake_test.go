// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pdiddy/dirsearch/pkg/types"
)

// fakeDirectory serves the search form, detail pages and the autocomplete
// service from canned bodies.
type fakeDirectory struct {
	// search maps SearchString to the body returned by the search form.
	search map[string]string
	// details maps a detail id to its page.
	details map[string]string
	// partial maps an autocomplete query to its JSON body.
	partial map[string]string
	// delay holds detail ids whose response is slowed down.
	delay map[string]time.Duration
	// status overrides the response status for a request path.
	status map[string]int

	mu          sync.Mutex
	searches    []url.Values
	detailHits  map[string]int
	partialHits []string
}

func (f *fakeDirectory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if code, ok := f.status[r.URL.Path]; ok {
		w.WriteHeader(code)
		return
	}
	switch {
	case r.URL.Path == "/DirSearch/Home/search":
		q := r.URL.Query()
		f.mu.Lock()
		f.searches = append(f.searches, q)
		f.mu.Unlock()
		body, ok := f.search[q.Get("SearchString")]
		if !ok {
			body = noRecordsPage
		}
		fmt.Fprint(w, body)

	case strings.HasPrefix(r.URL.Path, "/DirSearch/Home/detail/"):
		id := strings.TrimPrefix(r.URL.Path, "/DirSearch/Home/detail/")
		if d := f.delay[id]; d > 0 {
			time.Sleep(d)
		}
		f.mu.Lock()
		if f.detailHits == nil {
			f.detailHits = make(map[string]int)
		}
		f.detailHits[id]++
		f.mu.Unlock()
		body, ok := f.details[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)

	case strings.HasPrefix(r.URL.Path, "/mpapi/partial/"):
		q := strings.TrimPrefix(r.URL.Path, "/mpapi/partial/")
		f.mu.Lock()
		f.partialHits = append(f.partialHits, q)
		f.mu.Unlock()
		body, ok := f.partial[q]
		if !ok {
			body = `{"results": []}`
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeDirectory) totalDetailHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.detailHits {
		n += c
	}
	return n
}

func (f *fakeDirectory) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

// newTestClient starts f and returns a client pointed at it.
func newTestClient(t *testing.T, f *fakeDirectory) *Client {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)

	c := NewClient(types.DirSearchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "dirsearch/test"},
		SearchURL:  ts.URL + "/DirSearch/Home/search",
		PartialURL: ts.URL + "/mpapi",
		Workers:    4,
	}, nil)
	c.HTTP = ts.Client()
	return c
}

const noRecordsPage = `<html><body><div class="results"><p>No records found</p></div></body></html>`

// detailPage renders a person the way the directory's detail view does.
func detailPage(name, dept, classification, email string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div id="Content"><span><big>`)
	b.WriteString(name)
	b.WriteString("</big></span><br>\n")
	if dept != "" {
		fmt.Fprintf(&b, `<a href="/depts/%s">%s</a><br>`+"\n", strings.ToLower(dept), dept)
	}
	b.WriteString(`<div id="Indented">` + "\n")
	if classification != "" {
		fmt.Fprintf(&b, "<span>Classification:</span> <span>%s</span><br>\n", classification)
	}
	if email != "" {
		fmt.Fprintf(&b, `<span>Business Email:</span> <a href="mailto:%s">%s</a><br>`+"\n", email, email)
	}
	b.WriteString("</div></div></body></html>")
	return b.String()
}

// listingPage renders a multi-result listing linking to the given detail ids.
func listingPage(ids ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="results">`)
	for _, id := range ids {
		fmt.Fprintf(&b, `<tr><td><a href="/DirSearch/Home/detail/%s">Person %s</a></td></tr>`, id, id)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

func names(people []*types.Person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.Name.String()
	}
	return out
}
