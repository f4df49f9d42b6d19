package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dirsearch/internal/directory"
	"github.com/pdiddy/dirsearch/pkg/types"
)

const janePage = `<html><body><span><big>Doe, Jane (Janie)</big></span><br>
<a href="/depts/physics">Physics</a><br>
<div id="Indented"><span>Business Email:</span> <a href="mailto:jdoe@mines.edu">jdoe@mines.edu</a><br></div>
</body></html>`

const roePage = `<html><body><span><big>Roe, Richard</big></span><br><div id="Indented"></div></body></html>`

func testClient(t *testing.T) *directory.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("SearchString") {
		case "Jane Doe", "jdoe":
			fmt.Fprint(w, janePage)
		case "Richard Roe":
			fmt.Fprint(w, roePage)
		default:
			fmt.Fprint(w, "No records found")
		}
	})
	mux.HandleFunc("/mpapi/partial/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"first": "Jane", "sn": "Doe"}]}`)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	c := directory.NewClient(types.DirSearchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second},
		SearchURL:  ts.URL + "/search",
		PartialURL: ts.URL + "/mpapi",
		Workers:    2,
	}, nil)
	c.HTTP = ts.Client()
	return c
}

func TestSearchMutt(t *testing.T) {
	var buf bytes.Buffer
	err := search(context.Background(), testClient(t), &buf, "jdoe", searchOptions{Format: "mutt", Input: "all", Who: "all"})
	require.NoError(t, err)
	assert.Equal(t, "Searching dirsearch ...\njdoe@mines.edu\tJanie Doe\tPhysics\n", buf.String())
}

func TestSearchMuttNoEntries(t *testing.T) {
	var buf bytes.Buffer
	err := search(context.Background(), testClient(t), &buf, "Richard Roe", searchOptions{Format: "mutt", Input: "name", Who: "all"})
	assert.ErrorIs(t, err, errNoEntries)
	assert.Contains(t, buf.String(), "no results found!")
}

func TestSearchPrettyNoResultsIsNotAnError(t *testing.T) {
	var buf bytes.Buffer
	err := search(context.Background(), testClient(t), &buf, "Nobody Here", searchOptions{Format: "pretty", Input: "all", Who: "all"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSearchPartialInput(t *testing.T) {
	var buf bytes.Buffer
	err := search(context.Background(), testClient(t), &buf, "JDOE", searchOptions{Format: "pretty", Input: "partial", Who: "all"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Jane (Janie) Doe\nPhysics\n")
}

func TestSearchRejectsBadOptions(t *testing.T) {
	c := testClient(t)
	tests := []struct {
		name string
		opts searchOptions
		want string
	}{
		{"format", searchOptions{Format: "csv", Input: "all", Who: "all"}, "unknown format"},
		{"input", searchOptions{Format: "pretty", Input: "fuzzy", Who: "all"}, "unknown input"},
		{"who", searchOptions{Format: "pretty", Input: "all", Who: "aliens"}, "unknown audience"},
		{"department", searchOptions{Format: "pretty", Input: "all", Who: "all", Departments: []string{"astrology"}}, "unknown department"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := search(context.Background(), c, &bytes.Buffer{}, "x", tt.opts)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseNameOptions(t *testing.T) {
	opts, err := parseNameOptions("faculty", []string{"physics", "chemistry"})
	require.NoError(t, err)
	assert.Equal(t, directory.WhoFaculty, opts.Who)
	assert.Equal(t, []directory.Department{"15", "03"}, opts.Departments)
}

func TestLoadConfigFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("DIRSEARCH_SEARCH_URL", "http://localhost:9999/search")
	t.Setenv("DIRSEARCH_WORKERS", "3")

	setConfigDefaults()
	viper.SetEnvPrefix("DIRSEARCH")
	viper.AutomaticEnv()

	cfg := loadConfig()
	assert.Equal(t, "http://localhost:9999/search", cfg.SearchURL)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, types.DefaultPartialURL, cfg.PartialURL)
	assert.Equal(t, types.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "dirsearch/dev", cfg.UserAgent)
}
