package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// fakeArr serves a small Radarr at / and a Sonarr at /tv.
type fakeArr struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	requests []string
	bodies   map[string]json.RawMessage
}

func newFakeArr(t *testing.T) *fakeArr {
	t.Helper()
	f := &fakeArr{t: t, bodies: make(map[string]json.RawMessage)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeArr) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.requests = append(f.requests, key)
	if r.Body != nil {
		var body json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			f.bodies[key] = body
		}
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch key {
	case "GET /api/v3/movie":
		fmt.Fprint(w, `[
			{"id":1,"tmdbId":603,"title":"The Matrix","sortTitle":"matrix","year":1999,"monitored":true,"hasFile":true,"status":"released"},
			{"id":2,"tmdbId":27205,"title":"Inception","sortTitle":"inception","year":2010,"monitored":false,"status":"released"},
			{"id":3,"tmdbId":10681,"title":"WALL-E","sortTitle":"walle","year":2008,"monitored":true,"status":"released"}
		]`)
	case "GET /api/v3/movie/1":
		fmt.Fprint(w, `{"id":1,"tmdbId":603,"title":"The Matrix","year":1999,"monitored":true,"qualityProfileId":1}`)
	case "PUT /api/v3/movie/1":
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, `{}`)
	case "GET /api/v3/release":
		fmt.Fprint(w, `[
			{"guid":"a","title":"The.Matrix.1999.2160p","indexerId":2,"indexer":"Beta","protocol":"usenet","size":1073741824,"ageMinutes":90,"quality":{"quality":{"name":"WEBDL-2160p"}},"languages":[{"id":1,"name":"English"}]},
			{"guid":"b","title":"The.Matrix.1999.1080p","indexerId":1,"indexer":"alpha","protocol":"torrent","size":2147483648,"ageMinutes":30,"seeders":12,"rejected":true,"quality":{"quality":{"name":"Bluray-1080p"}},"languages":[{"id":1,"name":"English"}]}
		]`)
	case "POST /api/v3/release":
		fmt.Fprint(w, `{}`)
	case "POST /api/v3/command":
		fmt.Fprint(w, `{"id":10}`)
	case "GET /api/v3/queue", "GET /tv/api/v3/queue":
		fmt.Fprint(w, `{"page":1,"pageSize":100,"totalRecords":1,"records":[{"id":5,"title":"Some.Release","trackedDownloadStatus":"warning","status":"downloading","size":100,"sizeleft":50}]}`)
	case "GET /tv/api/v3/episode":
		fmt.Fprint(w, `[
			{"id":12,"seriesId":7,"seasonNumber":1,"episodeNumber":2,"title":"Cat's in the Bag...","monitored":true},
			{"id":11,"seriesId":7,"seasonNumber":1,"episodeNumber":1,"title":"Pilot","monitored":true,"hasFile":true},
			{"id":21,"seriesId":7,"seasonNumber":2,"episodeNumber":1,"title":"Seven Thirty-Seven","monitored":false}
		]`)
	case "GET /api/v3/system/status", "GET /tv/api/v3/system/status":
		fmt.Fprint(w, `{"appName":"Radarr","version":"5.2.0"}`)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeArr) received(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == key {
			return true
		}
	}
	return false
}

func (f *fakeArr) body(key string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out map[string]any
	require.NoError(f.t, json.Unmarshal(f.bodies[key], &out))
	return out
}

func writeConfig(t *testing.T, url string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf(`
[log]
level = "error"

[[instances]]
label = "Movies"
kind = "radarr"
url = %q
api_key = "radarr-key"

[[instances]]
label = "TV"
kind = "sonarr"
url = "%s/tv"
api_key = "sonarr-key"
`, url, url)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	i := strings.Index(s, substr)
	require.GreaterOrEqual(t, i, 0, "%q not in output", substr)
	return i
}
