package search_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/diag"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/search"
	"github.com/vmunix/arrsync/internal/state"
)

func TestLookup_BlankTermClearsWithoutRequest(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/v3/movie/lookup", r.URL.Path)
		assert.Equal(t, "Fast and Furious", r.URL.Query().Get("term"))
		_, _ = w.Write([]byte(`[{"tmdbId":9799,"title":"The Fast and the Furious"},{"id":3,"tmdbId":13804,"title":"Fast & Furious"}]`))
	}))
	defer server.Close()

	lookup := search.NewMovieLookup(arr.NewClient(arr.WithLogger(testLogger())), testInstance(server.URL, arr.Radarr),
		search.WithState(state.WithLogger(testLogger())))
	ctx := context.Background()

	require.True(t, lookup.Search(ctx, "  Fast &  Furious "))
	require.Len(t, lookup.Results(), 2)
	assert.Equal(t, "Fast and Furious", lookup.Term())
	m, ok := lookup.ByIdentity(13804)
	require.True(t, ok)
	assert.True(t, m.Exists())

	require.True(t, lookup.Search(ctx, "   "))
	assert.Empty(t, lookup.Results())
	assert.Equal(t, "", lookup.Term())
	assert.EqualValues(t, 1, hits.Load())
}

func TestLookup_Ranking(t *testing.T) {
	results := []media.Series{
		{TVDBID: 1, Title: "Doctor Who (1963)"},
		{TVDBID: 2, Title: "Doctor Foster"},
		{TVDBID: 3, Title: "Doctor Who"},
	}
	fn := func(context.Context, string) ([]media.Series, error) { return results, nil }
	inst := testInstance("http://sonarr", arr.Sonarr)

	ranked := search.NewLookup[media.Series](inst, fn, search.WithRanking(true), search.WithState(state.WithLogger(testLogger())))
	require.True(t, ranked.Search(context.Background(), "doctor who"))
	assert.Equal(t, 3, ranked.Results()[0].TVDBID)

	plain := search.NewLookup[media.Series](inst, fn, search.WithState(state.WithLogger(testLogger())))
	require.True(t, plain.Search(context.Background(), "doctor who"))
	assert.Equal(t, 1, plain.Results()[0].TVDBID)
}

func TestLookup_StaleResultsAreDropped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var slowFails atomic.Bool
	fn := func(_ context.Context, term string) ([]media.Movie, error) {
		if term == "slow" {
			started <- struct{}{}
			<-release
			if slowFails.Load() {
				return nil, arr.AsError(errors.New("connection reset"))
			}
			return []media.Movie{{TMDBID: 1, Title: "Slow"}}, nil
		}
		return []media.Movie{{TMDBID: 2, Title: "Fast"}}, nil
	}
	rec := diag.NewRecorder(10)
	lookup := search.NewLookup[media.Movie](testInstance("http://radarr", arr.Radarr), fn,
		search.WithState(state.WithLogger(testLogger()), state.WithReporter(rec)))

	for _, fails := range []bool{false, true} {
		slowFails.Store(fails)
		done := make(chan bool)
		go func() { done <- lookup.Search(context.Background(), "slow") }()
		<-started
		require.True(t, lookup.Search(context.Background(), "fast"))
		release <- struct{}{}
		assert.False(t, <-done, "superseded search does not apply")

		require.Len(t, lookup.Results(), 1)
		assert.Equal(t, 2, lookup.Results()[0].TMDBID)
		assert.Equal(t, "fast", lookup.Term())
		assert.Nil(t, lookup.Err(), "superseded failure is not shown")
		assert.False(t, lookup.Working())
	}
	assert.Empty(t, rec.Trail(), "superseded failure is not reported")
}

func TestLookup_BlankTermClearsError(t *testing.T) {
	fn := func(context.Context, string) ([]media.Series, error) {
		return nil, arr.StatusCode(http.StatusServiceUnavailable)
	}
	lookup := search.NewLookup[media.Series](testInstance("http://sonarr", arr.Sonarr), fn,
		search.WithState(state.WithLogger(testLogger())))

	assert.False(t, lookup.Search(context.Background(), "lost"))
	require.NotNil(t, lookup.Err())

	require.True(t, lookup.Search(context.Background(), " "))
	assert.Nil(t, lookup.Err())
	assert.Empty(t, lookup.Results())
	assert.False(t, lookup.Working())
}

func TestLookup_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	lookup := search.NewSeriesLookup(arr.NewClient(arr.WithLogger(testLogger())), testInstance(server.URL, arr.Sonarr),
		search.WithState(state.WithLogger(testLogger())))
	assert.False(t, lookup.Search(context.Background(), "lost"))
	require.NotNil(t, lookup.Err())
	assert.Equal(t, arr.DecodeFailure, lookup.Err().Kind)
}
