package search_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/search"
	"github.com/vmunix/arrsync/internal/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testInstance(url string, kind arr.Kind) arr.Instance {
	return arr.Instance{ID: uuid.New(), Kind: kind, Label: "test", URL: url, APIKey: "secret"}
}

const movieReleasesJSON = `[
	{"guid":"g1","indexerId":1,"indexer":"NZBgeek (Prowlarr)","protocol":"usenet","quality":{"quality":{"name":"Bluray-1080p"}}},
	{"guid":"g2","indexerId":2,"indexer":"altHUB","protocol":"torrent","quality":{"quality":{"name":"DVD-R"}},"languages":[{"id":1,"name":"English"}]}
]`

func TestMovieReleases_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/release", r.URL.Path)
		if r.URL.Query().Get("movieId") != "42" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(movieReleasesJSON))
	}))
	defer server.Close()

	releases := search.NewMovieReleases(arr.NewClient(arr.WithLogger(testLogger())), testInstance(server.URL, arr.Radarr),
		state.WithLogger(testLogger()))
	ctx := context.Background()

	require.True(t, releases.Search(ctx, search.MovieScope(42)))
	require.Len(t, releases.Results(), 2)
	assert.Equal(t, []string{"altHUB", "NZBgeek"}, releases.Facets().Indexers)
	assert.Equal(t, []string{"1080p", "480p"}, releases.Facets().Qualities)
	assert.Equal(t, 42, releases.Scope().MovieID)

	rel, ok := releases.Get("g2")
	require.True(t, ok)
	assert.Equal(t, media.Grab{GUID: "g2", IndexerID: 2}, releases.Grab(rel))

	releases.Clear()
	assert.Empty(t, releases.Results())
	assert.Empty(t, releases.Facets().Indexers)
}

func TestMovieReleases_FailedSearchDropsEarlierResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("movieId") == "7" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(movieReleasesJSON))
	}))
	defer server.Close()

	releases := search.NewMovieReleases(arr.NewClient(arr.WithLogger(testLogger())), testInstance(server.URL, arr.Radarr),
		state.WithLogger(testLogger()))
	ctx := context.Background()

	require.True(t, releases.Search(ctx, search.MovieScope(42)))
	require.Len(t, releases.Results(), 2)

	assert.False(t, releases.Search(ctx, search.MovieScope(7)))
	require.NotNil(t, releases.Err())
	assert.Equal(t, 503, releases.Err().Code)
	assert.Empty(t, releases.Results())
	assert.Empty(t, releases.Facets().Indexers)
	assert.Equal(t, 7, releases.Scope().MovieID)
	_, ok := releases.Get("g1")
	assert.False(t, ok)
}

func TestMovieReleases_InvalidScope(t *testing.T) {
	releases := search.NewMovieReleases(arr.NewClient(), testInstance("http://radarr", arr.Radarr), state.WithLogger(testLogger()))

	assert.False(t, releases.Search(context.Background(), search.SeriesScope(1)))
	require.NotNil(t, releases.Err())
	assert.Equal(t, arr.RequestFailure, releases.Err().Kind)
	assert.True(t, errors.Is(releases.Err(), search.ErrInvalidScope))
}

func TestSeriesReleases_GrabScope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Has("episodeId"):
			assert.Equal(t, "77", q.Get("episodeId"))
		default:
			assert.Equal(t, "5", q.Get("seriesId"))
			assert.Equal(t, "2", q.Get("seasonNumber"))
		}
		_, _ = w.Write([]byte(`[{"guid":"s1","indexerId":9,"protocol":"usenet","seasonNumber":2,"fullSeason":true}]`))
	}))
	defer server.Close()

	releases := search.NewSeriesReleases(arr.NewClient(arr.WithLogger(testLogger())), testInstance(server.URL, arr.Sonarr),
		state.WithLogger(testLogger()))
	ctx := context.Background()

	require.True(t, releases.Search(ctx, search.SeasonScope(5, 2)))
	rel := releases.Results()[0]
	assert.True(t, rel.FullSeason)
	grab := releases.Grab(rel)
	require.NotNil(t, grab.Scope)
	assert.Equal(t, 5, grab.Scope.SeriesID)
	assert.Equal(t, 2, *grab.Scope.SeasonNumber)
	assert.Nil(t, grab.Scope.EpisodeID)

	require.True(t, releases.Search(ctx, search.EpisodeScope(5, 77)))
	grab = releases.Grab(releases.Results()[0])
	require.NotNil(t, grab.Scope.EpisodeID)
	assert.Equal(t, 77, *grab.Scope.EpisodeID)
}

func TestReleases_CancelledSearchIsSilent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	releases := search.NewReleases[media.MovieRelease](testInstance("http://radarr", arr.Radarr),
		func(ctx context.Context, _ search.Scope) ([]media.MovieRelease, error) {
			calls.Add(1)
			if err := ctx.Err(); err != nil {
				return nil, arr.AsError(err)
			}
			return []media.MovieRelease{{Release: media.Release{GUID: "g1", Indexer: "altHUB"}}}, nil
		}, state.WithLogger(testLogger()))

	require.True(t, releases.Search(ctx, search.MovieScope(1)))
	cancel()

	assert.False(t, releases.Search(ctx, search.MovieScope(2)))
	assert.EqualValues(t, 2, calls.Load())
	assert.Nil(t, releases.Err())
	assert.False(t, releases.Working())
	assert.Len(t, releases.Results(), 1, "cancelled search restores the earlier results")
	assert.Equal(t, 1, releases.Scope().MovieID)
	assert.Equal(t, []string{"altHUB"}, releases.Facets().Indexers)
}
