package library_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/diag"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/library/mocks"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/state"
	"github.com/vmunix/arrsync/internal/view"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testInstance(url string) arr.Instance {
	return arr.Instance{ID: uuid.New(), Kind: arr.Radarr, Label: "radarr", URL: url, APIKey: "secret"}
}

func ptr[T any](v T) *T { return &v }

func testMovie(id, tmdbID int, title string) media.Movie {
	return media.Movie{ID: ptr(id), TMDBID: tmdbID, Title: title, SortTitle: title}
}

type fixture struct {
	store   *library.Store[media.Movie]
	backend *mocks.MockBackend[media.Movie]
	bus     *events.Bus
	trail   *diag.Recorder
}

func newFixture(t *testing.T, opts ...state.Option) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend[media.Movie](ctrl)
	backend.EXPECT().Kind().Return(media.KindMovie).AnyTimes()
	backend.EXPECT().Track(gomock.Any(), gomock.Any()).DoAndReturn(func(cached, updated media.Movie) media.Movie {
		return cached.WithTracked(updated)
	}).AnyTimes()

	bus := events.NewBus(testLogger())
	t.Cleanup(func() { _ = bus.Close() })
	trail := diag.NewRecorder(20)

	opts = append([]state.Option{
		state.WithBus(bus),
		state.WithReporter(trail),
		state.WithLogger(testLogger()),
	}, opts...)
	store := library.NewStore[media.Movie](testInstance("http://radarr"), backend, opts...)
	t.Cleanup(store.Close)
	return fixture{store: store, backend: backend, bus: bus, trail: trail}
}

func seed(t *testing.T, f fixture, movies ...media.Movie) {
	t.Helper()
	f.backend.EXPECT().List(gomock.Any()).Return(movies, nil)
	require.True(t, f.store.Fetch(context.Background()))
	f.store.Wait()
}

func TestStore_FetchReplacesCache(t *testing.T) {
	f := newFixture(t)
	seed(t, f, testMovie(1, 603, "The Matrix"), testMovie(2, 949, "Heat"))

	assert.Len(t, f.store.Items(), 2)
	assert.Equal(t, 2, f.store.Count())
	assert.Nil(t, f.store.Err())
	assert.False(t, f.store.Working())

	seed(t, f, testMovie(3, 348, "Alien"))
	require.Len(t, f.store.Items(), 1)
	assert.Equal(t, 348, f.store.Items()[0].Identity())
	assert.Equal(t, 1, f.store.Count())
}

func TestStore_FetchFailureKeepsCache(t *testing.T) {
	f := newFixture(t)
	seed(t, f, testMovie(1, 603, "The Matrix"))

	f.backend.EXPECT().List(gomock.Any()).Return(nil, arr.StatusCode(503))
	assert.False(t, f.store.Fetch(context.Background()))

	require.NotNil(t, f.store.Err())
	assert.Equal(t, arr.BadStatusCode, f.store.Err().Kind)
	assert.Equal(t, 503, f.store.Err().Code)
	assert.Len(t, f.store.Items(), 1)
	assert.Len(t, f.trail.Trail(), 1)
}

func TestStore_UpdateCopiesTrackedFieldsOnly(t *testing.T) {
	f := newFixture(t)
	original := testMovie(1, 603, "The Matrix")
	original.QualityProfileID = 1
	seed(t, f, original)

	edited := original
	edited.Title = "Edited Locally"
	edited.Monitored = true
	edited.QualityProfileID = 4
	edited.RootFolderPath = "/movies"

	f.backend.EXPECT().Update(gomock.Any(), edited, true).Return(nil)
	require.True(t, f.store.Update(context.Background(), edited, true))

	got, ok := f.store.ByIdentity(603)
	require.True(t, ok)
	assert.Equal(t, "The Matrix", got.Title)
	assert.True(t, got.Monitored)
	assert.Equal(t, 4, got.QualityProfileID)
	assert.Equal(t, "/movies", got.RootFolderPath)
}

func TestStore_UpdateDoesNotModifyEarlierSnapshots(t *testing.T) {
	f := newFixture(t)
	seed(t, f, testMovie(1, 603, "The Matrix"))
	before := f.store.Snapshot()

	edited := before.Items[0]
	edited.Monitored = true
	f.backend.EXPECT().Update(gomock.Any(), edited, false).Return(nil)
	require.True(t, f.store.Update(context.Background(), edited, false))

	assert.False(t, before.Items[0].Monitored)
	assert.True(t, f.store.Items()[0].Monitored)
}

func TestStore_Delete(t *testing.T) {
	f := newFixture(t)
	matrix := testMovie(1, 603, "The Matrix")
	seed(t, f, matrix, testMovie(2, 949, "Heat"))

	f.backend.EXPECT().Delete(gomock.Any(), matrix, true).Return(arr.StatusCode(500))
	assert.False(t, f.store.Delete(context.Background(), matrix, true))
	assert.Len(t, f.store.Items(), 2, "failed delete keeps the item")
	require.NotNil(t, f.store.Err())

	f.backend.EXPECT().Delete(gomock.Any(), matrix, true).Return(nil)
	assert.True(t, f.store.Delete(context.Background(), matrix, true))
	assert.Nil(t, f.store.Err())
	_, ok := f.store.ByIdentity(603)
	assert.False(t, ok)
	assert.Equal(t, 1, f.store.Count())
}

func TestStore_AddAndPushUpsert(t *testing.T) {
	f := newFixture(t)
	seed(t, f, testMovie(1, 603, "The Matrix"))

	lookup := media.Movie{TMDBID: 949, Title: "Heat"}
	added := testMovie(2, 949, "Heat")
	f.backend.EXPECT().Add(gomock.Any(), lookup).Return(added, nil)
	require.True(t, f.store.Add(context.Background(), lookup))
	assert.Equal(t, 2, f.store.Count())

	got, ok := f.store.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Heat", got.Title)

	renamed := testMovie(1, 603, "Matrix, The")
	f.backend.EXPECT().Push(gomock.Any(), renamed).Return(renamed, nil)
	require.True(t, f.store.Push(context.Background(), renamed))
	got, ok = f.store.ByIdentity(603)
	require.True(t, ok)
	assert.Equal(t, "Matrix, The", got.Title)
	assert.Equal(t, 2, f.store.Count())
}

func TestStore_SilentGetWithoutChangeDoesNotNotify(t *testing.T) {
	f := newFixture(t)
	matrix := testMovie(1, 603, "The Matrix")
	seed(t, f, matrix)
	changes := f.bus.Subscribe(events.TypeStoreChanged, 10)

	f.backend.EXPECT().Get(gomock.Any(), 1).Return(testMovie(1, 603, "The Matrix"), nil)
	require.True(t, f.store.Get(context.Background(), 1, true))
	assert.Empty(t, changes)

	updated := matrix
	updated.HasFile = true
	f.backend.EXPECT().Get(gomock.Any(), 1).Return(updated, nil)
	require.True(t, f.store.Get(context.Background(), 1, true))
	assert.Len(t, changes, 1)
	assert.True(t, f.store.Items()[0].HasFile)
}

func TestStore_GetIgnoresUncachedItems(t *testing.T) {
	f := newFixture(t)
	seed(t, f, testMovie(1, 603, "The Matrix"))
	changes := f.bus.Subscribe(events.TypeStoreChanged, 10)

	f.backend.EXPECT().Get(gomock.Any(), 2).Return(testMovie(2, 949, "Heat"), nil)
	require.True(t, f.store.Get(context.Background(), 2, true))

	assert.Equal(t, 1, f.store.Count())
	_, ok := f.store.ByIdentity(949)
	assert.False(t, ok)
	assert.Empty(t, changes)
}

func TestStore_SilentFailureKeepsVisibleError(t *testing.T) {
	f := newFixture(t)
	failures := f.bus.Subscribe(events.TypeRequestFailed, 10)

	f.backend.EXPECT().Get(gomock.Any(), 7).Return(media.Movie{}, arr.StatusCode(404))
	assert.False(t, f.store.Get(context.Background(), 7, true))

	assert.Nil(t, f.store.Err())
	require.Len(t, failures, 1)
	e := (<-failures).(*events.RequestFailed)
	assert.True(t, e.Silent)
	assert.Equal(t, "get", e.Operation)
}

func TestStore_CancellationIsTransparent(t *testing.T) {
	f := newFixture(t)
	f.backend.EXPECT().List(gomock.Any()).Return(nil, arr.StatusCode(500))
	require.False(t, f.store.Fetch(context.Background()))
	prev := f.store.Err()
	require.NotNil(t, prev)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.backend.EXPECT().List(gomock.Any()).Return(nil, &arr.Error{Kind: arr.Cancelled, Err: context.Canceled})

	assert.False(t, f.store.Fetch(ctx))
	assert.Same(t, prev, f.store.Err())
	assert.False(t, f.store.Working())
	assert.Len(t, f.trail.Trail(), 1, "cancellation is not reported")
}

func TestStore_WorkingDuringRequest(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	started := make(chan struct{})
	f.backend.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]media.Movie, error) {
		close(started)
		<-release
		return nil, nil
	})

	done := make(chan bool)
	go func() { done <- f.store.Fetch(context.Background()) }()
	<-started
	assert.True(t, f.store.Working())
	close(release)
	assert.True(t, <-done)
	assert.False(t, f.store.Working())
}

func TestStore_DownloadAndCommandLeaveCache(t *testing.T) {
	f := newFixture(t)
	seed(t, f, testMovie(1, 603, "The Matrix"))

	grab := media.Grab{GUID: "abc", IndexerID: 3}
	f.backend.EXPECT().Grab(gomock.Any(), grab).Return(nil)
	assert.True(t, f.store.Download(context.Background(), grab))

	cmd := media.MoviesSearch(1)
	f.backend.EXPECT().Command(gomock.Any(), cmd).Return(errors.New("boom"))
	assert.False(t, f.store.Command(context.Background(), cmd))
	require.NotNil(t, f.store.Err())
	assert.Equal(t, arr.RequestFailure, f.store.Err().Kind)

	assert.Len(t, f.store.Items(), 1)
}

func TestStore_AlternateTitles(t *testing.T) {
	f := newFixture(t)
	seven := testMovie(1, 807, "Seven")
	seven.AlternateTitles = []media.AlternateTitle{{Title: "Se7en"}, {Title: "Sieben"}}
	seed(t, f, seven, testMovie(2, 949, "Heat"))

	require.Eventually(t, func() bool {
		return f.store.AlternateTitles() != nil
	}, time.Second, 5*time.Millisecond)

	titles := f.store.AlternateTitles()
	assert.Equal(t, "Se7en Sieben", titles[807])
	assert.Contains(t, titles, 949)

	got := f.store.Derive(view.Sort[media.Movie]{Option: view.MovieByTitle, Ascending: true}, "sieben")
	require.Len(t, got, 1)
	assert.Equal(t, 807, got[0].Identity())
}

type recordingIndexer struct {
	mu    sync.Mutex
	calls [][]media.Item
}

func (r *recordingIndexer) Index(_ context.Context, _ media.Kind, _ uuid.UUID, items []media.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, items)
	return nil
}

func (r *recordingIndexer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestStore_IndexIsDebounced(t *testing.T) {
	clock := clockwork.NewFakeClock()
	indexer := &recordingIndexer{}
	f := newFixture(t, state.WithClock(clock), state.WithIndexer(indexer))

	seed(t, f, testMovie(1, 603, "The Matrix"))
	clock.Advance(3 * time.Second)
	seed(t, f, testMovie(1, 603, "The Matrix"), testMovie(2, 949, "Heat"))
	clock.Advance(3 * time.Second)
	assert.Never(t, func() bool { return indexer.count() > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	clock.Advance(2 * time.Second)
	require.Eventually(t, func() bool { return indexer.count() == 1 }, time.Second, 5*time.Millisecond)
	indexer.mu.Lock()
	assert.Len(t, indexer.calls[0], 2)
	indexer.mu.Unlock()
}

func TestStore_OfflineFetch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	monitor := arr.NewNetworkMonitor()
	monitor.SetReachable(false)
	client := arr.NewClient(arr.WithReachability(monitor), arr.WithLogger(testLogger()))
	store := library.NewMovieStore(client, testInstance(server.URL), state.WithLogger(testLogger()))
	defer store.Close()

	assert.False(t, store.Fetch(context.Background()))
	require.NotNil(t, store.Err())
	assert.Equal(t, arr.NoInternet, store.Err().Kind)
	assert.Zero(t, hits.Load())

	monitor.SetReachable(true)
	assert.True(t, store.Fetch(context.Background()))
	assert.Nil(t, store.Err())
	assert.EqualValues(t, 1, hits.Load())
}

func TestSeriesStore_FetchOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":5,"tvdbId":81189,"title":"Breaking Bad","alternateTitles":[{"title":"Metastasis"}]}]`))
	}))
	defer server.Close()

	inst := testInstance(server.URL)
	inst.Kind = arr.Sonarr
	store := library.NewSeriesStore(arr.NewClient(arr.WithLogger(testLogger())), inst, state.WithLogger(testLogger()))
	defer store.Close()

	require.True(t, store.Fetch(context.Background()))
	got, ok := store.ByID(5)
	require.True(t, ok)
	assert.Equal(t, 81189, got.Identity())
	require.Eventually(t, func() bool {
		return store.AlternateTitles()[81189] == "Metastasis"
	}, time.Second, 5*time.Millisecond)
}
