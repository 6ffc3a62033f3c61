package library

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/state"
	"github.com/vmunix/arrsync/internal/view"
)

// Store caches the movies or series of one instance.
//
// Concurrent requests are not serialized: whichever completes last decides
// the final cache contents.
type Store[T media.Item] struct {
	status  *state.Tracker
	backend Backend[T]

	mu         sync.RWMutex
	cache      []T
	cacheCount int
	indexTimer clockwork.Timer

	altTitles  atomic.Pointer[alternateTitles]
	generation atomic.Uint64
	wg         sync.WaitGroup
}

// NewStore creates a store backed by backend.
func NewStore[T media.Item](inst arr.Instance, backend Backend[T], opts ...state.Option) *Store[T] {
	return &Store[T]{
		status:  state.NewTracker(backend.Kind(), inst, state.Apply(opts...)),
		backend: backend,
	}
}

// NewMovieStore creates a store for a Radarr instance.
func NewMovieStore(client *arr.Client, inst arr.Instance, opts ...state.Option) *Store[media.Movie] {
	return NewStore[media.Movie](inst, NewMovieBackend(client, inst), opts...)
}

// NewSeriesStore creates a store for a Sonarr instance.
func NewSeriesStore(client *arr.Client, inst arr.Instance, opts ...state.Option) *Store[media.Series] {
	return NewStore[media.Series](inst, NewSeriesBackend(client, inst), opts...)
}

// Request dispatches op and reports whether it completed without error.
// Silent requests leave the working flag and the visible error untouched.
// A cancelled request reports false but records no error.
func (s *Store[T]) Request(ctx context.Context, op Operation[T], silent bool) bool {
	prev := s.status.Begin(silent)
	changed, err := s.perform(ctx, op)
	return s.status.Finish(ctx, op.operation(), silent, prev, changed, err)
}

func (s *Store[T]) Fetch(ctx context.Context) bool {
	return s.Request(ctx, Fetch[T]{}, false)
}

func (s *Store[T]) Get(ctx context.Context, id int, silent bool) bool {
	return s.Request(ctx, Get[T]{ID: id}, silent)
}

func (s *Store[T]) Add(ctx context.Context, item T) bool {
	return s.Request(ctx, Add[T]{Item: item}, false)
}

func (s *Store[T]) Push(ctx context.Context, item T) bool {
	return s.Request(ctx, Push[T]{Item: item}, false)
}

func (s *Store[T]) Update(ctx context.Context, item T, moveFiles bool) bool {
	return s.Request(ctx, Update[T]{Item: item, MoveFiles: moveFiles}, false)
}

func (s *Store[T]) Delete(ctx context.Context, item T, addExclusion bool) bool {
	return s.Request(ctx, Delete[T]{Item: item, AddExclusion: addExclusion}, false)
}

func (s *Store[T]) Download(ctx context.Context, g media.Grab) bool {
	return s.Request(ctx, Download[T]{Grab: g}, false)
}

func (s *Store[T]) Command(ctx context.Context, cmd media.Command) bool {
	return s.Request(ctx, Command[T]{Command: cmd}, false)
}

func (s *Store[T]) perform(ctx context.Context, op Operation[T]) (bool, error) {
	switch op := op.(type) {
	case Fetch[T]:
		items, err := s.backend.List(ctx)
		if err != nil {
			return false, err
		}
		s.replace(items)
		s.deriveAlternateTitles(items)
		s.scheduleIndex(items)
		return true, nil

	case Get[T]:
		item, err := s.backend.Get(ctx, op.ID)
		if err != nil {
			return false, err
		}
		return s.refresh(item), nil

	case Add[T]:
		item, err := s.backend.Add(ctx, op.Item)
		if err != nil {
			return false, err
		}
		return s.upsert(item), nil

	case Push[T]:
		item, err := s.backend.Push(ctx, op.Item)
		if err != nil {
			return false, err
		}
		return s.upsert(item), nil

	case Update[T]:
		if err := s.backend.Update(ctx, op.Item, op.MoveFiles); err != nil {
			return false, err
		}
		return s.track(op.Item), nil

	case Delete[T]:
		if err := s.backend.Delete(ctx, op.Item, op.AddExclusion); err != nil {
			return false, err
		}
		return s.remove(op.Item.Identity()), nil

	case Download[T]:
		return false, s.backend.Grab(ctx, op.Grab)

	case Command[T]:
		return false, s.backend.Command(ctx, op.Command)
	}
	return false, fmt.Errorf("%w: %T", ErrUnknownOperation, op)
}

func (s *Store[T]) replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = items
	s.cacheCount = len(items)
}

// upsert replaces the cached item with the same identity when it differs,
// or appends it. It reports whether the cache changed.
func (s *Store[T]) upsert(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].Identity() != item.Identity() {
			continue
		}
		if reflect.DeepEqual(s.cache[i], item) {
			return false
		}
		s.cache = cloneWith(s.cache, i, item)
		return true
	}
	s.cache = append(s.cache[:len(s.cache):len(s.cache)], item)
	s.cacheCount = len(s.cache)
	return true
}

// refresh replaces the cached item with the same identity when it differs.
// Items that are not cached are ignored.
func (s *Store[T]) refresh(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.cache, func(cached T) bool { return cached.Identity() == item.Identity() })
	if i < 0 || reflect.DeepEqual(s.cache[i], item) {
		return false
	}
	s.cache = cloneWith(s.cache, i, item)
	return true
}

func (s *Store[T]) track(updated T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].Identity() == updated.Identity() {
			s.cache = cloneWith(s.cache, i, s.backend.Track(s.cache[i], updated))
			return true
		}
	}
	return false
}

// cloneWith returns a copy of items with items[i] replaced. Snapshots handed
// out earlier keep their contents.
func cloneWith[T any](items []T, i int, item T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out
}

// Upsert caches item without a request.
func (s *Store[T]) Upsert(item T) {
	if s.upsert(item) {
		s.status.Emit("upsert")
	}
}

// Remove drops the item with the given identity from the cache without a
// request.
func (s *Store[T]) Remove(identity int) bool {
	if !s.remove(identity) {
		return false
	}
	s.status.Emit("remove")
	return true
}

func (s *Store[T]) remove(identity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].Identity() == identity {
			out := make([]T, 0, len(s.cache)-1)
			out = append(out, s.cache[:i]...)
			s.cache = append(out, s.cache[i+1:]...)
			s.cacheCount = len(s.cache)
			return true
		}
	}
	return false
}

// Items returns the cached items. The returned slice must not be modified.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache
}

// Count returns the size of the last fetched collection, adjusted by later
// adds and deletes.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cacheCount
}

// ByID looks an item up by library id.
func (s *Store[T]) ByID(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.cache {
		if libID, ok := item.LibraryID(); ok && libID == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ByIdentity looks an item up by source catalog id.
func (s *Store[T]) ByIdentity(identity int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.cache {
		if item.Identity() == identity {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot is a consistent view of a store.
type Snapshot[T media.Item] struct {
	Items   []T
	Count   int
	Err     *arr.Error
	Working bool
}

// Snapshot returns the current state.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	items, count := s.cache, s.cacheCount
	s.mu.RUnlock()
	return Snapshot[T]{Items: items, Count: count, Err: s.status.Err(), Working: s.status.Working()}
}

// Err returns the error of the last non-silent request, if any.
func (s *Store[T]) Err() *arr.Error { return s.status.Err() }

// Working reports whether a non-silent request is in flight.
func (s *Store[T]) Working() bool { return s.status.Working() }

// Instance returns the instance the store is bound to.
func (s *Store[T]) Instance() arr.Instance { return s.status.Instance }

// Derive returns the cached items filtered, searched and sorted for display.
func (s *Store[T]) Derive(sort view.Sort[T], query string) []T {
	return view.Derive(s.Items(), sort, query, s.AlternateTitles())
}

func (s *Store[T]) scheduleIndex(items []T) {
	opts := s.status.Options
	indexer := opts.Indexer
	if indexer == nil && opts.Bus == nil {
		return
	}
	entries := make([]media.Item, len(items))
	for i, item := range items {
		entries[i] = item
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexTimer != nil {
		s.indexTimer.Stop()
	}
	kind, instanceID := s.status.Kind, s.status.Instance.ID
	s.indexTimer = opts.Clock.AfterFunc(opts.IndexDelay, func() {
		opts.Bus.Publish(&events.IndexRequested{
			BaseEvent: events.NewBaseEvent(events.TypeIndexRequested, kind, instanceID),
			Items:     entries,
		})
		if indexer == nil {
			return
		}
		if err := indexer.Index(context.Background(), kind, instanceID, entries); err != nil {
			s.status.Logger().Warn("index failed", "count", len(entries), "error", err)
		}
	})
}

// Close stops pending index work and waits for background derivation.
func (s *Store[T]) Close() {
	s.mu.Lock()
	if s.indexTimer != nil {
		s.indexTimer.Stop()
		s.indexTimer = nil
	}
	s.mu.Unlock()
	s.Wait()
}

// Wait blocks until pending alternate-title derivations have finished.
func (s *Store[T]) Wait() { s.wg.Wait() }
