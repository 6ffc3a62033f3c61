package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/state"
)

// LookupFunc searches the instance's metadata catalog.
type LookupFunc[T media.Item] func(ctx context.Context, term string) ([]T, error)

// Lookup holds the result of the latest catalog search. Only the most
// recently started search may publish its results.
type Lookup[T media.Item] struct {
	status *state.Tracker
	lookup LookupFunc[T]
	rank   bool
	seq    atomic.Uint64

	mu      sync.RWMutex
	term    string
	results []T
}

// LookupOption configures a Lookup.
type LookupOption func(*lookupConfig)

type lookupConfig struct {
	rank  bool
	state []state.Option
}

// WithRanking reorders results by title similarity to the term.
func WithRanking(enabled bool) LookupOption {
	return func(c *lookupConfig) { c.rank = enabled }
}

// WithState passes store options to the lookup's tracker.
func WithState(opts ...state.Option) LookupOption {
	return func(c *lookupConfig) { c.state = append(c.state, opts...) }
}

// NewLookup creates a lookup store searching through fn.
func NewLookup[T media.Item](inst arr.Instance, fn LookupFunc[T], opts ...LookupOption) *Lookup[T] {
	var cfg lookupConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Lookup[T]{
		status: state.NewTracker(media.KindLookup, inst, state.Apply(cfg.state...)),
		lookup: fn,
		rank:   cfg.rank,
	}
}

// NewMovieLookup searches Radarr's catalog.
func NewMovieLookup(client *arr.Client, inst arr.Instance, opts ...LookupOption) *Lookup[media.Movie] {
	return NewLookup[media.Movie](inst, func(ctx context.Context, term string) ([]media.Movie, error) {
		return client.LookupMovies(ctx, inst, term)
	}, opts...)
}

// NewSeriesLookup searches Sonarr's catalog.
func NewSeriesLookup(client *arr.Client, inst arr.Instance, opts ...LookupOption) *Lookup[media.Series] {
	return NewLookup[media.Series](inst, func(ctx context.Context, term string) ([]media.Series, error) {
		return client.LookupSeries(ctx, inst, term)
	}, opts...)
}

// Search looks term up. A blank term clears the results and any earlier
// error without a request. The outcome of a search superseded by a newer
// one is dropped, errors included.
func (l *Lookup[T]) Search(ctx context.Context, term string) bool {
	term = normalizeTerm(term)
	seq := l.seq.Add(1)
	prev := l.status.Begin(false)
	if term == "" {
		changed := l.apply(seq, "", nil)
		return l.status.Finish(ctx, "clear", false, prev, changed, nil)
	}

	results, err := l.lookup(ctx, term)
	if err == nil && l.rank {
		results = rank(results, term)
	}
	if err != nil || !l.apply(seq, term, results) {
		if l.seq.Load() != seq {
			l.status.Logger().Debug("lookup superseded", "term", term)
			l.status.Discard(false)
			return false
		}
		return l.status.Finish(ctx, "lookup", false, prev, false, err)
	}
	l.status.Logger().Debug("lookup complete", "term", term, "results", len(results))
	return l.status.Finish(ctx, "lookup", false, prev, true, nil)
}

func (l *Lookup[T]) apply(seq uint64, term string, results []T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seq.Load() != seq {
		return false
	}
	l.term, l.results = term, results
	return true
}

// Term returns the term of the current results.
func (l *Lookup[T]) Term() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.term
}

// Results returns the current results. The slice must not be modified.
func (l *Lookup[T]) Results() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.results
}

// ByIdentity looks a result up by catalog id.
func (l *Lookup[T]) ByIdentity(identity int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.results {
		if item.Identity() == identity {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (l *Lookup[T]) Err() *arr.Error { return l.status.Err() }

func (l *Lookup[T]) Working() bool { return l.status.Working() }
