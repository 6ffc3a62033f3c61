package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/state"
)

// SearchFunc asks the server for the releases of a scope.
type SearchFunc[R media.ReleaseInfo] func(ctx context.Context, scope Scope) ([]R, error)

// Releases holds the result of the latest release search. Each search
// replaces the results and their facets as a whole.
type Releases[R media.ReleaseInfo] struct {
	status *state.Tracker
	search SearchFunc[R]

	mu      sync.RWMutex
	gen     uint64
	scope   Scope
	results []R
	facets  Facets
}

// NewReleases creates a release store searching through fn.
func NewReleases[R media.ReleaseInfo](inst arr.Instance, fn SearchFunc[R], opts ...state.Option) *Releases[R] {
	return &Releases[R]{
		status: state.NewTracker(media.KindRelease, inst, state.Apply(opts...)),
		search: fn,
	}
}

// NewMovieReleases searches a Radarr instance.
func NewMovieReleases(client *arr.Client, inst arr.Instance, opts ...state.Option) *Releases[media.MovieRelease] {
	return NewReleases[media.MovieRelease](inst, func(ctx context.Context, s Scope) ([]media.MovieRelease, error) {
		if s.MovieID == 0 {
			return nil, ErrInvalidScope
		}
		return client.MovieReleases(ctx, inst, s.MovieID)
	}, opts...)
}

// NewSeriesReleases searches a Sonarr instance.
func NewSeriesReleases(client *arr.Client, inst arr.Instance, opts ...state.Option) *Releases[media.SeriesRelease] {
	return NewReleases[media.SeriesRelease](inst, func(ctx context.Context, s Scope) ([]media.SeriesRelease, error) {
		if s.SeriesID == 0 && s.EpisodeID == nil {
			return nil, ErrInvalidScope
		}
		return client.SeriesReleases(ctx, inst, s.SeriesID, s.SeasonNumber, s.EpisodeID)
	}, opts...)
}

// Search runs a release search for scope. The results of the previous
// search are dropped when it starts and come back only if it is cancelled.
func (r *Releases[R]) Search(ctx context.Context, scope Scope) bool {
	log := r.status.Logger()
	prev := r.status.Begin(false)
	start := time.Now()

	r.mu.Lock()
	r.gen++
	gen := r.gen
	prevScope, prevResults, prevFacets := r.scope, r.results, r.facets
	r.scope, r.results, r.facets = scope, nil, Facets{}
	r.mu.Unlock()

	results, err := r.search(ctx, scope)

	r.mu.Lock()
	current := r.gen == gen
	switch {
	case !current:
	case err == nil:
		r.results, r.facets = results, NewFacets(results)
	case arr.IsCancelled(err):
		r.scope, r.results, r.facets = prevScope, prevResults, prevFacets
	}
	r.mu.Unlock()

	if err == nil {
		log.Info("release search complete", "scope", scope.String(), "results", len(results),
			"stale", !current, "duration_ms", time.Since(start).Milliseconds())
	} else if !arr.IsCancelled(err) {
		err = fmt.Errorf("search %s: %w", scope, err)
	}
	return r.status.Finish(ctx, "search", false, prev, true, err)
}

// Clear drops the results.
func (r *Releases[R]) Clear() {
	r.mu.Lock()
	r.gen++
	r.scope, r.results, r.facets = Scope{}, nil, Facets{}
	r.mu.Unlock()
	r.status.Emit("clear")
}

// Results returns the releases in server order. The slice must not be
// modified.
func (r *Releases[R]) Results() []R {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.results
}

// Facets returns the distinct values of the current results.
func (r *Releases[R]) Facets() Facets {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.facets
}

// Scope returns the scope of the current results.
func (r *Releases[R]) Scope() Scope {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scope
}

// Get looks a release up by guid.
func (r *Releases[R]) Get(guid string) (R, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rel := range r.results {
		if rel.Key() == guid {
			return rel, true
		}
	}
	var zero R
	return zero, false
}

// Grab returns the request that downloads rel within the current scope.
func (r *Releases[R]) Grab(rel R) media.Grab {
	return rel.Grab(r.Scope().grab())
}

func (r *Releases[R]) Err() *arr.Error { return r.status.Err() }

func (r *Releases[R]) Working() bool { return r.status.Working() }
