package library

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/state"
)

// Child is a record owned by a movie or series.
type Child interface {
	Key() int
	ParentID() int
}

// ListFunc loads the children of one parent.
type ListFunc[C Child] func(ctx context.Context, parentID int) ([]C, error)

// Children caches the records of one movie or series at a time. Each fetch
// replaces the whole collection with the records of the fetched parent.
type Children[C Child] struct {
	status *state.Tracker
	list   ListFunc[C]

	mu     sync.RWMutex
	parent int
	items  []C
	gen    uint64
}

// NewChildren creates a child store loading through list.
func NewChildren[C Child](kind media.Kind, inst arr.Instance, list ListFunc[C], opts ...state.Option) *Children[C] {
	return &Children[C]{
		status: state.NewTracker(kind, inst, state.Apply(opts...)),
		list:   list,
	}
}

func (c *Children[C]) run(ctx context.Context, op string, silent bool, fn func() (bool, error)) bool {
	prev := c.status.Begin(silent)
	changed, err := fn()
	return c.status.Finish(ctx, op, silent, prev, changed, err)
}

// Fetch drops the cached records and loads the children of parentID. A
// cancelled fetch puts the previous records back.
func (c *Children[C]) Fetch(ctx context.Context, parentID int) bool {
	return c.run(ctx, "fetch", false, func() (bool, error) {
		c.mu.Lock()
		c.gen++
		gen := c.gen
		prevParent, prevItems := c.parent, c.items
		c.parent, c.items = parentID, nil
		c.mu.Unlock()

		items, err := c.list(ctx, parentID)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen != gen {
			return false, err
		}
		switch {
		case err == nil:
			c.items = items
		case arr.IsCancelled(err):
			c.parent, c.items = prevParent, prevItems
		}
		return true, err
	})
}

// MaybeFetch fetches unless a cached record already belongs to parentID.
func (c *Children[C]) MaybeFetch(ctx context.Context, parentID int) bool {
	if c.Fetched(parentID) {
		return true
	}
	return c.Fetch(ctx, parentID)
}

// Fetched reports whether any cached record belongs to parentID.
func (c *Children[C]) Fetched(parentID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parent == parentID &&
		slices.ContainsFunc(c.items, func(item C) bool { return item.ParentID() == parentID })
}

// Parent returns the id of the parent the cached records were fetched for.
func (c *Children[C]) Parent() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parent
}

// update applies fn to the cached records whose key is in keys and reports
// whether any matched.
func (c *Children[C]) update(keys []int, fn func(C) C) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := slices.Clone(c.items)
	changed := false
	for i, item := range out {
		if slices.Contains(keys, item.Key()) {
			out[i] = fn(item)
			changed = true
		}
	}
	if changed {
		c.items = out
	}
	return changed
}

func (c *Children[C]) remove(key int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.items, func(item C) bool { return item.Key() == key })
	if i < 0 {
		return false
	}
	c.items = slices.Delete(slices.Clone(c.items), i, i+1)
	return true
}

// Remove drops a record from the cache without a request.
func (c *Children[C]) Remove(key int) bool {
	if !c.remove(key) {
		return false
	}
	c.status.Emit("remove")
	return true
}

// Items returns every cached record. The slice must not be modified.
func (c *Children[C]) Items() []C {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// ForParent returns the cached records of parentID.
func (c *Children[C]) ForParent(parentID int) []C {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []C
	for _, item := range c.items {
		if item.ParentID() == parentID {
			out = append(out, item)
		}
	}
	return out
}

// Get looks a record up by server id.
func (c *Children[C]) Get(key int) (C, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero C
	return zero, false
}

func (c *Children[C]) Err() *arr.Error { return c.status.Err() }

func (c *Children[C]) Working() bool { return c.status.Working() }

func (c *Children[C]) Instance() arr.Instance { return c.status.Instance }

// Episodes caches the episodes of Sonarr series.
type Episodes struct {
	*Children[media.Episode]
	client *arr.Client
}

// NewEpisodes creates an episode store for a Sonarr instance.
func NewEpisodes(client *arr.Client, inst arr.Instance, opts ...state.Option) *Episodes {
	list := func(ctx context.Context, seriesID int) ([]media.Episode, error) {
		return client.Episodes(ctx, inst, seriesID)
	}
	return &Episodes{
		Children: NewChildren[media.Episode](media.KindEpisode, inst, list, opts...),
		client:   client,
	}
}

// Monitor sets the monitored flag of the given episodes and mirrors it in
// the cache once the server accepts.
func (e *Episodes) Monitor(ctx context.Context, episodeIDs []int, monitored bool) bool {
	return e.run(ctx, "monitor", false, func() (bool, error) {
		if err := e.client.MonitorEpisodes(ctx, e.Instance(), episodeIDs, monitored); err != nil {
			return false, err
		}
		return e.update(episodeIDs, func(ep media.Episode) media.Episode {
			ep.Monitored = monitored
			return ep
		}), nil
	})
}

// Season returns the cached episodes of one season ordered by episode number.
func (e *Episodes) Season(seriesID, seasonNumber int) []media.Episode {
	var out []media.Episode
	for _, ep := range e.ForParent(seriesID) {
		if ep.SeasonNumber == seasonNumber {
			out = append(out, ep)
		}
	}
	slices.SortFunc(out, func(a, b media.Episode) int { return cmp.Compare(a.EpisodeNumber, b.EpisodeNumber) })
	return out
}

// Files caches movie or episode files.
type Files[F Child] struct {
	*Children[F]
	del func(ctx context.Context, fileID int) error
}

// NewMovieFiles creates a movie file store for a Radarr instance.
func NewMovieFiles(client *arr.Client, inst arr.Instance, opts ...state.Option) *Files[media.MovieFile] {
	list := func(ctx context.Context, movieID int) ([]media.MovieFile, error) {
		return client.MovieFiles(ctx, inst, movieID)
	}
	return &Files[media.MovieFile]{
		Children: NewChildren[media.MovieFile](media.KindFile, inst, list, opts...),
		del: func(ctx context.Context, id int) error {
			return client.DeleteMovieFile(ctx, inst, id)
		},
	}
}

// NewEpisodeFiles creates an episode file store for a Sonarr instance.
func NewEpisodeFiles(client *arr.Client, inst arr.Instance, opts ...state.Option) *Files[media.EpisodeFile] {
	list := func(ctx context.Context, seriesID int) ([]media.EpisodeFile, error) {
		return client.EpisodeFiles(ctx, inst, seriesID)
	}
	return &Files[media.EpisodeFile]{
		Children: NewChildren[media.EpisodeFile](media.KindFile, inst, list, opts...),
		del: func(ctx context.Context, id int) error {
			return client.DeleteEpisodeFile(ctx, inst, id)
		},
	}
}

// Delete removes a file from disk and drops it from the cache once the
// server confirms.
func (f *Files[F]) Delete(ctx context.Context, file F) bool {
	return f.run(ctx, "delete", false, func() (bool, error) {
		if err := f.del(ctx, file.Key()); err != nil {
			return false, err
		}
		return f.remove(file.Key()), nil
	})
}
