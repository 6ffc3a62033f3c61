package library

//go:generate mockgen -destination=mocks/backend.go -package=mocks . Backend

import (
	"context"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/media"
)

// Backend performs the requests of one store flavor against one instance.
type Backend[T media.Item] interface {
	Kind() media.Kind
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Add(ctx context.Context, item T) (T, error)
	Push(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T, moveFiles bool) error
	Delete(ctx context.Context, item T, addExclusion bool) error
	Grab(ctx context.Context, g media.Grab) error
	Command(ctx context.Context, cmd media.Command) error
	// Track returns cached with the tracked fields of updated applied.
	Track(cached, updated T) T
}

// MovieBackend talks to Radarr.
type MovieBackend struct {
	client   *arr.Client
	instance arr.Instance
}

// NewMovieBackend creates a MovieBackend.
func NewMovieBackend(client *arr.Client, inst arr.Instance) *MovieBackend {
	return &MovieBackend{client: client, instance: inst}
}

func (b *MovieBackend) Kind() media.Kind { return media.KindMovie }

func (b *MovieBackend) List(ctx context.Context) ([]media.Movie, error) {
	return b.client.Movies(ctx, b.instance)
}

func (b *MovieBackend) Get(ctx context.Context, id int) (media.Movie, error) {
	return b.client.Movie(ctx, b.instance, id)
}

func (b *MovieBackend) Add(ctx context.Context, m media.Movie) (media.Movie, error) {
	return b.client.AddMovie(ctx, b.instance, m)
}

func (b *MovieBackend) Push(ctx context.Context, m media.Movie) (media.Movie, error) {
	return b.client.PushMovie(ctx, b.instance, m)
}

func (b *MovieBackend) Update(ctx context.Context, m media.Movie, moveFiles bool) error {
	return b.client.UpdateMovie(ctx, b.instance, m, moveFiles)
}

func (b *MovieBackend) Delete(ctx context.Context, m media.Movie, addExclusion bool) error {
	return b.client.DeleteMovie(ctx, b.instance, m, addExclusion)
}

// Grab ignores the scope: Radarr grabs carry only the release.
func (b *MovieBackend) Grab(ctx context.Context, g media.Grab) error {
	g.Scope = nil
	return b.client.GrabRelease(ctx, b.instance, g)
}

func (b *MovieBackend) Command(ctx context.Context, cmd media.Command) error {
	return b.client.RunCommand(ctx, b.instance, cmd)
}

func (b *MovieBackend) Track(cached, updated media.Movie) media.Movie {
	return cached.WithTracked(updated)
}

// SeriesBackend talks to Sonarr.
type SeriesBackend struct {
	client   *arr.Client
	instance arr.Instance
}

// NewSeriesBackend creates a SeriesBackend.
func NewSeriesBackend(client *arr.Client, inst arr.Instance) *SeriesBackend {
	return &SeriesBackend{client: client, instance: inst}
}

func (b *SeriesBackend) Kind() media.Kind { return media.KindSeries }

func (b *SeriesBackend) List(ctx context.Context) ([]media.Series, error) {
	return b.client.Series(ctx, b.instance)
}

func (b *SeriesBackend) Get(ctx context.Context, id int) (media.Series, error) {
	return b.client.SeriesByID(ctx, b.instance, id)
}

func (b *SeriesBackend) Add(ctx context.Context, s media.Series) (media.Series, error) {
	return b.client.AddSeries(ctx, b.instance, s)
}

func (b *SeriesBackend) Push(ctx context.Context, s media.Series) (media.Series, error) {
	return b.client.PushSeries(ctx, b.instance, s)
}

func (b *SeriesBackend) Update(ctx context.Context, s media.Series, moveFiles bool) error {
	return b.client.UpdateSeries(ctx, b.instance, s, moveFiles)
}

func (b *SeriesBackend) Delete(ctx context.Context, s media.Series, addExclusion bool) error {
	return b.client.DeleteSeries(ctx, b.instance, s, addExclusion)
}

func (b *SeriesBackend) Grab(ctx context.Context, g media.Grab) error {
	return b.client.GrabRelease(ctx, b.instance, g)
}

func (b *SeriesBackend) Command(ctx context.Context, cmd media.Command) error {
	return b.client.RunCommand(ctx, b.instance, cmd)
}

func (b *SeriesBackend) Track(cached, updated media.Series) media.Series {
	return cached.WithTracked(updated)
}
