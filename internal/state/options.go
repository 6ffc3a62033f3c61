// Package state tracks the request status shared by every store: the current
// error, the working flag and change notification.
package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/vmunix/arrsync/internal/diag"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/media"
)

// DefaultIndexDelay is how long a fetched collection waits before it is handed
// to the indexer.
const DefaultIndexDelay = 5 * time.Second

// Indexer receives fetched collections for full-text indexing.
type Indexer interface {
	Index(ctx context.Context, kind media.Kind, instanceID uuid.UUID, items []media.Item) error
}

// Options are the collaborators shared by stores.
type Options struct {
	Bus        *events.Bus
	Reporter   diag.Reporter
	Indexer    Indexer
	Clock      clockwork.Clock
	IndexDelay time.Duration
	Logger     *slog.Logger
}

// Option configures a store.
type Option func(*Options)

// WithBus sets the bus change and failure events are published on.
func WithBus(b *events.Bus) Option {
	return func(o *Options) {
		o.Bus = b
	}
}

// WithReporter sets the diagnostics reporter.
func WithReporter(r diag.Reporter) Option {
	return func(o *Options) {
		o.Reporter = r
	}
}

// WithIndexer sets the indexer fed after each fetch.
func WithIndexer(i Indexer) Option {
	return func(o *Options) {
		o.Indexer = i
	}
}

// WithClock sets the clock used for delayed work.
func WithClock(c clockwork.Clock) Option {
	return func(o *Options) {
		o.Clock = c
	}
}

// WithIndexDelay sets the delay between a fetch and its index hint.
func WithIndexDelay(d time.Duration) Option {
	return func(o *Options) {
		o.IndexDelay = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Apply builds Options from defaults and opts.
func Apply(opts ...Option) Options {
	o := Options{
		Clock:      clockwork.NewRealClock(),
		IndexDelay: DefaultIndexDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Reporter == nil {
		o.Reporter = diag.NewLogReporter(o.Logger)
	}
	return o
}
