package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrsync/internal/events"
)

// Runner drives a session's background work.
type Runner struct {
	session *Session
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(session *Session, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{session: session, logger: logger.With("component", "runner")}
}

// Run polls the queue and surfaces failed requests until ctx is done. It
// returns nil on cancellation.
func (r *Runner) Run(ctx context.Context) error {
	failures := r.session.Bus().Subscribe(events.TypeRequestFailed, 32)
	defer r.session.Bus().Unsubscribe(failures)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.session.Poller().Run(ctx)
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-failures:
				if !ok {
					return nil
				}
				r.alert(e)
			}
		}
	})

	return g.Wait()
}

func (r *Runner) alert(e events.Event) {
	failed, ok := e.(*events.RequestFailed)
	if !ok {
		return
	}
	level := slog.LevelWarn
	if failed.Silent {
		level = slog.LevelDebug
	}
	r.logger.Log(context.Background(), level, "request failed",
		"kind", failed.Kind(), "instance", failed.InstanceID(), "operation", failed.Operation, "error", failed.Err)
}
