package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/diag"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/media"
)

// Tracker holds the error and working state of one store and publishes its
// transitions. Non-silent requests clear the error and count as working;
// silent requests leave both alone.
type Tracker struct {
	Kind     media.Kind
	Instance arr.Instance
	Options  Options

	log *slog.Logger

	mu       sync.Mutex
	err      *arr.Error
	inflight int
}

// NewTracker creates a tracker for a store of kind bound to inst.
func NewTracker(kind media.Kind, inst arr.Instance, opts Options) *Tracker {
	return &Tracker{
		Kind:     kind,
		Instance: inst,
		Options:  opts,
		log:      opts.Logger.With("component", string(kind), "instance", inst.String()),
	}
}

// Logger returns the store's logger.
func (t *Tracker) Logger() *slog.Logger { return t.log }

// Begin marks the start of a request and returns the error it replaced.
func (t *Tracker) Begin(silent bool) *arr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.err
	if !silent {
		t.err = nil
		t.inflight++
	}
	return prev
}

// Finish records the outcome of a request started with Begin and publishes
// the transition. Cancellation restores the previous error and is never
// reported. It reports whether the request completed without error.
func (t *Tracker) Finish(ctx context.Context, op string, silent bool, prev *arr.Error, changed bool, err error) bool {
	cancelled := arr.IsCancelled(err)

	t.mu.Lock()
	if !silent {
		t.inflight--
		switch {
		case cancelled:
			if t.err == nil {
				t.err = prev
			}
		case err != nil:
			t.err = arr.AsError(err)
		}
	}
	t.mu.Unlock()

	if err != nil && !cancelled {
		t.fail(ctx, op, silent, err)
	}
	if changed || !silent {
		t.Emit(op)
	}
	return err == nil
}

// Discard ends a request started with Begin whose outcome no longer
// applies. The error is left alone and nothing is reported or published.
func (t *Tracker) Discard(silent bool) {
	if silent {
		return
	}
	t.mu.Lock()
	t.inflight--
	t.mu.Unlock()
}

func (t *Tracker) fail(ctx context.Context, op string, silent bool, err error) {
	t.log.Warn("request failed", "operation", op, "silent", silent, "error", err)
	t.Options.Reporter.Leave(ctx, diag.Breadcrumb{
		Level:    diag.LevelError,
		Category: string(t.Kind),
		Message:  "Request failed",
		Data: map[string]any{
			"operation": op,
			"instance":  t.Instance.ID.String(),
			"error":     err.Error(),
		},
	})
	t.Options.Bus.Publish(&events.RequestFailed{
		BaseEvent: events.NewBaseEvent(events.TypeRequestFailed, t.Kind, t.Instance.ID),
		Operation: op,
		Silent:    silent,
		Err:       err,
	})
}

// Emit publishes a change notification.
func (t *Tracker) Emit(op string) {
	t.Options.Bus.Publish(&events.StoreChanged{
		BaseEvent: events.NewBaseEvent(events.TypeStoreChanged, t.Kind, t.Instance.ID),
		Operation: op,
	})
}

// Err returns the current error, if any.
func (t *Tracker) Err() *arr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Working reports whether a non-silent request is in flight.
func (t *Tracker) Working() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inflight > 0
}
