package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/vmunix/arrsync/internal/media"
)

// LogIndexer stands in for a full-text index: it logs every hint and keeps
// the size of the latest collection per instance and kind.
type LogIndexer struct {
	log *slog.Logger

	mu     sync.Mutex
	counts map[indexKey]int
}

type indexKey struct {
	instance uuid.UUID
	kind     media.Kind
}

// NewLogIndexer creates a LogIndexer.
func NewLogIndexer(log *slog.Logger) *LogIndexer {
	if log == nil {
		log = slog.Default()
	}
	return &LogIndexer{log: log.With("component", "indexer"), counts: make(map[indexKey]int)}
}

func (x *LogIndexer) Index(ctx context.Context, kind media.Kind, instanceID uuid.UUID, items []media.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	x.mu.Lock()
	x.counts[indexKey{instanceID, kind}] = len(items)
	x.mu.Unlock()
	x.log.Debug("index hint", "kind", kind, "instance", instanceID, "count", len(items))
	return nil
}

// Count returns the size of the last indexed collection.
func (x *LogIndexer) Count(instanceID uuid.UUID, kind media.Kind) int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.counts[indexKey{instanceID, kind}]
}
