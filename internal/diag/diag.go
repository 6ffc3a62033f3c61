// Package diag records diagnostic breadcrumbs for failed operations.
package diag

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Level is the severity of a breadcrumb.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Breadcrumb is one diagnostic record.
type Breadcrumb struct {
	Level    Level
	Category string
	Message  string
	Data     map[string]any
	At       time.Time
}

// Reporter receives breadcrumbs.
type Reporter interface {
	Leave(ctx context.Context, b Breadcrumb)
}

// LogReporter writes breadcrumbs to a slog logger.
type LogReporter struct {
	log *slog.Logger
}

// NewLogReporter creates a LogReporter.
func NewLogReporter(log *slog.Logger) *LogReporter {
	if log == nil {
		log = slog.Default()
	}
	return &LogReporter{log: log.With("component", "diag")}
}

func (r *LogReporter) Leave(ctx context.Context, b Breadcrumb) {
	level := slog.LevelInfo
	if b.Level == LevelError {
		level = slog.LevelError
	}
	attrs := make([]any, 0, 2+2*len(b.Data))
	attrs = append(attrs, "category", b.Category)
	for k, v := range b.Data {
		attrs = append(attrs, k, v)
	}
	r.log.Log(ctx, level, b.Message, attrs...)
}

// Recorder keeps the most recent breadcrumbs in memory.
type Recorder struct {
	mu    sync.Mutex
	limit int
	trail []Breadcrumb
}

// NewRecorder creates a Recorder holding at most limit breadcrumbs.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 100
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Leave(_ context.Context, b Breadcrumb) {
	if b.At.IsZero() {
		b.At = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trail = append(r.trail, b)
	if len(r.trail) > r.limit {
		r.trail = r.trail[len(r.trail)-r.limit:]
	}
}

// Trail returns a copy of the recorded breadcrumbs, oldest first.
func (r *Recorder) Trail() []Breadcrumb {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Breadcrumb, len(r.trail))
	copy(out, r.trail)
	return out
}

// Multi fans breadcrumbs out to several reporters.
type Multi []Reporter

func (m Multi) Leave(ctx context.Context, b Breadcrumb) {
	for _, r := range m {
		r.Leave(ctx, b)
	}
}
