package download

//go:generate mockgen -destination=mocks/fetcher.go -package=mocks . QueueFetcher

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/diag"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/media"
)

// DefaultPollInterval is the delay between queue refresh cycles.
const DefaultPollInterval = 5 * time.Second

// QueueFetcher loads every queue record of one instance.
type QueueFetcher interface {
	Queue(ctx context.Context, inst arr.Instance) ([]media.QueueItem, error)
}

// Poller aggregates the download queues of all configured instances. Only
// one refresh cycle runs at a time; a refresh requested while one is
// loading is dropped.
type Poller struct {
	fetcher  QueueFetcher
	bus      *events.Bus
	reporter diag.Reporter
	clock    clockwork.Clock
	interval time.Duration
	log      *slog.Logger

	mu        sync.Mutex
	instances []arr.Instance
	items     map[uuid.UUID][]media.QueueItem
	loading   bool
	err       *arr.Error

	wg sync.WaitGroup
}

// Option configures a Poller.
type Option func(*Poller)

func WithBus(b *events.Bus) Option { return func(p *Poller) { p.bus = b } }

func WithReporter(r diag.Reporter) Option { return func(p *Poller) { p.reporter = r } }

func WithClock(c clockwork.Clock) Option { return func(p *Poller) { p.clock = c } }

// WithInterval sets the refresh interval. Non-positive values keep the
// default.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option { return func(p *Poller) { p.log = l } }

// NewPoller creates a poller reading queues through fetcher.
func NewPoller(fetcher QueueFetcher, opts ...Option) (*Poller, error) {
	if fetcher == nil {
		return nil, ErrNoFetcher
	}
	p := &Poller{
		fetcher:  fetcher,
		clock:    clockwork.NewRealClock(),
		interval: DefaultPollInterval,
		items:    make(map[uuid.UUID][]media.QueueItem),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	p.log = p.log.With("component", "queue")
	if p.reporter == nil {
		p.reporter = diag.NewLogReporter(p.log)
	}
	return p, nil
}

// SetInstances replaces the polled instances. Records of instances that are
// no longer listed are dropped at the end of the next cycle.
func (p *Poller) SetInstances(instances []arr.Instance) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.instances = slices.Clone(instances)
}

// Instances returns the polled instances.
func (p *Poller) Instances() []arr.Instance {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.instances)
}

type fetchResult struct {
	items []media.QueueItem
	err   error
}

// Refresh runs one cycle: every instance is fetched concurrently and the
// results are applied in instance order, so the error of the last failing
// instance is the one kept. It reports false when the cycle was skipped or
// an instance failed.
func (p *Poller) Refresh(ctx context.Context) bool {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		p.log.Debug("refresh skipped, cycle in progress")
		return false
	}
	p.loading = true
	instances := slices.Clone(p.instances)
	p.mu.Unlock()

	start := time.Now()
	results := make([]fetchResult, len(instances))
	var g errgroup.Group
	for i, inst := range instances {
		g.Go(func() error {
			items, err := p.fetcher.Queue(ctx, inst)
			results[i] = fetchResult{items: items, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var lastErr error
	failed := 0
	for i, inst := range instances {
		if err := results[i].err; err != nil && !arr.IsCancelled(err) {
			lastErr = err
			failed++
			p.report(ctx, inst, err)
		}
	}

	p.mu.Lock()
	for i, inst := range instances {
		r := results[i]
		if r.err == nil {
			p.items[inst.ID] = dedupe(r.items)
		}
	}
	live := make(map[uuid.UUID]bool, len(p.instances))
	for _, inst := range p.instances {
		live[inst.ID] = true
	}
	maps.DeleteFunc(p.items, func(id uuid.UUID, _ []media.QueueItem) bool { return !live[id] })
	if lastErr != nil || allSettled(results) {
		p.err = arr.AsError(lastErr)
	}
	p.loading = false
	total, badge := p.countLocked()
	p.mu.Unlock()

	p.log.Debug("refresh complete", "instances", len(instances), "failed", failed, "total", total,
		"badge", badge, "duration_ms", time.Since(start).Milliseconds())
	p.bus.Publish(&events.QueueUpdated{
		BaseEvent:  events.NewBaseEvent(events.TypeQueueUpdated, media.KindQueue, uuid.Nil),
		Total:      total,
		BadgeCount: badge,
	})
	return lastErr == nil
}

// allSettled reports whether no result was cancelled.
func allSettled(results []fetchResult) bool {
	return !slices.ContainsFunc(results, func(r fetchResult) bool { return arr.IsCancelled(r.err) })
}

func (p *Poller) report(ctx context.Context, inst arr.Instance, err error) {
	p.log.Warn("queue fetch failed", "instance", inst.String(), "error", err)
	p.reporter.Leave(ctx, diag.Breadcrumb{
		Level:    diag.LevelError,
		Category: string(media.KindQueue),
		Message:  "Queue fetch failed",
		Data: map[string]any{
			"instance": inst.ID.String(),
			"error":    err.Error(),
		},
	})
}

// dedupe drops records whose id was already seen, keeping the first.
func dedupe(items []media.QueueItem) []media.QueueItem {
	seen := make(map[int]bool, len(items))
	out := make([]media.QueueItem, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

// Run refreshes immediately and then on every tick until ctx is done. Ticks
// that arrive while a cycle is loading are dropped by Refresh.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info("queue polling started", "interval", p.interval)
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			p.wg.Wait()
			p.log.Info("queue polling stopped")
			return nil
		case <-ticker.Chan():
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				p.Refresh(ctx)
			}()
		}
	}
}

// Items returns the records per instance.
func (p *Poller) Items() map[uuid.UUID][]media.QueueItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.items)
}

// ItemsFor returns the records of one instance.
func (p *Poller) ItemsFor(id uuid.UUID) []media.QueueItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items[id]
}

// All returns every record, grouped in instance order.
func (p *Poller) All() []media.QueueItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []media.QueueItem
	for _, inst := range p.instances {
		out = append(out, p.items[inst.ID]...)
	}
	return out
}

// BadgeCount counts the records that need attention.
func (p *Poller) BadgeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, badge := p.countLocked()
	return badge
}

// Total counts every record.
func (p *Poller) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total, _ := p.countLocked()
	return total
}

func (p *Poller) countLocked() (total, badge int) {
	for _, items := range p.items {
		total += len(items)
		for _, item := range items {
			if item.NeedsAttention() {
				badge++
			}
		}
	}
	return total, badge
}

// Err returns the error of the last failing instance of the latest cycle.
func (p *Poller) Err() *arr.Error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Loading reports whether a cycle is running.
func (p *Poller) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}
