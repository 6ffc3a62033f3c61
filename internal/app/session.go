package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/config"
	"github.com/vmunix/arrsync/internal/diag"
	"github.com/vmunix/arrsync/internal/download"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/state"
)

const trailLimit = 100

// Session owns the process-wide collaborators and the store bundles of the
// selected Radarr and Sonarr instances.
type Session struct {
	cfg       *config.Config
	instances []arr.Instance
	log       *slog.Logger
	clock     clockwork.Clock

	client     *arr.Client
	clientOpts []arr.Option
	monitor    *arr.NetworkMonitor
	bus        *events.Bus
	trail      *diag.Recorder
	reporters  diag.Multi
	indexer    *LogIndexer
	poller     *download.Poller

	mu     sync.RWMutex
	radarr *RadarrInstance
	sonarr *SonarrInstance
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithClock sets the clock used by the poller and index scheduling.
func WithClock(c clockwork.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithReporter adds a diagnostics reporter next to the log and the in-memory
// trail.
func WithReporter(r diag.Reporter) Option {
	return func(s *Session) { s.reporters = append(s.reporters, r) }
}

// WithClientOptions passes extra options to the arr client.
func WithClientOptions(opts ...arr.Option) Option {
	return func(s *Session) { s.clientOpts = append(s.clientOpts, opts...) }
}

// New builds a session from cfg and selects the first instance of each kind.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	instances, err := cfg.ArrInstances()
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, ErrNoInstances
	}

	s := &Session{
		cfg:       cfg,
		instances: instances,
		log:       slog.Default(),
		clock:     clockwork.NewRealClock(),
		monitor:   arr.NewNetworkMonitor(),
		trail:     diag.NewRecorder(trailLimit),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.reporters = append(diag.Multi{diag.NewLogReporter(s.log), s.trail}, s.reporters...)
	s.bus = events.NewBus(s.log)

	clientOpts := []arr.Option{
		arr.WithTimeouts(cfg.HTTP.Timeout, cfg.HTTP.SlowTimeout),
		arr.WithReachability(s.monitor),
		arr.WithLogger(s.log),
	}
	if cfg.HTTP.UserAgent != "" {
		clientOpts = append(clientOpts, arr.WithUserAgent(cfg.HTTP.UserAgent))
	}
	s.client = arr.NewClient(append(clientOpts, s.clientOpts...)...)

	if cfg.Indexing.Enabled {
		s.indexer = NewLogIndexer(s.log)
	}

	s.poller, err = download.NewPoller(s.client,
		download.WithBus(s.bus),
		download.WithReporter(s.reporters),
		download.WithClock(s.clock),
		download.WithInterval(cfg.Queue.PollInterval),
		download.WithLogger(s.log),
	)
	if err != nil {
		return nil, fmt.Errorf("queue poller: %w", err)
	}
	s.poller.SetInstances(instances)

	for _, kind := range []arr.Kind{arr.Radarr, arr.Sonarr} {
		for _, inst := range instances {
			if inst.Kind == kind {
				s.bind(inst)
				break
			}
		}
	}
	return s, nil
}

func (s *Session) storeOptions() []state.Option {
	opts := []state.Option{
		state.WithBus(s.bus),
		state.WithReporter(s.reporters),
		state.WithClock(s.clock),
		state.WithIndexDelay(s.cfg.Indexing.Delay),
		state.WithLogger(s.log),
	}
	if s.indexer != nil {
		opts = append(opts, state.WithIndexer(s.indexer))
	}
	return opts
}

// Select rebuilds the bundle for the instance matching key, a label or id.
// The previous bundle of the same kind is closed.
func (s *Session) Select(key string) (arr.Instance, error) {
	inst, err := s.cfg.Find(key)
	if err != nil {
		return arr.Instance{}, err
	}
	s.bind(inst)
	s.log.Info("instance selected", "instance", inst.String(), "kind", inst.Kind)
	return inst, nil
}

func (s *Session) bind(inst arr.Instance) {
	rank := s.cfg.Lookup.Rank
	s.mu.Lock()
	defer s.mu.Unlock()
	switch inst.Kind {
	case arr.Radarr:
		s.radarr.close()
		s.radarr = newRadarrInstance(s.client, inst, rank, s.storeOptions())
	case arr.Sonarr:
		s.sonarr.close()
		s.sonarr = newSonarrInstance(s.client, inst, rank, s.storeOptions())
	}
}

// Radarr returns the selected Radarr bundle.
func (s *Session) Radarr() (*RadarrInstance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.radarr == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoInstance, arr.Radarr)
	}
	return s.radarr, nil
}

// Sonarr returns the selected Sonarr bundle.
func (s *Session) Sonarr() (*SonarrInstance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sonarr == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoInstance, arr.Sonarr)
	}
	return s.sonarr, nil
}

// Instances returns every configured instance.
func (s *Session) Instances() []arr.Instance { return s.instances }

func (s *Session) Client() *arr.Client { return s.client }
func (s *Session) Bus() *events.Bus { return s.bus }
func (s *Session) Poller() *download.Poller { return s.poller }
func (s *Session) Network() *arr.NetworkMonitor { return s.monitor }
func (s *Session) Trail() []diag.Breadcrumb { return s.trail.Trail() }
func (s *Session) Indexer() *LogIndexer { return s.indexer }
func (s *Session) Logger() *slog.Logger { return s.log }

// Close stops the bundles' background work and closes the bus.
func (s *Session) Close() error {
	s.mu.Lock()
	s.radarr.close()
	s.sonarr.close()
	s.mu.Unlock()
	return s.bus.Close()
}
