package app

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_PollsAndStops(t *testing.T) {
	srv := newServer(t)
	s := newSession(t, testConfig(srv.URL), WithClock(clockwork.NewFakeClock()))
	runner := NewRunner(s, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return s.Poller().Total() == 3 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 3, s.Poller().BadgeCount())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
}

func TestNewRunner_DefaultLogger(t *testing.T) {
	srv := newServer(t)
	s := newSession(t, testConfig(srv.URL))

	runner := NewRunner(s, nil)
	require.NotNil(t, runner)
	require.NotNil(t, runner.logger)
}

func TestRunner_AlertsOnFailure(t *testing.T) {
	srv := newServer(t)
	s := newSession(t, testConfig(srv.URL), WithClock(clockwork.NewFakeClock()))
	runner := NewRunner(s, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()

	radarr, err := s.Radarr()
	require.NoError(t, err)
	assert.False(t, radarr.Movies.Get(ctx, 99, false))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
}
