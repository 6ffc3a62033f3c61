package arr

import "sync/atomic"

// Reachability reports whether the network is usable. It is consulted before
// every request.
type Reachability interface {
	Reachable() bool
}

// NetworkMonitor is a Reachability toggled by whatever watches the network.
// The zero value reports reachable.
type NetworkMonitor struct {
	unreachable atomic.Bool
}

// NewNetworkMonitor returns a monitor in the reachable state.
func NewNetworkMonitor() *NetworkMonitor {
	return &NetworkMonitor{}
}

func (m *NetworkMonitor) Reachable() bool { return !m.unreachable.Load() }

// SetReachable records the current network state.
func (m *NetworkMonitor) SetReachable(ok bool) { m.unreachable.Store(!ok) }
