// Package app wires configuration into a running session: one client, one bus,
// one queue poller and the store bundles of the selected instances.
package app

import "errors"

var (
	// ErrNoInstance is returned when no instance of the requested kind is
	// selected.
	ErrNoInstance = errors.New("no instance selected")
	// ErrNoInstances is returned when the configuration lists no instances.
	ErrNoInstances = errors.New("no instances configured")
)
