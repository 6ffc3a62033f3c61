// Package search runs release searches and catalog lookups against one
// instance and keeps their results.
package search

import "errors"

var (
	// ErrInvalidScope indicates a release search without a target.
	ErrInvalidScope = errors.New("release search needs a movie, series or episode")

	// ErrUnknownSort indicates an unsupported release sort key.
	ErrUnknownSort = errors.New("unknown release sort")
)
