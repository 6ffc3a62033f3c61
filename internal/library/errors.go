package library

import "errors"

var (
	// ErrUnknownOperation indicates an operation the store cannot dispatch.
	ErrUnknownOperation = errors.New("unknown operation")
)
