// Package download polls the download queues of every configured instance
// and aggregates them.
package download

import "errors"

// ErrNoFetcher is returned when a poller is built without a queue source.
var ErrNoFetcher = errors.New("queue fetcher is required")
