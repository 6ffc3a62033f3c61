// Package library keeps local caches of Radarr movies and Sonarr series, and
// of the episodes and files that belong to them, in sync with an instance.
package library

import "github.com/vmunix/arrsync/internal/media"

// Operation is one of the requests a Store dispatches: Fetch, Get, Add, Push,
// Update, Delete, Download or Command.
type Operation[T media.Item] interface {
	operation() string
}

// Fetch replaces the cache with the server's collection.
type Fetch[T media.Item] struct{}

// Get refreshes one item by library id.
type Get[T media.Item] struct {
	ID int
}

// Add creates an item and caches the server's record.
type Add[T media.Item] struct {
	Item T
}

// Push saves an item and caches the server's record.
type Push[T media.Item] struct {
	Item T
}

// Update saves an item and copies its tracked fields into the cache.
type Update[T media.Item] struct {
	Item      T
	MoveFiles bool
}

// Delete removes an item once the server confirms.
type Delete[T media.Item] struct {
	Item         T
	AddExclusion bool
}

// Download grabs a release. It does not touch the cache.
type Download[T media.Item] struct {
	Grab media.Grab
}

// Command queues a server job. Success means the job was accepted.
type Command[T media.Item] struct {
	Command media.Command
}

func (Fetch[T]) operation() string    { return "fetch" }
func (Get[T]) operation() string      { return "get" }
func (Add[T]) operation() string      { return "add" }
func (Push[T]) operation() string     { return "push" }
func (Update[T]) operation() string   { return "update" }
func (Delete[T]) operation() string   { return "delete" }
func (Download[T]) operation() string { return "download" }
func (Command[T]) operation() string  { return "command" }
