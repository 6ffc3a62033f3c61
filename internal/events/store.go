package events

import "github.com/vmunix/arrsync/internal/media"

// Event types.
const (
	TypeStoreChanged   = "store.changed"
	TypeRequestFailed  = "request.failed"
	TypeIndexRequested = "index.requested"
	TypeQueueUpdated   = "queue.updated"
)

// StoreChanged is published after a store completed a state transition.
// Subscribers read the new state from the store itself.
type StoreChanged struct {
	BaseEvent
	Operation string `json:"operation"`
}

// RequestFailed is published for every failed, non-cancelled request. It
// feeds the alert presentation even for silent requests.
type RequestFailed struct {
	BaseEvent
	Operation string `json:"operation"`
	Silent    bool   `json:"silent"`
	Err       error  `json:"-"`
}

// IndexRequested hands a freshly fetched collection to the search indexer.
type IndexRequested struct {
	BaseEvent
	Items []media.Item `json:"-"`
}

// QueueUpdated is published at the end of every queue refresh cycle.
type QueueUpdated struct {
	BaseEvent
	Total      int `json:"total"`
	BadgeCount int `json:"badge_count"`
}
