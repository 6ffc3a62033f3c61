package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/arrsync/internal/media"
)

// Event is the base interface all events implement.
type Event interface {
	EventType() string
	Kind() media.Kind
	InstanceID() uuid.UUID
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	Type      string     `json:"type"`
	Entity    media.Kind `json:"kind"`
	Instance  uuid.UUID  `json:"instance_id"`
	Timestamp time.Time  `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) Kind() media.Kind      { return e.Entity }
func (e BaseEvent) InstanceID() uuid.UUID { return e.Instance }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent creates a BaseEvent with the current timestamp.
func NewBaseEvent(eventType string, kind media.Kind, instanceID uuid.UUID) BaseEvent {
	return BaseEvent{
		Type:      eventType,
		Entity:    kind,
		Instance:  instanceID,
		Timestamp: time.Now(),
	}
}
