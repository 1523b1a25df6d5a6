package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is something that happened in the domain and that other
// components may react to
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	AggregateID() string
}

// BaseEvent carries the properties shared by every event
type BaseEvent struct {
	eventID     string
	eventType   string
	occurredAt  time.Time
	aggregateID string
}

// NewBaseEvent creates a base event stamped with the current time
func NewBaseEvent(eventType, aggregateID string) BaseEvent {
	return NewBaseEventAt(eventType, aggregateID, time.Now())
}

// NewBaseEventAt creates a base event stamped with the given time
func NewBaseEventAt(eventType, aggregateID string, at time.Time) BaseEvent {
	return BaseEvent{
		eventID:     uuid.NewString(),
		eventType:   eventType,
		occurredAt:  at,
		aggregateID: aggregateID,
	}
}

func (e BaseEvent) EventID() string       { return e.eventID }
func (e BaseEvent) EventType() string     { return e.eventType }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
func (e BaseEvent) AggregateID() string   { return e.aggregateID }
