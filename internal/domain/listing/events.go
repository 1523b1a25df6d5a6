package listing

import (
	"agoralab-core/internal/domain/events"
)

// Event types
const (
	EventTypeLoadCycleCompleted = "listing.load_cycle.completed"
)

// LoadCycleCompletedEvent is raised when a load cycle settles, successfully or not
type LoadCycleCompletedEvent struct {
	events.BaseEvent
	Cycle *LoadCycle
}

// NewLoadCycleCompletedEvent creates a new LoadCycleCompletedEvent
func NewLoadCycleCompletedEvent(cycle *LoadCycle) *LoadCycleCompletedEvent {
	return &LoadCycleCompletedEvent{
		BaseEvent: events.NewBaseEventAt(EventTypeLoadCycleCompleted, cycle.ID().String(), cycle.FinishedAt()),
		Cycle:     cycle,
	}
}
