package listing

import (
	"fmt"

	"github.com/google/uuid"
)

// Status is the phase of a listing's load cycle
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseStatus is the inverse of Status.String
func ParseStatus(s string) (Status, error) {
	switch s {
	case "idle":
		return StatusIdle, nil
	case "loading":
		return StatusLoading, nil
	case "loaded":
		return StatusLoaded, nil
	case "failed":
		return StatusFailed, nil
	default:
		return StatusIdle, fmt.Errorf("unknown listing status %q", s)
	}
}

// CycleID identifies one load cycle
type CycleID struct {
	value uuid.UUID
}

// NewCycleID creates a new CycleID
func NewCycleID() CycleID {
	return CycleID{value: uuid.New()}
}

// ParseCycleID parses a string into a CycleID
func ParseCycleID(id string) (CycleID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return CycleID{}, fmt.Errorf("invalid load cycle ID format: %w", err)
	}
	return CycleID{value: uid}, nil
}

func (id CycleID) String() string {
	return id.value.String()
}

func (id CycleID) UUID() uuid.UUID {
	return id.value
}

func (id CycleID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id CycleID) Equals(other CycleID) bool {
	return id.value == other.value
}
