package listing

import (
	"context"
)

// LoadCycleRepo defines the interface for load cycle diagnostics persistence
// This is defined in the domain layer, but implemented in infrastructure
type LoadCycleRepo interface {
	// Save persists a settled load cycle
	Save(ctx context.Context, cycle *LoadCycle) error

	// FindRecent returns the most recently finished cycles, newest first
	FindRecent(ctx context.Context, limit int32) ([]*LoadCycle, error)
}
