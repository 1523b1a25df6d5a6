package persistence

import (
	"context"
	"sync"

	"agoralab-core/internal/domain/listing"
)

// DefaultMemoryCapacity is the number of cycles kept when no database is configured
const DefaultMemoryCapacity = 100

// MemoryLoadCycleRepo keeps the most recent load cycles in a fixed size ring
type MemoryLoadCycleRepo struct {
	mu     sync.RWMutex
	cycles []*listing.LoadCycle
	next   int
	full   bool
}

// NewMemoryLoadCycleRepository creates an in-memory repository holding up to capacity cycles
func NewMemoryLoadCycleRepository(capacity int) *MemoryLoadCycleRepo {
	if capacity < 1 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryLoadCycleRepo{cycles: make([]*listing.LoadCycle, capacity)}
}

// Save stores a cycle, evicting the oldest one when the ring is full
func (r *MemoryLoadCycleRepo) Save(ctx context.Context, cycle *listing.LoadCycle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cycles[r.next] = cycle
	r.next = (r.next + 1) % len(r.cycles)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// FindRecent returns up to limit cycles, most recently saved first
func (r *MemoryLoadCycleRepo) FindRecent(ctx context.Context, limit int32) ([]*listing.LoadCycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.full {
		size = len(r.cycles)
	}
	n := min(int(limit), size)
	if n <= 0 {
		return []*listing.LoadCycle{}, nil
	}

	result := make([]*listing.LoadCycle, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.cycles)) % len(r.cycles)
		result = append(result, r.cycles[idx])
	}
	return result, nil
}
