package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agoralab-core/internal/domain/events"
	"agoralab-core/internal/domain/listing"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// DiagnosticsService records settled load cycles and serves the recent history
type DiagnosticsService struct {
	cycleRepo listing.LoadCycleRepo
	logger    *zap.Logger
}

// NewDiagnosticsService creates a new diagnostics service
func NewDiagnosticsService(cycleRepo listing.LoadCycleRepo, logger *zap.Logger) *DiagnosticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiagnosticsService{
		cycleRepo: cycleRepo,
		logger:    logger,
	}
}

// Subscribe registers the service for load cycle completion events
func (s *DiagnosticsService) Subscribe(dispatcher *events.Dispatcher) {
	dispatcher.Register(listing.EventTypeLoadCycleCompleted, s.HandleLoadCycleCompleted)
}

// HandleLoadCycleCompleted persists the cycle carried by the event
func (s *DiagnosticsService) HandleLoadCycleCompleted(ctx context.Context, event events.DomainEvent) error {
	completed, ok := event.(*listing.LoadCycleCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected event %T for %s", event, listing.EventTypeLoadCycleCompleted)
	}

	if err := s.cycleRepo.Save(ctx, completed.Cycle); err != nil {
		return fmt.Errorf("failed to record load cycle %s: %w", completed.Cycle.ID(), err)
	}

	s.logger.Debug("Recorded load cycle",
		zap.String("cycle_id", completed.Cycle.ID().String()),
		zap.String("status", completed.Cycle.Status().String()))
	return nil
}

// RecentLoadCycles returns the latest recorded cycles, newest first.
// A non-positive limit selects the default; larger limits are capped.
func (s *DiagnosticsService) RecentLoadCycles(ctx context.Context, limit int) ([]*listing.LoadCycle, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	cycles, err := s.cycleRepo.FindRecent(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load recent cycles: %w", err)
	}
	return cycles, nil
}
