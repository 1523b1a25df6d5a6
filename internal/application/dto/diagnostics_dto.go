package dto

import (
	"time"

	"agoralab-core/internal/domain/listing"
)

// LoadCycleResponse represents a recorded load cycle
type LoadCycleResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	OrgCount    int     `json:"org_count"`
	RecordCount int     `json:"record_count"`
	Failure     *string `json:"failure"`
	Discarded   bool    `json:"discarded"`
	StartedAt   string  `json:"started_at"`
	FinishedAt  string  `json:"finished_at"`
	DurationMS  int64   `json:"duration_ms"`
}

// LoadCycleListResponse represents the recent load cycle history
type LoadCycleListResponse struct {
	Cycles []*LoadCycleResponse `json:"cycles"`
}

// ToLoadCycleListResponse converts recorded cycles into the API representation
func ToLoadCycleListResponse(cycles []*listing.LoadCycle) *LoadCycleListResponse {
	items := make([]*LoadCycleResponse, len(cycles))
	for i, c := range cycles {
		items[i] = &LoadCycleResponse{
			ID:          c.ID().String(),
			Status:      c.Status().String(),
			OrgCount:    c.OrgCount(),
			RecordCount: c.RecordCount(),
			Failure:     c.Failure(),
			Discarded:   c.Discarded(),
			StartedAt:   c.StartedAt().UTC().Format(time.RFC3339),
			FinishedAt:  c.FinishedAt().UTC().Format(time.RFC3339),
			DurationMS:  c.Duration().Milliseconds(),
		}
	}
	return &LoadCycleListResponse{Cycles: items}
}
