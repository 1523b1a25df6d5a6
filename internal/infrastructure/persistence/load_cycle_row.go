package persistence

import (
	"database/sql"
	"time"

	"agoralab-core/internal/domain/listing"
)

// loadCycleRow mirrors one row of the load_cycles table
type loadCycleRow struct {
	ID          string
	Status      string
	OrgCount    int
	RecordCount int
	Failure     sql.NullString
	Discarded   bool
	StartedAt   time.Time
	FinishedAt  time.Time
}

func (r loadCycleRow) toDomain() (*listing.LoadCycle, error) {
	var failure *string
	if r.Failure.Valid {
		failure = &r.Failure.String
	}

	return listing.ReconstituteLoadCycle(
		r.ID,
		r.Status,
		r.OrgCount,
		r.RecordCount,
		failure,
		r.Discarded,
		r.StartedAt,
		r.FinishedAt,
	)
}
