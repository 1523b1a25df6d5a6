package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"agoralab-core/internal/database"
	"agoralab-core/internal/domain/listing"
)

// LoadCycleRepoImpl implements the domain listing.LoadCycleRepo interface on PostgreSQL
type LoadCycleRepoImpl struct {
	conn *sql.DB
}

// NewLoadCycleRepository creates a new load cycle repository implementation
func NewLoadCycleRepository(db *database.DB) listing.LoadCycleRepo {
	return &LoadCycleRepoImpl{conn: db.GetConnection()}
}

const insertLoadCycle = `
INSERT INTO load_cycles (id, status, org_count, record_count, failure, discarded, started_at, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`

const selectRecentLoadCycles = `
SELECT id, status, org_count, record_count, failure, discarded, started_at, finished_at
FROM load_cycles
ORDER BY finished_at DESC
LIMIT $1`

// Save persists a settled load cycle. Saving the same cycle twice is a no-op.
func (r *LoadCycleRepoImpl) Save(ctx context.Context, cycle *listing.LoadCycle) error {
	failure := sql.NullString{Valid: false}
	if cycle.Failure() != nil {
		failure = sql.NullString{String: *cycle.Failure(), Valid: true}
	}

	_, err := r.conn.ExecContext(ctx, insertLoadCycle,
		cycle.ID().UUID(),
		cycle.Status().String(),
		cycle.OrgCount(),
		cycle.RecordCount(),
		failure,
		cycle.Discarded(),
		cycle.StartedAt(),
		cycle.FinishedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert load cycle: %w", err)
	}

	return nil
}

// FindRecent returns the most recently finished cycles, newest first
func (r *LoadCycleRepoImpl) FindRecent(ctx context.Context, limit int32) ([]*listing.LoadCycle, error) {
	rows, err := r.conn.QueryContext(ctx, selectRecentLoadCycles, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query load cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*listing.LoadCycle
	for rows.Next() {
		var row loadCycleRow
		if err := rows.Scan(
			&row.ID,
			&row.Status,
			&row.OrgCount,
			&row.RecordCount,
			&row.Failure,
			&row.Discarded,
			&row.StartedAt,
			&row.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan load cycle: %w", err)
		}

		cycle, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to convert load cycle: %w", err)
		}
		cycles = append(cycles, cycle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read load cycles: %w", err)
	}

	return cycles, nil
}
