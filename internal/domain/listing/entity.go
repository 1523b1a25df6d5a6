package listing

import (
	"fmt"
	"time"
)

// LoadCycle is the diagnostic record of one settled load cycle
type LoadCycle struct {
	id          CycleID
	status      Status
	orgCount    int
	recordCount int
	failure     *string
	discarded   bool
	startedAt   time.Time
	finishedAt  time.Time
}

// NewLoadCycle creates a LoadCycle for a cycle that has settled
func NewLoadCycle(
	id CycleID,
	status Status,
	orgCount, recordCount int,
	cause error,
	discarded bool,
	startedAt, finishedAt time.Time,
) (*LoadCycle, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("load cycle ID cannot be empty")
	}
	if status != StatusLoaded && status != StatusFailed {
		return nil, fmt.Errorf("load cycle must be settled, got status %s", status)
	}
	if finishedAt.Before(startedAt) {
		return nil, fmt.Errorf("load cycle finished before it started")
	}

	var failure *string
	if cause != nil {
		msg := cause.Error()
		failure = &msg
	}

	return &LoadCycle{
		id:          id,
		status:      status,
		orgCount:    orgCount,
		recordCount: recordCount,
		failure:     failure,
		discarded:   discarded,
		startedAt:   startedAt,
		finishedAt:  finishedAt,
	}, nil
}

// ReconstituteLoadCycle recreates a LoadCycle from persistence
func ReconstituteLoadCycle(
	id, status string,
	orgCount, recordCount int,
	failure *string,
	discarded bool,
	startedAt, finishedAt time.Time,
) (*LoadCycle, error) {
	cycleID, err := ParseCycleID(id)
	if err != nil {
		return nil, err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return &LoadCycle{
		id:          cycleID,
		status:      st,
		orgCount:    orgCount,
		recordCount: recordCount,
		failure:     failure,
		discarded:   discarded,
		startedAt:   startedAt,
		finishedAt:  finishedAt,
	}, nil
}

// Getters

func (c *LoadCycle) ID() CycleID {
	return c.id
}

func (c *LoadCycle) Status() Status {
	return c.status
}

func (c *LoadCycle) OrgCount() int {
	return c.orgCount
}

func (c *LoadCycle) RecordCount() int {
	return c.recordCount
}

func (c *LoadCycle) Failure() *string {
	return c.failure
}

// Discarded reports whether the result arrived after its listing was unmounted
func (c *LoadCycle) Discarded() bool {
	return c.discarded
}

func (c *LoadCycle) StartedAt() time.Time {
	return c.startedAt
}

func (c *LoadCycle) FinishedAt() time.Time {
	return c.finishedAt
}

func (c *LoadCycle) Duration() time.Duration {
	return c.finishedAt.Sub(c.startedAt)
}
