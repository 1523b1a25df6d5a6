package listing_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agoralab-core/internal/domain/listing"
	"agoralab-core/internal/domain/repo"
)

func record(t *testing.T, org string, stars int) *repo.Record {
	t.Helper()
	orgID, err := repo.NewOrgID(org)
	require.NoError(t, err)
	name := fmt.Sprintf("%s-%d", org, stars)
	r, err := repo.NewRecord(orgID, name, nil, stars, nil, "https://github.com/"+org+"/"+name)
	require.NoError(t, err)
	return r
}

func starsOf(records []*repo.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.StargazerCount()
	}
	return out
}

func TestNewState(t *testing.T) {
	s, err := listing.NewState(6)
	require.NoError(t, err)

	assert.Equal(t, listing.StatusIdle, s.Status())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 1, s.TotalPages())
	assert.False(t, s.Loading())

	_, err = listing.NewState(0)
	assert.True(t, repo.HasCode(err, repo.CodeInvalidPageSize))
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		name       string
		apply      func(s listing.State, id listing.CycleID) listing.State
		wantStatus listing.Status
		wantStars  []int
		wantCause  bool
	}{
		{
			name: "success sorts records",
			apply: func(s listing.State, id listing.CycleID) listing.State {
				return s.LoadSucceeded(id, []*repo.Record{record(t, "A", 3), record(t, "A", 10), record(t, "B", 7)})
			},
			wantStatus: listing.StatusLoaded,
			wantStars:  []int{10, 7, 3},
		},
		{
			name: "success with nothing listed",
			apply: func(s listing.State, id listing.CycleID) listing.State {
				return s.LoadSucceeded(id, nil)
			},
			wantStatus: listing.StatusLoaded,
			wantStars:  []int{},
		},
		{
			name: "failure degrades to an empty collection",
			apply: func(s listing.State, id listing.CycleID) listing.State {
				return s.LoadFailed(id, errors.New("rate limited"))
			},
			wantStatus: listing.StatusFailed,
			wantStars:  []int{},
			wantCause:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idle, err := listing.NewState(2)
			require.NoError(t, err)

			id := listing.NewCycleID()
			loading := idle.StartLoad(id)
			assert.True(t, loading.Loading())
			assert.Equal(t, id, loading.CycleID())

			settled := tt.apply(loading, id)
			assert.Equal(t, tt.wantStatus, settled.Status())
			assert.Equal(t, tt.wantStars, starsOf(settled.Records()))
			assert.Equal(t, tt.wantCause, settled.Cause() != nil)
			assert.False(t, settled.Loading())

			assert.Equal(t, listing.StatusIdle, idle.Status(), "transitions must not mutate the receiver")
			assert.Equal(t, listing.StatusLoading, loading.Status(), "transitions must not mutate the receiver")
		})
	}
}

func TestStateIgnoresStaleCycles(t *testing.T) {
	s, err := listing.NewState(2)
	require.NoError(t, err)

	oldID := listing.NewCycleID()
	newID := listing.NewCycleID()
	s = s.StartLoad(oldID).StartLoad(newID)

	s = s.LoadSucceeded(oldID, []*repo.Record{record(t, "A", 1)})
	assert.Equal(t, listing.StatusLoading, s.Status())

	s = s.LoadFailed(oldID, errors.New("late"))
	assert.Equal(t, listing.StatusLoading, s.Status())

	s = s.LoadSucceeded(newID, []*repo.Record{record(t, "A", 2)})
	assert.Equal(t, listing.StatusLoaded, s.Status())

	// a settled cycle cannot be settled twice
	s = s.LoadFailed(newID, errors.New("again"))
	assert.Equal(t, listing.StatusLoaded, s.Status())
	assert.Nil(t, s.Cause())
}

func TestStartLoadResetsPage(t *testing.T) {
	s, err := listing.NewState(1)
	require.NoError(t, err)

	first := listing.NewCycleID()
	s = s.StartLoad(first).LoadSucceeded(first, []*repo.Record{record(t, "A", 1), record(t, "A", 2), record(t, "A", 3)})
	s = s.GoToPage(3)
	require.Equal(t, 3, s.Page())

	s = s.StartLoad(listing.NewCycleID())
	assert.Equal(t, 1, s.Page())
	assert.Empty(t, s.Records())
}

func TestGoToPageClamps(t *testing.T) {
	s, err := listing.NewState(2)
	require.NoError(t, err)

	id := listing.NewCycleID()
	s = s.StartLoad(id).LoadSucceeded(id, []*repo.Record{record(t, "A", 3), record(t, "A", 10), record(t, "B", 7)})
	require.Equal(t, 2, s.TotalPages())

	assert.Equal(t, 1, s.GoToPage(0).Page())
	assert.Equal(t, 2, s.GoToPage(s.TotalPages()+1).Page())
	assert.Equal(t, 2, s.GoToPage(2).Page())
}

func TestEndToEndView(t *testing.T) {
	s, err := listing.NewState(2)
	require.NoError(t, err)

	id := listing.NewCycleID()
	s = s.StartLoad(id).LoadSucceeded(id, []*repo.Record{record(t, "A", 3), record(t, "A", 10), record(t, "B", 7)})

	page1 := s.View()
	assert.Equal(t, []int{10, 7}, starsOf(page1.Items))
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, "1-2 of 3", page1.Label())

	page2 := s.GoToPage(2).View()
	assert.Equal(t, []int{3}, starsOf(page2.Items))
	assert.Equal(t, "3-3 of 3", page2.Label())
}

func TestFailedViewIsEmpty(t *testing.T) {
	s, err := listing.NewState(6)
	require.NoError(t, err)

	id := listing.NewCycleID()
	view := s.StartLoad(id).LoadFailed(id, errors.New("network down")).View()

	assert.Empty(t, view.Items)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, "0 of 0", view.Label())
}

func TestNewLoadCycle(t *testing.T) {
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	finished := started.Add(250 * time.Millisecond)
	id := listing.NewCycleID()

	cycle, err := listing.NewLoadCycle(id, listing.StatusFailed, 3, 0, errors.New("boom"), false, started, finished)
	require.NoError(t, err)
	require.NotNil(t, cycle.Failure())
	assert.Equal(t, "boom", *cycle.Failure())
	assert.Equal(t, 250*time.Millisecond, cycle.Duration())

	_, err = listing.NewLoadCycle(id, listing.StatusLoading, 3, 0, nil, false, started, finished)
	assert.Error(t, err, "unsettled cycles are rejected")

	_, err = listing.NewLoadCycle(listing.CycleID{}, listing.StatusLoaded, 3, 0, nil, false, started, finished)
	assert.Error(t, err, "empty IDs are rejected")

	_, err = listing.NewLoadCycle(id, listing.StatusLoaded, 3, 0, nil, false, finished, started)
	assert.Error(t, err, "negative durations are rejected")
}

func TestReconstituteLoadCycle(t *testing.T) {
	id := listing.NewCycleID()
	now := time.Now()

	cycle, err := listing.ReconstituteLoadCycle(id.String(), "loaded", 3, 12, nil, true, now, now)
	require.NoError(t, err)
	assert.Equal(t, id, cycle.ID())
	assert.Equal(t, listing.StatusLoaded, cycle.Status())
	assert.True(t, cycle.Discarded())

	_, err = listing.ReconstituteLoadCycle("not-a-uuid", "loaded", 0, 0, nil, false, now, now)
	assert.Error(t, err)

	_, err = listing.ReconstituteLoadCycle(id.String(), "exploded", 0, 0, nil, false, now, now)
	assert.Error(t, err)
}
