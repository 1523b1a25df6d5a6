package listing

import (
	"slices"

	"agoralab-core/internal/domain/repo"
)

// State is the full state of one repository listing. It is a value: every
// transition returns a new State and leaves the receiver untouched.
//
//	Idle -> Loading -> Loaded | Failed
//
// A transition carrying a cycle ID other than the one started last is ignored,
// so late results of a superseded cycle can never overwrite newer state.
type State struct {
	status   Status
	cycleID  CycleID
	records  []*repo.Record
	page     int
	pageSize int
	cause    error
}

// NewState returns an idle listing with the given fixed page size
func NewState(pageSize int) (State, error) {
	if pageSize < 1 {
		return State{}, repo.ErrInvalidPageSize(pageSize)
	}
	return State{
		status:   StatusIdle,
		page:     1,
		pageSize: pageSize,
	}, nil
}

// StartLoad enters Loading for a new cycle and resets navigation to page 1
func (s State) StartLoad(id CycleID) State {
	s.status = StatusLoading
	s.cycleID = id
	s.records = nil
	s.page = 1
	s.cause = nil
	return s
}

// LoadSucceeded enters Loaded holding the records sorted by popularity
func (s State) LoadSucceeded(id CycleID, records []*repo.Record) State {
	if !s.accepts(id) {
		return s
	}
	s.status = StatusLoaded
	s.records = repo.SortByPopularity(records)
	s.cause = nil
	return s
}

// LoadFailed enters Failed with an empty collection. The cause is kept for
// diagnostics only.
func (s State) LoadFailed(id CycleID, cause error) State {
	if !s.accepts(id) {
		return s
	}
	s.status = StatusFailed
	s.records = nil
	s.cause = cause
	return s
}

// GoToPage moves to page n, clamped into [1, TotalPages]
func (s State) GoToPage(n int) State {
	s.page = repo.ClampPage(n, s.TotalPages())
	return s
}

func (s State) accepts(id CycleID) bool {
	return s.status == StatusLoading && s.cycleID.Equals(id)
}

// View returns the page currently selected
func (s State) View() repo.PageView {
	// pageSize is validated in NewState
	view, _ := repo.Paginate(s.records, s.pageSize, s.page)
	return view
}

func (s State) Status() Status {
	return s.status
}

func (s State) CycleID() CycleID {
	return s.cycleID
}

func (s State) Loading() bool {
	return s.status == StatusLoading
}

func (s State) Cause() error {
	return s.cause
}

func (s State) Page() int {
	return s.page
}

func (s State) PageSize() int {
	return s.pageSize
}

func (s State) TotalPages() int {
	return repo.TotalPages(len(s.records), s.pageSize)
}

// Records returns the sorted collection
func (s State) Records() []*repo.Record {
	return slices.Clone(s.records)
}
