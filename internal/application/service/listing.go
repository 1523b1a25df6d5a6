package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"agoralab-core/internal/domain/events"
	"agoralab-core/internal/domain/listing"
	"agoralab-core/internal/domain/repo"
)

// ErrAlreadyMounted is returned when a listing is mounted a second time
var ErrAlreadyMounted = errors.New("listing already mounted")

// RepositoryLoader loads the merged repositories of a set of organizations
type RepositoryLoader interface {
	LoadRepositories(ctx context.Context, orgs []repo.OrgID) ([]*repo.Record, error)
}

// Listing hosts one repository listing: it runs the single load cycle fired on
// mount, owns the listing state and serves page views of it. Results that
// settle after Unmount are dropped.
type Listing struct {
	loader     RepositoryLoader
	orgs       []repo.OrgID
	dispatcher *events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time

	mu        sync.Mutex
	state     listing.State
	mounted   bool
	unmounted bool
	done      chan struct{}
}

// NewListing creates an idle listing
func NewListing(loader RepositoryLoader, orgs []repo.OrgID, pageSize int, dispatcher *events.Dispatcher, logger *zap.Logger) (*Listing, error) {
	if len(orgs) == 0 {
		return nil, repo.ErrNoOrganizations()
	}
	state, err := listing.NewState(pageSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listing{
		loader:     loader,
		orgs:       orgs,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
		state:      state,
		done:       make(chan struct{}),
	}, nil
}

// Mount starts the load cycle in the background. It may be called once.
func (l *Listing) Mount(ctx context.Context) error {
	l.mu.Lock()
	if l.mounted {
		l.mu.Unlock()
		return ErrAlreadyMounted
	}
	l.mounted = true
	id := listing.NewCycleID()
	l.state = l.state.StartLoad(id)
	l.mu.Unlock()

	l.logger.Info("Load cycle started",
		zap.String("cycle_id", id.String()),
		zap.Int("orgs", len(l.orgs)))

	go l.run(ctx, id)
	return nil
}

func (l *Listing) run(ctx context.Context, id listing.CycleID) {
	defer close(l.done)

	startedAt := l.now()
	records, err := l.loader.LoadRepositories(ctx, l.orgs)
	finishedAt := l.now()

	l.mu.Lock()
	discarded := l.unmounted
	if !discarded {
		if err != nil {
			l.state = l.state.LoadFailed(id, err)
		} else {
			l.state = l.state.LoadSucceeded(id, records)
		}
	}
	l.mu.Unlock()

	status := listing.StatusLoaded
	if err != nil {
		status = listing.StatusFailed
		records = nil
	}

	fields := []zap.Field{
		zap.String("cycle_id", id.String()),
		zap.String("status", status.String()),
		zap.Int("records", len(records)),
		zap.Duration("duration", finishedAt.Sub(startedAt)),
		zap.Bool("discarded", discarded),
	}
	if err != nil {
		l.logger.Error("Load cycle failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Info("Load cycle finished", fields...)
	}

	l.publish(ctx, id, status, len(records), err, discarded, startedAt, finishedAt)
}

func (l *Listing) publish(ctx context.Context, id listing.CycleID, status listing.Status, count int, cause error, discarded bool, startedAt, finishedAt time.Time) {
	if l.dispatcher == nil {
		return
	}
	cycle, err := listing.NewLoadCycle(id, status, len(l.orgs), count, cause, discarded, startedAt, finishedAt)
	if err != nil {
		l.logger.Error("Failed to build load cycle record", zap.Error(err))
		return
	}
	// the mount context may already be done; diagnostics must still be delivered
	if err := l.dispatcher.Dispatch(context.WithoutCancel(ctx), listing.NewLoadCycleCompletedEvent(cycle)); err != nil {
		l.logger.Warn("Failed to publish load cycle", zap.String("cycle_id", id.String()), zap.Error(err))
	}
}

// Wait blocks until the mounted load cycle has settled or ctx is done
func (l *Listing) Wait(ctx context.Context) error {
	l.mu.Lock()
	mounted := l.mounted
	l.mu.Unlock()
	if !mounted {
		return nil
	}

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Unmount detaches the listing; an in-flight result is discarded when it arrives
func (l *Listing) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unmounted = true
}

// GoToPage navigates to page n (clamped) and returns the new view
func (l *Listing) GoToPage(n int) repo.PageView {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = l.state.GoToPage(n)
	return l.state.View()
}

// View returns the currently selected page
func (l *Listing) View() repo.PageView {
	return l.Snapshot().View()
}

// ViewPage returns page n (clamped) without changing the selected page
func (l *Listing) ViewPage(n int) repo.PageView {
	return l.Snapshot().GoToPage(n).View()
}

// Snapshot returns a copy of the current state
func (l *Listing) Snapshot() listing.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
