package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"agoralab-core/internal/config"
	"agoralab-core/internal/domain/repo"
)

// FailurePolicy decides what a multi-organization load does when one
// organization's request fails
type FailurePolicy string

const (
	// FailFast abandons the whole load on the first failing request
	FailFast FailurePolicy = config.FailurePolicyFailFast
	// PartialSuccess keeps whatever organizations succeeded
	PartialSuccess FailurePolicy = config.FailurePolicyPartial
)

// ParseFailurePolicy validates a configured policy name
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(s); p {
	case FailFast, PartialSuccess:
		return p, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q", s)
	}
}

// RepositoryService loads the public repositories of a fixed set of organizations
type RepositoryService struct {
	githubService repo.GitHubService
	perPage       int
	policy        FailurePolicy
	logger        *zap.Logger
}

// NewRepositoryService creates a new repository service
func NewRepositoryService(githubService repo.GitHubService, perPage int, policy FailurePolicy, logger *zap.Logger) *RepositoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryService{
		githubService: githubService,
		perPage:       perPage,
		policy:        policy,
		logger:        logger,
	}
}

// LoadRepositories requests every organization's repositories concurrently and
// merges them in the order the organizations are given. Malformed items are
// skipped. Request failures are handled according to the service's FailurePolicy.
func (s *RepositoryService) LoadRepositories(ctx context.Context, orgs []repo.OrgID) ([]*repo.Record, error) {
	if len(orgs) == 0 {
		return nil, repo.ErrNoOrganizations()
	}

	results := make([][]*repo.Record, len(orgs))
	failures := make([]error, len(orgs))

	g, gctx := errgroup.WithContext(ctx)
	for i, org := range orgs {
		g.Go(func() error {
			records, err := s.fetchOrg(gctx, org)
			if err != nil {
				if s.policy == PartialSuccess {
					s.logger.Warn("Skipping organization after fetch failure",
						zap.String("org", org.String()),
						zap.Error(err))
					failures[i] = err
					return nil
				}
				return err
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.policy == PartialSuccess {
		failed := 0
		for _, err := range failures {
			if err != nil {
				failed++
			}
		}
		if failed == len(orgs) {
			return nil, repo.ErrFetchFailure("all organizations", errors.Join(failures...))
		}
	}

	var merged []*repo.Record
	for _, records := range results {
		merged = append(merged, records...)
	}
	return merged, nil
}

func (s *RepositoryService) fetchOrg(ctx context.Context, org repo.OrgID) ([]*repo.Record, error) {
	items, err := s.githubService.FetchOrgRepositories(ctx, org, s.perPage)
	if err != nil {
		return nil, repo.ErrFetchFailure(org.String(), err)
	}

	records := make([]*repo.Record, 0, len(items))
	for i, item := range items {
		record, err := repo.FromGitHub(org, item)
		if err != nil {
			s.logger.Warn("Skipping malformed repository",
				zap.String("org", org.String()),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		records = append(records, record)
	}

	s.logger.Debug("Fetched organization repositories",
		zap.String("org", org.String()),
		zap.Int("count", len(records)))
	return records, nil
}
