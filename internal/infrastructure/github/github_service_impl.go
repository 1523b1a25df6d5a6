package github

import (
	"context"
	"fmt"

	"agoralab-core/internal/domain/repo"
	"agoralab-core/internal/github"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client) repo.GitHubService {
	return &GitHubServiceImpl{client: client}
}

// FetchOrgRepositories fetches up to perPage public repositories of an organization
func (g *GitHubServiceImpl) FetchOrgRepositories(ctx context.Context, org repo.OrgID, perPage int) ([]*repo.GitHubRepository, error) {
	githubRepos, err := g.client.ListUserRepositories(ctx, org.String(), perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories of %s from GitHub: %w", org, err)
	}

	domainRepos := make([]*repo.GitHubRepository, len(githubRepos))
	for i, ghRepo := range githubRepos {
		domainRepos[i] = &repo.GitHubRepository{
			Name:            ghRepo.Name,
			Description:     ghRepo.Description,
			StargazersCount: ghRepo.StargazersCount,
			Language:        ghRepo.Language,
			HTMLURL:         ghRepo.HTMLURL,
		}
	}

	return domainRepos, nil
}
