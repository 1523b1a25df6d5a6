package repo

import (
	"context"
)

// GitHubRepository represents a repository item as returned by the upstream API.
// Required fields are pointers so that absent values can be told apart from zero.
type GitHubRepository struct {
	Name            *string
	Description     *string
	StargazersCount *int
	Language        *string
	HTMLURL         *string
}

// GitHubService is a domain service interface for reading public repositories
// Implementation will be in infrastructure layer
type GitHubService interface {
	// FetchOrgRepositories fetches up to perPage public repositories of one organization
	FetchOrgRepositories(ctx context.Context, org OrgID, perPage int) ([]*GitHubRepository, error)
}
