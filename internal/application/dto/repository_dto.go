package dto

import (
	"agoralab-core/internal/domain/listing"
	"agoralab-core/internal/domain/repo"
)

// RepositoryResponse represents repository data in API responses
type RepositoryResponse struct {
	Org         string  `json:"org"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Stars       int     `json:"stars"`
	Language    *string `json:"language"`
	URL         string  `json:"url"`
}

// RepositoryListResponse represents one page of the repository listing
type RepositoryListResponse struct {
	Loading      bool                  `json:"loading"`
	Status       string                `json:"status"`
	Repositories []*RepositoryResponse `json:"repositories"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	First      int    `json:"first"`
	Last       int    `json:"last"`
	Label      string `json:"label"`
}

// ToRepositoryResponse converts a domain record into its API representation
func ToRepositoryResponse(r *repo.Record) *RepositoryResponse {
	return &RepositoryResponse{
		Org:         r.Org().String(),
		Name:        r.Name().String(),
		Description: r.Description(),
		Stars:       r.StargazerCount(),
		Language:    r.Language(),
		URL:         r.URL().String(),
	}
}

// ToRepositoryListResponse builds the response for a page of a listing in the given state
func ToRepositoryListResponse(state listing.State, view repo.PageView) *RepositoryListResponse {
	repositories := make([]*RepositoryResponse, len(view.Items))
	for i, r := range view.Items {
		repositories[i] = ToRepositoryResponse(r)
	}

	return &RepositoryListResponse{
		Loading:      state.Loading(),
		Status:       state.Status().String(),
		Repositories: repositories,
		Pagination: PaginationResponse{
			Page:       view.Page,
			PageSize:   view.PageSize,
			Total:      view.Total,
			TotalPages: view.TotalPages,
			First:      view.First,
			Last:       view.Last,
			Label:      view.Label(),
		},
	}
}
