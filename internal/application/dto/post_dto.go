package dto

import (
	"time"

	"agoralab-core/internal/domain/post"
)

// PostResponse represents blog post metadata in API responses
type PostResponse struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	PublishedAt string  `json:"published_at"`
	Summary     string  `json:"summary,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// PostListResponse represents the blog post listing
type PostListResponse struct {
	Posts []*PostResponse `json:"posts"`
	Total int             `json:"total"`
}

// ToPostListResponse converts domain posts into the API representation
func ToPostListResponse(posts []*post.Post) *PostListResponse {
	items := make([]*PostResponse, len(posts))
	for i, p := range posts {
		items[i] = &PostResponse{
			Slug:        p.Slug(),
			Title:       p.Title(),
			PublishedAt: p.PublishedAt().Format(time.DateOnly),
			Summary:     p.Summary(),
			Image:       p.Image(),
		}
	}
	return &PostListResponse{Posts: items, Total: len(items)}
}
