package post

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Post is a domain entity describing one blog post's metadata
type Post struct {
	slug        string
	title       string
	publishedAt time.Time
	summary     string
	image       *string
}

// NewPost creates a new Post entity
func NewPost(slug, title string, publishedAt time.Time, summary string, image *string) (*Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("post slug cannot be empty")
	}
	if strings.ContainsAny(slug, "/\\ ") {
		return nil, fmt.Errorf("post slug %q contains invalid characters", slug)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("post %s: title cannot be empty", slug)
	}

	if publishedAt.IsZero() {
		return nil, fmt.Errorf("post %s: publication date is required", slug)
	}

	return &Post{
		slug:        slug,
		title:       title,
		publishedAt: publishedAt,
		summary:     strings.TrimSpace(summary),
		image:       image,
	}, nil
}

// ParsePublishedAt accepts a plain date (2006-01-02) or an RFC 3339 timestamp
func ParsePublishedAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("publication date is empty")
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid publication date %q", s)
	}
	return t, nil
}

// SortByPublishedAt returns a new slice ordered newest first. Posts published
// at the same instant keep their relative order.
func SortByPublishedAt(posts []*Post) []*Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b *Post) int {
		return cmp.Compare(b.publishedAt.UnixNano(), a.publishedAt.UnixNano())
	})
	return sorted
}

// Source loads blog post metadata
type Source interface {
	LoadPosts(ctx context.Context) ([]*Post, error)
}

// Getters

func (p *Post) Slug() string {
	return p.slug
}

func (p *Post) Title() string {
	return p.title
}

func (p *Post) PublishedAt() time.Time {
	return p.publishedAt
}

func (p *Post) Summary() string {
	return p.summary
}

func (p *Post) Image() *string {
	return p.image
}
