package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agoralab-core/internal/domain/post"
)

// PostService lists blog posts
type PostService struct {
	source post.Source
	logger *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(source post.Source, logger *zap.Logger) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{source: source, logger: logger}
}

// ListPosts returns every post, newest first
func (s *PostService) ListPosts(ctx context.Context) ([]*post.Post, error) {
	posts, err := s.source.LoadPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	s.logger.Debug("Loaded posts", zap.Int("count", len(posts)))
	return post.SortByPublishedAt(posts), nil
}
