// Package feed reads and writes the social post feed. Reading is public;
// posting needs a token and a paid subscription tier. The tier check here
// is a UX gate only — the backend enforces the real rule.
package feed

import (
	"context"
	"fmt"

	"github.com/booshananamudara/zoura-mobile/internal/client/api"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/common"
)

// DefaultPageSize is the feed page size when the caller does not care.
const DefaultPageSize = 20

// userSource yields the cached profile for the tier gate.
type userSource interface {
	User() *models.User
}

// Service is the feed store. Each page load replaces the previous page;
// there is no infinite-scroll accumulation.
type Service struct {
	api   api.Client
	users userSource
}

func New(apiClient api.Client, users userSource) *Service {
	return &Service{api: apiClient, users: users}
}

// Get returns one page of the feed. No authentication required.
func (s *Service) Get(ctx context.Context, limit, offset int) (*models.FeedPage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	page, err := s.api.Feed(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return page, nil
}

// CanPost reports whether the cached profile's tier permits posting.
func (s *Service) CanPost() bool {
	return s.users.User().CanPost()
}

// CreatePost publishes a caption with an optional image file. Blocked
// client-side for FREE-tier (or missing-tier) users.
func (s *Service) CreatePost(ctx context.Context, content, imagePath string) (*models.Post, error) {
	if !s.CanPost() {
		return nil, common.ErrPostingNotAllowed
	}
	post, err := s.api.CreatePost(ctx, content, imagePath)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}
