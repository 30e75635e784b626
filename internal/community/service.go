package community

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyContent indicates a post without any content.
var ErrEmptyContent = errors.New("post content is required")

const (
	defaultCategory = "general"
	defaultLimit    = 20
	maxLimit        = 100
	maxContentLen   = 4000
)

// Service manages the community feed.
type Service struct {
	repo Repository
}

// NewService builds a community service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures a new post.
type CreateInput struct {
	UserID   string
	UserName string
	Content  string
	Category string
}

// Create validates and stores a post.
func (s *Service) Create(ctx context.Context, input CreateInput) (Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return Post{}, ErrEmptyContent
	}
	if len(content) > maxContentLen {
		return Post{}, errors.New("post content too long")
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = defaultCategory
	}

	name := input.UserName
	if name == "" {
		name = "Anonymous Seeker"
	}

	post := Post{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		UserName:  name,
		Content:   content,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return Post{}, err
	}

	return post, nil
}

// Feed returns recent posts; category "all" or empty means no filter.
func (s *Service) Feed(ctx context.Context, category string, limit int) ([]Post, error) {
	if category == "all" {
		category = ""
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.List(ctx, category, limit)
}
