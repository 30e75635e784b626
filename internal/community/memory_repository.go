package community

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	posts []Post
}

// NewMemoryRepository constructs an in-memory post store for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, post Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, post)
	return nil
}

func (r *memoryRepository) List(_ context.Context, category string, limit int) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Post
	for _, post := range r.posts {
		if category == "" || post.Category == category {
			out = append(out, post)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
