package bioscan

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	scans []Scan
}

// NewMemoryRepository constructs an in-memory scan store for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Save(_ context.Context, scan Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scans = append(r.scans, scan)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string, limit int) ([]Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Scan
	for _, scan := range r.scans {
		if scan.UserID == userID {
			out = append(out, scan)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
