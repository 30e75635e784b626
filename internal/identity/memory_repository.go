package identity

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by id
	email map[string]string
}

// NewMemoryRepository builds an in-memory user store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User), email: make(map[string]string)}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.email[user.Email]; exists {
		return ErrEmailTaken
	}
	r.users[user.ID] = user
	r.email[user.Email] = user.ID
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.email[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.users[id], nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) UpdateProfile(_ context.Context, id string, update ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.BirthDate != nil {
		user.BirthDate = *update.BirthDate
	}
	if update.BirthTime != nil {
		user.BirthTime = *update.BirthTime
	}
	if update.BirthLocation != nil {
		user.BirthLocation = *update.BirthLocation
	}
	if update.HumanDesignType != nil {
		user.HumanDesignType = *update.HumanDesignType
	}
	r.users[id] = user
	return nil
}

func (r *memoryRepository) SetPremium(_ context.Context, id string, since time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return false, ErrNotFound
	}
	if user.IsPremium {
		return false, nil
	}
	user.IsPremium = true
	ts := since.UTC()
	user.PremiumSince = &ts
	r.users[id] = user
	return true, nil
}
