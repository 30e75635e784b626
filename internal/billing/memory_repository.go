package billing

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu   sync.RWMutex
	txns map[string]Transaction // keyed by session id
}

// NewMemoryRepository constructs an in-memory transaction store for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{txns: make(map[string]Transaction)}
}

func (r *memoryRepository) Create(_ context.Context, txn Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns[txn.SessionID] = txn
	return nil
}

func (r *memoryRepository) FindBySession(_ context.Context, sessionID string) (Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txn, ok := r.txns[sessionID]
	if !ok {
		return Transaction{}, ErrUnknownSession
	}
	return txn, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, sessionID, status, paymentStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[sessionID]
	if !ok {
		return ErrUnknownSession
	}
	txn.Status = status
	txn.PaymentStatus = paymentStatus
	r.txns[sessionID] = txn
	return nil
}
