package billing

import (
	"context"

	"github.com/google/uuid"
)

// Processor represents a connector to the external checkout processor.
type Processor interface {
	CreateSession(ctx context.Context, spec CheckoutSpec) (Session, error)
	SessionStatus(ctx context.Context, sessionID string) (SessionStatus, error)
}

// CheckoutSpec captures everything needed to open a hosted checkout session.
type CheckoutSpec struct {
	UserID      string
	PackageID   string
	Name        string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
}

// Session identifies a hosted checkout page.
type Session struct {
	ID  string
	URL string
}

// SessionStatus mirrors the processor's view of a session.
type SessionStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
}

// StaticProcessor simulates the processor for tests and keyless development.
// Statuses maps session ids to the status SessionStatus should report.
type StaticProcessor struct {
	Statuses map[string]SessionStatus
}

// CreateSession returns a synthetic session.
func (p *StaticProcessor) CreateSession(_ context.Context, _ CheckoutSpec) (Session, error) {
	id := "cs_test_" + uuid.NewString()
	return Session{ID: id, URL: "https://checkout.example.com/pay/" + id}, nil
}

// SessionStatus reports the scripted status, defaulting to an open session.
func (p *StaticProcessor) SessionStatus(_ context.Context, sessionID string) (SessionStatus, error) {
	if p.Statuses != nil {
		if status, ok := p.Statuses[sessionID]; ok {
			return status, nil
		}
	}
	return SessionStatus{Status: "open", PaymentStatus: "unpaid"}, nil
}
