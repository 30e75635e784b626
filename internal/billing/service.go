package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yky-hub/yky_hub/internal/identity"
	"github.com/yky-hub/yky_hub/internal/notification"
)

var (
	// ErrUnknownPackage indicates the requested package is not in the catalog.
	ErrUnknownPackage = errors.New("unknown package")
	// ErrBadOrigin indicates the checkout request carried no usable origin URL.
	ErrBadOrigin = errors.New("origin url is required")
)

const (
	statusInitiated = "initiated"
	statusComplete  = "complete"
	paymentPending  = "pending"
	// PaymentPaid is the processor's terminal paid state.
	PaymentPaid = "paid"
)

// Service drives the checkout lifecycle against the external processor.
type Service struct {
	repo      Repository
	processor Processor
	users     *identity.Service
	notifier  notification.Notifier
}

// NewService constructs a billing service.
func NewService(repo Repository, processor Processor, users *identity.Service, notifier notification.Notifier) *Service {
	return &Service{repo: repo, processor: processor, users: users, notifier: notifier}
}

// CheckoutInput captures a checkout request.
type CheckoutInput struct {
	UserID    string
	PackageID string
	OriginURL string
}

// CheckoutResult carries the hosted checkout page reference.
type CheckoutResult struct {
	URL       string
	SessionID string
}

// StatusResult mirrors the processor's session status to the client.
type StatusResult struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
}

// Checkout opens a hosted session for the package and records the pending transaction.
func (s *Service) Checkout(ctx context.Context, input CheckoutInput) (CheckoutResult, error) {
	pkg, ok := Packages[input.PackageID]
	if !ok {
		return CheckoutResult{}, ErrUnknownPackage
	}
	origin := strings.TrimRight(strings.TrimSpace(input.OriginURL), "/")
	if origin == "" {
		return CheckoutResult{}, ErrBadOrigin
	}

	session, err := s.processor.CreateSession(ctx, CheckoutSpec{
		UserID:      input.UserID,
		PackageID:   pkg.ID,
		Name:        pkg.Name,
		AmountCents: pkg.AmountCents,
		Currency:    pkg.Currency,
		SuccessURL:  origin + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/payment/cancel",
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	txn := Transaction{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		SessionID:     session.ID,
		PackageID:     pkg.ID,
		AmountCents:   pkg.AmountCents,
		Currency:      pkg.Currency,
		Status:        statusInitiated,
		PaymentStatus: paymentPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, txn); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{URL: session.URL, SessionID: session.ID}, nil
}

// Status polls the processor for a session and mirrors its state. A newly
// observed paid status upgrades the owning user exactly once.
func (s *Service) Status(ctx context.Context, sessionID string) (StatusResult, error) {
	txn, err := s.repo.FindBySession(ctx, sessionID)
	if err != nil {
		return StatusResult{}, err
	}

	status, err := s.processor.SessionStatus(ctx, sessionID)
	if err != nil {
		return StatusResult{}, err
	}

	if txn.PaymentStatus != PaymentPaid {
		if err := s.repo.UpdateStatus(ctx, sessionID, status.Status, status.PaymentStatus); err != nil {
			return StatusResult{}, err
		}
		if status.PaymentStatus == PaymentPaid {
			if err := s.upgrade(ctx, txn); err != nil {
				return StatusResult{}, err
			}
		}
	}

	if status.AmountTotal == 0 {
		status.AmountTotal = txn.AmountCents
	}

	return StatusResult{Status: status.Status, PaymentStatus: status.PaymentStatus, AmountTotal: status.AmountTotal}, nil
}

// HandleWebhook applies a verified processor event.
func (s *Service) HandleWebhook(ctx context.Context, event WebhookEvent) error {
	if event.PaymentStatus != PaymentPaid {
		return nil
	}

	txn, err := s.repo.FindBySession(ctx, event.SessionID)
	if err != nil {
		return err
	}
	if txn.PaymentStatus == PaymentPaid {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, event.SessionID, statusComplete, PaymentPaid); err != nil {
		return err
	}
	return s.upgrade(ctx, txn)
}

func (s *Service) upgrade(ctx context.Context, txn Transaction) error {
	transitioned, err := s.users.ActivatePremium(ctx, txn.UserID)
	if err != nil {
		return err
	}
	if transitioned && s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindPremiumActivated,
			Destination: txn.UserID,
			Body:        fmt.Sprintf("Premium activated via %s", txn.PackageID),
		})
	}
	return nil
}
