package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yky-hub/yky_hub/internal/identity"
	"github.com/yky-hub/yky_hub/internal/notification"
)

type recordingNotifier struct {
	messages []notification.Message
}

func (n *recordingNotifier) Send(_ context.Context, msg notification.Message) error {
	n.messages = append(n.messages, msg)
	return nil
}

func newBillingFixture(t *testing.T) (*Service, *identity.Service, identity.User, *StaticProcessor, *recordingNotifier) {
	t.Helper()
	users := identity.NewMemoryRepository()
	ids := identity.NewService(users)
	user, err := ids.Register(context.Background(), identity.Registration{
		Email: "seeker@example.com", Password: "dragon42", Name: "Aroha",
	})
	require.NoError(t, err)

	processor := &StaticProcessor{Statuses: map[string]SessionStatus{}}
	notifier := &recordingNotifier{}
	svc := NewService(NewMemoryRepository(), processor, ids, notifier)
	return svc, ids, user, processor, notifier
}

func TestCheckoutRecordsPendingTransaction(t *testing.T) {
	svc, _, user, _, _ := newBillingFixture(t)
	ctx := context.Background()

	res, err := svc.Checkout(ctx, CheckoutInput{UserID: user.ID, PackageID: "premium_monthly", OriginURL: "https://app.example.com/"})
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionID)
	require.NotEmpty(t, res.URL)

	txn, err := svc.repo.FindBySession(ctx, res.SessionID)
	require.NoError(t, err)
	require.Equal(t, "initiated", txn.Status)
	require.Equal(t, "pending", txn.PaymentStatus)
	require.Equal(t, int64(1999), txn.AmountCents)
}

func TestCheckoutUnknownPackage(t *testing.T) {
	svc, _, user, _, _ := newBillingFixture(t)

	_, err := svc.Checkout(context.Background(), CheckoutInput{UserID: user.ID, PackageID: "gold_yearly", OriginURL: "https://app.example.com"})
	require.ErrorIs(t, err, ErrUnknownPackage)
}

func TestStatusPaidUpgradesExactlyOnce(t *testing.T) {
	svc, ids, user, processor, notifier := newBillingFixture(t)
	ctx := context.Background()

	res, err := svc.Checkout(ctx, CheckoutInput{UserID: user.ID, PackageID: "premium_monthly", OriginURL: "https://app.example.com"})
	require.NoError(t, err)

	// Still open: no upgrade.
	status, err := svc.Status(ctx, res.SessionID)
	require.NoError(t, err)
	require.Equal(t, "unpaid", status.PaymentStatus)
	got, _ := ids.Get(ctx, user.ID)
	require.False(t, got.IsPremium)

	// Processor reports paid.
	processor.Statuses[res.SessionID] = SessionStatus{Status: "complete", PaymentStatus: PaymentPaid, AmountTotal: 1999}
	status, err = svc.Status(ctx, res.SessionID)
	require.NoError(t, err)
	require.Equal(t, PaymentPaid, status.PaymentStatus)

	got, _ = ids.Get(ctx, user.ID)
	require.True(t, got.IsPremium)
	require.Len(t, notifier.messages, 1)
	require.Equal(t, notification.KindPremiumActivated, notifier.messages[0].Kind)

	// Polling again must not re-notify.
	_, err = svc.Status(ctx, res.SessionID)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)
}

func TestStatusUnknownSession(t *testing.T) {
	svc, _, _, _, _ := newBillingFixture(t)

	_, err := svc.Status(context.Background(), "cs_missing")
	require.ErrorIs(t, err, ErrUnknownSession)
}

func TestWebhookPaidUpgrades(t *testing.T) {
	svc, ids, user, _, notifier := newBillingFixture(t)
	ctx := context.Background()

	res, err := svc.Checkout(ctx, CheckoutInput{UserID: user.ID, PackageID: "premium_monthly", OriginURL: "https://app.example.com"})
	require.NoError(t, err)

	event := WebhookEvent{Type: "checkout.session.completed", SessionID: res.SessionID, PaymentStatus: PaymentPaid, UserID: user.ID}
	require.NoError(t, svc.HandleWebhook(ctx, event))

	got, _ := ids.Get(ctx, user.ID)
	require.True(t, got.IsPremium)
	require.Len(t, notifier.messages, 1)

	// Replayed webhook is a no-op.
	require.NoError(t, svc.HandleWebhook(ctx, event))
	require.Len(t, notifier.messages, 1)

	txn, err := svc.repo.FindBySession(ctx, res.SessionID)
	require.NoError(t, err)
	require.Equal(t, "complete", txn.Status)
}

func TestWebhookSignatureRoundTrip(t *testing.T) {
	secret := []byte("whsec_test")
	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_status":"paid","metadata":{"user_id":"u1","package_id":"premium_monthly"}}}}`)
	now := time.Now()

	header := SignWebhook(payload, secret, now)
	event, err := ParseWebhook(payload, header, secret, webhookTolerance, now)
	require.NoError(t, err)
	require.Equal(t, "cs_1", event.SessionID)
	require.Equal(t, "paid", event.PaymentStatus)
	require.Equal(t, "u1", event.UserID)

	_, err = ParseWebhook(payload, header, []byte("wrong-secret"), webhookTolerance, now)
	require.ErrorIs(t, err, ErrBadSignature)

	_, err = ParseWebhook(payload, "t=abc,v1=zz", secret, webhookTolerance, now)
	require.ErrorIs(t, err, ErrBadSignature)

	// Stale timestamp outside tolerance.
	old := SignWebhook(payload, secret, now.Add(-time.Hour))
	_, err = ParseWebhook(payload, old, secret, webhookTolerance, now)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestWebhookEmptySecretRejectsAll(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_status":"paid","metadata":{"user_id":"u1","package_id":"premium_monthly"}}}}`)
	now := time.Now()

	// A signature computed under the empty key must never verify: with no
	// configured secret anyone could mint one and self-grant premium.
	forged := SignWebhook(payload, []byte(""), now)
	_, err := ParseWebhook(payload, forged, []byte(""), webhookTolerance, now)
	require.ErrorIs(t, err, ErrBadSignature)

	_, err = ParseWebhook(payload, forged, nil, webhookTolerance, now)
	require.ErrorIs(t, err, ErrBadSignature)
}
