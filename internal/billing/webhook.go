package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadSignature indicates a webhook payload failed signature verification.
var ErrBadSignature = errors.New("webhook signature verification failed")

// WebhookEvent is the subset of a processor event the app acts on.
type WebhookEvent struct {
	Type          string
	SessionID     string
	PaymentStatus string
	UserID        string
	PackageID     string
}

type webhookEnvelope struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			PaymentStatus string            `json:"payment_status"`
			Metadata      map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// ParseWebhook verifies the Stripe v1 signature scheme (HMAC-SHA256 over
// "<timestamp>.<payload>") and decodes the event. The timestamp must be
// within tolerance of now to limit replay. An empty secret rejects every
// event: anyone can compute an HMAC under the empty key, so a deployment
// without STRIPE_WEBHOOK_SECRET must not accept webhooks at all.
func ParseWebhook(payload []byte, sigHeader string, secret []byte, tolerance time.Duration, now time.Time) (WebhookEvent, error) {
	if len(secret) == 0 {
		return WebhookEvent{}, ErrBadSignature
	}

	timestamp, signatures, err := splitSignatureHeader(sigHeader)
	if err != nil {
		return WebhookEvent{}, err
	}

	if tolerance > 0 {
		ts := time.Unix(timestamp, 0)
		if now.Sub(ts) > tolerance || ts.Sub(now) > tolerance {
			return WebhookEvent{}, ErrBadSignature
		}
	}

	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	expected := mac.Sum(nil)

	verified := false
	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			verified = true
			break
		}
	}
	if !verified {
		return WebhookEvent{}, ErrBadSignature
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return WebhookEvent{}, fmt.Errorf("decode webhook payload: %w", err)
	}

	return WebhookEvent{
		Type:          envelope.Type,
		SessionID:     envelope.Data.Object.ID,
		PaymentStatus: envelope.Data.Object.PaymentStatus,
		UserID:        envelope.Data.Object.Metadata["user_id"],
		PackageID:     envelope.Data.Object.Metadata["package_id"],
	}, nil
}

// SignWebhook produces a Stripe-style signature header for the payload.
// Used by tests and local development tooling.
func SignWebhook(payload []byte, secret []byte, at time.Time) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func splitSignatureHeader(header string) (int64, []string, error) {
	if header == "" {
		return 0, nil, ErrBadSignature
	}
	var (
		timestamp  int64 = -1
		signatures []string
	)
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, ErrBadSignature
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if timestamp < 0 || len(signatures) == 0 {
		return 0, nil, ErrBadSignature
	}
	return timestamp, signatures, nil
}
