package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// StripeProcessor drives hosted checkout sessions through the Stripe API.
type StripeProcessor struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewStripeProcessor builds a processor for the given secret key.
func NewStripeProcessor(apiKey string) *StripeProcessor {
	return &StripeProcessor{
		apiKey:  apiKey,
		baseURL: stripeAPIBase,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type stripeSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
}

// CreateSession opens a hosted checkout session.
func (p *StripeProcessor) CreateSession(ctx context.Context, spec CheckoutSpec) (Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", spec.SuccessURL)
	form.Set("cancel_url", spec.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", spec.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(spec.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", spec.Name)
	form.Set("metadata[user_id]", spec.UserID)
	form.Set("metadata[package_id]", spec.PackageID)

	var out stripeSession
	if err := p.do(ctx, http.MethodPost, "/checkout/sessions", form, &out); err != nil {
		return Session{}, err
	}
	return Session{ID: out.ID, URL: out.URL}, nil
}

// SessionStatus retrieves the current state of a session.
func (p *StripeProcessor) SessionStatus(ctx context.Context, sessionID string) (SessionStatus, error) {
	var out stripeSession
	if err := p.do(ctx, http.MethodGet, "/checkout/sessions/"+url.PathEscape(sessionID), nil, &out); err != nil {
		return SessionStatus{}, err
	}
	return SessionStatus{Status: out.Status, PaymentStatus: out.PaymentStatus, AmountTotal: out.AmountTotal}, nil
}

func (p *StripeProcessor) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("stripe %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
