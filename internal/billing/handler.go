package billing

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/config"
)

const webhookTolerance = 5 * time.Minute

// Handler exposes payment endpoints.
type Handler struct {
	cfg     config.Config
	service *Service
}

// NewHandler constructs a payment handler.
func NewHandler(cfg config.Config, service *Service) *Handler {
	return &Handler{cfg: cfg, service: service}
}

type checkoutRequest struct {
	PackageID string `json:"package_id"`
	OriginURL string `json:"origin_url"`
}

// Checkout opens a hosted checkout session for the caller.
func (h *Handler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)

	res, err := h.service.Checkout(c.UserContext(), CheckoutInput{
		UserID:    uid,
		PackageID: req.PackageID,
		OriginURL: req.OriginURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPackage):
			return fiber.NewError(http.StatusBadRequest, "invalid package")
		case errors.Is(err, ErrBadOrigin):
			return fiber.NewError(http.StatusBadRequest, "origin_url is required")
		default:
			return fiber.NewError(http.StatusBadGateway, "payment processor unavailable, try again")
		}
	}
	return c.JSON(fiber.Map{"url": res.URL, "session_id": res.SessionID})
}

// Status reports the processor's view of a session and applies upgrades.
func (h *Handler) Status(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if sessionID == "" {
		return fiber.NewError(http.StatusBadRequest, "session_id is required")
	}

	res, err := h.service.Status(c.UserContext(), sessionID)
	if err != nil {
		if errors.Is(err, ErrUnknownSession) {
			return fiber.NewError(http.StatusNotFound, "unknown session")
		}
		return fiber.NewError(http.StatusBadGateway, "payment processor unavailable, try again")
	}
	return c.JSON(fiber.Map{
		"status":         res.Status,
		"payment_status": res.PaymentStatus,
		"amount":         float64(res.AmountTotal) / 100,
	})
}

// Webhook verifies and applies processor events.
func (h *Handler) Webhook(c *fiber.Ctx) error {
	event, err := ParseWebhook(c.Body(), c.Get("Stripe-Signature"), []byte(h.cfg.WebhookSecret), webhookTolerance, time.Now())
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "signature verification failed")
	}

	if err := h.service.HandleWebhook(c.UserContext(), event); err != nil {
		if errors.Is(err, ErrUnknownSession) {
			// Events for sessions we never opened are acknowledged, not retried.
			return c.JSON(fiber.Map{"received": true})
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"received": true})
}
