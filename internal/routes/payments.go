package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/billing"
)

// RegisterPaymentRoutes wires checkout endpoints.
func RegisterPaymentRoutes(r fiber.Router, h *billing.Handler) {
	group := r.Group("/payments")
	group.Post("/checkout", h.Checkout)
	group.Get("/status/:session_id", h.Status)
}
