package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/tarot"
)

// RegisterTarotRoutes wires tarot reading endpoints.
func RegisterTarotRoutes(r fiber.Router, h *tarot.Handler) {
	group := r.Group("/tarot")
	group.Post("/draw", h.Draw)
	group.Get("/history", h.History)
}
