package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/oracle"
)

// RegisterOracleRoutes wires oracle chat and voice endpoints.
func RegisterOracleRoutes(r fiber.Router, h *oracle.Handler) {
	group := r.Group("/oracle")
	group.Post("/chat", h.Chat)
	group.Post("/speak", h.Speak)
	group.Post("/listen", h.Listen)
	group.Get("/history", h.History)
}
