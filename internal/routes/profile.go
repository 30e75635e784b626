package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/soulprint"
)

// RegisterProfileRoutes wires profile and soulprint endpoints.
func RegisterProfileRoutes(r fiber.Router, h *soulprint.Handler) {
	r.Put("/profile", h.UpdateProfile)
	r.Get("/profile/soulprint", h.Soulprint)
}
