package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/bioscan"
)

// RegisterBioScanRoutes wires voice bio-scan endpoints.
func RegisterBioScanRoutes(r fiber.Router, h *bioscan.Handler) {
	group := r.Group("/bio")
	group.Post("/scan", h.Scan)
	group.Get("/scan/history", h.History)
}
