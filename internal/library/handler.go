package library

import "github.com/gofiber/fiber/v2"

// Handler exposes the reference search endpoint.
type Handler struct{}

// NewHandler constructs a library handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Search runs a reference lookup.
func (h *Handler) Search(c *fiber.Ctx) error {
	results := Search(c.Query("query"), c.Query("category", "all"))
	return c.JSON(fiber.Map{"results": results, "total": len(results)})
}
