package tarot

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes tarot endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a tarot handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type drawRequest struct {
	SpreadType string `json:"spread_type"`
	Question   string `json:"question"`
}

// Draw performs a card draw for the caller.
func (h *Handler) Draw(c *fiber.Ctx) error {
	req := drawRequest{SpreadType: "single"}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.SpreadType == "" {
		req.SpreadType = "single"
	}
	uid, _ := c.Locals("user_id").(string)

	reading, err := h.service.Draw(c.UserContext(), DrawInput{
		UserID:     uid,
		SpreadType: req.SpreadType,
		Question:   req.Question,
	})
	if err != nil {
		if errors.Is(err, ErrUnknownSpread) {
			return fiber.NewError(http.StatusBadRequest, "unknown spread type")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(readingPayload(reading))
}

// History returns the caller's recent readings.
func (h *Handler) History(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	readings, err := h.service.History(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]fiber.Map, 0, len(readings))
	for _, reading := range readings {
		out = append(out, readingPayload(reading))
	}
	return c.JSON(fiber.Map{"readings": out})
}

func readingPayload(reading Reading) fiber.Map {
	return fiber.Map{
		"id":             reading.ID,
		"spread_type":    reading.SpreadType,
		"question":       reading.Question,
		"cards":          reading.Cards,
		"interpretation": reading.Interpretation,
		"created_at":     reading.CreatedAt,
	}
}
