package bioscan

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the bio scan endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a bio scan handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type scanRequest struct {
	AudioBase64 string `json:"audio_base64"`
}

// Scan analyzes the submitted voice recording.
func (h *Handler) Scan(c *fiber.Ctx) error {
	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)

	scan, err := h.service.Scan(c.UserContext(), uid, req.AudioBase64)
	if err != nil {
		if errors.Is(err, ErrInvalidAudio) {
			return fiber.NewError(http.StatusBadRequest, "audio_base64 must be valid base64 audio")
		}
		return fiber.NewError(http.StatusBadGateway, "scan analysis failed, try again")
	}
	return c.JSON(scanPayload(scan))
}

// History returns the caller's recent scans.
func (h *Handler) History(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	scans, err := h.service.History(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]fiber.Map, 0, len(scans))
	for _, scan := range scans {
		out = append(out, scanPayload(scan))
	}
	return c.JSON(fiber.Map{"scans": out})
}

func scanPayload(scan Scan) fiber.Map {
	return fiber.Map{
		"id":              scan.ID,
		"transcription":   scan.Transcription,
		"analysis":        scan.Analysis,
		"frequencies":     scan.Frequencies,
		"recommendations": scan.Recommendations,
		"vitality_score":  scan.VitalityScore,
		"created_at":      scan.CreatedAt,
	}
}
