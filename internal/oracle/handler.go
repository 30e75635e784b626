package oracle

import (
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the oracle endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an oracle handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type chatRequestBody struct {
	Message string `json:"message"`
}

// Chat handles a text conversation turn with the oracle.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req chatRequestBody
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(http.StatusBadRequest, "message is required")
	}
	uid, _ := c.Locals("user_id").(string)

	res, err := h.service.Chat(c.UserContext(), uid, req.Message)
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, "the oracle is unreachable, try again")
	}
	return c.JSON(fiber.Map{"response": res.Response, "oracle": res.Oracle})
}

// Speak returns the oracle's reply as base64 mp3 audio alongside the text.
func (h *Handler) Speak(c *fiber.Ctx) error {
	var req chatRequestBody
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(http.StatusBadRequest, "message is required")
	}
	uid, _ := c.Locals("user_id").(string)

	res, err := h.service.Speak(c.UserContext(), uid, req.Message)
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, "the oracle is unreachable, try again")
	}
	return c.JSON(fiber.Map{"text": res.Text, "audio_base64": res.AudioBase64, "format": res.Format})
}

// Listen accepts a multipart audio upload and returns its transcription.
func (h *Handler) Listen(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "audio file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unreadable audio file")
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unreadable audio file")
	}

	text, err := h.service.Listen(c.UserContext(), audio, fileHeader.Filename)
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, "transcription failed, try again")
	}
	return c.JSON(fiber.Map{"transcription": text})
}

// History returns the caller's recent oracle exchanges.
func (h *Handler) History(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	messages, err := h.service.History(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]fiber.Map, 0, len(messages))
	for _, msg := range messages {
		out = append(out, fiber.Map{
			"id":              msg.ID,
			"user_message":    msg.UserMessage,
			"oracle_response": msg.OracleResponse,
			"created_at":      msg.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"messages": out})
}
