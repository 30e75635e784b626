package community

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes community endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a community handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createPostRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// CreatePost publishes a post by the caller.
func (h *Handler) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)
	name, _ := c.Locals("user_name").(string)

	post, err := h.service.Create(c.UserContext(), CreateInput{
		UserID:   uid,
		UserName: name,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, ErrEmptyContent) {
			return fiber.NewError(http.StatusBadRequest, "content is required")
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(postPayload(post))
}

// Feed returns the public feed, optionally filtered by category.
func (h *Handler) Feed(c *fiber.Ctx) error {
	category := c.Query("category", "all")
	limit := c.QueryInt("limit", 0)

	posts, err := h.service.Feed(c.UserContext(), category, limit)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]fiber.Map, 0, len(posts))
	for _, post := range posts {
		out = append(out, postPayload(post))
	}
	return c.JSON(fiber.Map{"posts": out})
}

func postPayload(post Post) fiber.Map {
	return fiber.Map{
		"id":         post.ID,
		"user_id":    post.UserID,
		"user_name":  post.UserName,
		"content":    post.Content,
		"category":   post.Category,
		"likes":      post.Likes,
		"created_at": post.CreatedAt,
	}
}
