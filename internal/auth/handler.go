package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/config"
	"github.com/yky-hub/yky_hub/internal/identity"
)

// Handler exposes register/login/me endpoints.
type Handler struct {
	cfg config.Config
	ids *identity.Service
}

func NewHandler(cfg config.Config, ids *identity.Service) *Handler {
	return &Handler{cfg: cfg, ids: ids}
}

type registerRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	BirthDate     string `json:"birth_date"`
	BirthTime     string `json:"birth_time"`
	BirthLocation string `json:"birth_location"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// Register creates an account and returns a bearer token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.ids.Register(c.UserContext(), identity.Registration{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		BirthDate:     req.BirthDate,
		BirthTime:     req.BirthTime,
		BirthLocation: req.BirthLocation,
	})
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return fiber.NewError(http.StatusBadRequest, "email already registered")
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return h.respondSession(c, user)
}

// Login validates credentials and returns a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.ids.Authenticate(c.UserContext(), identity.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
	}
	return h.respondSession(c, user)
}

// Me returns the authenticated user's account summary.
func (h *Handler) Me(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	user, err := h.ids.Get(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, "user not found")
	}
	return c.JSON(fiber.Map{
		"id":                user.ID,
		"email":             user.Email,
		"name":              user.Name,
		"birth_date":        user.BirthDate,
		"birth_time":        user.BirthTime,
		"birth_location":    user.BirthLocation,
		"human_design_type": user.HumanDesignType,
		"is_premium":        user.IsPremium,
		"created_at":        user.CreatedAt,
	})
}

func (h *Handler) respondSession(c *fiber.Ctx, user identity.User) error {
	token, err := SignToken(user.ID, user.Email, []byte(h.cfg.JWTSecret), h.cfg.TokenTTL)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "failed to issue token")
	}
	return c.Status(http.StatusOK).JSON(sessionResponse{
		Token: token,
		User:  userPayload{ID: user.ID, Email: user.Email, Name: user.Name, IsPremium: user.IsPremium},
	})
}
