package soulprint

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yky-hub/yky_hub/internal/identity"
)

// Handler exposes the profile and soulprint endpoints.
type Handler struct {
	service *Service
	ids     *identity.Service
}

// NewHandler constructs a profile/soulprint handler.
func NewHandler(service *Service, ids *identity.Service) *Handler {
	return &Handler{service: service, ids: ids}
}

type profileUpdateRequest struct {
	Name            *string `json:"name"`
	BirthDate       *string `json:"birth_date"`
	BirthTime       *string `json:"birth_time"`
	BirthLocation   *string `json:"birth_location"`
	HumanDesignType *string `json:"human_design_type"`
}

// UpdateProfile applies a partial profile update for the caller.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)

	user, err := h.ids.UpdateProfile(c.UserContext(), uid, identity.ProfileUpdate{
		Name:            req.Name,
		BirthDate:       req.BirthDate,
		BirthTime:       req.BirthTime,
		BirthLocation:   req.BirthLocation,
		HumanDesignType: req.HumanDesignType,
	})
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "user not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"profile": fiber.Map{
			"name":              user.Name,
			"birth_date":        user.BirthDate,
			"birth_time":        user.BirthTime,
			"birth_location":    user.BirthLocation,
			"human_design_type": user.HumanDesignType,
		},
	})
}

// Soulprint returns the caller's aggregated soulprint.
func (h *Handler) Soulprint(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	sp, err := h.service.Get(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "user not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(sp)
}
