package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/citizen-services/internal/api/dto"
	"github.com/spec-kit/citizen-services/internal/service"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

// UsersHandler exposes account listings.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Documents handles GET /api/users/:id/documents.
func (h *UsersHandler) Documents(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}
	docs, err := h.users.Documents(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDocumentList(docs))
}

// Applications handles GET /api/users/:id/applications.
func (h *UsersHandler) Applications(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}
	apps, err := h.users.Applications(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationList(apps))
}

func userIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid user id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
