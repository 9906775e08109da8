package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/citizen-services/internal/api/dto"
	"github.com/spec-kit/citizen-services/internal/service"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

// TicketsHandler serves citizen assistance requests.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService}
}

// List handles GET /api/tickets?userId=.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	var userID *int64
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apperrors.NewValidationError("invalid userId", map[string]any{"userId": raw})
		}
		userID = &id
	}
	tickets, err := h.tickets.List(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketList(tickets))
}

// Create handles POST /api/tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.tickets.Create(c.UserContext(), service.TicketCreateInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(*ticket))
}
