package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/citizen-services/internal/api/dto"
	"github.com/spec-kit/citizen-services/internal/auth"
	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/service"
	"github.com/spec-kit/citizen-services/internal/triage"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

const defaultRecentLimit = 5

// DeskHandler serves the employee ticket desk.
type DeskHandler struct {
	desk *service.DeskService
}

// NewDeskHandler constructs handler.
func NewDeskHandler(desk *service.DeskService) *DeskHandler {
	return &DeskHandler{desk: desk}
}

// List handles GET /api/desk/tickets.
func (h *DeskHandler) List(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	filter, err := parseDeskFilter(c)
	if err != nil {
		return err
	}
	tickets, err := h.desk.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDeskTicketList(tickets, h.desk.Now()))
}

// Get handles GET /api/desk/tickets/:id.
func (h *DeskHandler) Get(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	ticket, err := h.desk.Get(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return h.ticket(c, ticket)
}

// Update handles PATCH /api/desk/tickets/:id with a partial ticket body.
func (h *DeskHandler) Update(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	var update domain.DeskTicketUpdate
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&update); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"reason": err.Error()})
	}
	ticket, err := h.desk.ApplyUpdate(c.UserContext(), actor, c.Params("id"), update)
	if err != nil {
		return err
	}
	return h.ticket(c, ticket)
}

// ChangeStatus handles POST /api/desk/tickets/:id/status.
func (h *DeskHandler) ChangeStatus(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	var req dto.StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.desk.ChangeStatus(c.UserContext(), actor, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return h.ticket(c, ticket)
}

// Triage handles POST /api/desk/tickets/:id/triage.
func (h *DeskHandler) Triage(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	var req dto.TriageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.desk.Triage(c.UserContext(), actor, c.Params("id"), req.Priority)
	if err != nil {
		return err
	}
	return h.ticket(c, ticket)
}

// MarkViewed handles POST /api/desk/tickets/:id/view.
func (h *DeskHandler) MarkViewed(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	ticket, err := h.desk.MarkViewed(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return h.ticket(c, ticket)
}

// FlagIssue handles POST /api/desk/tickets/:id/issue.
func (h *DeskHandler) FlagIssue(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	var req dto.FlagIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.desk.FlagIssue(c.UserContext(), actor, c.Params("id"), req.HasIssue, req.IssueDescription)
	if err != nil {
		return err
	}
	return h.ticket(c, ticket)
}

// StatusBoard handles GET /api/desk/views/status.
func (h *DeskHandler) StatusBoard(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	filter, err := parseDeskFilter(c)
	if err != nil {
		return err
	}
	board, err := h.desk.StatusBoard(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStatusBoardResponse(board, h.desk.Now()))
}

// Issues handles GET /api/desk/views/issues.
func (h *DeskHandler) Issues(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	filter, err := parseDeskFilter(c)
	if err != nil {
		return err
	}
	flagged, err := h.desk.Issues(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewIssueList(flagged, h.desk.Now()))
}

// Recent handles GET /api/desk/views/recent?limit=.
func (h *DeskHandler) Recent(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return apperrors.NewValidationError("invalid limit", map[string]any{"limit": raw})
		}
		limit = n
	}
	tickets, err := h.desk.Recent(c.UserContext(), actor, limit)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDeskTicketList(tickets, h.desk.Now()))
}

// Overview handles GET /api/desk/stats.
func (h *DeskHandler) Overview(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	filter, err := parseDeskFilter(c)
	if err != nil {
		return err
	}
	summary, err := h.desk.Overview(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

// PersonalStats handles GET /api/desk/stats/me.
func (h *DeskHandler) PersonalStats(c *fiber.Ctx) error {
	actor, err := deskActor(c)
	if err != nil {
		return err
	}
	stats, err := h.desk.PersonalStats(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *DeskHandler) ticket(c *fiber.Ctx, t *domain.DeskTicket) error {
	return c.JSON(dto.NewDeskTicketResponse(*t, h.desk.Now()))
}

func deskActor(c *fiber.Ctx) (service.DeskActor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return service.DeskActor{}, apperrors.NewUnauthorized("authentication required")
	}
	return service.DeskActorFromUser(principal.User), nil
}

func parseDeskFilter(c *fiber.Ctx) (triage.Filter, error) {
	filter := triage.Filter{
		Department: domain.Department(c.Query("department")),
		Status:     domain.TicketStatus(c.Query("status")),
		Priority:   domain.TicketPriority(c.Query("priority")),
		AssignedTo: c.Query("assignedTo"),
	}
	if filter.Department != "" && !filter.Department.Valid() {
		return filter, apperrors.NewValidationError("invalid department", map[string]any{"department": filter.Department})
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return filter, apperrors.NewValidationError("invalid status", map[string]any{"status": filter.Status})
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return filter, apperrors.NewValidationError("invalid priority", map[string]any{"priority": filter.Priority})
	}
	return filter, nil
}
