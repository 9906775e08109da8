package events

import (
	"time"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated           EventType = "ticket_created"
	EventDeskTicketUpdated       EventType = "desk_ticket_updated"
	EventDeskTicketStatusChanged EventType = "desk_ticket_status_changed"
	EventDeskTicketViewed        EventType = "desk_ticket_viewed"
	EventDeskTicketFlagged       EventType = "desk_ticket_flagged"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketNumber string                `json:"ticket_number"`
	Category     string                `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Title        string                `json:"title"`
}

// DeskTicketUpdatedPayload payload.
type DeskTicketUpdatedPayload struct {
	Action      string `json:"action"`
	HasResponse bool   `json:"has_response"`
}

// DeskTicketStatusChangedPayload payload.
type DeskTicketStatusChangedPayload struct {
	OldStatus   domain.TicketStatus   `json:"old_status"`
	NewStatus   domain.TicketStatus   `json:"new_status"`
	OldPriority domain.TicketPriority `json:"old_priority,omitempty"`
	NewPriority domain.TicketPriority `json:"new_priority,omitempty"`
}

// DeskTicketFlaggedPayload payload.
type DeskTicketFlaggedPayload struct {
	HasIssue    bool   `json:"has_issue"`
	Description string `json:"description,omitempty"`
}
