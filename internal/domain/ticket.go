package domain

import "time"

// TicketStatus enumerates lifecycle states shared by assistance requests and desk tickets.
type TicketStatus string

const (
	TicketStatusTodo       TicketStatus = "todo"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// Valid reports whether s is one of the known statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusTodo, TicketStatusInProgress, TicketStatusResolved:
		return true
	}
	return false
}

// Label is the human readable status name used in activity entries.
func (s TicketStatus) Label() string {
	switch s {
	case TicketStatusTodo:
		return "To Do"
	case TicketStatusInProgress:
		return "In Progress"
	case TicketStatusResolved:
		return "Resolved"
	}
	return string(s)
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities high > medium > low; unknown values rank lowest.
func (p TicketPriority) Rank() int {
	switch p {
	case TicketPriorityHigh:
		return 3
	case TicketPriorityMedium:
		return 2
	case TicketPriorityLow:
		return 1
	}
	return 0
}

// DefaultTicketCategory is used when an assistance request names no category.
const DefaultTicketCategory = "general"

// Ticket is an assistance request submitted by a citizen through /api/tickets.
type Ticket struct {
	ID           int64
	TicketNumber string
	UserID       int64
	Title        string
	Description  string
	Status       TicketStatus
	Priority     TicketPriority
	Category     string
	AssignedTo   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ResolvedAt   *time.Time
}
