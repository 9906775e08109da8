package dto

import (
	"time"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/triage"
)

// StatusChangeRequest payload for the quick status move.
type StatusChangeRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// TriageRequest payload.
type TriageRequest struct {
	Priority domain.TicketPriority `json:"priority"`
}

// FlagIssueRequest payload.
type FlagIssueRequest struct {
	HasIssue         bool   `json:"hasIssue"`
	IssueDescription string `json:"issueDescription"`
}

// DeskTicketResponse is a desk ticket plus its relative age.
type DeskTicketResponse struct {
	domain.DeskTicket
	TimeAgo string `json:"timeAgo"`
}

// NewDeskTicketResponse decorates a ticket with its age at now.
func NewDeskTicketResponse(t domain.DeskTicket, now time.Time) DeskTicketResponse {
	return DeskTicketResponse{DeskTicket: t, TimeAgo: triage.TimeAgo(t.CreatedAt, now)}
}

// NewDeskTicketList decorates a slice, never returning nil.
func NewDeskTicketList(tickets []domain.DeskTicket, now time.Time) []DeskTicketResponse {
	out := make([]DeskTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewDeskTicketResponse(t, now))
	}
	return out
}

// StatusBoardResponse holds the three status columns.
type StatusBoardResponse struct {
	Todo       []DeskTicketResponse `json:"todo"`
	InProgress []DeskTicketResponse `json:"in-progress"`
	Resolved   []DeskTicketResponse `json:"resolved"`
	Other      []DeskTicketResponse `json:"other,omitempty"`
}

// NewStatusBoardResponse converts partitioned tickets.
func NewStatusBoardResponse(b triage.StatusBuckets, now time.Time) StatusBoardResponse {
	resp := StatusBoardResponse{
		Todo:       NewDeskTicketList(b.Todo, now),
		InProgress: NewDeskTicketList(b.InProgress, now),
		Resolved:   NewDeskTicketList(b.Resolved, now),
	}
	if len(b.Other) > 0 {
		resp.Other = NewDeskTicketList(b.Other, now)
	}
	return resp
}

// IssueResponse is one entry of the issues view.
type IssueResponse struct {
	Ticket  DeskTicketResponse `json:"ticket"`
	Issue   triage.Issue       `json:"issue"`
	AgeDays int                `json:"ageDays"`
}

// NewIssueList converts flagged tickets.
func NewIssueList(flagged []triage.Flagged, now time.Time) []IssueResponse {
	out := make([]IssueResponse, 0, len(flagged))
	for _, f := range flagged {
		out = append(out, IssueResponse{
			Ticket:  NewDeskTicketResponse(f.Ticket, now),
			Issue:   f.Issue,
			AgeDays: triage.AgeDays(f.Ticket.CreatedAt, now),
		})
	}
	return out
}
