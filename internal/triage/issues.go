package triage

import (
	"fmt"
	"sort"
	"time"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// IssueKind names the rule that flagged a ticket.
type IssueKind string

const (
	IssueSolvedWithoutResponse IssueKind = "solved_no_response"
	IssueHighPriorityUnsolved  IssueKind = "high_priority_unsolved"
	IssueStuckInProgress       IssueKind = "stuck_in_progress"
	IssueEmployeeMarked        IssueKind = "employee_marked_issue"
	IssueUnassignedTooLong     IssueKind = "unassigned_too_long"
)

const (
	stuckInProgressDays = 3
	unassignedDays      = 2
)

// Issue is the first rule a ticket matched, with its display label.
type Issue struct {
	Kind  IssueKind `json:"kind"`
	Label string    `json:"label"`
}

// Flagged pairs a ticket with the issue that put it on the issues view.
type Flagged struct {
	Ticket domain.DeskTicket `json:"ticket"`
	Issue  Issue             `json:"issue"`
}

type issueRule struct {
	kind    IssueKind
	matches func(t *domain.DeskTicket, ageDays int) bool
	label   func(t *domain.DeskTicket, ageDays int) string
}

// issueRules is evaluated top to bottom and the first match wins. An old
// high-priority todo ticket therefore reports high_priority_unsolved, never
// unassigned_too_long.
var issueRules = []issueRule{
	{
		kind: IssueSolvedWithoutResponse,
		matches: func(t *domain.DeskTicket, _ int) bool {
			return t.Status == domain.TicketStatusResolved && t.Response == ""
		},
		label: func(*domain.DeskTicket, int) string { return "Solved without customer response" },
	},
	{
		kind: IssueHighPriorityUnsolved,
		matches: func(t *domain.DeskTicket, _ int) bool {
			return t.Priority == domain.TicketPriorityHigh && t.Status != domain.TicketStatusResolved
		},
		label: func(*domain.DeskTicket, int) string { return "High priority - Needs immediate attention" },
	},
	{
		kind: IssueStuckInProgress,
		matches: func(t *domain.DeskTicket, age int) bool {
			return t.Status == domain.TicketStatusInProgress && age > stuckInProgressDays
		},
		label: func(_ *domain.DeskTicket, age int) string { return fmt.Sprintf("Stuck in progress for %d days", age) },
	},
	{
		kind: IssueEmployeeMarked,
		matches: func(t *domain.DeskTicket, _ int) bool {
			return t.HasIssue || t.IssueType == domain.IssueTypeEmployeeMarked
		},
		label: func(t *domain.DeskTicket, _ int) string {
			if t.IssueDescription != "" {
				return t.IssueDescription
			}
			return "Employee marked as problematic"
		},
	},
	{
		kind: IssueUnassignedTooLong,
		matches: func(t *domain.DeskTicket, age int) bool {
			return t.Status == domain.TicketStatusTodo && age > unassignedDays
		},
		label: func(_ *domain.DeskTicket, age int) string { return fmt.Sprintf("Unassigned for %d days", age) },
	},
}

// DetectIssue returns the first issue rule the ticket matches at now.
func DetectIssue(t domain.DeskTicket, now time.Time) (Issue, bool) {
	age := AgeDays(t.CreatedAt, now)
	for _, rule := range issueRules {
		if rule.matches(&t, age) {
			return Issue{Kind: rule.kind, Label: rule.label(&t, age)}, true
		}
	}
	return Issue{}, false
}

// Issues returns every ticket with an issue, highest priority first and
// oldest first within a priority.
func Issues(tickets []domain.DeskTicket, now time.Time) []Flagged {
	flagged := make([]Flagged, 0)
	for _, t := range tickets {
		if issue, ok := DetectIssue(t, now); ok {
			flagged = append(flagged, Flagged{Ticket: t, Issue: issue})
		}
	}
	sort.SliceStable(flagged, func(i, j int) bool {
		a, b := flagged[i].Ticket, flagged[j].Ticket
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return flagged
}

// AgeDays is the number of whole days between createdAt and now.
func AgeDays(createdAt, now time.Time) int {
	d := now.Sub(createdAt)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
