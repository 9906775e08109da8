package triage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/citizen-services/internal/domain"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return now.Add(-time.Duration(d * float64(24*time.Hour)))
}

func ticket(id string, status domain.TicketStatus, priority domain.TicketPriority, created time.Time) domain.DeskTicket {
	return domain.DeskTicket{ID: id, Status: status, Priority: priority, CreatedAt: created, Department: domain.DepartmentPayment}
}

func TestDetectIssueRules(t *testing.T) {
	tests := []struct {
		name   string
		ticket domain.DeskTicket
		kind   IssueKind
		label  string
		found  bool
	}{
		{
			name:   "resolved without response",
			ticket: ticket("1", domain.TicketStatusResolved, domain.TicketPriorityLow, daysAgo(1)),
			kind:   IssueSolvedWithoutResponse,
			label:  "Solved without customer response",
			found:  true,
		},
		{
			name: "resolved with response",
			ticket: func() domain.DeskTicket {
				tk := ticket("2", domain.TicketStatusResolved, domain.TicketPriorityLow, daysAgo(10))
				tk.Response = "done"
				return tk
			}(),
		},
		{
			name:   "high priority in progress",
			ticket: ticket("3", domain.TicketStatusInProgress, domain.TicketPriorityHigh, daysAgo(0.1)),
			kind:   IssueHighPriorityUnsolved,
			label:  "High priority - Needs immediate attention",
			found:  true,
		},
		{
			name:   "stuck in progress four days",
			ticket: ticket("4", domain.TicketStatusInProgress, domain.TicketPriorityMedium, daysAgo(4)),
			kind:   IssueStuckInProgress,
			label:  "Stuck in progress for 4 days",
			found:  true,
		},
		{
			name:   "in progress two days is fine",
			ticket: ticket("5", domain.TicketStatusInProgress, domain.TicketPriorityMedium, daysAgo(2)),
		},
		{
			name: "employee marked with description",
			ticket: func() domain.DeskTicket {
				tk := ticket("6", domain.TicketStatusInProgress, domain.TicketPriorityLow, daysAgo(0.5))
				tk.HasIssue = true
				tk.IssueDescription = "Customer unreachable"
				return tk
			}(),
			kind:  IssueEmployeeMarked,
			label: "Customer unreachable",
			found: true,
		},
		{
			name: "employee marked via issue type only",
			ticket: func() domain.DeskTicket {
				tk := ticket("7", domain.TicketStatusTodo, domain.TicketPriorityLow, daysAgo(0.5))
				tk.IssueType = domain.IssueTypeEmployeeMarked
				return tk
			}(),
			kind:  IssueEmployeeMarked,
			label: "Employee marked as problematic",
			found: true,
		},
		{
			name:   "todo three days",
			ticket: ticket("8", domain.TicketStatusTodo, domain.TicketPriorityMedium, daysAgo(3)),
			kind:   IssueUnassignedTooLong,
			label:  "Unassigned for 3 days",
			found:  true,
		},
		{
			name:   "todo one day",
			ticket: ticket("9", domain.TicketStatusTodo, domain.TicketPriorityMedium, daysAgo(1)),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issue, ok := DetectIssue(tc.ticket, now)
			require.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.kind, issue.Kind)
				assert.Equal(t, tc.label, issue.Label)
			}
		})
	}
}

func TestDetectIssueFirstMatchWins(t *testing.T) {
	// high priority beats unassigned-too-long on an old todo ticket
	old := ticket("a", domain.TicketStatusTodo, domain.TicketPriorityHigh, daysAgo(3))
	issue, ok := DetectIssue(old, now)
	require.True(t, ok)
	assert.Equal(t, IssueHighPriorityUnsolved, issue.Kind)

	// resolved high priority without response is never reported as high priority unsolved
	resolved := ticket("b", domain.TicketStatusResolved, domain.TicketPriorityHigh, daysAgo(9))
	issue, ok = DetectIssue(resolved, now)
	require.True(t, ok)
	assert.Equal(t, IssueSolvedWithoutResponse, issue.Kind)

	// stuck beats a manual flag
	stuck := ticket("c", domain.TicketStatusInProgress, domain.TicketPriorityLow, daysAgo(5))
	stuck.HasIssue = true
	issue, ok = DetectIssue(stuck, now)
	require.True(t, ok)
	assert.Equal(t, IssueStuckInProgress, issue.Kind)
}

func TestIssueRuleOrder(t *testing.T) {
	kinds := make([]IssueKind, 0, len(issueRules))
	for _, r := range issueRules {
		kinds = append(kinds, r.kind)
	}
	assert.Equal(t, []IssueKind{
		IssueSolvedWithoutResponse,
		IssueHighPriorityUnsolved,
		IssueStuckInProgress,
		IssueEmployeeMarked,
		IssueUnassignedTooLong,
	}, kinds)
}

func TestIssuesSortedByPriorityThenOldest(t *testing.T) {
	tickets := []domain.DeskTicket{
		ticket("low-old", domain.TicketStatusResolved, domain.TicketPriorityLow, daysAgo(6)),
		ticket("high-new", domain.TicketStatusTodo, domain.TicketPriorityHigh, daysAgo(0.1)),
		ticket("fine", domain.TicketStatusTodo, domain.TicketPriorityMedium, daysAgo(0.5)),
		ticket("high-old", domain.TicketStatusInProgress, domain.TicketPriorityHigh, daysAgo(2)),
		ticket("medium", domain.TicketStatusInProgress, domain.TicketPriorityMedium, daysAgo(7)),
	}

	flagged := Issues(tickets, now)
	ids := make([]string, 0, len(flagged))
	for _, f := range flagged {
		ids = append(ids, f.Ticket.ID)
	}
	assert.Equal(t, []string{"high-old", "high-new", "medium", "low-old"}, ids)
}

func TestIssuesEmpty(t *testing.T) {
	assert.Empty(t, Issues(nil, now))
}

func TestAgeDays(t *testing.T) {
	assert.Equal(t, 0, AgeDays(now.Add(time.Hour), now))
	assert.Equal(t, 0, AgeDays(daysAgo(0.99), now))
	assert.Equal(t, 3, AgeDays(daysAgo(3.5), now))
}
