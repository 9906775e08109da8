package triage

import (
	"fmt"
	"sort"
	"time"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// StatusBuckets partitions tickets by status. Tickets carrying an unknown
// status land in Other so the partition stays total.
type StatusBuckets struct {
	Todo       []domain.DeskTicket `json:"todo"`
	InProgress []domain.DeskTicket `json:"in-progress"`
	Resolved   []domain.DeskTicket `json:"resolved"`
	Other      []domain.DeskTicket `json:"other,omitempty"`
}

// Len is the total number of tickets across buckets.
func (b StatusBuckets) Len() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Resolved) + len(b.Other)
}

// PartitionByStatus splits tickets by direct status equality, keeping input order.
func PartitionByStatus(tickets []domain.DeskTicket) StatusBuckets {
	buckets := StatusBuckets{
		Todo:       []domain.DeskTicket{},
		InProgress: []domain.DeskTicket{},
		Resolved:   []domain.DeskTicket{},
	}
	for _, t := range tickets {
		switch t.Status {
		case domain.TicketStatusTodo:
			buckets.Todo = append(buckets.Todo, t)
		case domain.TicketStatusInProgress:
			buckets.InProgress = append(buckets.InProgress, t)
		case domain.TicketStatusResolved:
			buckets.Resolved = append(buckets.Resolved, t)
		default:
			buckets.Other = append(buckets.Other, t)
		}
	}
	return buckets
}

// SortByCreated returns a sorted copy; the input is not modified.
func SortByCreated(tickets []domain.DeskTicket, newestFirst bool) []domain.DeskTicket {
	sorted := append([]domain.DeskTicket(nil), tickets...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if newestFirst {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// Recent returns the n newest tickets.
func Recent(tickets []domain.DeskTicket, n int) []domain.DeskTicket {
	sorted := SortByCreated(tickets, true)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Filter narrows a ticket list. Zero-valued fields match everything.
type Filter struct {
	Department domain.Department
	Status     domain.TicketStatus
	Priority   domain.TicketPriority
	AssignedTo string
}

// Apply returns the tickets matching every set field.
func (f Filter) Apply(tickets []domain.DeskTicket) []domain.DeskTicket {
	out := make([]domain.DeskTicket, 0, len(tickets))
	for _, t := range tickets {
		if f.Department != "" && t.Department != f.Department {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.AssignedTo != "" && t.AssignedTo != f.AssignedTo {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Stats are the per-employee dashboard counters.
type Stats struct {
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Solved     int `json:"solved"`
	Unsolved   int `json:"unsolved"`
}

// PersonalStats counts tickets for one employee. New counts every todo
// ticket regardless of assignee; the other counters need assignedTo to match.
func PersonalStats(tickets []domain.DeskTicket, employeeID string) Stats {
	var s Stats
	for _, t := range tickets {
		if t.Status == domain.TicketStatusTodo {
			s.New++
		}
		if employeeID == "" || t.AssignedTo != employeeID {
			continue
		}
		switch t.Status {
		case domain.TicketStatusInProgress:
			s.InProgress++
		case domain.TicketStatusResolved:
			s.Solved++
		}
		if t.Status != domain.TicketStatusResolved {
			s.Unsolved++
		}
	}
	return s
}

// Summary holds the dashboard header counters.
type Summary struct {
	Total        int `json:"total"`
	Todo         int `json:"todo"`
	InProgress   int `json:"inProgress"`
	Resolved     int `json:"resolved"`
	HighPriority int `json:"highPriority"`
}

// Overview counts tickets per status plus high-priority tickets.
func Overview(tickets []domain.DeskTicket) Summary {
	s := Summary{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case domain.TicketStatusTodo:
			s.Todo++
		case domain.TicketStatusInProgress:
			s.InProgress++
		case domain.TicketStatusResolved:
			s.Resolved++
		}
		if t.Priority == domain.TicketPriorityHigh {
			s.HighPriority++
		}
	}
	return s
}

// TimeAgo renders the elapsed time since createdAt in whole minutes, hours or days.
func TimeAgo(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}
	mins := int(elapsed / time.Minute)
	hours := mins / 60
	days := hours / 24
	switch {
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
