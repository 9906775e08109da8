package service

import (
	"time"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// DemoDeskTickets returns the demo desk tickets with timestamps relative to now.
func DemoDeskTickets(now time.Time) []domain.DeskTicket {
	hoursAgo := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }
	daysAgo := func(d int) time.Time { return hoursAgo(24 * d) }
	resolved := func(d int) *time.Time {
		t := daysAgo(d)
		return &t
	}

	return []domain.DeskTicket{
		{
			ID:            "TKT-001",
			Title:         "Payment gateway not working",
			Description:   "Unable to complete payment through credit card",
			CustomerName:  "Vikram Singh",
			CustomerEmail: "vikram@example.com",
			Department:    domain.DepartmentPayment,
			Status:        domain.TicketStatusTodo,
			Priority:      domain.TicketPriorityHigh,
			CreatedAt:     hoursAgo(2),
		},
		{
			ID:                      "TKT-002",
			Title:                   "Refund request pending",
			Description:             "Requested refund 5 days ago, no response yet",
			CustomerName:            "Sneha Reddy",
			CustomerEmail:           "sneha@example.com",
			Department:              domain.DepartmentPayment,
			Status:                  domain.TicketStatusInProgress,
			Priority:                domain.TicketPriorityMedium,
			CreatedAt:               daysAgo(5),
			AssignedTo:              "emp-1",
			Response:                "Checking with finance team",
			EstimatedResolutionTime: "24 hours",
		},
		{
			ID:            "TKT-003",
			Title:         "Document verification failed",
			Description:   "PAN card verification showing error",
			CustomerName:  "Rajesh Gupta",
			CustomerEmail: "rajesh@example.com",
			Department:    domain.DepartmentDocument,
			Status:        domain.TicketStatusTodo,
			Priority:      domain.TicketPriorityHigh,
			CreatedAt:     hoursAgo(3),
		},
		{
			ID:                      "TKT-004",
			Title:                   "Need to upload additional documents",
			Description:             "What documents are required for KYC?",
			CustomerName:            "Anita Desai",
			CustomerEmail:           "anita@example.com",
			Department:              domain.DepartmentDocument,
			Status:                  domain.TicketStatusInProgress,
			Priority:                domain.TicketPriorityLow,
			CreatedAt:               daysAgo(1),
			AssignedTo:              "emp-2",
			Response:                "Need Aadhar and PAN card",
			EstimatedResolutionTime: "2 hours",
		},
		{
			ID:            "TKT-005",
			Title:         "Application status inquiry",
			Description:   "When will my loan application be processed?",
			CustomerName:  "Suresh Iyer",
			CustomerEmail: "suresh@example.com",
			Department:    domain.DepartmentApplication,
			Status:        domain.TicketStatusTodo,
			Priority:      domain.TicketPriorityMedium,
			CreatedAt:     hoursAgo(6),
		},
		{
			ID:                      "TKT-006",
			Title:                   "Application form error",
			Description:             "Getting error while submitting application form",
			CustomerName:            "Meera Nair",
			CustomerEmail:           "meera@example.com",
			Department:              domain.DepartmentApplication,
			Status:                  domain.TicketStatusResolved,
			Priority:                domain.TicketPriorityHigh,
			CreatedAt:               daysAgo(2),
			AssignedTo:              "emp-3",
			Response:                "Technical issue resolved. Please try again.",
			EstimatedResolutionTime: "1 hour",
			ResolvedAt:              resolved(1),
		},
		{
			ID:            "TKT-007",
			Title:         "Transaction failed but amount deducted",
			Description:   "Money deducted from account but transaction shows failed",
			CustomerName:  "Karan Mehta",
			CustomerEmail: "karan@example.com",
			Department:    domain.DepartmentPayment,
			Status:        domain.TicketStatusTodo,
			Priority:      domain.TicketPriorityHigh,
			CreatedAt:     hoursAgo(1),
		},
		{
			ID:                      "TKT-008",
			Title:                   "Document upload size limit",
			Description:             "Unable to upload document, file size too large",
			CustomerName:            "Pooja Shah",
			CustomerEmail:           "pooja@example.com",
			Department:              domain.DepartmentDocument,
			Status:                  domain.TicketStatusResolved,
			Priority:                domain.TicketPriorityLow,
			CreatedAt:               daysAgo(3),
			AssignedTo:              "emp-2",
			Response:                "Please compress the file to under 5MB",
			EstimatedResolutionTime: "30 minutes",
			ResolvedAt:              resolved(2),
		},
	}
}
