package domain

import "time"

// Department is the fixed unit a desk ticket and an employee belong to.
type Department string

const (
	DepartmentPayment     Department = "payment"
	DepartmentDocument    Department = "document"
	DepartmentApplication Department = "application"
)

// Valid reports whether d is one of the known departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentPayment, DepartmentDocument, DepartmentApplication:
		return true
	}
	return false
}

// IssueType is the stored manual or derived attention marker on a desk ticket.
type IssueType string

const (
	IssueTypeSolvedNoResponse     IssueType = "solved_no_response"
	IssueTypeStuckInProgress      IssueType = "stuck_in_progress"
	IssueTypeHighPriorityUnsolved IssueType = "high_priority_unsolved"
	IssueTypeEmployeeMarked       IssueType = "employee_marked_issue"
	IssueTypeCustomerComplaint    IssueType = "customer_complaint"
	IssueTypeNone                 IssueType = "none"
)

// Valid reports whether t is a known issue type.
func (t IssueType) Valid() bool {
	switch t {
	case IssueTypeSolvedNoResponse, IssueTypeStuckInProgress, IssueTypeHighPriorityUnsolved,
		IssueTypeEmployeeMarked, IssueTypeCustomerComplaint, IssueTypeNone:
		return true
	}
	return false
}

// TicketActivity is one entry of a desk ticket's append-only activity log.
type TicketActivity struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Employee  string    `json:"employee"`
	Details   string    `json:"details,omitempty"`
}

// DeskTicket is the record employees triage on the desk. It is persisted as
// part of a single JSON array, so the json tags define the storage format.
type DeskTicket struct {
	ID                      string           `json:"id"`
	Title                   string           `json:"title"`
	Description             string           `json:"description"`
	CustomerName            string           `json:"customerName"`
	CustomerEmail           string           `json:"customerEmail"`
	Department              Department       `json:"department"`
	Status                  TicketStatus     `json:"status"`
	Priority                TicketPriority   `json:"priority"`
	CreatedAt               time.Time        `json:"createdAt"`
	AssignedTo              string           `json:"assignedTo,omitempty"`
	Response                string           `json:"response,omitempty"`
	AdminNotes              string           `json:"adminNotes,omitempty"`
	EstimatedResolutionTime string           `json:"estimatedResolutionTime,omitempty"`
	ResolvedAt              *time.Time       `json:"resolvedAt,omitempty"`
	ViewedBy                []string         `json:"viewedBy,omitempty"`
	Activities              []TicketActivity `json:"activities,omitempty"`
	IssueType               IssueType        `json:"issueType,omitempty"`
	IssueDescription        string           `json:"issueDescription,omitempty"`
	HasIssue                bool             `json:"hasIssue,omitempty"`
}

// DeskTicketUpdate lists every field a partial update may overwrite. Nil
// fields are left untouched. The activity log is not part of it: entries are
// only ever appended through AppendActivity.
type DeskTicketUpdate struct {
	Title                   *string         `json:"title,omitempty"`
	Description             *string         `json:"description,omitempty"`
	Status                  *TicketStatus   `json:"status,omitempty"`
	Priority                *TicketPriority `json:"priority,omitempty"`
	AssignedTo              *string         `json:"assignedTo,omitempty"`
	Response                *string         `json:"response,omitempty"`
	AdminNotes              *string         `json:"adminNotes,omitempty"`
	EstimatedResolutionTime *string         `json:"estimatedResolutionTime,omitempty"`
	ResolvedAt              *time.Time      `json:"resolvedAt,omitempty"`
	ViewedBy                *[]string       `json:"viewedBy,omitempty"`
	IssueType               *IssueType      `json:"issueType,omitempty"`
	IssueDescription        *string         `json:"issueDescription,omitempty"`
	HasIssue                *bool           `json:"hasIssue,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u DeskTicketUpdate) IsEmpty() bool {
	return u == DeskTicketUpdate{}
}

// ApplyTo overwrites the ticket field by field.
func (u DeskTicketUpdate) ApplyTo(t *DeskTicket) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.AssignedTo != nil {
		t.AssignedTo = *u.AssignedTo
	}
	if u.Response != nil {
		t.Response = *u.Response
	}
	if u.AdminNotes != nil {
		t.AdminNotes = *u.AdminNotes
	}
	if u.EstimatedResolutionTime != nil {
		t.EstimatedResolutionTime = *u.EstimatedResolutionTime
	}
	if u.ResolvedAt != nil {
		resolvedAt := *u.ResolvedAt
		t.ResolvedAt = &resolvedAt
	}
	if u.ViewedBy != nil {
		t.ViewedBy = append([]string(nil), (*u.ViewedBy)...)
	}
	if u.IssueType != nil {
		t.IssueType = *u.IssueType
	}
	if u.IssueDescription != nil {
		t.IssueDescription = *u.IssueDescription
	}
	if u.HasIssue != nil {
		t.HasIssue = *u.HasIssue
	}
}

// AppendActivity adds an entry to the end of the activity log.
func (t *DeskTicket) AppendActivity(a TicketActivity) {
	t.Activities = append(t.Activities, a)
}

// ViewedByEmployee reports whether the employee already opened the ticket.
func (t *DeskTicket) ViewedByEmployee(employeeID string) bool {
	for _, id := range t.ViewedBy {
		if id == employeeID {
			return true
		}
	}
	return false
}
