package domain

import "time"

// Document is an uploaded citizen document; only its metadata is served.
type Document struct {
	ID           int64
	UserID       int64
	DocumentType string
	DocumentName string
	FilePath     string
	FileSize     *int64
	IsVerified   bool
	VerifiedBy   *int64
	VerifiedAt   *time.Time
	CreatedAt    time.Time
}

// ApplicationStatus tracks a scheme application.
type ApplicationStatus string

const (
	ApplicationStatusDraft       ApplicationStatus = "draft"
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Application is a citizen's application to a scheme, possibly filed by an employee.
type Application struct {
	ID                int64
	UserID            int64
	SchemeID          int64
	TicketID          *int64
	AppliedBy         *int64
	Status            ApplicationStatus
	ApplicationNumber *string
	SubmittedAt       *time.Time
	ApprovedAt        *time.Time
	RejectionReason   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
