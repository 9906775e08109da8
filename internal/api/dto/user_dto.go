package dto

import (
	"time"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// LoginResponse carries the bearer token and the caller's projection.
type LoginResponse struct {
	Token     string                `json:"token"`
	ExpiresAt time.Time             `json:"expiresAt"`
	User      domain.UserProjection `json:"user"`
}

// DocumentResponse is document metadata.
type DocumentResponse struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	DocumentType string     `json:"documentType"`
	DocumentName string     `json:"documentName"`
	FilePath     string     `json:"filePath"`
	FileSize     *int64     `json:"fileSize"`
	IsVerified   bool       `json:"isVerified"`
	VerifiedBy   *int64     `json:"verifiedBy"`
	VerifiedAt   *time.Time `json:"verifiedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewDocumentList converts documents.
func NewDocumentList(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentResponse{
			ID:           d.ID,
			UserID:       d.UserID,
			DocumentType: d.DocumentType,
			DocumentName: d.DocumentName,
			FilePath:     d.FilePath,
			FileSize:     d.FileSize,
			IsVerified:   d.IsVerified,
			VerifiedBy:   d.VerifiedBy,
			VerifiedAt:   d.VerifiedAt,
			CreatedAt:    d.CreatedAt,
		})
	}
	return out
}

// ApplicationResponse is a scheme application.
type ApplicationResponse struct {
	ID                int64                    `json:"id"`
	UserID            int64                    `json:"userId"`
	SchemeID          int64                    `json:"schemeId"`
	TicketID          *int64                   `json:"ticketId"`
	AppliedBy         *int64                   `json:"appliedBy"`
	Status            domain.ApplicationStatus `json:"status"`
	ApplicationNumber *string                  `json:"applicationNumber"`
	SubmittedAt       *time.Time               `json:"submittedAt"`
	ApprovedAt        *time.Time               `json:"approvedAt"`
	RejectionReason   *string                  `json:"rejectionReason"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

// NewApplicationList converts applications.
func NewApplicationList(apps []domain.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, ApplicationResponse{
			ID:                a.ID,
			UserID:            a.UserID,
			SchemeID:          a.SchemeID,
			TicketID:          a.TicketID,
			AppliedBy:         a.AppliedBy,
			Status:            a.Status,
			ApplicationNumber: a.ApplicationNumber,
			SubmittedAt:       a.SubmittedAt,
			ApprovedAt:        a.ApprovedAt,
			RejectionReason:   a.RejectionReason,
			CreatedAt:         a.CreatedAt,
			UpdatedAt:         a.UpdatedAt,
		})
	}
	return out
}
