package domain

import "time"

// Category groups schemes for a citizen audience.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Icon        string
	Description *string
	CreatedAt   time.Time
}

// Scheme is a government scheme listed in the directory.
type Scheme struct {
	ID           int64
	CategoryID   int64
	Title        string
	Slug         string
	Ministry     string
	Description  string
	Benefits     string
	Eligibility  *string
	HowToApply   *string
	OfficialLink *string
	ImageURL     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
