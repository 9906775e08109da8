package dto

import (
	"time"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// CategoryResponse is a scheme category.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Icon        string    `json:"icon"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryDetailResponse is a category with its schemes.
type CategoryDetailResponse struct {
	CategoryResponse
	Schemes []SchemeResponse `json:"schemes"`
}

// SchemeResponse is a directory entry.
type SchemeResponse struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"categoryId"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Ministry     string    `json:"ministry"`
	Description  string    `json:"description"`
	Benefits     string    `json:"benefits"`
	Eligibility  *string   `json:"eligibility"`
	HowToApply   *string   `json:"howToApply"`
	OfficialLink *string   `json:"officialLink"`
	ImageURL     *string   `json:"imageUrl"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewCategoryResponse converts a category.
func NewCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Icon:        c.Icon,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// NewCategoryList converts categories.
func NewCategoryList(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

// NewSchemeResponse converts a scheme.
func NewSchemeResponse(s domain.Scheme) SchemeResponse {
	return SchemeResponse{
		ID:           s.ID,
		CategoryID:   s.CategoryID,
		Title:        s.Title,
		Slug:         s.Slug,
		Ministry:     s.Ministry,
		Description:  s.Description,
		Benefits:     s.Benefits,
		Eligibility:  s.Eligibility,
		HowToApply:   s.HowToApply,
		OfficialLink: s.OfficialLink,
		ImageURL:     s.ImageURL,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// NewSchemeList converts schemes.
func NewSchemeList(schemes []domain.Scheme) []SchemeResponse {
	out := make([]SchemeResponse, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, NewSchemeResponse(s))
	}
	return out
}
