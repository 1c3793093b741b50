package dto

import (
	"time"

	"github.com/VictorHerdz10/ACRP-API/internal/domain"
)

// CreatePageRequest payload for new pages.
type CreatePageRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	SectionID          string `json:"sectionId"`
	Category           string `json:"category"`
	SpecificAttributes string `json:"specificAttributes"`
}

// UpdatePageRequest payload for partial updates; nil fields are left
// unchanged.
type UpdatePageRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	SectionID          *string `json:"sectionId"`
	Category           *string `json:"category"`
	SpecificAttributes *string `json:"specificAttributes"`
}

// PageResponse is the page shape returned by the API.
type PageResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	SectionID          string    `json:"sectionId"`
	Category           string    `json:"category"`
	SpecificAttributes string    `json:"specificAttributes"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NewPageResponse maps a page record to its response shape.
func NewPageResponse(page *domain.Page) PageResponse {
	return PageResponse{
		ID:                 page.ID,
		Name:               page.Name,
		Description:        page.Description,
		SectionID:          page.SectionID,
		Category:           page.Category,
		SpecificAttributes: page.SpecificAttributes,
		CreatedAt:          page.CreatedAt,
		UpdatedAt:          page.UpdatedAt,
	}
}

// NewPageResponses maps a list of pages.
func NewPageResponses(pages []*domain.Page) []PageResponse {
	out := make([]PageResponse, 0, len(pages))
	for _, page := range pages {
		out = append(out, NewPageResponse(page))
	}
	return out
}
