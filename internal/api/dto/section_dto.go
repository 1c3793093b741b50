package dto

import (
	"time"

	"github.com/VictorHerdz10/ACRP-API/internal/domain"
)

// CreateSectionRequest payload for new sections.
type CreateSectionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateSectionRequest payload for partial updates; nil fields are left
// unchanged.
type UpdateSectionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// SectionResponse is the section shape returned by the API.
type SectionResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewSectionResponse maps a section record to its response shape.
func NewSectionResponse(section *domain.Section) SectionResponse {
	return SectionResponse{
		ID:          section.ID,
		Title:       section.Title,
		Description: section.Description,
		CreatedAt:   section.CreatedAt,
		UpdatedAt:   section.UpdatedAt,
	}
}

// NewSectionResponses maps a list of sections.
func NewSectionResponses(sections []*domain.Section) []SectionResponse {
	out := make([]SectionResponse, 0, len(sections))
	for _, section := range sections {
		out = append(out, NewSectionResponse(section))
	}
	return out
}
