package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/VictorHerdz10/ACRP-API/internal/domain"
	"github.com/VictorHerdz10/ACRP-API/internal/repository"
	"github.com/VictorHerdz10/ACRP-API/pkg/util"
)

// PageInput carries the creatable fields of a page.
type PageInput struct {
	Name               string
	Description        string
	SectionID          string
	Category           string
	SpecificAttributes string
}

// PageUpdate carries optional fields for partial updates.
type PageUpdate struct {
	Name               *string
	Description        *string
	SectionID          *string
	Category           *string
	SpecificAttributes *string
}

// PageService manages page records. Pages must reference an existing
// section and carry a name unique under normalization.
type PageService struct {
	pages    repository.PageRepository
	sections repository.SectionRepository
}

// NewPageService builds the service.
func NewPageService(pages repository.PageRepository, sections repository.SectionRepository) *PageService {
	return &PageService{pages: pages, sections: sections}
}

// List returns all pages.
func (s *PageService) List(ctx context.Context) ([]*domain.Page, error) {
	return s.pages.List(ctx)
}

// Get returns one page by id.
func (s *PageService) Get(ctx context.Context, id string) (*domain.Page, error) {
	page, err := s.pages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("page")
		}
		return nil, err
	}
	return page, nil
}

// Create stores a new page after the section-existence and name
// uniqueness checks.
func (s *PageService) Create(ctx context.Context, input PageInput) (*domain.Page, error) {
	if err := s.requireSection(ctx, input.SectionID); err != nil {
		return nil, err
	}
	exists, err := s.nameExists(ctx, input.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.NewConflict("a page with this name already exists")
	}

	attrs := input.SpecificAttributes
	if attrs == "" {
		attrs = "{}"
	}
	page := &domain.Page{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		Description:        input.Description,
		SectionID:          input.SectionID,
		Category:           input.Category,
		SpecificAttributes: attrs,
	}
	if err := s.pages.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Update applies the provided fields, re-running the section check when
// the page moves and the name check when it is renamed.
func (s *PageService) Update(ctx context.Context, id string, update PageUpdate) (*domain.Page, error) {
	page, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.SectionID != nil && *update.SectionID != page.SectionID {
		if err := s.requireSection(ctx, *update.SectionID); err != nil {
			return nil, err
		}
		page.SectionID = *update.SectionID
	}
	if update.Name != nil && *update.Name != page.Name {
		exists, err := s.nameExists(ctx, *update.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, util.NewConflict("a page with this name already exists")
		}
		page.Name = *update.Name
	}
	if update.Description != nil {
		page.Description = *update.Description
	}
	if update.Category != nil {
		page.Category = *update.Category
	}
	if update.SpecificAttributes != nil {
		page.SpecificAttributes = *update.SpecificAttributes
	}

	if err := s.pages.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a page.
func (s *PageService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.pages.Delete(ctx, id)
}

func (s *PageService) requireSection(ctx context.Context, sectionID string) error {
	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewValidationError("the referenced section does not exist")
		}
		return err
	}
	return nil
}

func (s *PageService) nameExists(ctx context.Context, name, excludeID string) (bool, error) {
	pages, err := s.pages.List(ctx)
	if err != nil {
		return false, err
	}
	key := util.NormalizeKey(name)
	for _, page := range pages {
		if page.ID != excludeID && util.NormalizeKey(page.Name) == key {
			return true, nil
		}
	}
	return false, nil
}
