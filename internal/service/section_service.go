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

// SectionService manages section records. Title uniqueness is checked on
// the normalized form so accents and casing do not create duplicates.
type SectionService struct {
	sections repository.SectionRepository
}

// NewSectionService builds the service.
func NewSectionService(sections repository.SectionRepository) *SectionService {
	return &SectionService{sections: sections}
}

// List returns all sections.
func (s *SectionService) List(ctx context.Context) ([]*domain.Section, error) {
	return s.sections.List(ctx)
}

// Get returns one section by id.
func (s *SectionService) Get(ctx context.Context, id string) (*domain.Section, error) {
	section, err := s.sections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("section")
		}
		return nil, err
	}
	return section, nil
}

// Create stores a new section after the title uniqueness check.
func (s *SectionService) Create(ctx context.Context, title, description string) (*domain.Section, error) {
	exists, err := s.titleExists(ctx, title, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.NewConflict("a section with this title already exists")
	}

	section := &domain.Section{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// Update applies the provided fields. Nil pointers leave the current
// value untouched.
func (s *SectionService) Update(ctx context.Context, id string, title, description *string) (*domain.Section, error) {
	section, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil && *title != section.Title {
		exists, err := s.titleExists(ctx, *title, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, util.NewConflict("a section with this title already exists")
		}
		section.Title = *title
	}
	if description != nil {
		section.Description = *description
	}

	if err := s.sections.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// Delete removes a section.
func (s *SectionService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sections.Delete(ctx, id)
}

func (s *SectionService) titleExists(ctx context.Context, title, excludeID string) (bool, error) {
	sections, err := s.sections.List(ctx)
	if err != nil {
		return false, err
	}
	key := util.NormalizeKey(title)
	for _, section := range sections {
		if section.ID != excludeID && util.NormalizeKey(section.Title) == key {
			return true, nil
		}
	}
	return false, nil
}
