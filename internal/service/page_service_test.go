package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/VictorHerdz10/ACRP-API/internal/domain"
)

type fakePageRepo struct {
	byID map[string]*domain.Page
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{byID: make(map[string]*domain.Page)}
}

func (f *fakePageRepo) Create(_ context.Context, page *domain.Page) error {
	f.byID[page.ID] = page
	return nil
}

func (f *fakePageRepo) Update(_ context.Context, page *domain.Page) error {
	if _, ok := f.byID[page.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[page.ID] = page
	return nil
}

func (f *fakePageRepo) GetByID(_ context.Context, id string) (*domain.Page, error) {
	page, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *page
	return &copied, nil
}

func (f *fakePageRepo) List(_ context.Context) ([]*domain.Page, error) {
	pages := make([]*domain.Page, 0, len(f.byID))
	for _, page := range f.byID {
		copied := *page
		pages = append(pages, &copied)
	}
	return pages, nil
}

func (f *fakePageRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func newTestPageService(t *testing.T) (*PageService, *domain.Section) {
	t.Helper()
	sections := newFakeSectionRepo()
	section := &domain.Section{ID: "sec-1", Title: "General", Description: "root"}
	require.NoError(t, sections.Create(context.Background(), section))
	return NewPageService(newFakePageRepo(), sections), section
}

func TestPageCreateRequiresExistingSection(t *testing.T) {
	svc, section := newTestPageService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, PageInput{
		Name: "Home", Description: "landing", SectionID: "missing", Category: "static",
	})
	require.Error(t, err)

	page, err := svc.Create(ctx, PageInput{
		Name: "Home", Description: "landing", SectionID: section.ID, Category: "static",
	})
	require.NoError(t, err)
	require.Equal(t, "{}", page.SpecificAttributes, "empty attributes default to an empty JSON object")
}

func TestPageNameUniquenessIsNormalized(t *testing.T) {
	svc, section := newTestPageService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, PageInput{
		Name: "Región Norte", Description: "d", SectionID: section.ID, Category: "c",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, PageInput{
		Name: " region norte", Description: "d", SectionID: section.ID, Category: "c",
	})
	require.Error(t, err)
}

func TestPagePartialUpdate(t *testing.T) {
	svc, section := newTestPageService(t)
	ctx := context.Background()

	page, err := svc.Create(ctx, PageInput{
		Name: "Home", Description: "old", SectionID: section.ID, Category: "static",
		SpecificAttributes: `{"theme":"dark"}`,
	})
	require.NoError(t, err)

	newDesc := "new"
	updated, err := svc.Update(ctx, page.ID, PageUpdate{Description: &newDesc})
	require.NoError(t, err)
	require.Equal(t, "new", updated.Description)
	require.Equal(t, "Home", updated.Name)
	require.Equal(t, `{"theme":"dark"}`, updated.SpecificAttributes)

	// Moving to a nonexistent section is rejected before any write.
	badSection := "nope"
	_, err = svc.Update(ctx, page.ID, PageUpdate{SectionID: &badSection})
	require.Error(t, err)

	got, err := svc.Get(ctx, page.ID)
	require.NoError(t, err)
	require.Equal(t, section.ID, got.SectionID)
}

func TestPageDelete(t *testing.T) {
	svc, section := newTestPageService(t)
	ctx := context.Background()

	page, err := svc.Create(ctx, PageInput{
		Name: "Temp", Description: "d", SectionID: section.ID, Category: "c",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, page.ID))
	require.Error(t, svc.Delete(ctx, page.ID))
}
