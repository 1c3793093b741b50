package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VictorHerdz10/ACRP-API/internal/domain"
)

// PageRepository defines persistence access for pages.
type PageRepository interface {
	Create(ctx context.Context, page *domain.Page) error
	Update(ctx context.Context, page *domain.Page) error
	GetByID(ctx context.Context, id string) (*domain.Page, error)
	List(ctx context.Context) ([]*domain.Page, error)
	Delete(ctx context.Context, id string) error
}

type pageRepository struct {
	pool *pgxpool.Pool
}

// NewPageRepository returns a Postgres-backed implementation.
func NewPageRepository(pool *pgxpool.Pool) PageRepository {
	return &pageRepository{pool: pool}
}

func (r *pageRepository) Create(ctx context.Context, page *domain.Page) error {
	const query = `
        INSERT INTO pages (id, name, description, section_id, category, specific_attributes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		page.ID,
		page.Name,
		page.Description,
		page.SectionID,
		page.Category,
		page.SpecificAttributes,
	).Scan(&page.CreatedAt, &page.UpdatedAt)
}

func (r *pageRepository) Update(ctx context.Context, page *domain.Page) error {
	const query = `
        UPDATE pages SET name=$1, description=$2, section_id=$3, category=$4,
            specific_attributes=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		page.Name,
		page.Description,
		page.SectionID,
		page.Category,
		page.SpecificAttributes,
		page.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pageRepository) GetByID(ctx context.Context, id string) (*domain.Page, error) {
	const query = `
        SELECT id, name, description, section_id, category, specific_attributes, created_at, updated_at
        FROM pages WHERE id=$1`

	var page domain.Page
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&page.ID,
		&page.Name,
		&page.Description,
		&page.SectionID,
		&page.Category,
		&page.SpecificAttributes,
		&page.CreatedAt,
		&page.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) List(ctx context.Context) ([]*domain.Page, error) {
	const query = `
        SELECT id, name, description, section_id, category, specific_attributes, created_at, updated_at
        FROM pages ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*domain.Page
	for rows.Next() {
		var page domain.Page
		if err := rows.Scan(
			&page.ID,
			&page.Name,
			&page.Description,
			&page.SectionID,
			&page.Category,
			&page.SpecificAttributes,
			&page.CreatedAt,
			&page.UpdatedAt,
		); err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}
	return pages, rows.Err()
}

func (r *pageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM pages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
