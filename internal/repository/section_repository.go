package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VictorHerdz10/ACRP-API/internal/domain"
)

// SectionRepository defines persistence access for sections.
type SectionRepository interface {
	Create(ctx context.Context, section *domain.Section) error
	Update(ctx context.Context, section *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	Delete(ctx context.Context, id string) error
}

type sectionRepository struct {
	pool *pgxpool.Pool
}

// NewSectionRepository returns a Postgres-backed implementation.
func NewSectionRepository(pool *pgxpool.Pool) SectionRepository {
	return &sectionRepository{pool: pool}
}

func (r *sectionRepository) Create(ctx context.Context, section *domain.Section) error {
	const query = `
        INSERT INTO sections (id, title, description)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		section.ID,
		section.Title,
		section.Description,
	).Scan(&section.CreatedAt, &section.UpdatedAt)
}

func (r *sectionRepository) Update(ctx context.Context, section *domain.Section) error {
	const query = `
        UPDATE sections SET title=$1, description=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, section.Title, section.Description, section.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sectionRepository) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	const query = `
        SELECT id, title, description, created_at, updated_at
        FROM sections WHERE id=$1`

	var section domain.Section
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.Title,
		&section.Description,
		&section.CreatedAt,
		&section.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) List(ctx context.Context) ([]*domain.Section, error) {
	const query = `
        SELECT id, title, description, created_at, updated_at
        FROM sections ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*domain.Section
	for rows.Next() {
		var section domain.Section
		if err := rows.Scan(
			&section.ID,
			&section.Title,
			&section.Description,
			&section.CreatedAt,
			&section.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}
	return sections, rows.Err()
}

func (r *sectionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sections WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
