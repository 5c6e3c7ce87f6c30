package repository

import (
	"context"
	"errors"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// profileKey is the fixed primary key of the singleton profile row.
const profileKey = "owner"

// PgProfileRepository is the PostgreSQL implementation of ProfileRepository.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPgProfileRepository creates a PgProfileRepository backed by the given pool.
func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

var _ ProfileRepository = (*PgProfileRepository)(nil)

// Get returns the singleton profile. A missing row means the database was
// not seeded and surfaces as ErrNotFound.
func (r *PgProfileRepository) Get(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT name, title, bio, email, location, github_url, linkedin_url,
		   skills, resume_url, updated_at
		 FROM profile WHERE id = $1`, profileKey,
	).Scan(&p.Name, &p.Title, &p.Bio, &p.Email, &p.Location,
		&p.GitHubURL, &p.LinkedIn, &p.Skills, &p.ResumeURL, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update overwrites the singleton profile row and refreshes updated_at.
func (r *PgProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE profile SET name = $2, title = $3, bio = $4, email = $5,
		   location = $6, github_url = $7, linkedin_url = $8, skills = $9,
		   resume_url = $10, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		profileKey, p.Name, p.Title, p.Bio, p.Email, p.Location,
		p.GitHubURL, p.LinkedIn, p.Skills, p.ResumeURL,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
