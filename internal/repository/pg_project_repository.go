package repository

import (
	"context"
	"errors"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, title, short_description, description, image_url,
	gallery_urls, category, repo_url, live_url, featured, published,
	display_order, created_at, updated_at`

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.ShortDescription, &p.Description,
		&p.ImageURL, &p.GalleryURLs, &p.Category, &p.RepoURL, &p.LiveURL,
		&p.Featured, &p.Published, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListPublished returns published projects only, newest first.
func (r *PgProjectRepository) ListPublished(ctx context.Context) ([]*model.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+`
		 FROM projects WHERE published ORDER BY created_at DESC`)
}

// List returns every project regardless of visibility, for the admin view.
// Ordered by the admin-set display order, newest first within a tie.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+`
		 FROM projects ORDER BY display_order ASC, created_at DESC`)
}

// GetByID returns a project by id regardless of visibility, or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create inserts a new project and populates p.ID and both timestamps
// from the database RETURNING clause.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, short_description, description, image_url,
		   gallery_urls, category, repo_url, live_url, featured, published, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.ShortDescription, p.Description, p.ImageURL, p.GalleryURLs,
		p.Category, p.RepoURL, p.LiveURL, p.Featured, p.Published, p.DisplayOrder,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update overwrites a project row and refreshes updated_at.
func (r *PgProjectRepository) Update(ctx context.Context, p *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE projects SET title = $2, short_description = $3, description = $4,
		   image_url = $5, gallery_urls = $6, category = $7, repo_url = $8,
		   live_url = $9, featured = $10, published = $11, display_order = $12,
		   updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		p.ID, p.Title, p.ShortDescription, p.Description, p.ImageURL,
		p.GalleryURLs, p.Category, p.RepoURL, p.LiveURL, p.Featured,
		p.Published, p.DisplayOrder,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a project by id, or returns ErrNotFound.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateImageURL sets only the cover image URL of a project.
func (r *PgProjectRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET image_url = $2, updated_at = now() WHERE id = $1`,
		id, imageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
