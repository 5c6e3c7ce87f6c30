package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgInquiryRepository is the PostgreSQL implementation of InquiryRepository.
type PgInquiryRepository struct {
	pool *pgxpool.Pool
}

// NewPgInquiryRepository creates a PgInquiryRepository backed by the given pool.
func NewPgInquiryRepository(pool *pgxpool.Pool) *PgInquiryRepository {
	return &PgInquiryRepository{pool: pool}
}

var _ InquiryRepository = (*PgInquiryRepository)(nil)

// Create inserts a new inquiries row and populates inq.ID and CreatedAt
// from the database RETURNING clause. Rows are never updated through this
// method; sender fields and origin are immutable after insert.
func (r *PgInquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO inquiries (name, email, subject, message, origin, read, replied)
		 VALUES ($1, $2, $3, $4, $5, false, false)
		 RETURNING id, read, replied, created_at`,
		inq.Name, inq.Email, inq.Subject, inq.Message, inq.Origin,
	).Scan(&inq.ID, &inq.Read, &inq.Replied, &inq.CreatedAt)
}

// List returns inquiries filtered by read status and paginated by
// limit/offset, newest first. Status "" or "all" returns all inquiries.
func (r *PgInquiryRepository) List(ctx context.Context, opts model.InquiryListOptions) ([]*model.Inquiry, error) {
	where := ""
	var args []any
	switch opts.Status {
	case "unread":
		where = "WHERE NOT read"
	case "read":
		where = "WHERE read"
	}

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, origin, read, replied, created_at
		 FROM inquiries `+where+`
		 ORDER BY created_at DESC
		 LIMIT $`+limitArg+` OFFSET $`+offsetArg, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*model.Inquiry
	for rows.Next() {
		var m model.Inquiry
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.Origin, &m.Read, &m.Replied, &m.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, &m)
	}
	return inquiries, rows.Err()
}

// GetByID returns one inquiry by id, or ErrNotFound.
func (r *PgInquiryRepository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	var m model.Inquiry
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, subject, message, origin, read, replied, created_at
		 FROM inquiries WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.Origin, &m.Read, &m.Replied, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CountRecentByOrigin counts inquiries from one origin newer than since.
// Served by the (origin, created_at) index.
func (r *PgInquiryRepository) CountRecentByOrigin(ctx context.Context, origin string, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inquiries WHERE origin = $1 AND created_at > $2`,
		origin, since,
	).Scan(&n)
	return n, err
}

// UpdateFlags sets the two admin booleans. Sender fields are untouchable
// here by construction.
func (r *PgInquiryRepository) UpdateFlags(ctx context.Context, id string, read, replied bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE inquiries SET read = $2, replied = $3 WHERE id = $1`,
		id, read, replied)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an inquiry by id, or returns ErrNotFound.
func (r *PgInquiryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
