package repository

import (
	"context"
	"time"

	"github.com/gauravmb/portfolio-backend/internal/model"
)

// InquiryRepository is the persistence interface for contact inquiries.
// Create is append-only; the only mutation after insert is the two admin
// flags. CountRecentByOrigin feeds the submission rate window.
type InquiryRepository interface {
	Create(ctx context.Context, inq *model.Inquiry) error
	List(ctx context.Context, opts model.InquiryListOptions) ([]*model.Inquiry, error)
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)
	CountRecentByOrigin(ctx context.Context, origin string, since time.Time) (int, error)
	UpdateFlags(ctx context.Context, id string, read, replied bool) error
	Delete(ctx context.Context, id string) error
}
