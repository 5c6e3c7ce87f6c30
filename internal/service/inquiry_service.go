package service

import (
	"context"
	"errors"

	"github.com/gauravmb/portfolio-backend/internal/model"
)

// ErrRateLimited is returned by Submit when the submitting origin has
// reached its window limit. Handlers translate it into a 429.
var ErrRateLimited = errors.New("rate limited")

// InquiryService defines the business logic for contact inquiries.
type InquiryService interface {
	// Submit counts the origin's recent submissions and either refuses
	// with ErrRateLimited or stores the inquiry, populating inq.ID,
	// CreatedAt and the two flags (false).
	//
	// The count-then-insert sequence is intentionally not transactional:
	// two near-simultaneous submissions from one origin may both pass the
	// check. The window is an anti-abuse measure, not a security
	// boundary, and a one-off overshoot is accepted.
	Submit(ctx context.Context, inq *model.Inquiry) error

	// Admin operations.
	List(ctx context.Context, opts model.InquiryListOptions) ([]*model.Inquiry, error)
	Get(ctx context.Context, id string) (*model.Inquiry, error)
	UpdateFlags(ctx context.Context, id string, read, replied bool) error
	Delete(ctx context.Context, id string) error
}
