package service

import (
	"context"
	"time"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
)

// inquiryServiceImpl is the production implementation of InquiryService.
type inquiryServiceImpl struct {
	repo      repository.InquiryRepository
	rateLimit int
	window    time.Duration
	now       func() time.Time
}

// NewInquiryService creates an InquiryService backed by the given
// repository. rateLimit and window define the per-origin submission
// window (e.g. 3 per trailing 60 minutes).
func NewInquiryService(repo repository.InquiryRepository, rateLimit int, window time.Duration) InquiryService {
	return &inquiryServiceImpl{
		repo:      repo,
		rateLimit: rateLimit,
		window:    window,
		now:       time.Now,
	}
}

// Submit enforces the submission window, then appends the inquiry. The
// window count is recomputed from the store on every call, so it is
// self-correcting and needs no cleanup job.
func (s *inquiryServiceImpl) Submit(ctx context.Context, inq *model.Inquiry) error {
	since := s.now().Add(-s.window)
	n, err := s.repo.CountRecentByOrigin(ctx, inq.Origin, since)
	if err != nil {
		return err
	}
	if n >= s.rateLimit {
		return ErrRateLimited
	}
	return s.repo.Create(ctx, inq)
}

func (s *inquiryServiceImpl) List(ctx context.Context, opts model.InquiryListOptions) ([]*model.Inquiry, error) {
	return s.repo.List(ctx, opts)
}

func (s *inquiryServiceImpl) Get(ctx context.Context, id string) (*model.Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateFlags changes only the two admin booleans; sender-supplied fields
// stay immutable.
func (s *inquiryServiceImpl) UpdateFlags(ctx context.Context, id string, read, replied bool) error {
	return s.repo.UpdateFlags(ctx, id, read, replied)
}

func (s *inquiryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
