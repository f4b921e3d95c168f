package schememock

import (
	"context"

	domain "lendbridge/internal/domain/scheme"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies scheme.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, s *domain.LoanScheme) error
	SaveFn               func(ctx context.Context, s *domain.LoanScheme) error
	GetBySchemeIDFn      func(ctx context.Context, lenderID uint64, schemeID string) (*domain.LoanScheme, error)
	ListByLenderFn       func(ctx context.Context, lenderID uint64, activeOnly bool) ([]domain.LoanScheme, error)
	ListActiveListingsFn func(ctx context.Context) ([]domain.Listing, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.LoanScheme) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, s *domain.LoanScheme) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySchemeID(ctx context.Context, lenderID uint64, schemeID string) (*domain.LoanScheme, error) {
	if m.GetBySchemeIDFn != nil {
		return m.GetBySchemeIDFn(ctx, lenderID, schemeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByLender(ctx context.Context, lenderID uint64, activeOnly bool) ([]domain.LoanScheme, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, lenderID, activeOnly)
	}
	return nil, nil
}

func (m *Repo) ListActiveListings(ctx context.Context) ([]domain.Listing, error) {
	if m.ListActiveListingsFn != nil {
		return m.ListActiveListingsFn(ctx)
	}
	return nil, nil
}
