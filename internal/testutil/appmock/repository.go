package appmock

import (
	"context"

	domain "lendbridge/internal/domain/application"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.Application) error
	SaveFn               func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByLenderFn       func(ctx context.Context, lenderID uint64) ([]domain.Application, error)
	ListRecentByLenderFn func(ctx context.Context, lenderID uint64, limit int) ([]domain.Application, error)
	ListByBorrowerFn     func(ctx context.Context, borrowerRef string) ([]domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByLender(ctx context.Context, lenderID uint64) ([]domain.Application, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, lenderID)
	}
	return nil, nil
}

func (m *Repo) ListRecentByLender(ctx context.Context, lenderID uint64, limit int) ([]domain.Application, error) {
	if m.ListRecentByLenderFn != nil {
		return m.ListRecentByLenderFn(ctx, lenderID, limit)
	}
	return nil, nil
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerRef string) ([]domain.Application, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerRef)
	}
	return nil, nil
}
