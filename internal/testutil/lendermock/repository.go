package lendermock

import (
	"context"

	domain "lendbridge/internal/domain/lender"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies lender.Repository.
// Fill in the function fields a test needs; unfilled getters report
// record-not-found so usecases exercise their missing-lender paths.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Lender) error
	SaveFn                   func(ctx context.Context, l *domain.Lender) error
	GetByLenderIDFn          func(ctx context.Context, lenderID string) (*domain.Lender, error)
	GetByLenderIDForUpdateFn func(ctx context.Context, lenderID string) (*domain.Lender, error)
	GetByIDForUpdateFn       func(ctx context.Context, id uint64) (*domain.Lender, error)
	GetByCompanyNameFn       func(ctx context.Context, companyName string) (*domain.Lender, error)
	GetByCINNumberFn         func(ctx context.Context, cinNumber string) (*domain.Lender, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Lender) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Lender) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLenderID(ctx context.Context, lenderID string) (*domain.Lender, error) {
	if m.GetByLenderIDFn != nil {
		return m.GetByLenderIDFn(ctx, lenderID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLenderIDForUpdate(ctx context.Context, lenderID string) (*domain.Lender, error) {
	if m.GetByLenderIDForUpdateFn != nil {
		return m.GetByLenderIDForUpdateFn(ctx, lenderID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Lender, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByCompanyName(ctx context.Context, companyName string) (*domain.Lender, error) {
	if m.GetByCompanyNameFn != nil {
		return m.GetByCompanyNameFn(ctx, companyName)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByCINNumber(ctx context.Context, cinNumber string) (*domain.Lender, error) {
	if m.GetByCINNumberFn != nil {
		return m.GetByCINNumberFn(ctx, cinNumber)
	}
	return nil, gorm.ErrRecordNotFound
}
