package lender

import "context"

type Repository interface {
	Create(ctx context.Context, l *Lender) error
	Save(ctx context.Context, l *Lender) error
	GetByLenderID(ctx context.Context, lenderID string) (*Lender, error)
	// GetByLenderIDForUpdate locks the lender row for the duration of the
	// surrounding transaction (single-writer per aggregate).
	GetByLenderIDForUpdate(ctx context.Context, lenderID string) (*Lender, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Lender, error)
	GetByCompanyName(ctx context.Context, companyName string) (*Lender, error)
	GetByCINNumber(ctx context.Context, cinNumber string) (*Lender, error)
}
