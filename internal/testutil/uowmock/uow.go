package uowmock

import (
	"context"
	"errors"

	"lendbridge/internal/domain/application"
	"lendbridge/internal/domain/lender"
	"lendbridge/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in
// the function fields a test needs; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLenderTxFn func(ctx context.Context, lenderID string,
		fn func(r uow.Repos, l *lender.Lender) error) error
	WithinApplicationTxFn func(ctx context.Context, applicationID string,
		fn func(r uow.Repos, l *lender.Lender, a *application.Application) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires the mock to run callbacks immediately against the
// supplied repos and aggregates, with no transaction semantics. l and a
// are handed to every lender/application-scoped callback.
func Passthrough(r uow.Repos, l *lender.Lender, a *application.Application) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinLenderTxFn: func(ctx context.Context, lenderID string, fn func(uow.Repos, *lender.Lender) error) error {
			return fn(r, l)
		},
		WithinApplicationTxFn: func(ctx context.Context, applicationID string, fn func(uow.Repos, *lender.Lender, *application.Application) error) error {
			return fn(r, l, a)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLenderTx(ctx context.Context, lenderID string, fn func(r uow.Repos, l *lender.Lender) error) error {
	if m.WithinLenderTxFn != nil {
		return m.WithinLenderTxFn(ctx, lenderID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinApplicationTx(ctx context.Context, applicationID string,
	fn func(r uow.Repos, l *lender.Lender, a *application.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, applicationID, fn)
	}
	return errUnimplemented
}
