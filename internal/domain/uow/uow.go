package uow

import (
	"context"

	"lendbridge/internal/domain/application"
	"lendbridge/internal/domain/lender"
	"lendbridge/internal/domain/scheme"
)

type Repos struct {
	Lenders      lender.Repository
	Schemes      scheme.Repository
	Applications application.Repository
}

// UnitOfWork serializes writes per lender aggregate: the lender-scoped
// variants lock the lender row before invoking fn, so scheme counters,
// application status, and the stats snapshot always commit together.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the lender row first, then pass the fresh aggregate in
	WithinLenderTx(ctx context.Context, lenderID string, fn func(r Repos, l *lender.Lender) error) error
	// resolve the application, lock its owning lender, re-read the
	// application under the lock
	WithinApplicationTx(ctx context.Context, applicationID string,
		fn func(r Repos, l *lender.Lender, a *application.Application) error) error
}
