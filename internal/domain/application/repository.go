package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	ListByLender(ctx context.Context, lenderID uint64) ([]Application, error)
	// ListRecentByLender returns up to limit applications, newest
	// appliedAt first, ties broken by insertion order.
	ListRecentByLender(ctx context.Context, lenderID uint64, limit int) ([]Application, error)
	ListByBorrower(ctx context.Context, borrowerRef string) ([]Application, error)
}
