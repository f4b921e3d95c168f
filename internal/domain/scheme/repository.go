package scheme

import "context"

type Repository interface {
	Create(ctx context.Context, s *LoanScheme) error
	Save(ctx context.Context, s *LoanScheme) error
	// GetBySchemeID resolves a scheme by its per-lender id (SCH-NNN).
	GetBySchemeID(ctx context.Context, lenderID uint64, schemeID string) (*LoanScheme, error)
	ListByLender(ctx context.Context, lenderID uint64, activeOnly bool) ([]LoanScheme, error)
	// ListActiveListings returns every active scheme across all lenders,
	// joined with the owning lender's public id and company name.
	ListActiveListings(ctx context.Context) ([]Listing, error)
}
