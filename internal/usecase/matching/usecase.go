// Package matching filters published schemes against borrower-stated
// loan criteria. The filter itself is a pure function over supplied
// data; the usecase only adds the repository read.
package matching

import (
	"context"
	"sort"

	domain "lendbridge/internal/domain/scheme"
	"lendbridge/pkg/apperror"
)

// Criteria is what the borrower states up front. BusinessType is
// optional; empty means unstated and matches every scheme.
type Criteria struct {
	AmountMin    float64 `json:"amount_min"`
	AmountMax    float64 `json:"amount_max"`
	PeriodMonths int     `json:"period_months"`
	BusinessType string  `json:"business_type,omitempty"`
}

func (c Criteria) validate() error {
	switch {
	case c.AmountMin <= 0 || c.AmountMax <= 0:
		return apperror.New(apperror.CodeValidation, "amount bounds must be positive")
	case c.AmountMin > c.AmountMax:
		return apperror.New(apperror.CodeValidation, "amount_min exceeds amount_max")
	case c.PeriodMonths <= 0:
		return apperror.New(apperror.CodeValidation, "period_months must be positive")
	}
	return nil
}

// Eligible returns the listings whose scheme the borrower can apply
// to: the requested amount range overlaps the scheme's bounds, the
// period falls inside the scheme's tenure range, the scheme is active,
// and the business type is acceptable. Results are ordered cheapest
// first (ascending interest rate, ties by ascending min amount) so
// borrowers see the best offers on top. Pure; no side effects.
func Eligible(c Criteria, listings []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, li := range listings {
		s := li.Scheme
		if !s.IsActive {
			continue
		}
		if c.AmountMax < s.MinAmount || c.AmountMin > s.MaxAmount {
			continue // empty intersection
		}
		if !s.PeriodInRange(c.PeriodMonths) {
			continue
		}
		if !s.AcceptsBusinessType(c.BusinessType) {
			continue
		}
		out = append(out, li)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Scheme, out[j].Scheme
		if a.InterestRate != b.InterestRate {
			return a.InterestRate < b.InterestRate
		}
		return a.MinAmount < b.MinAmount
	})
	return out
}

type Usecase struct{ schemes domain.Repository }

func NewUsecase(schemes domain.Repository) *Usecase { return &Usecase{schemes: schemes} }

// FindEligibleSchemes queries every lender's active schemes and filters
// them against the criteria. An empty result is not an error.
func (u *Usecase) FindEligibleSchemes(ctx context.Context, c Criteria) ([]domain.Listing, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	listings, err := u.schemes.ListActiveListings(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "list schemes", err)
	}
	return Eligible(c, listings), nil
}
