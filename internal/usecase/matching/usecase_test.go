package matching

import (
	"context"
	"testing"

	domain "lendbridge/internal/domain/scheme"
	"lendbridge/internal/testutil/schememock"
	"lendbridge/pkg/apperror"
)

func listing(schemeID string, minAmt, maxAmt float64, minP, maxP int, rate float64, active bool) domain.Listing {
	return domain.Listing{
		LenderRef:   "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		CompanyName: "Shakti Finance",
		Scheme: domain.LoanScheme{
			SchemeID:        schemeID,
			MinAmount:       minAmt,
			MaxAmount:       maxAmt,
			MinPeriodMonths: minP,
			MaxPeriodMonths: maxP,
			InterestRate:    rate,
			IsActive:        active,
		},
	}
}

func TestEligible_PeriodWithinTenure(t *testing.T) {
	pool := []domain.Listing{listing("SCH-001", 25_000, 100_000, 6, 18, 14, true)}

	got := Eligible(Criteria{AmountMin: 30_000, AmountMax: 60_000, PeriodMonths: 12}, pool)
	if len(got) != 1 {
		t.Fatalf("period 12 should match, got %d results", len(got))
	}

	got = Eligible(Criteria{AmountMin: 30_000, AmountMax: 60_000, PeriodMonths: 24}, pool)
	if len(got) != 0 {
		t.Fatalf("period 24 must not match, got %d results", len(got))
	}
}

func TestEligible_AmountOverlap(t *testing.T) {
	pool := []domain.Listing{listing("SCH-001", 25_000, 100_000, 6, 18, 14, true)}

	// touching the lower bound is a non-empty intersection
	if got := Eligible(Criteria{AmountMin: 10_000, AmountMax: 25_000, PeriodMonths: 12}, pool); len(got) != 1 {
		t.Fatalf("boundary overlap should match, got %d", len(got))
	}
	// disjoint below
	if got := Eligible(Criteria{AmountMin: 5_000, AmountMax: 20_000, PeriodMonths: 12}, pool); len(got) != 0 {
		t.Fatalf("disjoint range matched")
	}
	// disjoint above
	if got := Eligible(Criteria{AmountMin: 150_000, AmountMax: 200_000, PeriodMonths: 12}, pool); len(got) != 0 {
		t.Fatalf("disjoint range matched")
	}
}

func TestEligible_SkipsInactive(t *testing.T) {
	pool := []domain.Listing{listing("SCH-001", 25_000, 100_000, 6, 18, 14, false)}
	if got := Eligible(Criteria{AmountMin: 30_000, AmountMax: 60_000, PeriodMonths: 12}, pool); len(got) != 0 {
		t.Fatalf("inactive scheme matched")
	}
}

func TestEligible_CheapestFirstStable(t *testing.T) {
	pool := []domain.Listing{
		listing("SCH-003", 30_000, 90_000, 6, 18, 16, true),
		listing("SCH-001", 25_000, 100_000, 6, 18, 12, true),
		// same rate as SCH-001, higher min amount: sorts after it
		listing("SCH-002", 40_000, 100_000, 6, 18, 12, true),
	}

	got := Eligible(Criteria{AmountMin: 40_000, AmountMax: 60_000, PeriodMonths: 12}, pool)
	if len(got) != 3 {
		t.Fatalf("want 3, got %d", len(got))
	}
	order := []string{got[0].Scheme.SchemeID, got[1].Scheme.SchemeID, got[2].Scheme.SchemeID}
	want := []string{"SCH-001", "SCH-002", "SCH-003"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestEligible_BusinessTypePreference(t *testing.T) {
	open := listing("SCH-001", 25_000, 100_000, 6, 18, 12, true)
	picky := listing("SCH-002", 25_000, 100_000, 6, 18, 12, true)
	picky.Scheme.PreferredBusinessTypes = domain.StringList{"Retail"}
	pool := []domain.Listing{open, picky}

	c := Criteria{AmountMin: 30_000, AmountMax: 60_000, PeriodMonths: 12, BusinessType: "Service"}
	got := Eligible(c, pool)
	if len(got) != 1 || got[0].Scheme.SchemeID != "SCH-001" {
		t.Fatalf("preference filter wrong: %+v", got)
	}

	// unstated type matches everything
	c.BusinessType = ""
	if got := Eligible(c, pool); len(got) != 2 {
		t.Fatalf("unstated type should match all, got %d", len(got))
	}
}

func TestFindEligibleSchemes(t *testing.T) {
	schemes := &schememock.Repo{
		ListActiveListingsFn: func(ctx context.Context) ([]domain.Listing, error) {
			return []domain.Listing{listing("SCH-001", 25_000, 100_000, 6, 18, 14, true)}, nil
		},
	}
	uc := NewUsecase(schemes)

	got, err := uc.FindEligibleSchemes(context.Background(),
		Criteria{AmountMin: 30_000, AmountMax: 60_000, PeriodMonths: 12})
	if err != nil {
		t.Fatalf("FindEligibleSchemes: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1, got %d", len(got))
	}

	// empty result is not an error
	got, err = uc.FindEligibleSchemes(context.Background(),
		Criteria{AmountMin: 500_000, AmountMax: 900_000, PeriodMonths: 12})
	if err != nil || len(got) != 0 {
		t.Fatalf("empty result should be nil-error: got=%v err=%v", got, err)
	}
}

func TestFindEligibleSchemes_BadCriteria(t *testing.T) {
	uc := NewUsecase(&schememock.Repo{})
	for _, c := range []Criteria{
		{AmountMin: 0, AmountMax: 60_000, PeriodMonths: 12},
		{AmountMin: 30_000, AmountMax: 0, PeriodMonths: 12},
		{AmountMin: 60_000, AmountMax: 30_000, PeriodMonths: 12},
		{AmountMin: 30_000, AmountMax: 60_000, PeriodMonths: 0},
	} {
		if _, err := uc.FindEligibleSchemes(context.Background(), c); apperror.CodeOf(err) != apperror.CodeValidation {
			t.Fatalf("criteria %+v: want validation error, got %v", c, err)
		}
	}
}
