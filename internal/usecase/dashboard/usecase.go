// Package dashboard builds read-only projections for NBFC- and
// borrower-facing summary screens. No mutation happens here.
package dashboard

import (
	"context"
	"errors"
	"time"

	appDomain "lendbridge/internal/domain/application"
	lenderDomain "lendbridge/internal/domain/lender"
	schemeDomain "lendbridge/internal/domain/scheme"
	"lendbridge/pkg/apperror"
	"lendbridge/pkg/id"

	"gorm.io/gorm"
)

// recentApplicantsLimit caps the NBFC dashboard's applicant feed.
const recentApplicantsLimit = 5

type ApplicationSummary struct {
	ApplicationID   string    `json:"application_id"`
	SchemeID        string    `json:"scheme_id"`
	ApplicantName   string    `json:"applicant_name"`
	BusinessName    string    `json:"business_name"`
	RequestedAmount float64   `json:"requested_amount"`
	Status          string    `json:"status"`
	LegacyStatus    string    `json:"legacy_status"`
	AppliedAt       time.Time `json:"applied_at"`
}

type NBFCDashboardDTO struct {
	CompanyName      string                    `json:"company_name"`
	Stats            lenderDomain.Stats        `json:"stats"`
	ActiveSchemes    []schemeDomain.LoanScheme `json:"active_schemes"`
	RecentApplicants []ApplicationSummary      `json:"recent_applicants"`
}

type Usecase struct {
	lenders lenderDomain.Repository
	schemes schemeDomain.Repository
	apps    appDomain.Repository
}

func NewUsecase(lenders lenderDomain.Repository, schemes schemeDomain.Repository, apps appDomain.Repository) *Usecase {
	return &Usecase{lenders: lenders, schemes: schemes, apps: apps}
}

// NBFC assembles the lender's dashboard. A malformed id is a client
// error in its own right, distinct from an unknown one.
func (u *Usecase) NBFC(ctx context.Context, lenderID string) (*NBFCDashboardDTO, error) {
	if !id.Valid32(lenderID) {
		return nil, apperror.New(apperror.CodeValidation, "malformed lender id")
	}
	l, err := u.lenders.GetByLenderID(ctx, lenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "lender not found")
		}
		return nil, apperror.Wrap(apperror.CodeInternal, "load lender", err)
	}

	schemes, err := u.schemes.ListByLender(ctx, l.ID, true)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "list schemes", err)
	}
	recent, err := u.apps.ListRecentByLender(ctx, l.ID, recentApplicantsLimit)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "list applications", err)
	}

	return &NBFCDashboardDTO{
		CompanyName:      l.CompanyName,
		Stats:            l.Stats,
		ActiveSchemes:    schemes,
		RecentApplicants: toSummaries(recent),
	}, nil
}

// Borrower lists the borrower's applications across all lenders,
// newest first.
func (u *Usecase) Borrower(ctx context.Context, borrowerRef string) ([]ApplicationSummary, error) {
	if borrowerRef == "" {
		return nil, apperror.New(apperror.CodeValidation, "borrower ref is required")
	}
	apps, err := u.apps.ListByBorrower(ctx, borrowerRef)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "list applications", err)
	}
	return toSummaries(apps), nil
}

func toSummaries(apps []appDomain.Application) []ApplicationSummary {
	out := make([]ApplicationSummary, 0, len(apps))
	for _, a := range apps {
		out = append(out, ApplicationSummary{
			ApplicationID:   a.ApplicationID,
			SchemeID:        a.SchemeID,
			ApplicantName:   a.ApplicantName,
			BusinessName:    a.BusinessName,
			RequestedAmount: a.RequestedAmount,
			Status:          string(a.Status),
			LegacyStatus:    a.Status.Legacy(),
			AppliedAt:       a.AppliedAt,
		})
	}
	return out
}
