package application

import (
	"context"
	"errors"
	"time"

	domain "lendbridge/internal/domain/application"
	lenderDomain "lendbridge/internal/domain/lender"
	"lendbridge/internal/domain/uow"
	"lendbridge/pkg/apperror"
	"lendbridge/pkg/id"

	"gorm.io/gorm"
)

// Usecase drives the application lifecycle. Every mutation runs inside
// the owning lender's serialized transaction so the status change and
// the counters it implies commit together.
type Usecase struct {
	apps domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(apps domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, uow: tx}
}

// Create opens an application against a scheme in state pending.
// Eligibility was already enforced by the matcher; the amount bounds
// are re-validated defensively against the scheme at creation time.
func (u *Usecase) Create(ctx context.Context, lenderID, schemeID string, in CreateInput) (*ApplicationDTO, error) {
	if in.BorrowerRef == "" || in.ApplicantName == "" || in.BusinessName == "" {
		return nil, apperror.New(apperror.CodeValidation,
			"borrower_ref, applicant_name and business_name are required")
	}
	if in.RequestedAmount <= 0 {
		return nil, apperror.New(apperror.CodeValidation, "requested amount must be positive")
	}

	var dto *ApplicationDTO
	err := u.uow.WithinLenderTx(ctx, lenderID, func(r uow.Repos, l *lenderDomain.Lender) error {
		s, err := r.Schemes.GetBySchemeID(ctx, l.ID, schemeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.Newf(apperror.CodeNotFound, "scheme %s not found", schemeID)
			}
			return apperror.Wrap(apperror.CodeInternal, "load scheme", err)
		}
		if !s.IsActive {
			return apperror.Newf(apperror.CodeValidation, "scheme %s is not active", schemeID)
		}
		if !s.AmountInRange(in.RequestedAmount) {
			return apperror.Newf(apperror.CodeValidation,
				"requested amount %.2f outside scheme bounds [%.2f, %.2f]",
				in.RequestedAmount, s.MinAmount, s.MaxAmount)
		}

		a := &domain.Application{
			ApplicationID:   id.NewID32(),
			LenderID:        l.ID,
			SchemeID:        s.SchemeID,
			BorrowerRef:     in.BorrowerRef,
			ApplicantName:   in.ApplicantName,
			BusinessName:    in.BusinessName,
			BusinessType:    in.BusinessType,
			RequestedAmount: in.RequestedAmount,
			Status:          domain.StatusPending,
			AppliedAt:       time.Now().UTC(),
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "create application", err)
		}

		s.ApplicantsCount++
		if err := r.Schemes.Save(ctx, s); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "save scheme", err)
		}
		l.Stats.TotalApplicants++
		l.Stats.PendingReview++
		if err := r.Lenders.Save(ctx, l); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "save lender", err)
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err, "lender not found")
	}
	return dto, nil
}

// RecordDocumentDecision books one document verdict. When the scheme
// declares its required documents, the name must be one of them.
func (u *Usecase) RecordDocumentDecision(ctx context.Context, applicationID, documentName string, decision domain.DocumentDecision) (*ApplicationDTO, error) {
	if documentName == "" {
		return nil, apperror.New(apperror.CodeValidation, "document name is required")
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID,
		func(r uow.Repos, l *lenderDomain.Lender, a *domain.Application) error {
			s, err := r.Schemes.GetBySchemeID(ctx, l.ID, a.SchemeID)
			if err != nil {
				return apperror.Wrap(apperror.CodeInternal, "load scheme", err)
			}
			if len(s.RequiredDocuments) > 0 && !s.RequiredDocuments.Contains(documentName) {
				return apperror.Newf(apperror.CodeValidation,
					"document %q is not required by scheme %s", documentName, s.SchemeID)
			}
			if err := a.RecordDocumentDecision(documentName, decision); err != nil {
				return err
			}
			if err := r.Applications.Save(ctx, a); err != nil {
				return apperror.Wrap(apperror.CodeInternal, "save application", err)
			}
			dto = toDTO(a)
			return nil
		})
	if err != nil {
		return nil, mapTxErr(err, "application not found")
	}
	return dto, nil
}

// RecordFieldVisit attaches the visit report and completes the
// field-visit stage.
func (u *Usecase) RecordFieldVisit(ctx context.Context, applicationID, report string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID,
		func(r uow.Repos, l *lenderDomain.Lender, a *domain.Application) error {
			if err := a.RecordFieldVisit(report); err != nil {
				return err
			}
			if err := r.Applications.Save(ctx, a); err != nil {
				return apperror.Wrap(apperror.CodeInternal, "save application", err)
			}
			dto = toDTO(a)
			return nil
		})
	if err != nil {
		return nil, mapTxErr(err, "application not found")
	}
	return dto, nil
}

// Decide closes the application and settles every counter the outcome
// implies in the same transaction.
func (u *Usecase) Decide(ctx context.Context, applicationID string, outcome domain.Status, finalRemark string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID,
		func(r uow.Repos, l *lenderDomain.Lender, a *domain.Application) error {
			if err := a.Decide(outcome, finalRemark, time.Now().UTC()); err != nil {
				return err
			}
			if err := r.Applications.Save(ctx, a); err != nil {
				return apperror.Wrap(apperror.CodeInternal, "save application", err)
			}

			l.Stats.PendingReview--
			if outcome == domain.StatusApproved {
				l.Stats.ApprovedThisMonth++
				s, err := r.Schemes.GetBySchemeID(ctx, l.ID, a.SchemeID)
				if err != nil {
					return apperror.Wrap(apperror.CodeInternal, "load scheme", err)
				}
				s.ApprovedCount++
				if err := r.Schemes.Save(ctx, s); err != nil {
					return apperror.Wrap(apperror.CodeInternal, "save scheme", err)
				}
			}
			if err := r.Lenders.Save(ctx, l); err != nil {
				return apperror.Wrap(apperror.CodeInternal, "save lender", err)
			}
			dto = toDTO(a)
			return nil
		})
	if err != nil {
		return nil, mapTxErr(err, "application not found")
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, mapTxErr(err, "application not found")
	}
	return toDTO(a), nil
}

// mapTxErr keeps coded errors as-is and turns raw record-not-found
// from aggregate resolution into the caller-facing NotFound.
func mapTxErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.CodeNotFound, notFoundMsg)
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperror.Wrap(apperror.CodeInternal, "application lifecycle", err)
}
