package scheme

import (
	"context"
	"errors"

	lenderDomain "lendbridge/internal/domain/lender"
	domain "lendbridge/internal/domain/scheme"
	"lendbridge/internal/domain/uow"
	"lendbridge/pkg/apperror"

	"gorm.io/gorm"
)

type Usecase struct {
	lenders lenderDomain.Repository
	schemes domain.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(lenders lenderDomain.Repository, schemes domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{lenders: lenders, schemes: schemes, uow: tx}
}

func validateInput(in CreateSchemeInput) error {
	switch {
	case in.SchemeName == "":
		return apperror.New(apperror.CodeValidation, "scheme name is required")
	case in.MinAmount <= 0 || in.MaxAmount <= 0:
		return apperror.New(apperror.CodeValidation, "amount bounds must be positive")
	case in.MinAmount > in.MaxAmount:
		return apperror.New(apperror.CodeValidation, "min amount exceeds max amount")
	case in.MinPeriodMonths <= 0 || in.MaxPeriodMonths <= 0:
		return apperror.New(apperror.CodeValidation, "period bounds must be positive")
	case in.MinPeriodMonths > in.MaxPeriodMonths:
		return apperror.New(apperror.CodeValidation, "min period exceeds max period")
	case in.InterestRate <= 0:
		return apperror.New(apperror.CodeValidation, "interest rate must be positive")
	case in.ProcessingFeePercent < 0:
		return apperror.New(apperror.CodeValidation, "processing fee must not be negative")
	}
	return nil
}

// Create publishes a new scheme under the lender, assigning the next
// SCH-NNN serial. The serial, the scheme row, and the activeSchemes
// counter commit in one transaction.
func (u *Usecase) Create(ctx context.Context, lenderID string, in CreateSchemeInput) (*SchemeDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var dto *SchemeDTO
	err := u.uow.WithinLenderTx(ctx, lenderID, func(r uow.Repos, l *lenderDomain.Lender) error {
		s := &domain.LoanScheme{
			LenderID:               l.ID,
			SchemeID:               l.NextSchemeID(),
			SchemeName:             in.SchemeName,
			MinAmount:              in.MinAmount,
			MaxAmount:              in.MaxAmount,
			MinPeriodMonths:        in.MinPeriodMonths,
			MaxPeriodMonths:        in.MaxPeriodMonths,
			InterestRate:           in.InterestRate,
			ProcessingFeePercent:   in.ProcessingFeePercent,
			RequiredDocuments:      in.RequiredDocuments,
			PreferredBusinessTypes: in.PreferredBusinessTypes,
			IsActive:               true,
		}
		if err := r.Schemes.Create(ctx, s); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "create scheme", err)
		}
		l.Stats.ActiveSchemes++
		if err := r.Lenders.Save(ctx, l); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "save lender", err)
		}
		dto = toDTO(s)
		return nil
	})
	if err != nil {
		return nil, mapLenderErr(err)
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, lenderID string, activeOnly bool) ([]SchemeDTO, error) {
	l, err := u.lenders.GetByLenderID(ctx, lenderID)
	if err != nil {
		return nil, mapLenderErr(err)
	}
	schemes, err := u.schemes.ListByLender(ctx, l.ID, activeOnly)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "list schemes", err)
	}
	return toDTOs(schemes), nil
}

func (u *Usecase) Get(ctx context.Context, lenderID, schemeID string) (*SchemeDTO, error) {
	l, err := u.lenders.GetByLenderID(ctx, lenderID)
	if err != nil {
		return nil, mapLenderErr(err)
	}
	s, err := u.schemes.GetBySchemeID(ctx, l.ID, schemeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.CodeNotFound, "scheme %s not found", schemeID)
		}
		return nil, apperror.Wrap(apperror.CodeInternal, "load scheme", err)
	}
	return toDTO(s), nil
}

// Deactivate retires a scheme. The scheme row stays (ids are never
// reused); only isActive and the activeSchemes counter move.
func (u *Usecase) Deactivate(ctx context.Context, lenderID, schemeID string) (*SchemeDTO, error) {
	var dto *SchemeDTO
	err := u.uow.WithinLenderTx(ctx, lenderID, func(r uow.Repos, l *lenderDomain.Lender) error {
		s, err := r.Schemes.GetBySchemeID(ctx, l.ID, schemeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.Newf(apperror.CodeNotFound, "scheme %s not found", schemeID)
			}
			return apperror.Wrap(apperror.CodeInternal, "load scheme", err)
		}
		if !s.IsActive {
			return apperror.Newf(apperror.CodeInvalidState, "scheme %s is already inactive", schemeID)
		}
		s.IsActive = false
		if err := r.Schemes.Save(ctx, s); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "save scheme", err)
		}
		l.Stats.ActiveSchemes--
		if err := r.Lenders.Save(ctx, l); err != nil {
			return apperror.Wrap(apperror.CodeInternal, "save lender", err)
		}
		dto = toDTO(s)
		return nil
	})
	if err != nil {
		return nil, mapLenderErr(err)
	}
	return dto, nil
}

// mapLenderErr normalizes the raw record-not-found surfaced by the
// lender lookup inside WithinLenderTx.
func mapLenderErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.CodeNotFound, "lender not found")
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperror.Wrap(apperror.CodeInternal, "scheme registry", err)
}
