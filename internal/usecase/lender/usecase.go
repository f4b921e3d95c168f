package lender

import (
	"context"
	"errors"

	domain "lendbridge/internal/domain/lender"
	"lendbridge/pkg/apperror"
	"lendbridge/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Register creates the lender identity. Credentials are handled by the
// external auth collaborator, so none are stored here.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*LenderDTO, error) {
	if in.CompanyName == "" || in.CINNumber == "" || in.RegistrationYear == 0 ||
		in.HeadquartersLocation == "" || in.ContactFullName == "" || in.Designation == "" ||
		in.OfficialEmail == "" || in.PhoneNumber == "" {
		return nil, apperror.New(apperror.CodeValidation, "all registration fields are required")
	}

	if _, err := u.repo.GetByCompanyName(ctx, in.CompanyName); err == nil {
		return nil, apperror.Newf(apperror.CodeConflict, "company %q already registered", in.CompanyName)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Wrap(apperror.CodeInternal, "lookup company", err)
	}
	if _, err := u.repo.GetByCINNumber(ctx, in.CINNumber); err == nil {
		return nil, apperror.Newf(apperror.CodeConflict, "CIN %q already registered", in.CINNumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Wrap(apperror.CodeInternal, "lookup CIN", err)
	}

	l := &domain.Lender{
		LenderID:             id.NewID32(),
		CompanyName:          in.CompanyName,
		CINNumber:            in.CINNumber,
		RegistrationYear:     in.RegistrationYear,
		HeadquartersLocation: in.HeadquartersLocation,
		Contact: domain.ContactPerson{
			FullName:      in.ContactFullName,
			Designation:   in.Designation,
			OfficialEmail: in.OfficialEmail,
			PhoneNumber:   in.PhoneNumber,
		},
		Status: domain.StatusPendingVerification,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "create lender", err)
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, lenderID string) (*LenderDTO, error) {
	if !id.Valid32(lenderID) {
		return nil, apperror.New(apperror.CodeValidation, "malformed lender id")
	}
	l, err := u.repo.GetByLenderID(ctx, lenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "lender not found")
		}
		return nil, apperror.Wrap(apperror.CodeInternal, "load lender", err)
	}
	return toDTO(l), nil
}
