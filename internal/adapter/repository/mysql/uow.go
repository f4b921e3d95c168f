package mysql

import (
	"context"

	"lendbridge/internal/domain/application"
	"lendbridge/internal/domain/lender"
	"lendbridge/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Lenders:      &LenderRepository{db: tx},
		Schemes:      &SchemeRepository{db: tx},
		Applications: &ApplicationRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLenderTx(ctx context.Context, lenderID string, fn func(r uow.Repos, l *lender.Lender) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the lender row up-front: one writer per aggregate
		l, err := r.Lenders.GetByLenderIDForUpdate(ctx, lenderID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string,
	fn func(r uow.Repos, l *lender.Lender, a *application.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return err
		}
		l, err := r.Lenders.GetByIDForUpdate(ctx, a.LenderID)
		if err != nil {
			return err
		}
		// re-read now that the lender lock is held; the first read may
		// have raced an in-flight writer
		a, err = r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, l, a)
	})
}
