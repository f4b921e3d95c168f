package mysql

import (
	"context"

	appDomain "lendbridge/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) ListByLender(ctx context.Context, lenderID uint64) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("applied_at DESC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListRecentByLender(ctx context.Context, lenderID uint64, limit int) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("applied_at DESC, id ASC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByBorrower(ctx context.Context, borrowerRef string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("borrower_ref = ?", borrowerRef).
		Order("applied_at DESC, id ASC").
		Find(&out)
	return out, res.Error
}
