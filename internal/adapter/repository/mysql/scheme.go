package mysql

import (
	"context"

	schemeDomain "lendbridge/internal/domain/scheme"

	"gorm.io/gorm"
)

type SchemeRepository struct{ db *gorm.DB }

func NewSchemeRepository(db *gorm.DB) *SchemeRepository { return &SchemeRepository{db: db} }

func (r *SchemeRepository) Create(ctx context.Context, s *schemeDomain.LoanScheme) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SchemeRepository) Save(ctx context.Context, s *schemeDomain.LoanScheme) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SchemeRepository) GetBySchemeID(ctx context.Context, lenderID uint64, schemeID string) (*schemeDomain.LoanScheme, error) {
	var out schemeDomain.LoanScheme
	res := r.db.WithContext(ctx).
		Where("lender_id = ? AND scheme_id = ?", lenderID, schemeID).
		First(&out)
	return &out, res.Error
}

func (r *SchemeRepository) ListByLender(ctx context.Context, lenderID uint64, activeOnly bool) ([]schemeDomain.LoanScheme, error) {
	q := r.db.WithContext(ctx).Where("lender_id = ?", lenderID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []schemeDomain.LoanScheme
	res := q.Order("scheme_id ASC").Find(&out)
	return out, res.Error
}

func (r *SchemeRepository) ListActiveListings(ctx context.Context) ([]schemeDomain.Listing, error) {
	var schemes []schemeDomain.LoanScheme
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("lender_id ASC, scheme_id ASC").
		Find(&schemes).Error; err != nil {
		return nil, err
	}
	if len(schemes) == 0 {
		return []schemeDomain.Listing{}, nil
	}

	ids := make([]uint64, 0, len(schemes))
	seen := map[uint64]bool{}
	for _, s := range schemes {
		if !seen[s.LenderID] {
			seen[s.LenderID] = true
			ids = append(ids, s.LenderID)
		}
	}
	var owners []struct {
		ID          uint64
		LenderID    string
		CompanyName string
	}
	if err := r.db.WithContext(ctx).
		Table("lenders").
		Select("id", "lender_id", "company_name").
		Where("id IN ?", ids).
		Scan(&owners).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]struct{ ref, name string }, len(owners))
	for _, o := range owners {
		byID[o.ID] = struct{ ref, name string }{o.LenderID, o.CompanyName}
	}

	out := make([]schemeDomain.Listing, 0, len(schemes))
	for _, s := range schemes {
		o := byID[s.LenderID]
		out = append(out, schemeDomain.Listing{LenderRef: o.ref, CompanyName: o.name, Scheme: s})
	}
	return out, nil
}
