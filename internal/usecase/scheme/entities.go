package scheme

import (
	"time"

	domain "lendbridge/internal/domain/scheme"
)

type CreateSchemeInput struct {
	SchemeName             string   `json:"scheme_name"`
	MinAmount              float64  `json:"min_amount"`
	MaxAmount              float64  `json:"max_amount"`
	MinPeriodMonths        int      `json:"min_period_months"`
	MaxPeriodMonths        int      `json:"max_period_months"`
	InterestRate           float64  `json:"interest_rate"`
	ProcessingFeePercent   float64  `json:"processing_fee_percent"`
	RequiredDocuments      []string `json:"required_documents"`
	PreferredBusinessTypes []string `json:"preferred_business_types"`
}

type SchemeDTO struct {
	SchemeID               string    `json:"scheme_id"`
	SchemeName             string    `json:"scheme_name"`
	MinAmount              float64   `json:"min_amount"`
	MaxAmount              float64   `json:"max_amount"`
	MinPeriodMonths        int       `json:"min_period_months"`
	MaxPeriodMonths        int       `json:"max_period_months"`
	InterestRate           float64   `json:"interest_rate"`
	ProcessingFeePercent   float64   `json:"processing_fee_percent"`
	RequiredDocuments      []string  `json:"required_documents"`
	PreferredBusinessTypes []string  `json:"preferred_business_types"`
	IsActive               bool      `json:"is_active"`
	ApplicantsCount        int       `json:"applicants_count"`
	ApprovedCount          int       `json:"approved_count"`
	CreatedAt              time.Time `json:"created_at"`
}

func toDTO(s *domain.LoanScheme) *SchemeDTO {
	return &SchemeDTO{
		SchemeID:               s.SchemeID,
		SchemeName:             s.SchemeName,
		MinAmount:              s.MinAmount,
		MaxAmount:              s.MaxAmount,
		MinPeriodMonths:        s.MinPeriodMonths,
		MaxPeriodMonths:        s.MaxPeriodMonths,
		InterestRate:           s.InterestRate,
		ProcessingFeePercent:   s.ProcessingFeePercent,
		RequiredDocuments:      s.RequiredDocuments,
		PreferredBusinessTypes: s.PreferredBusinessTypes,
		IsActive:               s.IsActive,
		ApplicantsCount:        s.ApplicantsCount,
		ApprovedCount:          s.ApprovedCount,
		CreatedAt:              s.CreatedAt,
	}
}

func toDTOs(schemes []domain.LoanScheme) []SchemeDTO {
	out := make([]SchemeDTO, 0, len(schemes))
	for i := range schemes {
		out = append(out, *toDTO(&schemes[i]))
	}
	return out
}
