package scheme

import "time"

// StringList is persisted as a JSON array in a text column so the
// document sets survive both MySQL and the sqlite test schema.
type StringList []string

func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// LoanScheme is a published loan product. Owned by exactly one lender;
// never deleted, only deactivated. applicantsCount and approvedCount
// are monotone non-decreasing and only move inside the owning lender's
// serialized transaction.
type LoanScheme struct {
	ID              uint64  `gorm:"primaryKey;column:id" json:"-"`
	LenderID        uint64  `gorm:"column:lender_id;uniqueIndex:ux_schemes_lender_scheme" json:"-"`
	SchemeID        string  `gorm:"size:16;column:scheme_id;uniqueIndex:ux_schemes_lender_scheme" json:"scheme_id"`
	SchemeName      string  `gorm:"size:160" json:"scheme_name"`
	MinAmount       float64 `gorm:"type:decimal(18,2)" json:"min_amount"`
	MaxAmount       float64 `gorm:"type:decimal(18,2)" json:"max_amount"`
	MinPeriodMonths int     `json:"min_period_months"`
	MaxPeriodMonths int     `json:"max_period_months"`
	// InterestRate is percent per annum.
	InterestRate         float64 `gorm:"type:decimal(6,2)" json:"interest_rate"`
	ProcessingFeePercent float64 `gorm:"type:decimal(6,2);default:0" json:"processing_fee_percent"`
	// RequiredDocuments lists document-type labels; order irrelevant.
	RequiredDocuments StringList `gorm:"serializer:json;type:text" json:"required_documents"`
	// PreferredBusinessTypes empty means no preference (matches all).
	PreferredBusinessTypes StringList `gorm:"serializer:json;type:text" json:"preferred_business_types"`
	IsActive               bool       `gorm:"default:true" json:"is_active"`
	ApplicantsCount        int        `gorm:"default:0" json:"applicants_count"`
	ApprovedCount          int        `gorm:"default:0" json:"approved_count"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (LoanScheme) TableName() string { return "loan_schemes" }

func (s *LoanScheme) AmountInRange(amount float64) bool {
	return amount >= s.MinAmount && amount <= s.MaxAmount
}

func (s *LoanScheme) PeriodInRange(months int) bool {
	return months >= s.MinPeriodMonths && months <= s.MaxPeriodMonths
}

// AcceptsBusinessType: an empty preferred set matches every business
// type, and an unstated type matches every scheme.
func (s *LoanScheme) AcceptsBusinessType(businessType string) bool {
	if businessType == "" || len(s.PreferredBusinessTypes) == 0 {
		return true
	}
	return s.PreferredBusinessTypes.Contains(businessType)
}

// Listing pairs a scheme with its owning lender's public identity for
// cross-lender queries (matching, borrower-facing lists).
type Listing struct {
	LenderRef   string     `json:"lender_id"`
	CompanyName string     `json:"company_name"`
	Scheme      LoanScheme `json:"scheme"`
}
