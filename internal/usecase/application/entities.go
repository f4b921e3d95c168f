package application

import (
	"time"

	domain "lendbridge/internal/domain/application"
)

type CreateInput struct {
	BorrowerRef     string  `json:"borrower_ref"`
	ApplicantName   string  `json:"applicant_name"`
	BusinessName    string  `json:"business_name"`
	BusinessType    string  `json:"business_type"`
	RequestedAmount float64 `json:"requested_amount"`
}

type ApplicationDTO struct {
	ApplicationID   string  `json:"application_id"`
	SchemeID        string  `json:"scheme_id"`
	BorrowerRef     string  `json:"borrower_ref"`
	ApplicantName   string  `json:"applicant_name"`
	BusinessName    string  `json:"business_name"`
	BusinessType    string  `json:"business_type,omitempty"`
	RequestedAmount float64 `json:"requested_amount"`
	Status          string  `json:"status"`
	// LegacyStatus is the four-value compatibility view of Status.
	LegacyStatus      string                    `json:"legacy_status"`
	AppliedAt         time.Time                 `json:"applied_at"`
	DocumentDecisions domain.DocumentDecisions  `json:"document_decisions,omitempty"`
	FieldVisitReport  string                    `json:"field_visit_report,omitempty"`
	FinalRemark       string                    `json:"final_remark,omitempty"`
	DecidedAt         *time.Time                `json:"decided_at,omitempty"`
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:     a.ApplicationID,
		SchemeID:          a.SchemeID,
		BorrowerRef:       a.BorrowerRef,
		ApplicantName:     a.ApplicantName,
		BusinessName:      a.BusinessName,
		BusinessType:      a.BusinessType,
		RequestedAmount:   a.RequestedAmount,
		Status:            string(a.Status),
		LegacyStatus:      a.Status.Legacy(),
		AppliedAt:         a.AppliedAt,
		DocumentDecisions: a.DocumentDecisions,
		FieldVisitReport:  a.FieldVisitReport,
		FinalRemark:       a.FinalRemark,
		DecidedAt:         a.DecidedAt,
	}
}
