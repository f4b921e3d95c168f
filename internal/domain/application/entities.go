package application

import (
	"time"

	"lendbridge/pkg/apperror"
)

// Status is the authoritative application lifecycle:
//
//	pending → documents_under_review → field_visit_scheduled →
//	field_visit_complete → approved | rejected
//
// approved and rejected are terminal; no transition reopens them.
// The scheduled/complete distinction is collapsed into the single
// RecordFieldVisit call since scheduling carries no data of its own;
// StatusFieldVisitScheduled stays declared for the canonical model.
type Status string

const (
	StatusPending              Status = "pending"
	StatusDocumentsUnderReview Status = "documents_under_review"
	StatusFieldVisitScheduled  Status = "field_visit_scheduled"
	StatusFieldVisitComplete   Status = "field_visit_complete"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
)

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Legacy maps the richer lifecycle onto the four-value compatibility
// enum older API consumers expect.
func (s Status) Legacy() string {
	switch s {
	case StatusDocumentsUnderReview, StatusFieldVisitScheduled, StatusFieldVisitComplete:
		return "under_review"
	default:
		return string(s)
	}
}

type DocumentDecision string

const (
	DocumentApproved DocumentDecision = "approved"
	DocumentRejected DocumentDecision = "rejected"
)

// DocumentDecisions maps document-type label → reviewer decision.
type DocumentDecisions map[string]DocumentDecision

// Application is one borrower's request against one scheme. Owned by
// the lender (same aggregate), back-referenced by BorrowerRef; the
// borrower never mutates it after creation.
type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_application_id" json:"application_id"`
	LenderID      uint64 `gorm:"column:lender_id;index:idx_applications_lender" json:"-"`
	SchemeID      string `gorm:"size:16;column:scheme_id" json:"scheme_id"`
	BorrowerRef   string `gorm:"size:160;index:idx_applications_borrower" json:"borrower_ref"`

	// Applicant snapshot, frozen at creation.
	ApplicantName string `gorm:"size:120" json:"applicant_name"`
	BusinessName  string `gorm:"size:160" json:"business_name"`
	BusinessType  string `gorm:"size:80" json:"business_type"`

	RequestedAmount float64   `gorm:"type:decimal(18,2)" json:"requested_amount"`
	Status          Status    `gorm:"size:32;default:'pending'" json:"status"`
	AppliedAt       time.Time `json:"applied_at"`

	// Review record, populated progressively.
	DocumentDecisions DocumentDecisions `gorm:"serializer:json;type:text" json:"document_decisions"`
	FieldVisitReport  string            `gorm:"type:text" json:"field_visit_report,omitempty"`
	FinalRemark       string            `gorm:"type:text" json:"final_remark,omitempty"`
	DecidedAt         *time.Time        `json:"decided_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Application) TableName() string { return "applications" }

// RecordDocumentDecision books a per-document verdict. Allowed only
// while documents are still open for review; the first decision moves
// the application out of pending. A rejected document does not reject
// the application; escalation stays a reviewer decision.
func (a *Application) RecordDocumentDecision(documentName string, decision DocumentDecision) error {
	if decision != DocumentApproved && decision != DocumentRejected {
		return apperror.Newf(apperror.CodeValidation, "invalid document decision %q", decision)
	}
	if a.Status != StatusPending && a.Status != StatusDocumentsUnderReview {
		return apperror.Newf(apperror.CodeInvalidState,
			"cannot record document decision while application is %s", a.Status)
	}
	if a.DocumentDecisions == nil {
		a.DocumentDecisions = DocumentDecisions{}
	}
	a.DocumentDecisions[documentName] = decision
	a.Status = StatusDocumentsUnderReview
	return nil
}

// RecordFieldVisit attaches the in-person verification report and moves
// the application to field_visit_complete.
func (a *Application) RecordFieldVisit(report string) error {
	if report == "" {
		return apperror.New(apperror.CodeValidation, "field visit report must not be empty")
	}
	if a.Status != StatusDocumentsUnderReview {
		return apperror.Newf(apperror.CodeInvalidState,
			"cannot record field visit while application is %s", a.Status)
	}
	a.FieldVisitReport = report
	a.Status = StatusFieldVisitComplete
	return nil
}

// Decide closes the application. Approval requires the field visit to
// be complete, with its report on record. Rejection is allowed from
// any non-terminal state.
func (a *Application) Decide(outcome Status, finalRemark string, now time.Time) error {
	if outcome != StatusApproved && outcome != StatusRejected {
		return apperror.Newf(apperror.CodeValidation, "invalid decision outcome %q", outcome)
	}
	if finalRemark == "" {
		return apperror.New(apperror.CodeValidation, "final remark must not be empty")
	}
	if a.Status.Terminal() {
		return apperror.Newf(apperror.CodeInvalidState, "application already %s", a.Status)
	}
	if outcome == StatusApproved && (a.Status != StatusFieldVisitComplete || a.FieldVisitReport == "") {
		return apperror.New(apperror.CodePrecondition,
			"approval requires a completed field visit report")
	}
	a.Status = outcome
	a.FinalRemark = finalRemark
	a.DecidedAt = &now
	return nil
}
