package lender

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusActive              Status = "active"
	StatusSuspended           Status = "suspended"
)

type ContactPerson struct {
	FullName      string `gorm:"size:120;column:contact_full_name" json:"full_name"`
	Designation   string `gorm:"size:80;column:contact_designation" json:"designation"`
	OfficialEmail string `gorm:"size:160;column:contact_official_email" json:"official_email"`
	PhoneNumber   string `gorm:"size:32;column:contact_phone_number" json:"phone_number"`
}

// Stats is the dashboard snapshot denormalized on the lender row. All
// updates happen inside the lender's serialized transaction, so the
// counters never drift from the schemes/applications they summarize.
type Stats struct {
	ActiveSchemes     int `gorm:"column:stats_active_schemes;default:0" json:"active_schemes"`
	TotalApplicants   int `gorm:"column:stats_total_applicants;default:0" json:"total_applicants"`
	PendingReview     int `gorm:"column:stats_pending_review;default:0" json:"pending_review"`
	ApprovedThisMonth int `gorm:"column:stats_approved_this_month;default:0" json:"approved_this_month"`
}

// Lender is the NBFC aggregate root. Schemes and applications are owned
// by exactly one lender; every mutation of them goes through a
// transaction that locks this row first.
type Lender struct {
	ID                   uint64        `gorm:"primaryKey;column:id" json:"-"`
	LenderID             string        `gorm:"size:32;uniqueIndex:ux_lenders_lender_id" json:"lender_id"`
	CompanyName          string        `gorm:"size:160;uniqueIndex:ux_lenders_company_name" json:"company_name"`
	CINNumber            string        `gorm:"size:32;column:cin_number;uniqueIndex:ux_lenders_cin_number" json:"cin_number"`
	RegistrationYear     int           `gorm:"column:registration_year" json:"registration_year"`
	HeadquartersLocation string        `gorm:"size:160" json:"headquarters_location"`
	Contact              ContactPerson `gorm:"embedded" json:"contact"`
	Stats                Stats         `gorm:"embedded" json:"stats"`
	// SchemesCreated counts schemes ever created, not currently active
	// ones. Backs SCH-NNN numbering so ids are never reused.
	SchemesCreated int       `gorm:"column:schemes_created;default:0" json:"-"`
	Status         Status    `gorm:"size:32;default:'pending_verification'" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Lender) TableName() string { return "lenders" }

// NextSchemeID advances the per-lender serial and returns the generated
// scheme id, e.g. SCH-001. Monotonic and never reused: the serial only
// grows, independent of scheme deactivation.
func (l *Lender) NextSchemeID() string {
	l.SchemesCreated++
	return fmt.Sprintf("SCH-%03d", l.SchemesCreated)
}
