package mysql

import (
	"testing"
	"time"

	appDomain "lendbridge/internal/domain/application"
	lenderDomain "lendbridge/internal/domain/lender"
	schemeDomain "lendbridge/internal/domain/scheme"
	"lendbridge/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the domain
// models. The schema is sqlite-safe (string statuses, JSON text
// columns), so no parallel test-only structs are needed.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&lenderDomain.Lender{},
		&schemeDomain.LoanScheme{},
		&appDomain.Application{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedLender(t *testing.T, db *gorm.DB, companyName string) *lenderDomain.Lender {
	t.Helper()
	l := &lenderDomain.Lender{
		LenderID:             id.NewID32(),
		CompanyName:          companyName,
		CINNumber:            "CIN-" + id.NewID32()[:10],
		RegistrationYear:     2019,
		HeadquartersLocation: "Pune",
		Contact: lenderDomain.ContactPerson{
			FullName:      "A Sharma",
			Designation:   "Director",
			OfficialEmail: "director@" + companyName + ".example",
			PhoneNumber:   "+91-9000000000",
		},
		Status: lenderDomain.StatusActive,
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed lender: %v", err)
	}
	return l
}

func seedScheme(t *testing.T, db *gorm.DB, lenderID uint64, schemeID string, active bool) *schemeDomain.LoanScheme {
	t.Helper()
	s := &schemeDomain.LoanScheme{
		LenderID:          lenderID,
		SchemeID:          schemeID,
		SchemeName:        "Working Capital " + schemeID,
		MinAmount:         10_000,
		MaxAmount:         50_000,
		MinPeriodMonths:   6,
		MaxPeriodMonths:   12,
		InterestRate:      12,
		RequiredDocuments: schemeDomain.StringList{"PAN Card", "Aadhaar Card"},
		IsActive:          active,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed scheme: %v", err)
	}
	return s
}

// seedSchemeInput builds an unsaved scheme for transactional tests.
func seedSchemeInput(lenderID uint64, schemeID string) *schemeDomain.LoanScheme {
	return &schemeDomain.LoanScheme{
		LenderID:        lenderID,
		SchemeID:        schemeID,
		SchemeName:      "Working Capital " + schemeID,
		MinAmount:       10_000,
		MaxAmount:       50_000,
		MinPeriodMonths: 6,
		MaxPeriodMonths: 12,
		InterestRate:    12,
		IsActive:        true,
	}
}

func seedApplication(t *testing.T, db *gorm.DB, lenderID uint64, schemeID, borrowerRef string, appliedAt time.Time) *appDomain.Application {
	t.Helper()
	a := &appDomain.Application{
		ApplicationID:   id.NewID32(),
		LenderID:        lenderID,
		SchemeID:        schemeID,
		BorrowerRef:     borrowerRef,
		ApplicantName:   "R Gupta",
		BusinessName:    "Gupta Traders",
		BusinessType:    "Retail",
		RequestedAmount: 20_000,
		Status:          appDomain.StatusPending,
		AppliedAt:       appliedAt,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}
