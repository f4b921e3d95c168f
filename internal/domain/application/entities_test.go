package application

import (
	"errors"
	"testing"
	"time"

	"lendbridge/pkg/apperror"
)

func newPendingApp() *Application {
	return &Application{
		ApplicationID:   "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		SchemeID:        "SCH-001",
		BorrowerRef:     "borrower@example.com",
		RequestedAmount: 20_000,
		Status:          StatusPending,
		AppliedAt:       time.Now().UTC(),
	}
}

func wantCode(t *testing.T, err error, code apperror.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s error, got nil", code)
	}
	if got := apperror.CodeOf(err); got != code {
		t.Fatalf("want code %s, got %s (%v)", code, got, err)
	}
}

func TestRecordDocumentDecision_MovesToDocumentsUnderReview(t *testing.T) {
	a := newPendingApp()
	if err := a.RecordDocumentDecision("PAN Card", DocumentApproved); err != nil {
		t.Fatalf("first decision: %v", err)
	}
	if a.Status != StatusDocumentsUnderReview {
		t.Fatalf("status=%s", a.Status)
	}
	// further decisions are bookkeeping only, status stays put
	if err := a.RecordDocumentDecision("Aadhaar Card", DocumentRejected); err != nil {
		t.Fatalf("second decision: %v", err)
	}
	if a.Status != StatusDocumentsUnderReview {
		t.Fatalf("status moved unexpectedly to %s", a.Status)
	}
	if a.DocumentDecisions["Aadhaar Card"] != DocumentRejected {
		t.Fatalf("decisions=%v", a.DocumentDecisions)
	}
}

func TestRecordDocumentDecision_RejectedDocDoesNotRejectApplication(t *testing.T) {
	a := newPendingApp()
	if err := a.RecordDocumentDecision("PAN Card", DocumentRejected); err != nil {
		t.Fatal(err)
	}
	if a.Status.Terminal() {
		t.Fatalf("document rejection must not terminate the application, status=%s", a.Status)
	}
}

func TestRecordDocumentDecision_InvalidDecision(t *testing.T) {
	a := newPendingApp()
	wantCode(t, a.RecordDocumentDecision("PAN Card", "maybe"), apperror.CodeValidation)
}

func TestRecordDocumentDecision_WrongState(t *testing.T) {
	a := newPendingApp()
	a.Status = StatusFieldVisitComplete
	wantCode(t, a.RecordDocumentDecision("PAN Card", DocumentApproved), apperror.CodeInvalidState)
}

func TestRecordFieldVisit(t *testing.T) {
	a := newPendingApp()

	// not yet in documents_under_review
	wantCode(t, a.RecordFieldVisit("visited"), apperror.CodeInvalidState)

	if err := a.RecordDocumentDecision("PAN Card", DocumentApproved); err != nil {
		t.Fatal(err)
	}
	wantCode(t, a.RecordFieldVisit(""), apperror.CodeValidation)

	if err := a.RecordFieldVisit("premises verified, stock consistent with turnover"); err != nil {
		t.Fatal(err)
	}
	if a.Status != StatusFieldVisitComplete {
		t.Fatalf("status=%s", a.Status)
	}
}

func TestDecide_ApproveRequiresFieldVisit(t *testing.T) {
	now := time.Now().UTC()

	a := newPendingApp()
	wantCode(t, a.Decide(StatusApproved, "fine", now), apperror.CodePrecondition)

	_ = a.RecordDocumentDecision("PAN Card", DocumentApproved)
	wantCode(t, a.Decide(StatusApproved, "fine", now), apperror.CodePrecondition)

	if err := a.RecordFieldVisit("ok"); err != nil {
		t.Fatal(err)
	}
	if err := a.Decide(StatusApproved, "fine", now); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if a.Status != StatusApproved || a.FinalRemark != "fine" || a.DecidedAt == nil {
		t.Fatalf("app=%+v", a)
	}
}

func TestDecide_RejectAllowedFromAnyNonTerminalState(t *testing.T) {
	now := time.Now().UTC()
	for _, st := range []Status{StatusPending, StatusDocumentsUnderReview, StatusFieldVisitComplete} {
		a := newPendingApp()
		a.Status = st
		if err := a.Decide(StatusRejected, "insufficient turnover", now); err != nil {
			t.Fatalf("reject from %s: %v", st, err)
		}
		if a.Status != StatusRejected {
			t.Fatalf("status=%s", a.Status)
		}
	}
}

func TestDecide_TerminalNeverReopens(t *testing.T) {
	now := time.Now().UTC()
	for _, st := range []Status{StatusApproved, StatusRejected} {
		a := newPendingApp()
		a.Status = st
		err := a.Decide(StatusRejected, "again", now)
		wantCode(t, err, apperror.CodeInvalidState)
		if !errors.Is(err, apperror.New(apperror.CodeInvalidState, "")) {
			t.Fatalf("expected invalid_state sentinel match")
		}
	}
}

func TestDecide_Validation(t *testing.T) {
	now := time.Now().UTC()
	a := newPendingApp()
	wantCode(t, a.Decide("escalated", "x", now), apperror.CodeValidation)
	wantCode(t, a.Decide(StatusRejected, "", now), apperror.CodeValidation)
}

func TestStatusLegacy(t *testing.T) {
	cases := map[Status]string{
		StatusPending:              "pending",
		StatusDocumentsUnderReview: "under_review",
		StatusFieldVisitScheduled:  "under_review",
		StatusFieldVisitComplete:   "under_review",
		StatusApproved:             "approved",
		StatusRejected:             "rejected",
	}
	for s, want := range cases {
		if got := s.Legacy(); got != want {
			t.Errorf("Legacy(%s)=%s want %s", s, got, want)
		}
	}
}
