package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestLenderRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)
	ctx := context.Background()

	l := seedLender(t, db, "Shakti Finance")
	if l.ID == 0 {
		t.Fatal("auto-increment ID not set")
	}

	got, err := repo.GetByLenderID(ctx, l.LenderID)
	if err != nil {
		t.Fatalf("GetByLenderID: %v", err)
	}
	if got.CompanyName != "Shakti Finance" || got.Status != l.Status {
		t.Fatalf("unexpected lender: %+v", got)
	}

	if _, err := repo.GetByCompanyName(ctx, "Shakti Finance"); err != nil {
		t.Fatalf("GetByCompanyName: %v", err)
	}
	if _, err := repo.GetByCINNumber(ctx, l.CINNumber); err != nil {
		t.Fatalf("GetByCINNumber: %v", err)
	}
}

func TestLenderRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)
	ctx := context.Background()

	_, err := repo.GetByLenderID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLenderRepository_SavePersistsStatsAndSerial(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)
	ctx := context.Background()

	l := seedLender(t, db, "Udaan Capital")
	sid := l.NextSchemeID()
	if sid != "SCH-001" {
		t.Fatalf("first scheme id %s", sid)
	}
	l.Stats.ActiveSchemes = 1
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLenderID(ctx, l.LenderID)
	if err != nil {
		t.Fatalf("GetByLenderID: %v", err)
	}
	if got.SchemesCreated != 1 || got.Stats.ActiveSchemes != 1 {
		t.Fatalf("counters not persisted: %+v", got)
	}
}
