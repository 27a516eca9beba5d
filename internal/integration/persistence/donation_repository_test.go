package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&model.DonationModel{}, &model.EmailQueueModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newDonation(donor string, amount int64, date time.Time) *entity.Donation {
	return entity.NewDonation(donor, decimal.NewFromInt(amount), "PHP", "General support", entity.DonationCategoryGeneral, date)
}

func TestDonationRepository_CreateAndFind(t *testing.T) {
	repo := NewDonationRepository(newTestDB(t))
	ctx := context.Background()

	email := "maria@example.com"
	d := newDonation("Maria Santos", 1500, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	d.DonorEmail = &email
	d.IsPublic = false
	d.Amount = decimal.RequireFromString("1500.50")

	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.DonorName != "Maria Santos" {
		t.Errorf("expected donor Maria Santos, got %s", found.DonorName)
	}
	if !found.Amount.Equal(decimal.RequireFromString("1500.50")) {
		t.Errorf("expected amount 1500.50, got %s", found.Amount)
	}
	if found.IsPublic {
		t.Error("expected private donation to stay private")
	}
	if found.DonorEmail == nil || *found.DonorEmail != email {
		t.Errorf("expected donor email %s, got %v", email, found.DonorEmail)
	}
	if !found.DonationDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected donation date %v", found.DonationDate)
	}
	if !found.ArchiveInSync() {
		t.Error("expected archive fields in sync")
	}
}

func TestDonationRepository_FindByIDMissing(t *testing.T) {
	repo := NewDonationRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrDonationNotFound) {
		t.Errorf("expected ErrDonationNotFound, got %v", err)
	}
}

func TestDonationRepository_FindAllOrder(t *testing.T) {
	repo := NewDonationRepository(newTestDB(t))
	ctx := context.Background()

	older := newDonation("Older", 100, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	newer := newDonation("Newer", 200, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	undated := newDonation("Undated", 300, time.Time{})

	for _, d := range []*entity.Donation{older, undated, newer} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	donations, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Newer", "Older", "Undated"}
	if len(donations) != len(expected) {
		t.Fatalf("expected %d donations, got %d", len(expected), len(donations))
	}
	for i, name := range expected {
		if donations[i].DonorName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, donations[i].DonorName)
		}
	}
	if !donations[2].DonationDate.IsZero() {
		t.Error("expected undated donation to keep a zero date")
	}
}

func TestDonationRepository_UpdateAndDelete(t *testing.T) {
	repo := NewDonationRepository(newTestDB(t))
	ctx := context.Background()

	d := newDonation("Jose Rizal", 500, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d.SetDonationDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.Update(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ArchiveMonth == nil || *found.ArchiveMonth != 2 {
		t.Errorf("expected archive month 2, got %v", found.ArchiveMonth)
	}

	if err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, d.ID); !errors.Is(err, domainerror.ErrDonationNotFound) {
		t.Errorf("expected deleted donation to be hidden, got %v", err)
	}
	if err := repo.Delete(ctx, d.ID); !errors.Is(err, domainerror.ErrDonationNotFound) {
		t.Errorf("expected second delete to report not found, got %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected soft-deleted donation excluded from snapshot, got %d", len(all))
	}
}
