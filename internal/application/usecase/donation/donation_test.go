package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

type memoryDonationRepository struct {
	donations map[uuid.UUID]*entity.Donation
	updates   int
	failWith  error
}

func newMemoryDonationRepository() *memoryDonationRepository {
	return &memoryDonationRepository{donations: make(map[uuid.UUID]*entity.Donation)}
}

func (r *memoryDonationRepository) Create(ctx context.Context, d *entity.Donation) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.donations[d.ID] = d
	return nil
}

func (r *memoryDonationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	d, ok := r.donations[id]
	if !ok {
		return nil, domainerror.ErrDonationNotFound
	}
	return d, nil
}

func (r *memoryDonationRepository) FindAll(ctx context.Context) ([]*entity.Donation, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := make([]*entity.Donation, 0, len(r.donations))
	for _, d := range r.donations {
		all = append(all, d)
	}
	return all, nil
}

func (r *memoryDonationRepository) Update(ctx context.Context, d *entity.Donation) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.updates++
	r.donations[d.ID] = d
	return nil
}

func (r *memoryDonationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.donations, id)
	return nil
}

func donationErrorCode(t *testing.T, err error) domainerror.DonationErrorCode {
	t.Helper()
	var donationErr *domainerror.DonationError
	if !errors.As(err, &donationErr) {
		t.Fatalf("expected DonationError, got %v", err)
	}
	return donationErr.Code
}

func validCreateInput() CreateDonationInput {
	return CreateDonationInput{
		DonorName:    "  Maria Santos ",
		Amount:       decimal.NewFromInt(2500),
		Currency:     "php",
		Purpose:      "Scholarship for 2024 batch",
		Category:     entity.DonationCategoryScholarship,
		DonationDate: time.Date(2024, time.April, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateDonation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		mutate       func(*CreateDonationInput)
		expectedCode domainerror.DonationErrorCode
	}{
		{"blank donor", func(in *CreateDonationInput) { in.DonorName = "   " }, domainerror.ErrCodeDonorNameRequired},
		{"negative amount", func(in *CreateDonationInput) { in.Amount = decimal.NewFromInt(-1) }, domainerror.ErrCodeInvalidDonationAmount},
		{"unknown category", func(in *CreateDonationInput) { in.Category = "Pizza Fund" }, domainerror.ErrCodeInvalidDonationCategory},
		{"sentinel category", func(in *CreateDonationInput) { in.Category = entity.AllCategories }, domainerror.ErrCodeInvalidDonationCategory},
		{"bad currency", func(in *CreateDonationInput) { in.Currency = "PESO" }, domainerror.ErrCodeInvalidCurrency},
		{"missing date", func(in *CreateDonationInput) { in.DonationDate = time.Time{} }, domainerror.ErrCodeDonationDateRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryDonationRepository()
			input := validCreateInput()
			tt.mutate(&input)

			_, err := NewCreateDonationUseCase(repo).Execute(ctx, input)

			if code := donationErrorCode(t, err); code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, code)
			}
			if len(repo.donations) != 0 {
				t.Error("expected nothing stored")
			}
		})
	}

	t.Run("stores a valid donation", func(t *testing.T) {
		repo := newMemoryDonationRepository()
		blank := "   "
		input := validCreateInput()
		input.DonorEmail = &blank

		output, err := NewCreateDonationUseCase(repo).Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		d := output.Donation
		if d.DonorName != "Maria Santos" {
			t.Errorf("expected trimmed donor name, got %q", d.DonorName)
		}
		if d.Currency != "PHP" {
			t.Errorf("expected PHP, got %s", d.Currency)
		}
		if d.DonorEmail != nil {
			t.Errorf("expected blank email to be dropped, got %q", *d.DonorEmail)
		}
		if !d.ArchiveInSync() {
			t.Error("expected archive fields in sync")
		}
		if _, ok := repo.donations[d.ID]; !ok {
			t.Error("expected donation stored")
		}
	})

	t.Run("zero amount is accepted", func(t *testing.T) {
		input := validCreateInput()
		input.Amount = decimal.Zero
		if _, err := NewCreateDonationUseCase(newMemoryDonationRepository()).Execute(ctx, input); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("store failures propagate", func(t *testing.T) {
		repo := newMemoryDonationRepository()
		repo.failWith = errors.New("disk full")

		_, err := NewCreateDonationUseCase(repo).Execute(ctx, validCreateInput())

		if code := donationErrorCode(t, err); code != domainerror.ErrCodeDonationStoreFailure {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDonationStoreFailure, code)
		}
	})
}

func TestUpdateDonation(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryDonationRepository()
	created, err := NewCreateDonationUseCase(repo).Execute(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	id := created.Donation.ID

	t.Run("changing the date resyncs archive fields", func(t *testing.T) {
		newDate := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
		output, err := NewUpdateDonationUseCase(repo).Execute(ctx, UpdateDonationInput{
			DonationID:   id,
			DonationDate: &newDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *output.Donation.ArchiveMonth != 2 || *output.Donation.ArchiveYear != 2025 {
			t.Errorf("expected 2/2025, got %d/%d", *output.Donation.ArchiveMonth, *output.Donation.ArchiveYear)
		}
	})

	t.Run("invalid category is rejected", func(t *testing.T) {
		bad := entity.DonationCategory("Nope")
		_, err := NewUpdateDonationUseCase(repo).Execute(ctx, UpdateDonationInput{DonationID: id, Category: &bad})
		if code := donationErrorCode(t, err); code != domainerror.ErrCodeInvalidDonationCategory {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDonationCategory, code)
		}
	})

	t.Run("clears description", func(t *testing.T) {
		desc := "In memory of Prof. Lim"
		if _, err := NewUpdateDonationUseCase(repo).Execute(ctx, UpdateDonationInput{DonationID: id, Description: &desc}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := NewUpdateDonationUseCase(repo).Execute(ctx, UpdateDonationInput{DonationID: id, ClearDescription: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Donation.Description != nil {
			t.Error("expected description cleared")
		}
	})

	t.Run("unknown donation", func(t *testing.T) {
		_, err := NewUpdateDonationUseCase(repo).Execute(ctx, UpdateDonationInput{DonationID: uuid.New()})
		if code := donationErrorCode(t, err); code != domainerror.ErrCodeDonationNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDonationNotFound, code)
		}
	})
}

func TestToggleVisibilityAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryDonationRepository()
	created, err := NewCreateDonationUseCase(repo).Execute(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	id := created.Donation.ID

	output, err := NewToggleVisibilityUseCase(repo).Execute(ctx, ToggleVisibilityInput{DonationID: id})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Donation.IsPublic {
		t.Error("expected donation to become private")
	}

	if _, err := NewDeleteDonationUseCase(repo).Execute(ctx, DeleteDonationInput{DonationID: id}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewGetDonationUseCase(repo).Execute(ctx, GetDonationInput{DonationID: id})
	if code := donationErrorCode(t, err); code != domainerror.ErrCodeDonationNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeDonationNotFound, code)
	}
}

func TestResyncArchive(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryDonationRepository()

	inSync := entity.NewDonation("A", decimal.NewFromInt(1), "PHP", "x", entity.DonationCategoryOther,
		time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	drifted := entity.NewDonation("B", decimal.NewFromInt(1), "PHP", "x", entity.DonationCategoryOther,
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	staleMonth := 1
	drifted.ArchiveMonth = &staleMonth
	missing := entity.NewDonation("C", decimal.NewFromInt(1), "PHP", "x", entity.DonationCategoryOther,
		time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC))
	missing.ArchiveMonth = nil
	missing.ArchiveYear = nil

	for _, d := range []*entity.Donation{inSync, drifted, missing} {
		repo.donations[d.ID] = d
	}

	output, err := NewResyncArchiveUseCase(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Checked != 3 {
		t.Errorf("expected 3 checked, got %d", output.Checked)
	}
	if output.Repaired != 2 {
		t.Errorf("expected 2 repaired, got %d", output.Repaired)
	}
	if repo.updates != 2 {
		t.Errorf("expected 2 updates, got %d", repo.updates)
	}
	for _, d := range repo.donations {
		if !d.ArchiveInSync() {
			t.Errorf("expected %s to be in sync", d.DonorName)
		}
	}
}
