// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/integration/persistence/model"
)

// donationRepository implements the adapter.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository instance.
func NewDonationRepository(db *gorm.DB) adapter.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// Create stores a new donation.
func (r *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationModel := model.DonationFromEntity(donation)
	result := r.db.WithContext(ctx).Create(donationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a donation by its ID.
func (r *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationModel model.DonationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&donationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDonationNotFound
		}
		return nil, result.Error
	}
	return donationModel.ToEntity(), nil
}

// FindAll returns every donation, newest donation date first.
// Undated rows come last.
func (r *donationRepository) FindAll(ctx context.Context) ([]*entity.Donation, error) {
	var donationModels []model.DonationModel
	result := r.db.WithContext(ctx).
		Order("donation_date IS NULL, donation_date DESC, created_at DESC").
		Find(&donationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	donations := make([]*entity.Donation, len(donationModels))
	for i, dm := range donationModels {
		donations[i] = dm.ToEntity()
	}
	return donations, nil
}

// Update saves changes to an existing donation.
func (r *donationRepository) Update(ctx context.Context, donation *entity.Donation) error {
	donationModel := model.DonationFromEntity(donation)
	result := r.db.WithContext(ctx).Save(donationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a donation from the database (soft delete).
func (r *donationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DonationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDonationNotFound
	}
	return nil
}
