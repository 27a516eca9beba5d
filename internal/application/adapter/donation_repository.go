// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// DonationRepository defines the interface for donation persistence operations.
type DonationRepository interface {
	// Create stores a new donation.
	Create(ctx context.Context, donation *entity.Donation) error

	// FindByID retrieves a donation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// FindAll returns the full donation snapshot ordered by donation date descending.
	FindAll(ctx context.Context) ([]*entity.Donation, error)

	// Update saves changes to an existing donation.
	Update(ctx context.Context, donation *entity.Donation) error

	// Delete removes a donation (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
