package donation

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// ToggleVisibilityInput represents the input for flipping a donation's public flag.
type ToggleVisibilityInput struct {
	DonationID uuid.UUID
}

// ToggleVisibilityOutput represents the output of flipping a donation's public flag.
type ToggleVisibilityOutput struct {
	Donation *entity.Donation
}

// ToggleVisibilityUseCase flips whether a donation is shown publicly.
type ToggleVisibilityUseCase struct {
	donationRepo adapter.DonationRepository
}

// NewToggleVisibilityUseCase creates a new ToggleVisibilityUseCase instance.
func NewToggleVisibilityUseCase(donationRepo adapter.DonationRepository) *ToggleVisibilityUseCase {
	return &ToggleVisibilityUseCase{
		donationRepo: donationRepo,
	}
}

// Execute flips the public flag and saves the donation.
func (uc *ToggleVisibilityUseCase) Execute(ctx context.Context, input ToggleVisibilityInput) (*ToggleVisibilityOutput, error) {
	donation, err := findDonation(ctx, uc.donationRepo, input.DonationID)
	if err != nil {
		return nil, err
	}

	donation.ToggleVisibility()

	if err := uc.donationRepo.Update(ctx, donation); err != nil {
		return nil, storeError("failed to update donation visibility", err)
	}

	return &ToggleVisibilityOutput{Donation: donation}, nil
}
