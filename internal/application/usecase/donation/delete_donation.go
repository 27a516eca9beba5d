package donation

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
)

// DeleteDonationInput represents the input for donation deletion.
type DeleteDonationInput struct {
	DonationID uuid.UUID
}

// DeleteDonationOutput represents the output of donation deletion.
type DeleteDonationOutput struct {
	Success bool
}

// DeleteDonationUseCase handles donation deletion logic.
type DeleteDonationUseCase struct {
	donationRepo adapter.DonationRepository
}

// NewDeleteDonationUseCase creates a new DeleteDonationUseCase instance.
func NewDeleteDonationUseCase(donationRepo adapter.DonationRepository) *DeleteDonationUseCase {
	return &DeleteDonationUseCase{
		donationRepo: donationRepo,
	}
}

// Execute performs the donation deletion.
func (uc *DeleteDonationUseCase) Execute(ctx context.Context, input DeleteDonationInput) (*DeleteDonationOutput, error) {
	if _, err := findDonation(ctx, uc.donationRepo, input.DonationID); err != nil {
		return nil, err
	}

	if err := uc.donationRepo.Delete(ctx, input.DonationID); err != nil {
		return nil, storeError("failed to delete donation", err)
	}

	return &DeleteDonationOutput{
		Success: true,
	}, nil
}
