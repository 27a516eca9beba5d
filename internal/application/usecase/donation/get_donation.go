package donation

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// GetDonationInput represents the input for fetching a donation.
type GetDonationInput struct {
	DonationID uuid.UUID
}

// GetDonationOutput represents the output of fetching a donation.
type GetDonationOutput struct {
	Donation *entity.Donation
}

// GetDonationUseCase handles fetching a single donation.
type GetDonationUseCase struct {
	donationRepo adapter.DonationRepository
}

// NewGetDonationUseCase creates a new GetDonationUseCase instance.
func NewGetDonationUseCase(donationRepo adapter.DonationRepository) *GetDonationUseCase {
	return &GetDonationUseCase{
		donationRepo: donationRepo,
	}
}

// Execute fetches the donation.
func (uc *GetDonationUseCase) Execute(ctx context.Context, input GetDonationInput) (*GetDonationOutput, error) {
	donation, err := findDonation(ctx, uc.donationRepo, input.DonationID)
	if err != nil {
		return nil, err
	}
	return &GetDonationOutput{Donation: donation}, nil
}
