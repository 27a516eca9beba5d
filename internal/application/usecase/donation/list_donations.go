package donation

import (
	"context"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// ListDonationsOutput represents the donation snapshot.
type ListDonationsOutput struct {
	Donations []*entity.Donation
}

// ListDonationsUseCase returns every donation ordered by donation date descending.
type ListDonationsUseCase struct {
	donationRepo adapter.DonationRepository
}

// NewListDonationsUseCase creates a new ListDonationsUseCase instance.
func NewListDonationsUseCase(donationRepo adapter.DonationRepository) *ListDonationsUseCase {
	return &ListDonationsUseCase{
		donationRepo: donationRepo,
	}
}

// Execute returns the donation snapshot.
func (uc *ListDonationsUseCase) Execute(ctx context.Context) (*ListDonationsOutput, error) {
	donations, err := uc.donationRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError("failed to list donations", err)
	}
	return &ListDonationsOutput{Donations: donations}, nil
}
