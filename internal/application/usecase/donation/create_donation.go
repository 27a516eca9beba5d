package donation

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

// CreateDonationInput represents the input for recording a donation.
type CreateDonationInput struct {
	DonorName    string
	DonorEmail   *string
	Amount       decimal.Decimal
	Currency     string
	Purpose      string
	Category     entity.DonationCategory
	Description  *string
	IsPublic     *bool // Optional, defaults to true
	IsAnonymous  bool
	DonationDate time.Time
}

// CreateDonationOutput represents the output of recording a donation.
type CreateDonationOutput struct {
	Donation *entity.Donation
}

// CreateDonationUseCase handles donation creation logic.
type CreateDonationUseCase struct {
	donationRepo adapter.DonationRepository
}

// NewCreateDonationUseCase creates a new CreateDonationUseCase instance.
func NewCreateDonationUseCase(donationRepo adapter.DonationRepository) *CreateDonationUseCase {
	return &CreateDonationUseCase{
		donationRepo: donationRepo,
	}
}

// Execute validates and stores a new donation.
func (uc *CreateDonationUseCase) Execute(ctx context.Context, input CreateDonationInput) (*CreateDonationOutput, error) {
	donorName, err := validateDonorName(input.DonorName)
	if err != nil {
		return nil, err
	}

	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}

	currency, err := normalizeCurrency(input.Currency)
	if err != nil {
		return nil, err
	}

	if input.DonationDate.IsZero() {
		return nil, domainerror.NewDonationError(
			domainerror.ErrCodeDonationDateRequired,
			"donation date is required",
			domainerror.ErrDonationDateRequired,
		)
	}

	donation := entity.NewDonation(
		donorName,
		input.Amount,
		currency,
		strings.TrimSpace(input.Purpose),
		input.Category,
		input.DonationDate,
	)
	donation.DonorEmail = optionalText(input.DonorEmail)
	donation.Description = optionalText(input.Description)
	donation.IsAnonymous = input.IsAnonymous
	if input.IsPublic != nil {
		donation.IsPublic = *input.IsPublic
	}

	if err := uc.donationRepo.Create(ctx, donation); err != nil {
		return nil, storeError("failed to save donation", err)
	}

	return &CreateDonationOutput{
		Donation: donation,
	}, nil
}
