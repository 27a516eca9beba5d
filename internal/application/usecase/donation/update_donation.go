package donation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

// UpdateDonationInput represents the input for donation update.
// Nil fields are left unchanged.
type UpdateDonationInput struct {
	DonationID       uuid.UUID
	DonorName        *string
	DonorEmail       *string
	Amount           *decimal.Decimal
	Currency         *string
	Purpose          *string
	Category         *entity.DonationCategory
	Description      *string
	IsPublic         *bool
	IsAnonymous      *bool
	DonationDate     *time.Time
	ClearDonorEmail  bool
	ClearDescription bool
}

// UpdateDonationOutput represents the output of donation update.
type UpdateDonationOutput struct {
	Donation *entity.Donation
}

// UpdateDonationUseCase handles donation update logic.
type UpdateDonationUseCase struct {
	donationRepo adapter.DonationRepository
}

// NewUpdateDonationUseCase creates a new UpdateDonationUseCase instance.
func NewUpdateDonationUseCase(donationRepo adapter.DonationRepository) *UpdateDonationUseCase {
	return &UpdateDonationUseCase{
		donationRepo: donationRepo,
	}
}

// Execute performs the donation update.
func (uc *UpdateDonationUseCase) Execute(ctx context.Context, input UpdateDonationInput) (*UpdateDonationOutput, error) {
	donation, err := findDonation(ctx, uc.donationRepo, input.DonationID)
	if err != nil {
		return nil, err
	}

	if input.DonorName != nil {
		name, err := validateDonorName(*input.DonorName)
		if err != nil {
			return nil, err
		}
		donation.DonorName = name
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		donation.Amount = *input.Amount
	}

	if input.Currency != nil {
		currency, err := normalizeCurrency(*input.Currency)
		if err != nil {
			return nil, err
		}
		donation.Currency = currency
	}

	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return nil, err
		}
		donation.Category = *input.Category
	}

	if input.Purpose != nil {
		donation.Purpose = strings.TrimSpace(*input.Purpose)
	}

	if input.ClearDonorEmail {
		donation.DonorEmail = nil
	} else if input.DonorEmail != nil {
		donation.DonorEmail = optionalText(input.DonorEmail)
	}

	if input.ClearDescription {
		donation.Description = nil
	} else if input.Description != nil {
		donation.Description = optionalText(input.Description)
	}

	if input.IsPublic != nil {
		donation.IsPublic = *input.IsPublic
	}

	if input.IsAnonymous != nil {
		donation.IsAnonymous = *input.IsAnonymous
	}

	if input.DonationDate != nil {
		if input.DonationDate.IsZero() {
			return nil, domainerror.NewDonationError(
				domainerror.ErrCodeDonationDateRequired,
				"donation date is required",
				domainerror.ErrDonationDateRequired,
			)
		}
		donation.SetDonationDate(*input.DonationDate)
	}

	donation.UpdatedAt = time.Now().UTC()

	if err := uc.donationRepo.Update(ctx, donation); err != nil {
		return nil, storeError("failed to update donation", err)
	}

	return &UpdateDonationOutput{
		Donation: donation,
	}, nil
}
