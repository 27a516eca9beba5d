// Package donation contains donation-related use cases.
package donation

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// findDonation loads a donation, translating a miss into a coded error.
func findDonation(ctx context.Context, repo adapter.DonationRepository, id uuid.UUID) (*entity.Donation, error) {
	donation, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrDonationNotFound) {
			return nil, domainerror.NewDonationError(
				domainerror.ErrCodeDonationNotFound,
				"donation not found",
				domainerror.ErrDonationNotFound,
			)
		}
		return nil, storeError("failed to load donation", err)
	}
	return donation, nil
}

func storeError(message string, err error) error {
	return domainerror.NewDonationError(domainerror.ErrCodeDonationStoreFailure, message, err)
}

func validateDonorName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewDonationError(
			domainerror.ErrCodeDonorNameRequired,
			"donor name is required",
			domainerror.ErrDonorNameRequired,
		)
	}
	return name, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewDonationError(
			domainerror.ErrCodeInvalidDonationAmount,
			"amount must not be negative",
			domainerror.ErrInvalidDonationAmount,
		)
	}
	return nil
}

func validateCategory(category entity.DonationCategory) error {
	if !category.IsValid() {
		return domainerror.NewDonationError(
			domainerror.ErrCodeInvalidDonationCategory,
			"category must be one of the donation funds",
			domainerror.ErrInvalidDonationCategory,
		)
	}
	return nil
}

func normalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return entity.DefaultCurrency, nil
	}
	if !currencyRegex.MatchString(currency) {
		return "", domainerror.NewDonationError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a 3-letter ISO code",
			domainerror.ErrInvalidCurrency,
		)
	}
	return currency, nil
}

// optionalText trims s and returns nil when nothing is left.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
