// Package error defines domain-specific errors for the alumni back office.
package error

import "errors"

// Donation domain errors.
var (
	// ErrDonationNotFound is returned when a donation is not found in the store.
	ErrDonationNotFound = errors.New("donation not found")

	// ErrInvalidDonationAmount is returned when the amount is negative.
	ErrInvalidDonationAmount = errors.New("donation amount must not be negative")

	// ErrInvalidDonationCategory is returned when the category is not one of the fixed categories.
	ErrInvalidDonationCategory = errors.New("invalid donation category")

	// ErrDonorNameRequired is returned when the donor name is blank.
	ErrDonorNameRequired = errors.New("donor name is required")

	// ErrInvalidCurrency is returned when the currency is not a 3-letter code.
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")

	// ErrDonationDateRequired is returned when a donation is recorded without a date.
	ErrDonationDateRequired = errors.New("donation date is required")

	// ErrDonationStoreFailure is returned when the donation store cannot be read or written.
	ErrDonationStoreFailure = errors.New("donation store failure")
)

// DonationErrorCode defines error codes for donation errors.
// Format: DON-XXYYYY where XX is category and YYYY is specific error.
type DonationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDonationAmount   DonationErrorCode = "DON-010001"
	ErrCodeInvalidDonationCategory DonationErrorCode = "DON-010002"
	ErrCodeDonorNameRequired       DonationErrorCode = "DON-010003"
	ErrCodeInvalidCurrency         DonationErrorCode = "DON-010004"
	ErrCodeDonationDateRequired    DonationErrorCode = "DON-010005"
	ErrCodeMissingDonationFields   DonationErrorCode = "DON-010006"

	// Lookup errors (02XXXX)
	ErrCodeDonationNotFound DonationErrorCode = "DON-020001"

	// Store errors (03XXXX)
	ErrCodeDonationStoreFailure DonationErrorCode = "DON-030001"
)

// DonationError represents a donation error with code and message.
type DonationError struct {
	Code    DonationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DonationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DonationError) Unwrap() error {
	return e.Err
}

// NewDonationError creates a new DonationError with the given code and message.
func NewDonationError(code DonationErrorCode, message string, err error) *DonationError {
	return &DonationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
