package error

import "errors"

// Settings domain errors.
var (
	// ErrSignatoryNameRequired is returned when a signatory is saved without a name.
	ErrSignatoryNameRequired = errors.New("signatory name is required")

	// ErrSettingsStoreFailure is returned when the settings store cannot be read or written.
	ErrSettingsStoreFailure = errors.New("settings store failure")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSignatoryNameRequired SettingsErrorCode = "SET-010001"

	// Store errors (02XXXX)
	ErrCodeSettingsStoreFailure SettingsErrorCode = "SET-020001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
