package error

import "errors"

// Report domain errors.
var (
	// ErrEmptyExport is returned when an export is requested for a report with no donations.
	ErrEmptyExport = errors.New("no donations to export")

	// ErrReportDataUnavailable is returned when the donation snapshot cannot be fetched.
	ErrReportDataUnavailable = errors.New("donation data is unavailable")

	// ErrPrintSurfaceUnavailable is returned when the print surface cannot be opened.
	ErrPrintSurfaceUnavailable = errors.New("print surface could not be opened")

	// ErrReportRenderFailed is returned when rendering an export fails.
	ErrReportRenderFailed = errors.New("failed to render report")

	// ErrInvalidReportFilter is returned when the filter is malformed, e.g. start after end.
	ErrInvalidReportFilter = errors.New("invalid report filter")

	// ErrFileDeliveryFailed is returned when an exported file cannot be delivered.
	ErrFileDeliveryFailed = errors.New("failed to deliver export file")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Export guard errors (01XXXX)
	ErrCodeEmptyExport         ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportFilter ReportErrorCode = "RPT-010002"

	// Data source errors (02XXXX)
	ErrCodeReportDataUnavailable ReportErrorCode = "RPT-020001"

	// Output errors (03XXXX)
	ErrCodePrintSurfaceUnavailable ReportErrorCode = "RPT-030001"
	ErrCodeReportRenderFailed      ReportErrorCode = "RPT-030002"
	ErrCodeFileDeliveryFailed      ReportErrorCode = "RPT-030003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the same request later.
func (e *ReportError) Retryable() bool {
	return e.Code == ErrCodeReportDataUnavailable
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
