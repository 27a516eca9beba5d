package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// DateLayout is the calendar date format used by requests and responses.
const DateLayout = "2006-01-02"

// CreateDonationRequest represents the request body for recording a donation.
type CreateDonationRequest struct {
	DonorName    string           `json:"donor_name" binding:"required,max=255"`
	DonorEmail   *string          `json:"donor_email,omitempty" binding:"omitempty,email"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	Currency     string           `json:"currency,omitempty" binding:"omitempty,len=3"`
	Purpose      string           `json:"purpose" binding:"max=500"`
	Category     string           `json:"category" binding:"required"`
	Description  *string          `json:"description,omitempty" binding:"omitempty,max=2000"`
	IsPublic     *bool            `json:"is_public,omitempty"`
	IsAnonymous  bool             `json:"is_anonymous,omitempty"`
	DonationDate string           `json:"donation_date" binding:"required"`
}

// UpdateDonationRequest represents the request body for donation update.
type UpdateDonationRequest struct {
	DonorName        *string          `json:"donor_name,omitempty" binding:"omitempty,max=255"`
	DonorEmail       *string          `json:"donor_email,omitempty" binding:"omitempty,email"`
	ClearDonorEmail  bool             `json:"clear_donor_email,omitempty"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	Currency         *string          `json:"currency,omitempty" binding:"omitempty,len=3"`
	Purpose          *string          `json:"purpose,omitempty" binding:"omitempty,max=500"`
	Category         *string          `json:"category,omitempty"`
	Description      *string          `json:"description,omitempty" binding:"omitempty,max=2000"`
	ClearDescription bool             `json:"clear_description,omitempty"`
	IsPublic         *bool            `json:"is_public,omitempty"`
	IsAnonymous      *bool            `json:"is_anonymous,omitempty"`
	DonationDate     *string          `json:"donation_date,omitempty"`
}

// DonationResponse represents a single donation in API responses.
type DonationResponse struct {
	ID           string    `json:"id"`
	DonorName    string    `json:"donor_name"`
	DonorEmail   *string   `json:"donor_email,omitempty"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Purpose      string    `json:"purpose"`
	Category     string    `json:"category"`
	Description  *string   `json:"description,omitempty"`
	IsPublic     bool      `json:"is_public"`
	IsAnonymous  bool      `json:"is_anonymous"`
	DonationDate *string   `json:"donation_date"`
	ArchiveMonth *int      `json:"archive_month,omitempty"`
	ArchiveYear  *int      `json:"archive_year,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DonationListResponse represents the response for listing donations.
type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	Total     int                `json:"total"`
}

// ResyncArchiveResponse represents the result of the archive consistency step.
type ResyncArchiveResponse struct {
	Checked  int `json:"checked"`
	Repaired int `json:"repaired"`
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ToDonationResponse converts a domain Donation entity to a DonationResponse DTO.
func ToDonationResponse(d *entity.Donation) DonationResponse {
	response := DonationResponse{
		ID:           d.ID.String(),
		DonorName:    d.DonorName,
		DonorEmail:   d.DonorEmail,
		Amount:       d.Amount.StringFixed(2),
		Currency:     d.Currency,
		Purpose:      d.Purpose,
		Category:     string(d.Category),
		Description:  d.Description,
		IsPublic:     d.IsPublic,
		IsAnonymous:  d.IsAnonymous,
		ArchiveMonth: d.ArchiveMonth,
		ArchiveYear:  d.ArchiveYear,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	if !d.DonationDate.IsZero() {
		dateStr := d.DonationDate.Format(DateLayout)
		response.DonationDate = &dateStr
	}

	return response
}

// ToDonationListResponse converts a slice of donations to a DonationListResponse DTO.
func ToDonationListResponse(donations []*entity.Donation) DonationListResponse {
	items := make([]DonationResponse, 0, len(donations))
	for _, d := range donations {
		items = append(items, ToDonationResponse(d))
	}
	return DonationListResponse{
		Donations: items,
		Total:     len(items),
	}
}
