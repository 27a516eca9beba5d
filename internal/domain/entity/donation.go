// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationCategory represents the fund a donation is earmarked for.
type DonationCategory string

const (
	DonationCategoryScholarship DonationCategory = "Scholarship Fund"
	DonationCategoryLibrary     DonationCategory = "Library Fund"
	DonationCategoryEquipment   DonationCategory = "Equipment Fund"
	DonationCategoryBuilding    DonationCategory = "Building Fund"
	DonationCategoryEvent       DonationCategory = "Event Sponsorship"
	DonationCategoryDevelopment DonationCategory = "Alumni Development"
	DonationCategoryGeneral     DonationCategory = "General Fund"
	DonationCategoryOther       DonationCategory = "Other"
)

// AllCategories is the filter sentinel meaning "do not filter by category".
const AllCategories = "All Categories"

// DefaultCurrency is used when a donation is recorded without a currency code.
const DefaultCurrency = "PHP"

// DonationCategories lists the fixed categories in display order.
var DonationCategories = []DonationCategory{
	DonationCategoryScholarship,
	DonationCategoryLibrary,
	DonationCategoryEquipment,
	DonationCategoryBuilding,
	DonationCategoryEvent,
	DonationCategoryDevelopment,
	DonationCategoryGeneral,
	DonationCategoryOther,
}

// IsValid reports whether the category is one of the fixed categories.
func (c DonationCategory) IsValid() bool {
	for _, known := range DonationCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Donation represents a single philanthropic contribution recorded by the association.
type Donation struct {
	ID           uuid.UUID
	DonorName    string
	DonorEmail   *string
	Amount       decimal.Decimal
	Currency     string
	Purpose      string
	Category     DonationCategory
	Description  *string
	IsPublic     bool
	IsAnonymous  bool
	DonationDate time.Time
	ArchiveMonth *int // Derived from DonationDate, kept in sync by SetDonationDate
	ArchiveYear  *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewDonation creates a new Donation entity with archive metadata derived from the date.
func NewDonation(
	donorName string,
	amount decimal.Decimal,
	currency string,
	purpose string,
	category DonationCategory,
	donationDate time.Time,
) *Donation {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	d := &Donation{
		ID:        uuid.New(),
		DonorName: donorName,
		Amount:    amount,
		Currency:  currency,
		Purpose:   purpose,
		Category:  category,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.SetDonationDate(donationDate)
	return d
}

// SetDonationDate changes the donation date and recomputes the archive month/year.
// It is the only way the date should be changed.
func (d *Donation) SetDonationDate(date time.Time) {
	d.DonationDate = CalendarDate(date)
	if d.DonationDate.IsZero() {
		d.ArchiveMonth = nil
		d.ArchiveYear = nil
		return
	}
	month := int(d.DonationDate.Month())
	year := d.DonationDate.Year()
	d.ArchiveMonth = &month
	d.ArchiveYear = &year
}

// ArchiveInSync reports whether the archive metadata matches the donation date.
func (d *Donation) ArchiveInSync() bool {
	if d.DonationDate.IsZero() {
		return d.ArchiveMonth == nil && d.ArchiveYear == nil
	}
	return d.ArchiveMonth != nil && d.ArchiveYear != nil &&
		*d.ArchiveMonth == int(d.DonationDate.Month()) &&
		*d.ArchiveYear == d.DonationDate.Year()
}

// ToggleVisibility flips the public flag.
func (d *Donation) ToggleVisibility() {
	d.IsPublic = !d.IsPublic
	d.UpdatedAt = time.Now().UTC()
}

// CalendarDate strips the time-of-day, keeping the date as seen in the value's own location.
// The zero time stays zero.
func CalendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
