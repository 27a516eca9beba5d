// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// DonationModel represents the donations table in the database.
type DonationModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DonorName    string          `gorm:"type:varchar(255);not null;index"`
	DonorEmail   *string         `gorm:"type:varchar(255)"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'PHP'"`
	Purpose      string          `gorm:"type:text"`
	Category     string          `gorm:"type:varchar(50);not null;index"`
	Description  *string         `gorm:"type:text"`
	IsPublic     bool            `gorm:"not null"`
	IsAnonymous  bool            `gorm:"not null"`
	DonationDate *time.Time      `gorm:"type:date;index"`
	ArchiveMonth *int            `gorm:"index:idx_donations_archive"`
	ArchiveYear  *int            `gorm:"index:idx_donations_archive"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the DonationModel.
func (DonationModel) TableName() string {
	return "donations"
}

// ToEntity converts a DonationModel to a domain Donation entity.
// Archive fields are copied as stored so drift stays visible to the resync step.
func (m *DonationModel) ToEntity() *entity.Donation {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var donationDate time.Time
	if m.DonationDate != nil {
		donationDate = entity.CalendarDate(*m.DonationDate)
	}

	return &entity.Donation{
		ID:           m.ID,
		DonorName:    m.DonorName,
		DonorEmail:   m.DonorEmail,
		Amount:       m.Amount,
		Currency:     m.Currency,
		Purpose:      m.Purpose,
		Category:     entity.DonationCategory(m.Category),
		Description:  m.Description,
		IsPublic:     m.IsPublic,
		IsAnonymous:  m.IsAnonymous,
		DonationDate: donationDate,
		ArchiveMonth: m.ArchiveMonth,
		ArchiveYear:  m.ArchiveYear,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// DonationFromEntity creates a DonationModel from a domain Donation entity.
func DonationFromEntity(donation *entity.Donation) *DonationModel {
	var deletedAt gorm.DeletedAt
	if donation.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *donation.DeletedAt, Valid: true}
	}

	var donationDate *time.Time
	if !donation.DonationDate.IsZero() {
		d := donation.DonationDate
		donationDate = &d
	}

	return &DonationModel{
		ID:           donation.ID,
		DonorName:    donation.DonorName,
		DonorEmail:   donation.DonorEmail,
		Amount:       donation.Amount,
		Currency:     donation.Currency,
		Purpose:      donation.Purpose,
		Category:     string(donation.Category),
		Description:  donation.Description,
		IsPublic:     donation.IsPublic,
		IsAnonymous:  donation.IsAnonymous,
		DonationDate: donationDate,
		ArchiveMonth: donation.ArchiveMonth,
		ArchiveYear:  donation.ArchiveYear,
		CreatedAt:    donation.CreatedAt,
		UpdatedAt:    donation.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
