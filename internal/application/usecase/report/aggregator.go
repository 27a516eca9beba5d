// Package report contains donation report use cases.
package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// GenerateReport filters the donation snapshot and aggregates it in a single pass.
// It never mutates its input and never fails.
func GenerateReport(donations []*entity.Donation, filter valueobject.ReportFilter) *valueobject.Report {
	report := &valueobject.Report{
		TotalAmount: decimal.Zero,
		AvgAmount:   decimal.Zero,
		ByCategory:  valueobject.NewGrouping(),
		ByMonth:     valueobject.NewGrouping(),
		ByYear:      valueobject.NewGrouping(),
		ByCurrency:  valueobject.NewGrouping(),
		Donations:   make([]*entity.Donation, 0),
		Filter:      filter,
	}

	for _, d := range donations {
		if d == nil || !Matches(d, filter) {
			continue
		}

		report.Donations = append(report.Donations, d)
		report.Count++
		report.TotalAmount = report.TotalAmount.Add(d.Amount)

		report.ByCategory.Add(string(d.Category), d.Amount)
		report.ByMonth.Add(MonthKey(d), d.Amount)
		report.ByYear.Add(YearKey(d), d.Amount)
		report.ByCurrency.Add(currencyKey(d), d.Amount)
	}

	if report.Count > 0 {
		report.AvgAmount = report.TotalAmount.Div(decimal.NewFromInt(int64(report.Count)))
	}

	return report
}

// Matches applies the filter predicates in order: start date, end date, category, donor name.
func Matches(d *entity.Donation, filter valueobject.ReportFilter) bool {
	date := entity.CalendarDate(d.DonationDate)

	if filter.StartDate != nil {
		if date.IsZero() || date.Before(entity.CalendarDate(*filter.StartDate)) {
			return false
		}
	}

	if filter.EndDate != nil {
		if date.IsZero() || date.After(entity.CalendarDate(*filter.EndDate)) {
			return false
		}
	}

	if filter.FiltersCategory() && string(d.Category) != filter.Category {
		return false
	}

	if query := strings.TrimSpace(filter.DonorName); query != "" {
		if !strings.Contains(strings.ToLower(d.DonorName), strings.ToLower(query)) {
			return false
		}
	}

	return true
}

// MonthKey returns the YYYY-MM grouping key derived from the donation date.
// The archive fields are never consulted.
func MonthKey(d *entity.Donation) string {
	if d.DonationDate.IsZero() {
		return valueobject.UnknownPeriodKey
	}
	return d.DonationDate.Format("2006-01")
}

// YearKey returns the four-digit year grouping key derived from the donation date.
func YearKey(d *entity.Donation) string {
	if d.DonationDate.IsZero() {
		return valueobject.UnknownPeriodKey
	}
	return strconv.Itoa(d.DonationDate.Year())
}

func currencyKey(d *entity.Donation) string {
	if d.Currency == "" {
		return entity.DefaultCurrency
	}
	return strings.ToUpper(d.Currency)
}
