package dto

import (
	"time"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// ReportQuery represents the query parameters shared by the report endpoints.
type ReportQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Category  string `form:"category"`
	Donor     string `form:"donor"`
	Sections  string `form:"sections"`
}

// EmailReportRequest represents the request body for emailing a donation report.
type EmailReportRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
	RecipientName  string `json:"recipient_name,omitempty" binding:"omitempty,max=255"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	Category       string `json:"category,omitempty"`
	Donor          string `json:"donor,omitempty"`
	Sections       string `json:"sections,omitempty"`
}

// ToQuery returns the report parameters of the email request.
func (r EmailReportRequest) ToQuery() ReportQuery {
	return ReportQuery{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Category:  r.Category,
		Donor:     r.Donor,
		Sections:  r.Sections,
	}
}

// ToFilter parses the date range and copies the remaining filters.
func (q ReportQuery) ToFilter() (valueobject.ReportFilter, error) {
	filter := valueobject.ReportFilter{
		Category:  q.Category,
		DonorName: q.Donor,
	}

	if q.StartDate != "" {
		start, err := ParseDate(q.StartDate)
		if err != nil {
			return valueobject.ReportFilter{}, err
		}
		filter.StartDate = &start
	}

	if q.EndDate != "" {
		end, err := ParseDate(q.EndDate)
		if err != nil {
			return valueobject.ReportFilter{}, err
		}
		filter.EndDate = &end
	}

	return filter, nil
}

// ToSections parses the section list. An empty list selects every section.
func (q ReportQuery) ToSections() (valueobject.SectionSelection, error) {
	return valueobject.ParseSectionSelection(q.Sections)
}

// GroupEntryResponse is one row of a report breakdown.
type GroupEntryResponse struct {
	Key    string `json:"key"`
	Amount string `json:"amount"`
	Count  int    `json:"count"`
}

// ReportFilterResponse echoes the filter the report was generated with.
type ReportFilterResponse struct {
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Category    string  `json:"category"`
	DonorName   string  `json:"donor_name,omitempty"`
	PeriodLabel string  `json:"period_label"`
}

// ReportResponse represents a donation report in API responses.
// Breakdowns are already sorted for display: category by amount descending, periods by key ascending.
type ReportResponse struct {
	Count       int                  `json:"count"`
	TotalAmount string               `json:"total_amount"`
	AvgAmount   string               `json:"avg_amount"`
	ByCategory  []GroupEntryResponse `json:"by_category"`
	ByMonth     []GroupEntryResponse `json:"by_month"`
	ByYear      []GroupEntryResponse `json:"by_year"`
	ByCurrency  []GroupEntryResponse `json:"by_currency"`
	Donations   []DonationResponse   `json:"donations"`
	Filter      ReportFilterResponse `json:"filter"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// EmailReportResponse represents the response for a queued report email.
type EmailReportResponse struct {
	Message       string `json:"message"`
	DocumentName  string `json:"document_name"`
	DonationCount int    `json:"donation_count"`
}

// ToReportResponse converts a Report value object to a ReportResponse DTO.
func ToReportResponse(r *valueobject.Report) ReportResponse {
	response := ReportResponse{
		Count:       r.Count,
		TotalAmount: r.TotalAmount.StringFixed(2),
		AvgAmount:   r.AvgAmount.StringFixed(2),
		ByCategory:  toGroupEntries(r.ByCategory.SortedByAmountDesc()),
		ByMonth:     toGroupEntries(r.ByMonth.SortedByKey()),
		ByYear:      toGroupEntries(r.ByYear.SortedByKey()),
		ByCurrency:  toGroupEntries(r.ByCurrency.SortedByKey()),
		Donations:   ToDonationListResponse(r.Donations).Donations,
		Filter:      toReportFilterResponse(r.Filter),
		GeneratedAt: r.GeneratedAt,
	}
	return response
}

func toGroupEntries(entries []valueobject.GroupEntry) []GroupEntryResponse {
	items := make([]GroupEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, GroupEntryResponse{
			Key:    e.Key,
			Amount: e.Amount.StringFixed(2),
			Count:  e.Count,
		})
	}
	return items
}

func toReportFilterResponse(f valueobject.ReportFilter) ReportFilterResponse {
	response := ReportFilterResponse{
		Category:    f.Category,
		DonorName:   f.DonorName,
		PeriodLabel: f.PeriodLabel(),
	}
	if !f.FiltersCategory() {
		response.Category = entity.AllCategories
	}
	if f.StartDate != nil {
		s := f.StartDate.Format(DateLayout)
		response.StartDate = &s
	}
	if f.EndDate != nil {
		s := f.EndDate.Format(DateLayout)
		response.EndDate = &s
	}
	return response
}
