package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

const notAvailable = "N/A"

var detailedHeader = []string{
	"Date", "Donor Name", "Email", "Amount", "Currency",
	"Category", "Purpose", "Description", "Public", "Anonymous",
}

// WriteDetailedCSV writes a header and one row per donation in report order.
func WriteDetailedCSV(w io.Writer, report *valueobject.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(detailedHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, d := range report.Donations {
		if err := cw.Write(detailedRow(d)); err != nil {
			return fmt.Errorf("failed to write donation %s: %w", d.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func detailedRow(d *entity.Donation) []string {
	return []string{
		formatDate(d),
		d.DonorName,
		orNotAvailable(d.DonorEmail),
		plainAmount(d.Amount),
		d.Currency,
		string(d.Category),
		d.Purpose,
		orNotAvailable(d.Description),
		yesNo(d.IsPublic),
		yesNo(d.IsAnonymous),
	}
}

// WriteSummaryCSV writes the metrics block followed by each selected, non-empty breakdown block.
// The yearly block appears only when more than one year is present,
// the currency block only when more than one currency is present.
func WriteSummaryCSV(w io.Writer, report *valueobject.Report, sections valueobject.SectionSelection) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Donations", strconv.Itoa(report.Count)},
		{"Total Amount", plainAmount(report.TotalAmount)},
		{"Average Amount", plainAmount(report.AvgAmount)},
	}

	if sections.Category && report.ByCategory.Len() > 0 {
		rows = appendBlock(rows, "Category", report.ByCategory.SortedByAmountDesc())
	}
	if sections.Monthly && report.ByMonth.Len() > 0 {
		rows = appendBlock(rows, "Month", report.ByMonth.SortedByKey())
	}
	if sections.Yearly && report.ByYear.Len() > 1 {
		rows = appendBlock(rows, "Year", report.ByYear.SortedByKey())
	}
	if report.IsMultiCurrency() {
		rows = appendBlock(rows, "Currency", report.ByCurrency.SortedByKey())
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write summary CSV: %w", err)
	}
	return nil
}

func appendBlock(rows [][]string, keyHeader string, entries []valueobject.GroupEntry) [][]string {
	rows = append(rows, []string{}, []string{keyHeader, "Amount", "Count"})
	for _, e := range entries {
		rows = append(rows, []string{e.Key, plainAmount(e.Amount), strconv.Itoa(e.Count)})
	}
	return rows
}

func formatDate(d *entity.Donation) string {
	if d.DonationDate.IsZero() {
		return notAvailable
	}
	return d.DonationDate.Format("2006-01-02")
}

func orNotAvailable(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
