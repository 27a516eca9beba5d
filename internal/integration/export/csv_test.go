package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/application/usecase/report"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

func testDonation(donor string, amount int64, currency string, category entity.DonationCategory, year int, month time.Month, day int) *entity.Donation {
	return entity.NewDonation(donor, decimal.NewFromInt(amount), currency, "Support", category,
		time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func threeDonationReport() *valueobject.Report {
	return report.GenerateReport([]*entity.Donation{
		testDonation("Maria Santos", 5000, "PHP", entity.DonationCategoryScholarship, 2024, time.May, 10),
		testDonation("Jose Reyes", 1000, "PHP", entity.DonationCategoryLibrary, 2024, time.March, 1),
		testDonation("Ana Cruz", 500, "PHP", entity.DonationCategoryEquipment, 2024, time.March, 2),
	}, valueobject.ReportFilter{})
}

func TestWriteDetailedCSV_QuotingRoundTrip(t *testing.T) {
	tricky := `Smith, "Jr."`
	d := testDonation(tricky, 1250, "PHP", entity.DonationCategoryLibrary, 2024, time.March, 1)
	desc := "Books, journals\nand periodicals"
	d.Description = &desc
	r := report.GenerateReport([]*entity.Donation{d}, valueobject.ReportFilter{})

	var buf bytes.Buffer
	if err := WriteDetailedCSV(&buf, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), `"Smith, ""Jr."""`) {
		t.Errorf("expected escaped donor name, got %s", buf.String())
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}

	row := records[1]
	expected := []string{"2024-03-01", tricky, "N/A", "1250.00", "PHP", "Library Fund", "Support", desc, "Yes", "No"}
	for i := range expected {
		if row[i] != expected[i] {
			t.Errorf("column %s: expected %q, got %q", records[0][i], expected[i], row[i])
		}
	}
}

func TestWriteDetailedCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDetailedCSV(&buf, threeDonationReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstLine := strings.SplitN(buf.String(), "\n", 2)[0]
	expected := "Date,Donor Name,Email,Amount,Currency,Category,Purpose,Description,Public,Anonymous"
	if firstLine != expected {
		t.Errorf("expected header %q, got %q", expected, firstLine)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 4 {
		t.Errorf("expected 4 lines, got %d", lines)
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	t.Run("all sections with a single year omits the yearly block", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteSummaryCSV(&buf, threeDonationReport(), valueobject.AllSections()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := strings.Join([]string{
			"Metric,Value",
			"Total Donations,3",
			"Total Amount,6500.00",
			"Average Amount,2166.67",
			"",
			"Category,Amount,Count",
			"Scholarship Fund,5000.00,1",
			"Library Fund,1000.00,1",
			"Equipment Fund,500.00,1",
			"",
			"Month,Amount,Count",
			"2024-03,1500.00,2",
			"2024-05,5000.00,1",
		}, "\n") + "\n"

		if buf.String() != expected {
			t.Errorf("unexpected summary:\n%s\nexpected:\n%s", buf.String(), expected)
		}
	})

	t.Run("yearly block appears for more than one year", func(t *testing.T) {
		r := report.GenerateReport([]*entity.Donation{
			testDonation("A", 100, "PHP", entity.DonationCategoryOther, 2024, time.January, 5),
			testDonation("B", 300, "PHP", entity.DonationCategoryOther, 2022, time.June, 5),
		}, valueobject.ReportFilter{})

		var buf bytes.Buffer
		if err := WriteSummaryCSV(&buf, r, valueobject.SectionSelection{Yearly: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "\nYear,Amount,Count\n2022,300.00,1\n2024,100.00,1\n") {
			t.Errorf("expected ascending yearly block, got:\n%s", out)
		}
		if strings.Contains(out, "Category,") || strings.Contains(out, "Month,") {
			t.Errorf("expected unselected blocks omitted, got:\n%s", out)
		}
	})

	t.Run("metrics only when nothing is selected", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteSummaryCSV(&buf, threeDonationReport(), valueobject.SectionSelection{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lines := strings.Count(buf.String(), "\n"); lines != 4 {
			t.Errorf("expected only the metrics block, got:\n%s", buf.String())
		}
	})

	t.Run("currency block appears for more than one currency", func(t *testing.T) {
		r := report.GenerateReport([]*entity.Donation{
			testDonation("A", 100, "PHP", entity.DonationCategoryOther, 2024, time.January, 5),
			testDonation("B", 50, "USD", entity.DonationCategoryOther, 2024, time.January, 6),
		}, valueobject.ReportFilter{})

		var buf bytes.Buffer
		if err := WriteSummaryCSV(&buf, r, valueobject.SectionSelection{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\nCurrency,Amount,Count\nPHP,100.00,1\nUSD,50.00,1\n") {
			t.Errorf("expected currency block, got:\n%s", buf.String())
		}
	})

	t.Run("zero average for an empty report", func(t *testing.T) {
		r := report.GenerateReport(nil, valueobject.ReportFilter{})
		var buf bytes.Buffer
		if err := WriteSummaryCSV(&buf, r, valueobject.AllSections()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Average Amount,0.00\n") {
			t.Errorf("expected zero average, got:\n%s", buf.String())
		}
	})
}
