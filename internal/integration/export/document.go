package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

//go:embed templates/donation_report.html
var documentFS embed.FS

const documentTemplate = "donation_report.html"

// DocumentConfig holds the fixed presentation settings of the printable report.
type DocumentConfig struct {
	Title            string
	BannerURL        string
	ClosingStatement string
	AutoPrint        bool
	Location         *time.Location // Zone of the generation timestamp, UTC when nil
}

// DocumentRenderer renders the printable donation report.
type DocumentRenderer struct {
	tmpl      *template.Template
	config    DocumentConfig
	formatter *AmountFormatter
}

// NewDocumentRenderer parses the embedded document template.
func NewDocumentRenderer(config DocumentConfig, formatter *AmountFormatter) (*DocumentRenderer, error) {
	tmpl, err := template.ParseFS(documentFS, "templates/"+documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document template: %w", err)
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	return &DocumentRenderer{
		tmpl:      tmpl,
		config:    config,
		formatter: formatter,
	}, nil
}

type documentRow struct {
	Key    string
	Amount string
	Count  int
}

type documentDonation struct {
	Date      string
	Donor     string
	Category  string
	Purpose   string
	Amount    string
	Currency  string
	Anonymous bool
}

type documentView struct {
	Title            string
	BannerURL        string
	GeneratedAt      string
	PeriodLabel      string
	Count            int
	Total            string
	Average          string
	Categories       []documentRow
	Months           []documentRow
	Years            []documentRow
	Currencies       []documentRow
	Donations        []documentDonation
	ClosingStatement string
	Signatory        entity.Signatory
	AutoPrint        bool
}

// Render writes the document. Donor-entered text is escaped by html/template.
func (r *DocumentRenderer) Render(w io.Writer, input adapter.DocumentInput) error {
	view := r.buildView(input)
	if err := r.tmpl.ExecuteTemplate(w, documentTemplate, view); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

func (r *DocumentRenderer) buildView(input adapter.DocumentInput) documentView {
	report := input.Report
	sections := input.Sections

	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	view := documentView{
		Title:            r.config.Title,
		BannerURL:        r.config.BannerURL,
		GeneratedAt:      generatedAt.In(r.config.Location).Format("January 2, 2006 3:04 PM"),
		PeriodLabel:      report.Filter.PeriodLabel(),
		Count:            report.Count,
		Total:            r.formatter.Format(report.TotalAmount),
		Average:          r.formatter.Format(report.AvgAmount),
		ClosingStatement: r.config.ClosingStatement,
		Signatory:        input.Signatory,
		AutoPrint:        r.config.AutoPrint,
	}

	if sections.Category {
		view.Categories = r.rows(report.ByCategory.SortedByAmountDesc())
	}
	if sections.Monthly {
		view.Months = r.rows(report.ByMonth.SortedByKey())
	}
	if sections.Yearly && report.ByYear.Len() > 1 {
		view.Years = r.rows(report.ByYear.SortedByKey())
	}
	if report.IsMultiCurrency() {
		view.Currencies = make([]documentRow, 0, report.ByCurrency.Len())
		for _, e := range report.ByCurrency.SortedByKey() {
			view.Currencies = append(view.Currencies, documentRow{
				Key:    e.Key,
				Amount: e.Key + " " + e.Amount.StringFixed(2),
				Count:  e.Count,
			})
		}
	}
	if sections.Detailed {
		view.Donations = make([]documentDonation, 0, len(report.Donations))
		for _, d := range report.Donations {
			view.Donations = append(view.Donations, documentDonation{
				Date:      formatDate(d),
				Donor:     d.DonorName,
				Category:  string(d.Category),
				Purpose:   d.Purpose,
				Amount:    r.formatter.Format(d.Amount),
				Currency:  d.Currency,
				Anonymous: d.IsAnonymous,
			})
		}
	}

	return view
}

func (r *DocumentRenderer) rows(entries []valueobject.GroupEntry) []documentRow {
	rows := make([]documentRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, documentRow{
			Key:    e.Key,
			Amount: r.formatter.Format(e.Amount),
			Count:  e.Count,
		})
	}
	return rows
}
