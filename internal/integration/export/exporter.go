package export

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// ReportExporter implements adapter.ReportExporter.
type ReportExporter struct {
	document  *DocumentRenderer
	formatter *AmountFormatter
}

// NewReportExporter creates the exporter with the given document settings.
func NewReportExporter(config DocumentConfig, locale, currencySymbol string) (*ReportExporter, error) {
	formatter := NewAmountFormatter(locale, currencySymbol)
	document, err := NewDocumentRenderer(config, formatter)
	if err != nil {
		return nil, err
	}
	return &ReportExporter{
		document:  document,
		formatter: formatter,
	}, nil
}

// WriteDetailedCSV writes one row per donation.
func (e *ReportExporter) WriteDetailedCSV(w io.Writer, report *valueobject.Report) error {
	return WriteDetailedCSV(w, report)
}

// WriteSummaryCSV writes the metrics and breakdown blocks.
func (e *ReportExporter) WriteSummaryCSV(w io.Writer, report *valueobject.Report, sections valueobject.SectionSelection) error {
	return WriteSummaryCSV(w, report, sections)
}

// WriteDocument writes the printable document.
func (e *ReportExporter) WriteDocument(w io.Writer, input adapter.DocumentInput) error {
	return e.document.Render(w, input)
}

// FormatAmount formats an amount the way the document prints it.
func (e *ReportExporter) FormatAmount(amount decimal.Decimal) string {
	return e.formatter.Format(amount)
}

var _ adapter.ReportExporter = (*ReportExporter)(nil)
