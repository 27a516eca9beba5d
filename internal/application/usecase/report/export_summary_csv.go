package report

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// ExportSummaryCSVInput represents the input for the summary CSV export.
type ExportSummaryCSVInput struct {
	Filter   valueobject.ReportFilter
	Sections valueobject.SectionSelection
	Delivery adapter.FileDelivery
}

// ExportSummaryCSVUseCase exports the metrics and breakdown blocks as CSV.
type ExportSummaryCSVUseCase struct {
	source   reportSource
	exporter adapter.ReportExporter
	archive  adapter.ExportArchive
}

// NewExportSummaryCSVUseCase creates a new ExportSummaryCSVUseCase instance.
// archive may be nil.
func NewExportSummaryCSVUseCase(
	donationRepo adapter.DonationRepository,
	exporter adapter.ReportExporter,
	archive adapter.ExportArchive,
) *ExportSummaryCSVUseCase {
	return &ExportSummaryCSVUseCase{
		source:   newReportSource(donationRepo),
		exporter: exporter,
		archive:  archive,
	}
}

// Execute builds the report, refuses empty exports, renders the summary and delivers it.
func (uc *ExportSummaryCSVUseCase) Execute(ctx context.Context, input ExportSummaryCSVInput) (*ExportOutput, error) {
	report, err := uc.source.build(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	if report.IsEmpty() {
		slog.Warn("Summary CSV export refused: no matching donations")
		return nil, emptyExportError()
	}

	var buf bytes.Buffer
	if err := uc.exporter.WriteSummaryCSV(&buf, report, input.Sections); err != nil {
		return nil, renderError(err)
	}

	filename := exportFilename(summaryFilePrefix, "csv", report.GeneratedAt)
	size := buf.Len()
	if err := deliverFile(ctx, input.Delivery, uc.archive, filename, adapter.ContentTypeCSV, &buf, report.GeneratedAt); err != nil {
		return nil, err
	}

	return &ExportOutput{
		Filename:      filename,
		ContentType:   adapter.ContentTypeCSV,
		Size:          size,
		DonationCount: report.Count,
	}, nil
}
