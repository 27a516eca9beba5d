package report

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// ExportDetailedCSVInput represents the input for the detailed CSV export.
type ExportDetailedCSVInput struct {
	Filter   valueobject.ReportFilter
	Delivery adapter.FileDelivery
}

// ExportOutput describes a delivered export file.
type ExportOutput struct {
	Filename      string
	ContentType   string
	Size          int
	DonationCount int
}

// ExportDetailedCSVUseCase exports one CSV row per matching donation.
type ExportDetailedCSVUseCase struct {
	source   reportSource
	exporter adapter.ReportExporter
	archive  adapter.ExportArchive
}

// NewExportDetailedCSVUseCase creates a new ExportDetailedCSVUseCase instance.
// archive may be nil.
func NewExportDetailedCSVUseCase(
	donationRepo adapter.DonationRepository,
	exporter adapter.ReportExporter,
	archive adapter.ExportArchive,
) *ExportDetailedCSVUseCase {
	return &ExportDetailedCSVUseCase{
		source:   newReportSource(donationRepo),
		exporter: exporter,
		archive:  archive,
	}
}

// Execute builds the report, refuses empty exports, renders the CSV and delivers it.
func (uc *ExportDetailedCSVUseCase) Execute(ctx context.Context, input ExportDetailedCSVInput) (*ExportOutput, error) {
	report, err := uc.source.build(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	if len(report.Donations) == 0 {
		slog.Warn("Detailed CSV export refused: no matching donations")
		return nil, emptyExportError()
	}

	var buf bytes.Buffer
	if err := uc.exporter.WriteDetailedCSV(&buf, report); err != nil {
		return nil, renderError(err)
	}

	filename := exportFilename(detailedFilePrefix, "csv", report.GeneratedAt)
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
