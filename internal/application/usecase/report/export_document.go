package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// ExportDocumentInput represents the input for the printable document export.
type ExportDocumentInput struct {
	Filter    valueobject.ReportFilter
	Sections  valueobject.SectionSelection
	Signatory entity.Signatory
	Surface   adapter.PrintSurface
}

// ExportDocumentUseCase renders the printable donation report onto a print surface.
type ExportDocumentUseCase struct {
	source   reportSource
	exporter adapter.ReportExporter
	archive  adapter.ExportArchive
}

// NewExportDocumentUseCase creates a new ExportDocumentUseCase instance.
// archive may be nil.
func NewExportDocumentUseCase(
	donationRepo adapter.DonationRepository,
	exporter adapter.ReportExporter,
	archive adapter.ExportArchive,
) *ExportDocumentUseCase {
	return &ExportDocumentUseCase{
		source:   newReportSource(donationRepo),
		exporter: exporter,
		archive:  archive,
	}
}

// Execute opens the print surface before rendering anything.
// If the surface cannot be opened the export aborts and no content is produced.
func (uc *ExportDocumentUseCase) Execute(ctx context.Context, input ExportDocumentInput) (*ExportOutput, error) {
	report, err := uc.source.build(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	if report.IsEmpty() {
		slog.Warn("Document export refused: no matching donations")
		return nil, emptyExportError()
	}

	filename := exportFilename(documentFilePrefix, "html", report.GeneratedAt)

	surface, err := input.Surface.Open(ctx, filename)
	if err != nil {
		slog.Warn("Print surface could not be opened", "filename", filename, "error", err)
		return nil, domainerror.NewReportError(
			domainerror.ErrCodePrintSurfaceUnavailable,
			"the print surface could not be opened; allow pop-ups or choose another output and try again",
			err,
		)
	}

	var buf bytes.Buffer
	renderErr := uc.exporter.WriteDocument(&buf, adapter.DocumentInput{
		Report:    report,
		Signatory: input.Signatory,
		Sections:  input.Sections,
	})
	if renderErr != nil {
		_ = surface.Close()
		return nil, renderError(renderErr)
	}

	content := buf.Bytes()
	if _, err := surface.Write(content); err != nil {
		_ = surface.Close()
		return nil, renderError(fmt.Errorf("failed to write document: %w", err))
	}
	if err := surface.Close(); err != nil {
		return nil, renderError(fmt.Errorf("failed to close print surface: %w", err))
	}

	archiveExport(ctx, uc.archive, filename, adapter.ContentTypeHTML, content, report.GeneratedAt)

	return &ExportOutput{
		Filename:      filename,
		ContentType:   adapter.ContentTypeHTML,
		Size:          len(content),
		DonationCount: report.Count,
	}, nil
}
