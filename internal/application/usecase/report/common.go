package report

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// Filename prefixes of the produced exports.
const (
	detailedFilePrefix = "donation-report-detailed"
	summaryFilePrefix  = "donation-report-summary"
	documentFilePrefix = "donation-report"
)

// reportSource loads the donation snapshot and aggregates it.
type reportSource struct {
	donationRepo adapter.DonationRepository
	now          func() time.Time
}

func newReportSource(donationRepo adapter.DonationRepository) reportSource {
	return reportSource{
		donationRepo: donationRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// build validates the filter, reads the snapshot and aggregates it.
// A store failure is logged and reported as retryable.
func (s reportSource) build(ctx context.Context, filter valueobject.ReportFilter) (*valueobject.Report, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	donations, err := s.donationRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to load donation snapshot", "error", err)
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportDataUnavailable,
			"donation data is temporarily unavailable, please retry",
			err,
		)
	}

	report := GenerateReport(donations, filter)
	report.GeneratedAt = s.now()
	return report, nil
}

func validateFilter(filter valueobject.ReportFilter) error {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFilter,
			"end_date must not be before start_date",
			domainerror.ErrInvalidReportFilter,
		)
	}
	return nil
}

func emptyExportError() error {
	return domainerror.NewReportError(
		domainerror.ErrCodeEmptyExport,
		"there are no donations matching the selected filters to export",
		domainerror.ErrEmptyExport,
	)
}

func renderError(err error) error {
	return domainerror.NewReportError(
		domainerror.ErrCodeReportRenderFailed,
		"failed to render report",
		err,
	)
}

func exportFilename(prefix, ext string, at time.Time) string {
	return prefix + "-" + at.Format("2006-01-02") + "." + ext
}

// deliverFile hands the rendered file to its consumer and archives a copy.
func deliverFile(
	ctx context.Context,
	delivery adapter.FileDelivery,
	archive adapter.ExportArchive,
	filename, contentType string,
	buf *bytes.Buffer,
	producedAt time.Time,
) error {
	content := buf.Bytes()
	if err := delivery.Deliver(ctx, filename, contentType, content); err != nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeFileDeliveryFailed,
			"failed to deliver export file",
			err,
		)
	}
	archiveExport(ctx, archive, filename, contentType, content, producedAt)
	return nil
}

// archiveExport stores a copy of the export. Failures are logged only.
func archiveExport(
	ctx context.Context,
	archive adapter.ExportArchive,
	filename, contentType string,
	content []byte,
	producedAt time.Time,
) {
	if archive == nil {
		return
	}
	location, err := archive.Store(ctx, filename, contentType, content, producedAt)
	if err != nil {
		slog.Warn("Failed to archive report export", "filename", filename, "error", err)
		return
	}
	slog.Info("Report export archived", "filename", filename, "location", location)
}
