package adapter

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// Content types of the produced exports.
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// DocumentInput carries everything the printable document needs besides the report.
type DocumentInput struct {
	Report    *valueobject.Report
	Signatory entity.Signatory
	Sections  valueobject.SectionSelection
}

// ReportExporter renders a report into its output encodings.
type ReportExporter interface {
	// WriteDetailedCSV writes one row per donation.
	WriteDetailedCSV(w io.Writer, report *valueobject.Report) error

	// WriteSummaryCSV writes the metrics block followed by the selected breakdown blocks.
	WriteSummaryCSV(w io.Writer, report *valueobject.Report, sections valueobject.SectionSelection) error

	// WriteDocument writes the printable HTML document.
	WriteDocument(w io.Writer, input DocumentInput) error

	// FormatAmount formats an amount the way the document prints it.
	FormatAmount(amount decimal.Decimal) string
}

// FileDelivery hands a finished text file to its consumer (download, local directory).
type FileDelivery interface {
	Deliver(ctx context.Context, filename, contentType string, content []byte) error
}

// PrintSurface is where a printable document is rendered.
type PrintSurface interface {
	// Open prepares the surface. A nil error means the returned writer is ready to receive the document.
	Open(ctx context.Context, name string) (io.WriteCloser, error)
}

// ExportArchive keeps a copy of every produced export.
type ExportArchive interface {
	// Store saves the export and returns its location.
	Store(ctx context.Context, filename, contentType string, content []byte, producedAt time.Time) (string, error)
}
