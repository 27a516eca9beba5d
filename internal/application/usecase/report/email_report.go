package report

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

var recipientEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EmailReportInput represents the input for emailing a donation report.
type EmailReportInput struct {
	Filter         valueobject.ReportFilter
	Sections       valueobject.SectionSelection
	Signatory      entity.Signatory
	RecipientEmail string
	RecipientName  string
}

// EmailReportOutput represents the output of emailing a donation report.
type EmailReportOutput struct {
	DocumentName  string
	DonationCount int
}

// EmailReportUseCase renders the printable report and queues it as an email attachment.
type EmailReportUseCase struct {
	source       reportSource
	exporter     adapter.ReportExporter
	emailService adapter.EmailService
	reportTitle  string
}

// NewEmailReportUseCase creates a new EmailReportUseCase instance.
func NewEmailReportUseCase(
	donationRepo adapter.DonationRepository,
	exporter adapter.ReportExporter,
	emailService adapter.EmailService,
	reportTitle string,
) *EmailReportUseCase {
	return &EmailReportUseCase{
		source:       newReportSource(donationRepo),
		exporter:     exporter,
		emailService: emailService,
		reportTitle:  reportTitle,
	}
}

// Execute builds the report and queues the email. Delivery itself happens in the email worker.
func (uc *EmailReportUseCase) Execute(ctx context.Context, input EmailReportInput) (*EmailReportOutput, error) {
	recipient := strings.TrimSpace(strings.ToLower(input.RecipientEmail))
	if !recipientEmailRegex.MatchString(recipient) {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeInvalidRecipient,
			"a valid recipient email is required",
			domainerror.ErrInvalidRecipient,
		)
	}

	report, err := uc.source.build(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	if report.IsEmpty() {
		return nil, emptyExportError()
	}

	var buf bytes.Buffer
	if err := uc.exporter.WriteDocument(&buf, adapter.DocumentInput{
		Report:    report,
		Signatory: input.Signatory,
		Sections:  input.Sections,
	}); err != nil {
		return nil, renderError(err)
	}

	documentName := exportFilename(documentFilePrefix, "html", report.GeneratedAt)
	err = uc.emailService.QueueDonationReportEmail(ctx, adapter.QueueDonationReportInput{
		RecipientEmail: recipient,
		RecipientName:  strings.TrimSpace(input.RecipientName),
		ReportTitle:    uc.reportTitle,
		PeriodLabel:    input.Filter.PeriodLabel(),
		DonationCount:  report.Count,
		TotalAmount:    uc.exporter.FormatAmount(report.TotalAmount),
		AverageAmount:  uc.exporter.FormatAmount(report.AvgAmount),
		Document:       buf.Bytes(),
		DocumentName:   documentName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue report email: %w", err)
	}

	return &EmailReportOutput{
		DocumentName:  documentName,
		DonationCount: report.Count,
	}, nil
}
