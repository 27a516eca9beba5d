// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue        adapter.EmailQueueRepository
	organization string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, organization string) *Service {
	return &Service{
		queue:        queue,
		organization: organization,
	}
}

// QueueDonationReportEmail queues a donation report email with the printable document attached.
func (s *Service) QueueDonationReportEmail(ctx context.Context, input adapter.QueueDonationReportInput) error {
	subject := fmt.Sprintf("%s: %s - %s", s.organization, input.ReportTitle, input.PeriodLabel)

	templateData := map[string]interface{}{
		"recipient_name": input.RecipientName,
		"organization":   s.organization,
		"report_title":   input.ReportTitle,
		"period_label":   input.PeriodLabel,
		"donation_count": input.DonationCount,
		"total_amount":   input.TotalAmount,
		"average_amount": input.AverageAmount,
		"document_name":  input.DocumentName,
	}

	job := entity.NewEmailJob(
		entity.TemplateDonationReport,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)
	job.AttachFile(input.DocumentName, adapter.ContentTypeHTML, input.Document)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue donation report email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
