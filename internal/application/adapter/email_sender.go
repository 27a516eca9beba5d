package adapter

import (
	"context"
)

// EmailAttachment is a file attached to an outgoing email.
type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To          string
	Name        string
	Subject     string
	HTML        string
	Text        string
	Attachments []EmailAttachment
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueDonationReportEmail queues a donation report email with the document attached.
	QueueDonationReportEmail(ctx context.Context, input QueueDonationReportInput) error
}

// QueueDonationReportInput represents the input for queueing a donation report email.
type QueueDonationReportInput struct {
	RecipientEmail string
	RecipientName  string
	ReportTitle    string
	PeriodLabel    string
	DonationCount  int
	TotalAmount    string
	AverageAmount  string
	Document       []byte
	DocumentName   string
}
