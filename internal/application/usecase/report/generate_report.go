package report

import (
	"context"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
)

// GenerateReportInput represents the input for generating a donation report.
type GenerateReportInput struct {
	Filter valueobject.ReportFilter
}

// GenerateReportOutput represents the output of generating a donation report.
type GenerateReportOutput struct {
	Report *valueobject.Report
}

// GenerateReportUseCase builds the on-screen donation report.
type GenerateReportUseCase struct {
	source reportSource
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(donationRepo adapter.DonationRepository) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		source: newReportSource(donationRepo),
	}
}

// Execute loads the donation snapshot and aggregates it with the given filter.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	report, err := uc.source.build(ctx, input.Filter)
	if err != nil {
		return nil, err
	}
	return &GenerateReportOutput{Report: report}, nil
}
