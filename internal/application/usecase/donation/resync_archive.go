package donation

import (
	"context"
	"log/slog"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
)

// ResyncArchiveOutput reports the result of the archive consistency step.
type ResyncArchiveOutput struct {
	Checked  int
	Repaired int
}

// ResyncArchiveUseCase recomputes archive month/year from the donation date for every donation.
// Archive-indexed lookups should only be trusted after it has run.
type ResyncArchiveUseCase struct {
	donationRepo adapter.DonationRepository
}

// NewResyncArchiveUseCase creates a new ResyncArchiveUseCase instance.
func NewResyncArchiveUseCase(donationRepo adapter.DonationRepository) *ResyncArchiveUseCase {
	return &ResyncArchiveUseCase{
		donationRepo: donationRepo,
	}
}

// Execute repairs every donation whose archive fields drifted from its date.
func (uc *ResyncArchiveUseCase) Execute(ctx context.Context) (*ResyncArchiveOutput, error) {
	donations, err := uc.donationRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError("failed to load donations", err)
	}

	output := &ResyncArchiveOutput{Checked: len(donations)}
	for _, donation := range donations {
		if donation.ArchiveInSync() {
			continue
		}

		donation.SetDonationDate(donation.DonationDate)
		if err := uc.donationRepo.Update(ctx, donation); err != nil {
			return nil, storeError("failed to repair donation archive fields", err)
		}
		output.Repaired++
	}

	slog.Info("Donation archive fields resynced",
		"checked", output.Checked,
		"repaired", output.Repaired,
	)

	return output, nil
}
