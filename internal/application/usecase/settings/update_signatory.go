package settings

import (
	"context"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

// UpdateSignatoryInput represents the input for saving the signatory.
type UpdateSignatoryInput struct {
	Signatory entity.Signatory
}

// UpdateSignatoryOutput represents the saved signatory.
type UpdateSignatoryOutput struct {
	Signatory entity.Signatory
}

// UpdateSignatoryUseCase validates and saves the report signatory.
type UpdateSignatoryUseCase struct {
	store adapter.SignatoryStore
}

// NewUpdateSignatoryUseCase creates a new UpdateSignatoryUseCase instance.
func NewUpdateSignatoryUseCase(store adapter.SignatoryStore) *UpdateSignatoryUseCase {
	return &UpdateSignatoryUseCase{
		store: store,
	}
}

// Execute saves the signatory.
func (uc *UpdateSignatoryUseCase) Execute(ctx context.Context, input UpdateSignatoryInput) (*UpdateSignatoryOutput, error) {
	signatory := input.Signatory.Normalize()

	if signatory.Name == "" {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSignatoryNameRequired,
			"signatory name is required",
			domainerror.ErrSignatoryNameRequired,
		)
	}

	if err := uc.store.Save(ctx, signatory); err != nil {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSettingsStoreFailure,
			"failed to save signatory",
			err,
		)
	}

	return &UpdateSignatoryOutput{Signatory: signatory}, nil
}
