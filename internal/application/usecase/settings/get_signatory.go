// Package settings contains report settings use cases.
package settings

import (
	"context"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

// GetSignatoryOutput represents the current report signatory.
type GetSignatoryOutput struct {
	Signatory entity.Signatory
	IsDefault bool // True when nothing has been saved yet
}

// GetSignatoryUseCase returns the stored signatory or the configured default.
type GetSignatoryUseCase struct {
	store    adapter.SignatoryStore
	defaults entity.Signatory
}

// NewGetSignatoryUseCase creates a new GetSignatoryUseCase instance.
func NewGetSignatoryUseCase(store adapter.SignatoryStore, defaults entity.Signatory) *GetSignatoryUseCase {
	return &GetSignatoryUseCase{
		store:    store,
		defaults: defaults,
	}
}

// Execute loads the signatory.
func (uc *GetSignatoryUseCase) Execute(ctx context.Context) (*GetSignatoryOutput, error) {
	signatory, found, err := uc.store.Get(ctx)
	if err != nil {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSettingsStoreFailure,
			"failed to load signatory",
			err,
		)
	}

	if !found {
		return &GetSignatoryOutput{Signatory: uc.defaults, IsDefault: true}, nil
	}

	return &GetSignatoryOutput{Signatory: signatory}, nil
}
