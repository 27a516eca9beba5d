package adapter

import (
	"context"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// SignatoryStore defines the key-value persistence of the report signatory.
type SignatoryStore interface {
	// Get returns the stored signatory, or found=false when none has been saved.
	Get(ctx context.Context) (signatory entity.Signatory, found bool, err error)

	// Save replaces the stored signatory.
	Save(ctx context.Context, signatory entity.Signatory) error
}
