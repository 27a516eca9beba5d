package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

type memorySignatoryStore struct {
	signatory *entity.Signatory
	err       error
}

func (s *memorySignatoryStore) Get(ctx context.Context) (entity.Signatory, bool, error) {
	if s.err != nil {
		return entity.Signatory{}, false, s.err
	}
	if s.signatory == nil {
		return entity.Signatory{}, false, nil
	}
	return *s.signatory, true, nil
}

func (s *memorySignatoryStore) Save(ctx context.Context, signatory entity.Signatory) error {
	if s.err != nil {
		return s.err
	}
	s.signatory = &signatory
	return nil
}

func TestSignatorySettings(t *testing.T) {
	ctx := context.Background()
	defaults := entity.Signatory{Title: "Treasurer", Organization: "Alumni Association"}

	t.Run("returns defaults when nothing is stored", func(t *testing.T) {
		output, err := NewGetSignatoryUseCase(&memorySignatoryStore{}, defaults).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.IsDefault || output.Signatory != defaults {
			t.Errorf("expected defaults, got %+v", output)
		}
	})

	t.Run("saves a trimmed signatory and reads it back", func(t *testing.T) {
		store := &memorySignatoryStore{}
		_, err := NewUpdateSignatoryUseCase(store).Execute(ctx, UpdateSignatoryInput{
			Signatory: entity.Signatory{Name: "  Lourdes Bautista ", Title: "President"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := NewGetSignatoryUseCase(store, defaults).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.IsDefault {
			t.Error("expected stored signatory")
		}
		if output.Signatory.Name != "Lourdes Bautista" {
			t.Errorf("expected trimmed name, got %q", output.Signatory.Name)
		}
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := NewUpdateSignatoryUseCase(&memorySignatoryStore{}).Execute(ctx, UpdateSignatoryInput{
			Signatory: entity.Signatory{Title: "President"},
		})

		var settingsErr *domainerror.SettingsError
		if !errors.As(err, &settingsErr) || settingsErr.Code != domainerror.ErrCodeSignatoryNameRequired {
			t.Errorf("expected name required error, got %v", err)
		}
	})

	t.Run("store failures are coded", func(t *testing.T) {
		_, err := NewGetSignatoryUseCase(&memorySignatoryStore{err: errors.New("redis down")}, defaults).Execute(ctx)

		var settingsErr *domainerror.SettingsError
		if !errors.As(err, &settingsErr) || settingsErr.Code != domainerror.ErrCodeSettingsStoreFailure {
			t.Errorf("expected store failure error, got %v", err)
		}
	})
}
