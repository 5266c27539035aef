package local

import (
	"context"
	"errors"
	"strings"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

type preferenceRepository struct {
	kv repository.KeyValueStore
}

// NewPreferenceRepository stores the theme as a plain string under the "theme" key.
func NewPreferenceRepository(kv repository.KeyValueStore) repository.PreferenceRepository {
	return &preferenceRepository{kv: kv}
}

// Theme returns the saved theme, or the default when nothing usable is stored.
func (r *preferenceRepository) Theme(ctx context.Context) (domain.Theme, error) {
	raw, err := r.kv.Get(ctx, KeyTheme)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.DefaultTheme, nil
		}
		return domain.DefaultTheme, err
	}
	theme := domain.Theme(strings.TrimSpace(string(raw)))
	if !theme.IsValid() {
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

func (r *preferenceRepository) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.IsValid() {
		return domain.NewError(domain.ErrCodeInvalid, "unknown theme "+string(theme))
	}
	return r.kv.Put(ctx, KeyTheme, []byte(theme))
}
