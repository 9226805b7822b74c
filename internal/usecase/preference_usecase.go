package usecase

import (
	"context"
	"strings"

	"yolearn/internal/domain/preference"

	"github.com/google/uuid"
)

// Theme hints sent by browsers in Sec-CH-Prefers-Color-Scheme, quoted or not.
const (
	ThemeHintDark  = "dark"
	ThemeHintLight = "light"
)

type PreferenceUsecase interface {
	DarkMode(ctx context.Context, userID uuid.UUID, osHint string) (bool, error)
	SetDarkMode(ctx context.Context, userID uuid.UUID, enabled bool) error
}

type Preferences struct {
	store preference.Store
}

func NewPreferenceUsecase(store preference.Store) *Preferences {
	return &Preferences{store: store}
}

// DarkMode resolves the stored choice first, then the OS hint, then light.
func (u *Preferences) DarkMode(ctx context.Context, userID uuid.UUID, osHint string) (bool, error) {
	enabled, found, err := u.store.GetDarkMode(ctx, userID)
	if err != nil {
		return false, ErrInternal
	}
	if found {
		return enabled, nil
	}
	return strings.ToLower(strings.Trim(osHint, "\" ")) == ThemeHintDark, nil
}

func (u *Preferences) SetDarkMode(ctx context.Context, userID uuid.UUID, enabled bool) error {
	if err := u.store.SetDarkMode(ctx, userID, enabled); err != nil {
		return ErrInternal
	}
	return nil
}
