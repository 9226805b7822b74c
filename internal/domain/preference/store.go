package preference

import (
	"context"

	"github.com/google/uuid"
)

const DarkModeKeyPrefix = "yolearn-dark-mode"

func DarkModeKey(userID uuid.UUID) string {
	return DarkModeKeyPrefix + ":" + userID.String()
}

// Store persists the dark-mode flag. found is false when nothing was saved yet.
type Store interface {
	GetDarkMode(ctx context.Context, userID uuid.UUID) (enabled bool, found bool, err error)
	SetDarkMode(ctx context.Context, userID uuid.UUID, enabled bool) error
	DeleteDarkMode(ctx context.Context, userID uuid.UUID) error
}
