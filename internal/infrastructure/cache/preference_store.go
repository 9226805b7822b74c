package cache

import (
	"context"

	"yolearn/internal/domain/preference"

	"github.com/google/uuid"
)

// PreferenceStore keeps preferences in Redis without expiry and falls back to
// another store when Redis is not reachable.
type PreferenceStore struct {
	redis    *Redis
	fallback preference.Store
}

func NewPreferenceStore(r *Redis, fallback preference.Store) *PreferenceStore {
	return &PreferenceStore{redis: r, fallback: fallback}
}

func (s *PreferenceStore) GetDarkMode(ctx context.Context, userID uuid.UUID) (bool, bool, error) {
	if !s.redis.Available() {
		return s.fallback.GetDarkMode(ctx, userID)
	}
	var enabled bool
	found, err := s.redis.GetJSON(ctx, preference.DarkModeKey(userID), &enabled)
	if err != nil {
		return s.fallback.GetDarkMode(ctx, userID)
	}
	return enabled, found, nil
}

func (s *PreferenceStore) SetDarkMode(ctx context.Context, userID uuid.UUID, enabled bool) error {
	if err := s.redis.SetPersistent(ctx, preference.DarkModeKey(userID), enabled); err != nil {
		return s.fallback.SetDarkMode(ctx, userID, enabled)
	}
	return nil
}

func (s *PreferenceStore) DeleteDarkMode(ctx context.Context, userID uuid.UUID) error {
	if err := s.redis.Delete(ctx, preference.DarkModeKey(userID)); err != nil {
		return err
	}
	return s.fallback.DeleteDarkMode(ctx, userID)
}
