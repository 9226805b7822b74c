package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type PreferenceStore struct {
	mu       sync.RWMutex
	darkMode map[uuid.UUID]bool
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{darkMode: make(map[uuid.UUID]bool)}
}

func (s *PreferenceStore) GetDarkMode(_ context.Context, userID uuid.UUID) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.darkMode[userID]
	return v, ok, nil
}

func (s *PreferenceStore) SetDarkMode(_ context.Context, userID uuid.UUID, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode[userID] = enabled
	return nil
}

func (s *PreferenceStore) DeleteDarkMode(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.darkMode, userID)
	return nil
}
