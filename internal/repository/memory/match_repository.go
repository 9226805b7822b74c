package memory

import (
	"context"
	"sync"

	"yolearn/internal/domain/match"

	"github.com/google/uuid"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

func (r *MatchRepository) indexOf(id uuid.UUID) int {
	for i, m := range r.matches {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (r *MatchRepository) CreateMatch(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches = append([]match.Match{m}, r.matches...)
	return nil
}

func (r *MatchRepository) GetMatchByID(_ context.Context, id uuid.UUID) (match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return match.Match{}, match.ErrNotFound
	}
	return r.matches[i], nil
}

func (r *MatchRepository) UpdateMatch(_ context.Context, id uuid.UUID, fn match.MutateFunc) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return match.Match{}, match.ErrNotFound
	}
	m := r.matches[i]
	if err := fn(&m); err != nil {
		return match.Match{}, err
	}
	m.ID = id
	r.matches[i] = m
	return m, nil
}

func (r *MatchRepository) ListMatchesForUser(_ context.Context, userID uuid.UUID) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.Involves(userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MatchRepository) DeleteMatchesForUser(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]match.Match, 0, len(r.matches))
	removed := 0
	for _, m := range r.matches {
		if m.Involves(userID) {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	r.matches = kept
	return removed, nil
}

func (r *MatchRepository) CountCompleted(_ context.Context) (map[uuid.UUID]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[uuid.UUID]int)
	for _, m := range r.matches {
		if m.Status != match.StatusCompleted {
			continue
		}
		out[m.LearnerID]++
		out[m.MentorID]++
	}
	return out, nil
}
