package match

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("match not found")

// MutateFunc edits a match in place. Returning an error aborts the update.
type MutateFunc func(m *Match) error

type Repository interface {
	// CreateMatch puts m at the head of the collection.
	CreateMatch(ctx context.Context, m Match) error
	GetMatchByID(ctx context.Context, id uuid.UUID) (Match, error)
	// UpdateMatch runs fn against the stored match atomically and persists the result.
	UpdateMatch(ctx context.Context, id uuid.UUID, fn MutateFunc) (Match, error)
	// ListMatchesForUser returns matches where userID is learner or mentor, newest first.
	ListMatchesForUser(ctx context.Context, userID uuid.UUID) ([]Match, error)
	DeleteMatchesForUser(ctx context.Context, userID uuid.UUID) (int, error)
	// CountCompleted counts completed matches per participant, learner or mentor.
	CountCompleted(ctx context.Context) (map[uuid.UUID]int, error)
}
