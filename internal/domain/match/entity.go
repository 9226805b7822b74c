package match

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// transitions lists every legal move. Declined and completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusDeclined},
	StatusAccepted: {StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type Match struct {
	ID             uuid.UUID
	LearnerID      uuid.UUID
	MentorID       uuid.UUID
	SkillID        uuid.UUID
	Status         Status
	RequestMessage string
	ScheduledTime  *time.Time
	DateRequested  time.Time
	DateUpdated    time.Time
}

// Transition moves m to next and stamps DateUpdated. m is left unchanged on error.
func (m *Match) Transition(next Status, now time.Time) error {
	if !m.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	m.Status = next
	m.DateUpdated = now
	return nil
}

func (m Match) Involves(userID uuid.UUID) bool {
	return m.LearnerID == userID || m.MentorID == userID
}
