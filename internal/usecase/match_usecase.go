package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yolearn/internal/domain/match"
	"yolearn/internal/domain/skill"
	"yolearn/internal/domain/user"
	"yolearn/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Participant struct {
	ID           uuid.UUID
	Name         string
	ProfilePhoto string
}

type MatchItem struct {
	match.Match
	SkillName string
	Learner   Participant
	Mentor    Participant
}

// SessionBoard is the viewer's session page, derived on every call.
type SessionBoard struct {
	Scheduled []MatchItem
	Incoming  []MatchItem
	Sent      []MatchItem
}

type MatchUsecase interface {
	RequestSession(ctx context.Context, learnerID, skillID uuid.UUID, message string) (MatchItem, error)
	Accept(ctx context.Context, actorID, matchID uuid.UUID, scheduledTime *time.Time) (MatchItem, error)
	Decline(ctx context.Context, actorID, matchID uuid.UUID) (MatchItem, error)
	Complete(ctx context.Context, actorID, matchID uuid.UUID) (MatchItem, error)
	Sessions(ctx context.Context, viewerID uuid.UUID) (SessionBoard, error)
}

type Matches struct {
	matches match.Repository
	skills  skill.Repository
	users   user.Repository
	notify  NotificationUsecase
	logger  *zap.Logger
	now     func() time.Time
}

func NewMatchUsecase(matches match.Repository, skills skill.Repository, users user.Repository, notify NotificationUsecase, logger *zap.Logger) *Matches {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matches{matches: matches, skills: skills, users: users, notify: notify, logger: logger, now: time.Now}
}

func (u *Matches) RequestSession(ctx context.Context, learnerID, skillID uuid.UUID, message string) (MatchItem, error) {
	sk, err := u.skills.GetSkillByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return MatchItem{}, ErrNotFound
		}
		return MatchItem{}, ErrInternal
	}
	if sk.OwnerID == learnerID {
		return MatchItem{}, ErrSelfRequest
	}

	people, err := u.users.ListUsersByIDs(ctx, []uuid.UUID{learnerID, sk.OwnerID})
	if err != nil {
		return MatchItem{}, ErrInternal
	}
	learner, ok := people[learnerID]
	if !ok {
		return MatchItem{}, ErrNotFound
	}
	if _, ok := people[sk.OwnerID]; !ok {
		return MatchItem{}, ErrNotFound
	}

	now := u.now().UTC()
	m := match.Match{
		ID:             uuid.New(),
		LearnerID:      learnerID,
		MentorID:       sk.OwnerID,
		SkillID:        sk.ID,
		Status:         match.StatusPending,
		RequestMessage: plainText(message),
		DateRequested:  now,
		DateUpdated:    now,
	}
	if err := u.matches.CreateMatch(ctx, m); err != nil {
		return MatchItem{}, ErrInternal
	}
	observability.MatchTransitions.WithLabelValues(string(match.StatusPending)).Inc()

	u.send(ctx, m.MentorID, fmt.Sprintf("%s sent you a request for %q.", learner.Name, sk.SkillName))

	return u.item(m, people, map[uuid.UUID]string{sk.ID: sk.SkillName}), nil
}

// Accept moves a pending request to accepted. Only the mentor may accept.
func (u *Matches) Accept(ctx context.Context, actorID, matchID uuid.UUID, scheduledTime *time.Time) (MatchItem, error) {
	return u.transition(ctx, matchID, match.StatusAccepted, func(m *match.Match) error {
		if m.MentorID != actorID {
			return ErrNotOwner
		}
		if err := m.Transition(match.StatusAccepted, u.now().UTC()); err != nil {
			return err
		}
		if scheduledTime != nil {
			t := scheduledTime.UTC()
			m.ScheduledTime = &t
		}
		return nil
	})
}

func (u *Matches) Decline(ctx context.Context, actorID, matchID uuid.UUID) (MatchItem, error) {
	return u.transition(ctx, matchID, match.StatusDeclined, func(m *match.Match) error {
		if m.MentorID != actorID {
			return ErrNotOwner
		}
		return m.Transition(match.StatusDeclined, u.now().UTC())
	})
}

// Complete closes an accepted session. Either participant may complete it.
func (u *Matches) Complete(ctx context.Context, actorID, matchID uuid.UUID) (MatchItem, error) {
	return u.transition(ctx, matchID, match.StatusCompleted, func(m *match.Match) error {
		if !m.Involves(actorID) {
			return ErrNotOwner
		}
		return m.Transition(match.StatusCompleted, u.now().UTC())
	})
}

func (u *Matches) transition(ctx context.Context, matchID uuid.UUID, next match.Status, fn match.MutateFunc) (MatchItem, error) {
	updated, err := u.matches.UpdateMatch(ctx, matchID, fn)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrNotFound):
			return MatchItem{}, ErrNotFound
		case errors.Is(err, ErrNotOwner), errors.Is(err, match.ErrInvalidTransition):
			return MatchItem{}, err
		default:
			return MatchItem{}, ErrInternal
		}
	}
	observability.MatchTransitions.WithLabelValues(string(next)).Inc()
	u.logger.Info("[Match] status changed",
		zap.String("match_id", matchID.String()),
		zap.String("status", string(next)),
	)

	people, err := u.users.ListUsersByIDs(ctx, []uuid.UUID{updated.LearnerID, updated.MentorID})
	if err != nil {
		return MatchItem{}, ErrInternal
	}
	skills := u.skillNames(ctx, []match.Match{updated})
	item := u.item(updated, people, skills)

	switch next {
	case match.StatusAccepted, match.StatusDeclined:
		u.send(ctx, updated.LearnerID, fmt.Sprintf("%s %s your request for %q.", item.Mentor.Name, next, item.SkillName))
	}
	return item, nil
}

func (u *Matches) Sessions(ctx context.Context, viewerID uuid.UUID) (SessionBoard, error) {
	all, err := u.matches.ListMatchesForUser(ctx, viewerID)
	if err != nil {
		return SessionBoard{}, ErrInternal
	}
	views := match.Views(viewerID, all)

	ids := make([]uuid.UUID, 0, 2*len(all))
	for _, m := range all {
		ids = append(ids, m.LearnerID, m.MentorID)
	}
	people, err := u.users.ListUsersByIDs(ctx, ids)
	if err != nil {
		return SessionBoard{}, ErrInternal
	}
	skills := u.skillNames(ctx, all)

	return SessionBoard{
		Scheduled: u.items(views.Scheduled, people, skills),
		Incoming:  u.items(views.Incoming, people, skills),
		Sent:      u.items(views.Sent, people, skills),
	}, nil
}

func (u *Matches) send(ctx context.Context, recipientID uuid.UUID, text string) {
	if u.notify == nil {
		return
	}
	if _, err := u.notify.Notify(ctx, recipientID, text); err != nil {
		u.logger.Warn("[Match] notification failed", zap.String("recipient_id", recipientID.String()), zap.Error(err))
	}
}

// skillNames resolves the skills referenced by ms. Skills deleted after the
// request resolve to an empty name.
func (u *Matches) skillNames(ctx context.Context, ms []match.Match) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string)
	for _, m := range ms {
		if _, ok := out[m.SkillID]; ok {
			continue
		}
		sk, err := u.skills.GetSkillByID(ctx, m.SkillID)
		if err != nil {
			out[m.SkillID] = ""
			continue
		}
		out[m.SkillID] = sk.SkillName
	}
	return out
}

func (u *Matches) items(ms []match.Match, people map[uuid.UUID]user.User, skills map[uuid.UUID]string) []MatchItem {
	out := make([]MatchItem, 0, len(ms))
	for _, m := range ms {
		out = append(out, u.item(m, people, skills))
	}
	return out
}

func (u *Matches) item(m match.Match, people map[uuid.UUID]user.User, skills map[uuid.UUID]string) MatchItem {
	return MatchItem{
		Match:     m,
		SkillName: skills[m.SkillID],
		Learner:   participant(m.LearnerID, people[m.LearnerID]),
		Mentor:    participant(m.MentorID, people[m.MentorID]),
	}
}

func participant(id uuid.UUID, usr user.User) Participant {
	return Participant{ID: id, Name: usr.Name, ProfilePhoto: usr.ProfilePhoto}
}
