package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"yolearn/internal/domain/match"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches_RequestSession_NotifiesMentor(t *testing.T) {
	w := newWorld(t)
	mentor := w.addUser(t, "Alex Johnson")
	learner := w.addUser(t, "Sarah Chen")
	guitar := w.addSkill(t, mentor, "Guitar Lessons")

	uc := NewMatchUsecase(w.matches, w.skills, w.users, w.notify, nil)
	got, err := uc.RequestSession(context.Background(), learner.ID, guitar.ID, "  <b>Hi!</b> Can you teach me? ")
	require.NoError(t, err)

	assert.Equal(t, match.StatusPending, got.Status)
	assert.Equal(t, mentor.ID, got.MentorID)
	assert.Equal(t, learner.ID, got.LearnerID)
	assert.Equal(t, "Hi! Can you teach me?", got.RequestMessage)
	assert.True(t, got.DateRequested.Equal(got.DateUpdated))
	assert.Equal(t, "Guitar Lessons", got.SkillName)
	assert.Equal(t, "Alex Johnson", got.Mentor.Name)

	feed, err := w.notify.List(context.Background(), mentor.ID)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, `Sarah Chen sent you a request for "Guitar Lessons".`, feed.Items[0].Text)
	assert.Equal(t, 1, feed.Unread)
	assert.Len(t, w.publisher.sent, 1)
}

func TestMatches_RequestSession_Errors(t *testing.T) {
	w := newWorld(t)
	mentor := w.addUser(t, "Alex Johnson")
	guitar := w.addSkill(t, mentor, "Guitar Lessons")
	uc := NewMatchUsecase(w.matches, w.skills, w.users, w.notify, nil)
	ctx := context.Background()

	_, err := uc.RequestSession(ctx, mentor.ID, guitar.ID, "")
	assert.ErrorIs(t, err, ErrSelfRequest)

	_, err = uc.RequestSession(ctx, mentor.ID, uuid.New(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.RequestSession(ctx, uuid.New(), guitar.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := w.matches.ListMatchesForUser(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMatches_DuplicatePendingRequestsAllowed(t *testing.T) {
	w := newWorld(t)
	mentor := w.addUser(t, "Alex Johnson")
	learner := w.addUser(t, "Sarah Chen")
	guitar := w.addSkill(t, mentor, "Guitar Lessons")
	uc := NewMatchUsecase(w.matches, w.skills, w.users, w.notify, nil)
	ctx := context.Background()

	_, err := uc.RequestSession(ctx, learner.ID, guitar.ID, "one")
	require.NoError(t, err)
	_, err = uc.RequestSession(ctx, learner.ID, guitar.ID, "two")
	require.NoError(t, err)

	board, err := uc.Sessions(ctx, learner.ID)
	require.NoError(t, err)
	require.Len(t, board.Sent, 2)
	assert.Equal(t, "two", board.Sent[0].RequestMessage)
}

func TestMatches_Lifecycle(t *testing.T) {
	w := newWorld(t)
	mentor := w.addUser(t, "Alex Johnson")
	learner := w.addUser(t, "Sarah Chen")
	guitar := w.addSkill(t, mentor, "Guitar Lessons")
	uc := NewMatchUsecase(w.matches, w.skills, w.users, w.notify, nil)
	ctx := context.Background()

	req, err := uc.RequestSession(ctx, learner.ID, guitar.ID, "hello")
	require.NoError(t, err)

	_, err = uc.Accept(ctx, learner.ID, req.ID, nil)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = uc.Complete(ctx, learner.ID, req.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	when := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	accepted, err := uc.Accept(ctx, mentor.ID, req.ID, &when)
	require.NoError(t, err)
	assert.Equal(t, match.StatusAccepted, accepted.Status)
	require.NotNil(t, accepted.ScheduledTime)
	assert.True(t, accepted.ScheduledTime.Equal(when))
	assert.False(t, accepted.DateUpdated.Before(accepted.DateRequested))

	feed, err := w.notify.List(ctx, learner.ID)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, `Alex Johnson accepted your request for "Guitar Lessons".`, feed.Items[0].Text)

	board, err := uc.Sessions(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Len(t, board.Scheduled, 1)
	assert.Empty(t, board.Incoming)

	_, err = uc.Decline(ctx, mentor.ID, req.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	outsider := w.addUser(t, "Mike Wilson")
	_, err = uc.Complete(ctx, outsider.ID, req.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	done, err := uc.Complete(ctx, learner.ID, req.ID)
	require.NoError(t, err)
	assert.Equal(t, match.StatusCompleted, done.Status)

	_, err = uc.Accept(ctx, mentor.ID, req.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = uc.Accept(ctx, mentor.ID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatches_Decline_NotifiesLearner(t *testing.T) {
	w := newWorld(t)
	mentor := w.addUser(t, "Emma Davis")
	learner := w.addUser(t, "Sarah Chen")
	yoga := w.addSkill(t, mentor, "Yoga Basics")
	uc := NewMatchUsecase(w.matches, w.skills, w.users, w.notify, nil)
	ctx := context.Background()

	req, err := uc.RequestSession(ctx, learner.ID, yoga.ID, "")
	require.NoError(t, err)
	_, err = uc.Decline(ctx, mentor.ID, req.ID)
	require.NoError(t, err)

	feed, err := w.notify.List(ctx, learner.ID)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, `Emma Davis declined your request for "Yoga Basics".`, feed.Items[0].Text)

	board, err := uc.Sessions(ctx, learner.ID)
	require.NoError(t, err)
	assert.Empty(t, board.Sent)
	assert.Empty(t, board.Scheduled)
}

func TestMatches_ConcurrentAcceptDecline_OneWins(t *testing.T) {
	w := newWorld(t)
	mentor := w.addUser(t, "Alex Johnson")
	learner := w.addUser(t, "Sarah Chen")
	guitar := w.addSkill(t, mentor, "Guitar Lessons")
	uc := NewMatchUsecase(w.matches, w.skills, w.users, w.notify, nil)
	ctx := context.Background()

	req, err := uc.RequestSession(ctx, learner.ID, guitar.ID, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = uc.Accept(ctx, mentor.ID, req.ID, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = uc.Decline(ctx, mentor.ID, req.ID)
	}()
	wg.Wait()

	failures := 0
	for _, e := range errs {
		if e != nil {
			assert.True(t, errors.Is(e, ErrInvalidTransition))
			failures++
		}
	}
	assert.Equal(t, 1, failures)
}
