package usecase

import (
	"context"
	"testing"

	"yolearn/internal/domain/leaderboard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_CompletedSessionsMoveStandings(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	mentor := w.addUser(t, "Rohan Mehta")
	learner := w.addUser(t, "Priya Sharma")
	setPoints(t, w, mentor.ID, 100)
	setPoints(t, w, learner.ID, 80)

	board := NewLeaderboardUsecase(w.users, w.matches, nil)
	top, err := board.Top(ctx, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, mentor.ID, top[0].User.ID)
	assert.Empty(t, top[0].User.PasswordHash)

	matches := NewMatchUsecase(w.matches, w.skills, w.users, w.notify, nil)
	guitar := w.addSkill(t, mentor, "Guitar")
	req, err := matches.RequestSession(ctx, learner.ID, guitar.ID, "")
	require.NoError(t, err)
	_, err = matches.Accept(ctx, mentor.ID, req.ID, nil)
	require.NoError(t, err)
	_, err = matches.Complete(ctx, learner.ID, req.ID)
	require.NoError(t, err)

	top, err = board.Top(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, mentor.ID, top[0].User.ID)
	assert.Equal(t, 100+leaderboard.PointsPerSession, top[0].Points)

	top, err = board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 80+leaderboard.PointsPerSession, top[1].Points)
	assert.Equal(t, 2, top[1].Rank)
}

func TestLeaderboard_RejectsOversizedLimit(t *testing.T) {
	w := newWorld(t)
	_, err := NewLeaderboardUsecase(w.users, w.matches, nil).Top(context.Background(), MaxLeaderboardSize+1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func setPoints(t *testing.T, w *world, id uuid.UUID, points int) {
	t.Helper()
	ctx := context.Background()
	u, err := w.users.GetUserByID(ctx, id)
	require.NoError(t, err)
	u.Points = points
	require.NoError(t, w.users.UpdateUser(ctx, u))
}
