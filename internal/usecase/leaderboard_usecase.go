package usecase

import (
	"context"

	"yolearn/internal/domain/leaderboard"
	"yolearn/internal/domain/match"
	"yolearn/internal/domain/user"

	"go.uber.org/zap"
)

const (
	DefaultLeaderboardSize = 5
	MaxLeaderboardSize     = 50
)

type LeaderboardUsecase interface {
	Top(ctx context.Context, limit int) ([]leaderboard.Entry, error)
}

// Leaderboard ranks the campus on every call; completed sessions change
// standings immediately.
type Leaderboard struct {
	users   user.Repository
	matches match.Repository
	logger  *zap.Logger
}

func NewLeaderboardUsecase(users user.Repository, matches match.Repository, logger *zap.Logger) *Leaderboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Leaderboard{users: users, matches: matches, logger: logger}
}

// Top returns the highest ranked users. limit <= 0 means the default size.
func (u *Leaderboard) Top(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		return nil, ErrInvalidInput
	}

	users, err := u.users.ListUsers(ctx)
	if err != nil {
		u.logger.Error("[Leaderboard] list users failed", zap.Error(err))
		return nil, ErrInternal
	}
	completed, err := u.matches.CountCompleted(ctx)
	if err != nil {
		u.logger.Error("[Leaderboard] count sessions failed", zap.Error(err))
		return nil, ErrInternal
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return leaderboard.Rank(users, completed, limit), nil
}
