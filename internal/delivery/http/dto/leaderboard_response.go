package dto

import (
	"yolearn/internal/domain/leaderboard"

	"github.com/google/uuid"
)

type LeaderboardEntryResponse struct {
	Rank         int       `json:"rank"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Department   string    `json:"department"`
	ProfilePhoto string    `json:"profile_photo"`
	Points       int       `json:"points"`
}

func NewLeaderboardResponse(entries []leaderboard.Entry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LeaderboardEntryResponse{
			Rank:         e.Rank,
			UserID:       e.User.ID,
			Name:         e.User.Name,
			Department:   e.User.Department,
			ProfilePhoto: e.User.ProfilePhoto,
			Points:       e.Points,
		})
	}
	return out
}
