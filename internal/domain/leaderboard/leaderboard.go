// Package leaderboard ranks users by points. A user's points are the stored
// award total plus PointsPerSession for every completed session, as learner
// or mentor.
package leaderboard

import (
	"sort"

	"yolearn/internal/domain/user"

	"github.com/google/uuid"
)

const PointsPerSession = 50

type Entry struct {
	User   user.User
	Points int
	Rank   int
}

// Rank orders users by points, highest first, then by name. Equal points
// share a rank and the next rank skips ahead. limit <= 0 keeps everyone.
func Rank(users []user.User, completed map[uuid.UUID]int, limit int) []Entry {
	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{User: u, Points: u.Points + PointsPerSession*completed[u.ID]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.User.Name != b.User.Name {
			return a.User.Name < b.User.Name
		}
		return a.User.ID.String() < b.User.ID.String()
	})
	for i := range entries {
		if i > 0 && entries[i].Points == entries[i-1].Points {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
