package seeder

import (
	"context"

	"yolearn/internal/domain/forum"
	"yolearn/internal/domain/match"
	"yolearn/internal/domain/notification"
	"yolearn/internal/domain/skill"
	"yolearn/internal/domain/user"
)

// Store is the set of repositories the seeders write through.
type Store struct {
	Users         user.Repository
	Skills        skill.Repository
	Matches       match.Repository
	Forum         forum.Repository
	Notifications notification.Repository
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, store Store) error
}

// Defaults returns the seeders for ds in dependency order.
func Defaults(ds Dataset, passwordCost int) []Seeder {
	return []Seeder{
		UsersSeeder{Data: ds, Cost: passwordCost},
		SkillsSeeder{Data: ds},
		MatchesSeeder{Data: ds},
		ForumSeeder{Data: ds},
		NotificationsSeeder{Data: ds},
	}
}
