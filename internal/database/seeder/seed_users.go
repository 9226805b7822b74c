package seeder

import (
	"context"
	"strings"

	"yolearn/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

type UsersSeeder struct {
	Data Dataset
	Cost int
}

func (UsersSeeder) Name() string { return "users" }

func (s UsersSeeder) Run(ctx context.Context, store Store) error {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	// Every demo account shares one password, so one hash serves all.
	hash, err := bcrypt.GenerateFromPassword([]byte(s.Data.Password), cost)
	if err != nil {
		return err
	}

	for _, rec := range s.Data.Users {
		u := user.User{
			ID:           ID(rec.Key),
			Name:         rec.Name,
			Email:        strings.ToLower(rec.Email),
			PasswordHash: string(hash),
			Department:   rec.Department,
			Year:         rec.Year,
			Bio:          rec.Bio,
			ProfilePhoto: rec.ProfilePhoto,
			Education:    rec.Education,
			BadgesCount:  rec.BadgesCount,
			Points:       rec.Points,
			DateJoined:   rec.DateJoined,
			UpdatedAt:    rec.DateJoined,
		}
		if err := store.Users.CreateUser(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
