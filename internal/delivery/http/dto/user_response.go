package dto

import (
	"time"

	"yolearn/internal/domain/user"
	useruc "yolearn/internal/usecase/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Department   string         `json:"department"`
	Year         int            `json:"year"`
	Bio          string         `json:"bio"`
	ProfilePhoto string         `json:"profile_photo"`
	Education    user.Education `json:"education"`
	BadgesCount  int            `json:"badges_count"`
	DateJoined   time.Time      `json:"date_joined"`
}

type ProfileStatsResponse struct {
	SkillsCount       int `json:"skills_count"`
	BadgesEarned      int `json:"badges_earned"`
	CompletedSessions int `json:"completed_sessions"`
}

type BadgeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	DateAwarded time.Time `json:"date_awarded"`
}

type ProfileResponse struct {
	User   UserResponse         `json:"user"`
	Stats  ProfileStatsResponse `json:"stats"`
	Badges []BadgeResponse      `json:"badges"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type PreferencesResponse struct {
	DarkMode bool `json:"dark_mode"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Department:   u.Department,
		Year:         u.Year,
		Bio:          u.Bio,
		ProfilePhoto: u.ProfilePhoto,
		Education:    u.Education,
		BadgesCount:  u.BadgesCount,
		DateJoined:   u.DateJoined,
	}
}

func NewProfileResponse(p useruc.Profile) ProfileResponse {
	badges := make([]BadgeResponse, 0, len(p.Badges))
	for _, b := range p.Badges {
		badges = append(badges, BadgeResponse{ID: b.ID, Name: b.Name, Icon: b.Icon, DateAwarded: b.DateAwarded})
	}
	return ProfileResponse{
		User: NewUserResponse(p.User),
		Stats: ProfileStatsResponse{
			SkillsCount:       p.SkillsCount,
			BadgesEarned:      len(p.Badges),
			CompletedSessions: p.CompletedSessions,
		},
		Badges: badges,
	}
}
