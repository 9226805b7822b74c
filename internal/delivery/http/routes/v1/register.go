package v1

import (
	"yolearn/internal/delivery/http/handler"
	"yolearn/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Skill        *handler.SkillHandler
	Match        *handler.MatchHandler
	Forum        *handler.ForumHandler
	Notification *handler.NotificationHandler
	Leaderboard  *handler.LeaderboardHandler
}

// Register mounts the public auth routes and everything else behind authMw.
func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r.Group("", authMw.Middleware())

	if h.User != nil {
		h.User.RegisterRoutes(protected.Group("/users"))
	}
	if h.Skill != nil {
		h.Skill.RegisterRoutes(protected)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(protected)
	}
	if h.Forum != nil {
		h.Forum.RegisterRoutes(protected)
	}
	if h.Notification != nil {
		h.Notification.RegisterRoutes(protected)
	}
	if h.Leaderboard != nil {
		h.Leaderboard.RegisterRoutes(protected)
	}
}
