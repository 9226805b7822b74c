package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"yolearn/internal/config"
	"yolearn/internal/delivery/http/handler"
	"yolearn/internal/delivery/http/middleware"
	"yolearn/internal/delivery/http/routes"
	v1 "yolearn/internal/delivery/http/routes/v1"
	"yolearn/internal/pkg/validator"
	"yolearn/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:         c.Config.App.AppName,
		StructValidator: validator.StructValidator{},
		BodyLimit:       8 << 20,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and the HTTP app. The returned cleanup
// releases storage and Redis connections.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	accessLog := middleware.NewAccessLogMiddleware(logger)
	errMw := middleware.NewErrorMiddleware(logger)

	app.Use(accessLog.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	authMw := middleware.NewAuthMiddleware(c.JWT, c.Users)

	checks := []handler.Check{{Name: "storage", Ping: c.Ping}}
	if c.Redis.Available() {
		checks = append(checks, handler.Check{Name: "redis", Optional: true, Ping: c.Redis.Ping})
	}

	reg := routes.NewRegistry(
		handler.NewHealthHandler(checks...),
		ws.NewHandler(c.Hub, authMw, c.Logger),
		v1.Handlers{
			Auth:         handler.NewAuthHandler(c.Auth),
			User:         handler.NewUserHandler(c.Users, c.Preferences),
			Skill:        handler.NewSkillHandler(c.Skills),
			Match:        handler.NewMatchHandler(c.Matches),
			Forum:        handler.NewForumHandler(c.Forum),
			Notification: handler.NewNotificationHandler(c.Notifications),
			Leaderboard:  handler.NewLeaderboardHandler(c.Leaderboard),
		},
		authMw,
	)
	reg.Register(app)
}

// Run serves HTTP, the WebSocket hub and the Redis relay until ctx is
// cancelled or one of them fails, then shuts the listener down gracefully.
func (a *App) Run(ctx context.Context) error {
	addr, err := ListenAddr(a.Container.Config.App.HTTPPort)
	if err != nil {
		return err
	}
	logger := a.Container.Logger

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Container.Hub.Run(gctx)
		return nil
	})

	if relay := a.Container.Relay; relay != nil {
		g.Go(func() error {
			relay.Run(gctx)
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("[HTTP] listening", zap.String("addr", addr))
		err := a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
		if err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("http listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("[HTTP] shutting down")
		return a.Fiber.ShutdownWithTimeout(shutdownTimeout)
	})

	return g.Wait()
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
