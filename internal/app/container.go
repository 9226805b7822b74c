package app

import (
	"context"
	"fmt"
	"time"

	"yolearn/internal/config"
	"yolearn/internal/database"
	dbpostgres "yolearn/internal/database/postgres"
	"yolearn/internal/database/migration"
	"yolearn/internal/database/seeder"
	"yolearn/internal/domain/preference"
	"yolearn/internal/infrastructure/cache"
	"yolearn/internal/pkg/jwt"
	"yolearn/internal/repository"
	"yolearn/internal/repository/memory"
	"yolearn/internal/usecase"
	ucauth "yolearn/internal/usecase/auth"
	useruc "yolearn/internal/usecase/user"
	"yolearn/internal/ws"
	"yolearn/migrations"

	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

// Container owns every long-lived dependency of the server process.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Redis *cache.Redis
	Hub   *ws.Hub
	Relay *ws.Relay
	Store seeder.Store
	JWT   jwt.Service

	Prefs         preference.Store
	Users         *useruc.Service
	Auth          *usecase.Auth
	Skills        *usecase.Skill
	Matches       *usecase.Matches
	Forum         *usecase.Forum
	Notifications *usecase.Notifications
	Preferences   *usecase.Preferences
	Leaderboard   *usecase.Leaderboard
}

// Option adjusts the container before dependencies are wired, mostly for tests.
type Option func(*options)

type options struct {
	bcryptCost int
}

func WithBcryptCost(cost int) Option {
	return func(o *options) { o.bcryptCost = cost }
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...Option) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{Config: cfg, Logger: logger}

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		if err := c.openPostgres(ctx); err != nil {
			return nil, err
		}
	default:
		c.Store = seeder.Store{
			Users:         memory.NewUserRepository(),
			Skills:        memory.NewSkillRepository(),
			Matches:       memory.NewMatchRepository(),
			Forum:         memory.NewForumRepository(),
			Notifications: memory.NewNotificationRepository(),
		}
		logger.Info("[App] using in-memory storage")
	}

	c.Redis = cache.NewRedis(cfg.Redis, logger)
	c.Prefs = cache.NewPreferenceStore(c.Redis, memory.NewPreferenceStore())
	c.Hub = ws.NewHub(logger)

	var publisher usecase.Publisher = ws.NewHubPublisher(c.Hub)
	if c.Redis.Available() {
		c.Relay = ws.NewRelay(c.Redis.Client(), c.Hub, logger)
		publisher = ws.NewRedisPublisher(c.Redis, c.Hub, c.Relay, logger)
	}

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	c.Notifications = usecase.NewNotificationUsecase(c.Store.Notifications, publisher, logger)
	c.Skills = usecase.NewSkillUsecase(c.Store.Skills, c.Store.Users, c.Redis, logger)
	c.Matches = usecase.NewMatchUsecase(c.Store.Matches, c.Store.Skills, c.Store.Users, c.Notifications, logger)
	c.Forum = usecase.NewForumUsecase(c.Store.Forum, c.Store.Users, logger)
	c.Preferences = usecase.NewPreferenceUsecase(c.Prefs)
	c.Leaderboard = usecase.NewLeaderboardUsecase(c.Store.Users, c.Store.Matches, logger)
	c.Users = useruc.NewService(useruc.Deps{
		Users:         c.Store.Users,
		Skills:        c.Store.Skills,
		Matches:       c.Store.Matches,
		Forum:         c.Store.Forum,
		Notifications: c.Store.Notifications,
		Preferences:   c.Prefs,
		Catalog:       c.Skills,
		Logger:        logger,
	})
	c.Auth = usecase.NewAuthUsecase(
		ucauth.NewService(c.Store.Users, ucauth.WithBcryptCost(o.bcryptCost)),
		c.Store.Users,
		c.JWT,
		logger,
	)

	if cfg.Storage.SeedOnStart {
		if err := c.Seed(ctx, o.bcryptCost); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	return c, nil
}

func (c *Container) openPostgres(ctx context.Context) error {
	timeout := c.Config.Database.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, c.Config.Database, c.Logger)
	if err != nil {
		return err
	}

	runner := migration.Runner{Dir: c.Config.Database.MigrationsDir, FS: migrations.FS, Logger: c.Logger}
	if _, err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	c.DB = db
	c.Store = seeder.Store{
		Users:         repository.NewPostgresUserRepository(db),
		Skills:        repository.NewPostgresSkillRepository(db),
		Matches:       repository.NewPostgresMatchRepository(db),
		Forum:         repository.NewPostgresForumRepository(db),
		Notifications: repository.NewPostgresNotificationRepository(db),
	}
	return nil
}

// Seed loads the demo data set unless it is already present.
func (c *Container) Seed(ctx context.Context, bcryptCost int) error {
	ds, err := seeder.DefaultDataset()
	if err != nil {
		return err
	}
	if c.DB != nil {
		if err := seeder.CheckSchema(ctx, c.DB); err != nil {
			return err
		}
	}

	r := seeder.Runner{Seeders: seeder.Defaults(ds, bcryptCost), Logger: c.Logger}
	seeded, err := r.Run(ctx, c.Store, ds)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if seeded {
		c.Skills.InvalidateCatalog(ctx)
	}
	return nil
}

func (c *Container) Ping(ctx context.Context) error {
	if c.DB == nil {
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.DB.Ping(pingCtx)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
