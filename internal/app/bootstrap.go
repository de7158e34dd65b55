package app

import (
	"context"
	"fmt"

	"taskboard/internal/app/board"
	"taskboard/internal/app/health"
	"taskboard/internal/app/session"
	"taskboard/internal/app/task"
	"taskboard/internal/app/user"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/db/migrations"
	"taskboard/internal/db/seeder"
	"taskboard/internal/providers/redis"
	"taskboard/internal/router"
	"taskboard/internal/utils"

	"go.uber.org/zap"
)

type Application struct {
	Router *router.Router
	DB     *db.Database
	Redis  *redis.RedisProvider
	logger *zap.Logger
}

func Bootstrap(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	database, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := migrations.Migrate(database.Gorm, logger); err != nil {
		database.Close()
		return nil, err
	}

	pool := db.NewPool(database.Gorm, int64(cfg.DBMaxConns), cfg.DBAcquireTimeout, logger)
	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger)

	hasher, err := user.NewHasher(cfg.BcryptCost)
	if err != nil {
		database.Close()
		_ = redisProvider.Close()
		return nil, err
	}

	tokens := session.NewService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := user.NewLoginLimiter(redisProvider.Client, cfg.LoginMaxAttempts, cfg.LoginLockout, logger)

	userRepo := user.NewRepository()
	boardRepo := board.NewRepository()
	taskRepo := task.NewRepository()

	userService := user.NewService(userRepo, pool, hasher, tokens, limiter, logger)
	boardService := board.NewService(boardRepo, pool, logger)
	taskService := task.NewService(taskRepo, boardRepo, pool, logger)

	seed := seeder.NewSeeder(userService, cfg.BootstrapUsers, logger)
	if err := seed.Seed(ctx); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    database.SQL,
		Redis: redisProvider.Client,
		Pool:  pool,
	})
	userHandler := user.NewHandler(userService, logger)
	boardHandler := board.NewHandler(boardService, logger)
	taskHandler := task.NewHandler(taskService, logger)

	r := router.NewRouter(logger, cfg.FrontendURLs, userService)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterTaskRoutes(taskHandler)
	if !cfg.IsProd() {
		r.RegisterSwaggerRoutes()
	}

	return &Application{
		Router: r,
		DB:     database,
		Redis:  redisProvider,
		logger: logger,
	}, nil
}

// Migrate connects, brings the schema up to date and disconnects.
func Migrate(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	database, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer database.Close()

	return migrations.Migrate(database.Gorm, logger)
}

func (a *Application) Close() {
	if err := a.Redis.Close(); err != nil {
		a.logger.Warn("Failed to close redis", zap.Error(err))
	}
	a.DB.Close()
}
