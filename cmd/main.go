// @title Taskboard API
// @version 1.0
// @description Multi-tenant boards and tasks behind bearer-token auth.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/app"
	"taskboard/internal/config"
	"taskboard/internal/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cliApp := &cli.App{
		Name:  "taskboard",
		Usage: "multi-tenant task board API",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to load before reading the environment",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply schema migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newLogger loads the dotenv files first so that ENV set there picks the
// logger flavour.
func newLogger(envFiles []string) (*zap.Logger, error) {
	envErr := utils.LoadEnv(envFiles...)

	logger, err := utils.NewLogger(os.Getenv("ENV"))
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		logger.Warn("ENV file not found or failed to load, using defaults", zap.Error(envErr))
	} else {
		logger.Info("ENV file loaded successfully")
	}
	return logger, nil
}

func setup(c *cli.Context) (*zap.Logger, *config.Config, error) {
	logger, err := newLogger(c.StringSlice("env-file"))
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return nil, nil, err
	}

	logger.Info("Config loaded",
		zap.String("server_port", cfg.ServerPort),
		zap.String("db_host", cfg.DBHost),
		zap.Int32("db_max_conns", cfg.DBMaxConns),
		zap.String("redis_url", cfg.RedisURL),
		zap.String("env", cfg.Env),
	)
	return logger, &cfg, nil
}

func migrate(c *cli.Context) error {
	logger, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return app.Migrate(c.Context, cfg, logger)
}

func serve(c *cli.Context) error {
	logger, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	application, err := app.Bootstrap(c.Context, cfg, logger)
	if err != nil {
		logger.Error("Failed to bootstrap application", zap.Error(err))
		return err
	}
	defer application.Close()

	addr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:              addr,
		Handler:           application.Router.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server started", zap.String("addr", "localhost"+addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			logger.Error("Server stopped with error", zap.Error(err))
			return err
		}
		return nil
	case <-quit:
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exited gracefully")
	return nil
}
