package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskboard/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database owns the pgx connection pool and the gorm handle layered on it.
type Database struct {
	Gorm *gorm.DB
	SQL  *sql.DB
	pg   *pgxpool.Pool
}

func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Database, error) {
	pgCfg, err := pgxpool.ParseConfig(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pgCfg.MinConns = cfg.DBMinConns
	pgCfg.MaxConns = cfg.DBMaxConns

	pg, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pg)
	sqlDB.SetMaxOpenConns(int(cfg.DBMaxConns))

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zap.NewStdLog(logger), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		pg.Close()
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		pg.Close()
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
		zap.Int32("min_conns", cfg.DBMinConns),
		zap.Int32("max_conns", cfg.DBMaxConns),
	)

	return &Database{Gorm: db, SQL: sqlDB, pg: pg}, nil
}

func (d *Database) Close() {
	_ = d.SQL.Close()
	d.pg.Close()
}
