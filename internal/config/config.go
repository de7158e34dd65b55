package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

const minSecretLength = 32

type Config struct {
	Env        string `env:"ENV" envDefault:"dev"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`

	DBHost           string        `env:"DB_HOST" envDefault:"postgres"`
	DBPort           string        `env:"DB_PORT" envDefault:"5432"`
	DBUser           string        `env:"DB_USER" envDefault:"postgres"`
	DBPass           string        `env:"DB_PASSWORD" envDefault:"password"`
	DBName           string        `env:"DB_NAME" envDefault:"taskboard"`
	DBSSLMode        string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMinConns       int32         `env:"DB_MIN_CONNS" envDefault:"1"`
	DBMaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBAcquireTimeout time.Duration `env:"DB_ACQUIRE_TIMEOUT" envDefault:"5s"`

	RedisURL string `env:"REDIS_URL" envDefault:"redis:6379"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"60m"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	LoginMaxAttempts int64         `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginLockout     time.Duration `env:"LOGIN_LOCKOUT" envDefault:"15m"`

	FrontendURLs   []string `env:"FRONTEND_URL" envSeparator:","`
	BootstrapUsers []string `env:"BOOTSTRAP_USERS" envSeparator:","`
}

// LoadConfig reads the process environment. Call utils.LoadEnv first so that
// values from a .env file are visible.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	for i := range cfg.FrontendURLs {
		cfg.FrontendURLs[i] = strings.TrimSpace(cfg.FrontendURLs[i])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DBMinConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS must be at least 1, got %d", c.DBMinConns))
	}
	if c.DBMaxConns < c.DBMinConns {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS (%d) must not be below DB_MIN_CONNS (%d)", c.DBMaxConns, c.DBMinConns))
	}
	if c.DBAcquireTimeout <= 0 {
		errs = append(errs, errors.New("DB_ACQUIRE_TIMEOUT must be positive"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	} else if !c.IsDev() && len(c.JWTSecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes outside dev", minSecretLength))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.LoginMaxAttempts < 1 {
		errs = append(errs, errors.New("LOGIN_MAX_ATTEMPTS must be at least 1"))
	}
	if c.LoginLockout <= 0 {
		errs = append(errs, errors.New("LOGIN_LOCKOUT must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
