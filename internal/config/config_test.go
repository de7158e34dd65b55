package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "dev-secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBMinConns != 1 || cfg.DBMaxConns != 10 {
		t.Fatalf("unexpected pool bounds: min=%d max=%d", cfg.DBMinConns, cfg.DBMaxConns)
	}
	if cfg.TokenTTL != 60*time.Minute {
		t.Fatalf("unexpected token ttl: %v", cfg.TokenTTL)
	}
	if cfg.DBAcquireTimeout != 5*time.Second {
		t.Fatalf("unexpected acquire timeout: %v", cfg.DBAcquireTimeout)
	}
	if cfg.Env != "dev" || !cfg.IsDev() {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoadConfigSplitsLists(t *testing.T) {
	t.Setenv("JWT_SECRET", "dev-secret")
	t.Setenv("FRONTEND_URL", "http://a.test, http://b.test")
	t.Setenv("BOOTSTRAP_USERS", "alice:pw1,bob:pw2")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.FrontendURLs) != 2 || cfg.FrontendURLs[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %#v", cfg.FrontendURLs)
	}
	if len(cfg.BootstrapUsers) != 2 {
		t.Fatalf("unexpected bootstrap users: %#v", cfg.BootstrapUsers)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Env:              "prod",
			DBMinConns:       1,
			DBMaxConns:       10,
			DBAcquireTimeout: time.Second,
			JWTSecret:        strings.Repeat("k", 32),
			TokenTTL:         time.Hour,
			BcryptCost:       10,
			LoginMaxAttempts: 5,
			LoginLockout:     time.Minute,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "zero min conns", mutate: func(c *Config) { c.DBMinConns = 0 }},
		{name: "max below min", mutate: func(c *Config) { c.DBMinConns = 5; c.DBMaxConns = 2 }},
		{name: "short secret in prod", mutate: func(c *Config) { c.JWTSecret = "short" }},
		{name: "short secret in dev", mutate: func(c *Config) { c.Env = "dev"; c.JWTSecret = "short" }, ok: true},
		{name: "bad cost", mutate: func(c *Config) { c.BcryptCost = 99 }},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }},
		{name: "zero lockout", mutate: func(c *Config) { c.LoginLockout = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBUser: "u", DBPass: "p", DBName: "n", DBPort: "5433", DBSSLMode: "disable"}
	want := "host=db user=u password=p dbname=n port=5433 sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}
