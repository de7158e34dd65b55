package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/app/session"
	"taskboard/internal/app/user"

	"go.uber.org/zap"
)

type Registrar interface {
	Register(ctx context.Context, username, password string) (*session.TokenResponse, error)
}

// Seeder creates the bootstrap accounts listed in configuration. Entries
// have the form "username:password".
type Seeder struct {
	registrar Registrar
	users     []string
	logger    *zap.Logger
}

func NewSeeder(registrar Registrar, users []string, logger *zap.Logger) *Seeder {
	return &Seeder{
		registrar: registrar,
		users:     users,
		logger:    logger,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if len(s.users) == 0 {
		return nil
	}
	s.logger.Info("Running database seeders...")

	created := 0
	for _, entry := range s.users {
		username, password, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || username == "" || password == "" {
			return fmt.Errorf("invalid bootstrap user entry %q, want username:password", username)
		}

		if _, err := s.registrar.Register(ctx, username, password); err != nil {
			if errors.Is(err, user.ErrUsernameTaken) {
				s.logger.Info("Bootstrap user already exists, skipping", zap.String("username", username))
				continue
			}
			return fmt.Errorf("seed user %s: %w", username, err)
		}
		created++
	}

	s.logger.Info("Seeded users", zap.Int("count", created))
	return nil
}
