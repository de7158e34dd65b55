package seeder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taskboard/internal/app/session"
	"taskboard/internal/app/user"

	"go.uber.org/zap"
)

type fakeRegistrar struct {
	existing map[string]bool
	created  []string
}

func (f *fakeRegistrar) Register(_ context.Context, username, password string) (*session.TokenResponse, error) {
	if f.existing[username] {
		return nil, user.ErrUsernameTaken
	}
	f.existing[username] = true
	f.created = append(f.created, username+":"+password)
	return &session.TokenResponse{AccessToken: "t", TokenType: session.TokenTypeBearer}, nil
}

func TestSeedCreatesMissingUsers(t *testing.T) {
	reg := &fakeRegistrar{existing: map[string]bool{"alice": true}}
	s := NewSeeder(reg, []string{"alice:secret", " bob:pw:with:colons "}, zap.NewNop())

	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(reg.created) != 1 || reg.created[0] != "bob:pw:with:colons" {
		t.Fatalf("unexpected registrations %v", reg.created)
	}
}

func TestSeedRejectsMalformedEntry(t *testing.T) {
	reg := &fakeRegistrar{existing: map[string]bool{}}
	s := NewSeeder(reg, []string{"nopassword"}, zap.NewNop())

	err := s.Seed(context.Background())
	if err == nil || !strings.Contains(err.Error(), "username:password") {
		t.Fatalf("expected a format error, got %v", err)
	}
	if len(reg.created) != 0 {
		t.Fatalf("nothing should be registered, got %v", reg.created)
	}
}

func TestSeedPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("db down")
	s := NewSeeder(failingRegistrar{err: boom}, []string{"carol:pw"}, zap.NewNop())

	if err := s.Seed(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

type failingRegistrar struct{ err error }

func (f failingRegistrar) Register(context.Context, string, string) (*session.TokenResponse, error) {
	return nil, f.err
}
