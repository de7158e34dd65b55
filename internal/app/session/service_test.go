package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"taskboard/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-test-secret-test-secret"

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestService(clock *fakeClock) Service {
	return NewService(testSecret, time.Hour, WithClock(clock.Now))
}

func TestIssueThenValidate(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	svc := newTestService(clock)

	tok, err := svc.Issue("alice", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok.TokenType != "bearer" {
		t.Fatalf("unexpected token type %q", tok.TokenType)
	}
	if !tok.ExpiresAt.Equal(clock.now.Add(time.Hour)) {
		t.Fatalf("expected default ttl, expires at %v", tok.ExpiresAt)
	}

	sub, err := svc.Validate(tok.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if sub != "alice" {
		t.Fatalf("unexpected subject %q", sub)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	svc := newTestService(clock)

	tok, err := svc.Issue("alice", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clock.now = clock.now.Add(59 * time.Second)
	if _, err := svc.Validate(tok.AccessToken); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	clock.now = clock.now.Add(2 * time.Second)
	_, err = svc.Validate(tok.AccessToken)
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after expiry, got %v", err)
	}
}

func TestValidateRejectsForeignKey(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	other := NewService("another-secret-another-secret-0000", time.Hour, WithClock(clock.Now))

	tok, err := other.Issue("alice", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := newTestService(clock).Validate(tok.AccessToken); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateRejectsMalformedAndUnsigned(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestService(clock)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	for name, tok := range map[string]string{
		"empty":     "",
		"garbage":   "not-a-token",
		"dots":      strings.Repeat(".", 2),
		"alg none":  unsigned,
		"truncated": unsigned[:len(unsigned)/2],
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Validate(tok); err != ErrInvalidToken {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestValidateRequiresExpiryAndSubject(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestService(clock)

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"}).SignedString([]byte(testSecret))
	if _, err := svc.Validate(noExp); err != ErrInvalidToken {
		t.Fatalf("token without exp accepted: %v", err)
	}

	noSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if _, err := svc.Validate(noSub); err != ErrInvalidToken {
		t.Fatalf("token without sub accepted: %v", err)
	}
}

func TestIssueRejectsEmptySubject(t *testing.T) {
	svc := newTestService(&fakeClock{now: time.Now()})
	if _, err := svc.Issue("", time.Minute); err == nil {
		t.Fatal("expected error for empty subject")
	}
}
