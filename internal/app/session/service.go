package session

import (
	"errors"
	"fmt"
	"time"

	"taskboard/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a token can fail validation: malformed,
// wrong key, wrong algorithm, expired or missing subject.
var ErrInvalidToken = apperr.New(apperr.ErrUnauthorized, "Could not validate credentials")

type Service interface {
	Issue(subject string, ttl time.Duration) (*TokenResponse, error)
	Validate(token string) (string, error)
}

type Option func(*service)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

func NewService(secret string, defaultTTL time.Duration, opts ...Option) Service {
	s := &service{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	return s
}

// Issue signs a token for subject that expires ttl from now. A non-positive
// ttl falls back to the service default.
func (s *service) Issue(subject string, ttl time.Duration) (*TokenResponse, error) {
	if subject == "" {
		return nil, errors.New("token subject must not be empty")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.now().UTC()
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Validate returns the token subject, or ErrInvalidToken.
func (s *service) Validate(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
