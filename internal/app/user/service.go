package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/app/session"
	"taskboard/internal/apperr"
	"taskboard/internal/db"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxPasswordBytes = 72

var (
	ErrUsernameTaken      = apperr.New(apperr.ErrConflict, "Username already registered")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "Incorrect username or password")
)

type Service interface {
	Register(ctx context.Context, username, password string) (*session.TokenResponse, error)
	Login(ctx context.Context, username, password string) (*session.TokenResponse, error)
	AuthenticateCredentials(ctx context.Context, username, password string) (*Account, error)
	ResolveFromToken(ctx context.Context, token string) (*Account, error)
}

type service struct {
	repo    Repository
	tx      db.TxRunner
	hasher  *Hasher
	tokens  session.Service
	limiter Limiter
	logger  *zap.SugaredLogger
}

func NewService(repo Repository, tx db.TxRunner, hasher *Hasher, tokens session.Service, limiter Limiter, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		tx:      tx,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger.Sugar(),
	}
}

// normalizeUsername is applied on every path that takes a username from a
// caller, so registration, login and the limiter key agree.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

func (s *service) Register(ctx context.Context, username, password string) (*session.TokenResponse, error) {
	username = normalizeUsername(username)
	if username == "" {
		return nil, apperr.New(apperr.ErrValidation, "Username must not be empty")
	}
	if err := apperr.CheckText("Username", username); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, apperr.New(apperr.ErrValidation, "Password must not be empty")
	}
	if len(password) > maxPasswordBytes {
		return nil, apperr.New(apperr.ErrValidation, fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &Account{Username: username, PasswordHash: hash}
	err = s.tx.InTx(ctx, func(tx *gorm.DB) error {
		existing, err := s.repo.GetByUsername(tx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrUsernameTaken
		}
		if err := s.repo.Create(tx, account); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUsernameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Account registered", "account_id", account.ID, "username", account.Username)
	return s.tokens.Issue(account.Username, 0)
}

func (s *service) Login(ctx context.Context, username, password string) (*session.TokenResponse, error) {
	username = normalizeUsername(username)
	if err := s.limiter.Allow(ctx, username); err != nil {
		s.logger.Warnw("Login throttled", "username", username)
		return nil, err
	}

	account, err := s.AuthenticateCredentials(ctx, username, password)
	if errors.Is(err, ErrInvalidCredentials) {
		s.limiter.RecordFailure(ctx, username)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	s.limiter.Reset(ctx, username)
	return s.tokens.Issue(account.Username, 0)
}

// AuthenticateCredentials returns ErrInvalidCredentials for both unknown
// usernames and wrong passwords.
func (s *service) AuthenticateCredentials(ctx context.Context, username, password string) (*Account, error) {
	account, err := s.lookup(ctx, normalizeUsername(username))
	if err != nil {
		return nil, err
	}
	if account == nil {
		s.hasher.DummyVerify(password)
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// ResolveFromToken maps a bearer token to its account. Tokens for accounts
// that no longer exist are rejected like any other invalid token.
func (s *service) ResolveFromToken(ctx context.Context, token string) (*Account, error) {
	username, err := s.tokens.Validate(token)
	if err != nil {
		return nil, session.ErrInvalidToken
	}

	account, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, session.ErrInvalidToken
	}
	return account, nil
}

// lookup returns (nil, nil) for names no account can have.
func (s *service) lookup(ctx context.Context, username string) (*Account, error) {
	if username == "" || apperr.CheckText("username", username) != nil {
		return nil, nil
	}
	var account *Account
	err := s.tx.InTx(ctx, func(tx *gorm.DB) error {
		var err error
		account, err = s.repo.GetByUsername(tx, username)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	return account, nil
}
