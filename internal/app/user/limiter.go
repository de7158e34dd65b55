package user

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/apperr"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrTooManyLogins = apperr.New(apperr.ErrTooManyAttempts, "Too many failed login attempts, try again later")

type Limiter interface {
	Allow(ctx context.Context, username string) error
	RecordFailure(ctx context.Context, username string)
	Reset(ctx context.Context, username string)
}

// LoginLimiter locks a username out after too many failed logins. Counters
// live in Redis; when Redis is unreachable logins are let through.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	lockout     time.Duration
	logger      *zap.SugaredLogger
}

func NewLoginLimiter(client *redis.Client, maxAttempts int64, lockout time.Duration, logger *zap.Logger) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		lockout:     lockout,
		logger:      logger.Sugar(),
	}
}

func failureKey(username string) string {
	return fmt.Sprintf("login:fail:%s", username)
}

func (l *LoginLimiter) Allow(ctx context.Context, username string) error {
	count, err := l.client.Get(ctx, failureKey(username)).Int64()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		l.logger.Warnw("Login limiter unavailable, allowing attempt", "error", err)
		return nil
	}
	if count >= l.maxAttempts {
		return ErrTooManyLogins
	}
	return nil
}

func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) {
	key := failureKey(username)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.lockout)
		return nil
	})
	if err != nil {
		l.logger.Warnw("Failed to record login failure", "error", err)
	}
}

func (l *LoginLimiter) Reset(ctx context.Context, username string) {
	if err := l.client.Del(ctx, failureKey(username)).Err(); err != nil {
		l.logger.Warnw("Failed to reset login failures", "error", err)
	}
}
