package redis

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const monitorInterval = 5 * time.Second

// RedisProvider owns the shared Redis client used by the login limiter and
// the health check. A background watcher tracks reachability so outages are
// logged once per transition instead of once per failed command.
type RedisProvider struct {
	Client    *redis.Client
	URL       string
	logger    *zap.SugaredLogger
	reachable atomic.Bool
	stop      context.CancelFunc
}

func NewRedisProvider(redisURL string, logger *zap.Logger) *RedisProvider {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	opts.MaxRetries = 3
	opts.MinRetryBackoff = 100 * time.Millisecond
	opts.MaxRetryBackoff = 500 * time.Millisecond

	ctx, stop := context.WithCancel(context.Background())
	provider := &RedisProvider{
		Client: redis.NewClient(opts),
		URL:    redisURL,
		logger: logger.Sugar().With("component", "redis", "addr", opts.Addr),
		stop:   stop,
	}
	provider.Client.AddHook(commandLogger{logger: provider.logger})

	provider.observe(provider.Client.Ping(ctx).Err())
	go provider.watch(ctx)

	return provider
}

// Reachable reports the result of the most recent background ping.
func (r *RedisProvider) Reachable() bool {
	return r.reachable.Load()
}

func (r *RedisProvider) Close() error {
	r.stop()
	return r.Client.Close()
}

func (r *RedisProvider) watch(ctx context.Context) {
	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.observe(r.Client.Ping(ctx).Err())
		}
	}
}

// observe records a ping result and logs only when reachability flips.
func (r *RedisProvider) observe(err error) {
	up := err == nil
	if r.reachable.Swap(up) == up {
		return
	}
	if up {
		r.logger.Infow("Redis reachable")
	} else {
		r.logger.Errorw("Redis unreachable; login throttling fails open", "error", err)
	}
}

// commandLogger emits command timings at debug level. Keys and arguments are
// never logged since limiter keys carry usernames.
type commandLogger struct {
	logger *zap.SugaredLogger
}

func (h commandLogger) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.logger.Warnw("Redis dial failed", "error", err)
		}
		return conn, err
	}
}

func (h commandLogger) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		if cmd.Name() != "ping" {
			h.log("Redis command", err, "command", cmd.Name(), "duration_ms", time.Since(start).Milliseconds())
		}
		return err
	}
}

// ProcessPipelineHook logs one line per pipeline, not per queued command.
func (h commandLogger) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		h.log("Redis pipeline", err, "commands", len(cmds), "duration_ms", time.Since(start).Milliseconds())
		return err
	}
}

func (h commandLogger) log(msg string, err error, fields ...interface{}) {
	if err != nil && err != redis.Nil {
		h.logger.Errorw(msg+" failed", append(fields, "error", err)...)
		return
	}
	h.logger.Debugw(msg, fields...)
}
