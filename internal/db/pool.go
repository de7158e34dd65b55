package db

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"taskboard/internal/apperr"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"
)

// TxRunner runs fn inside a single transaction on one borrowed connection.
// The transaction commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Pool bounds the number of requests holding a database connection at once.
// Capacity matches the pgx pool size, so a slot holder never queues inside
// database/sql.
type Pool struct {
	db             *gorm.DB
	slots          *semaphore.Weighted
	capacity       int64
	inUse          atomic.Int64
	acquireTimeout time.Duration
	logger         *zap.SugaredLogger
}

func NewPool(db *gorm.DB, capacity int64, acquireTimeout time.Duration, logger *zap.Logger) *Pool {
	return &Pool{
		db:             db,
		slots:          semaphore.NewWeighted(capacity),
		capacity:       capacity,
		acquireTimeout: acquireTimeout,
		logger:         logger.Sugar(),
	}
}

// Acquire waits up to the acquire timeout for a free slot. The returned
// release func is idempotent.
func (p *Pool) Acquire(ctx context.Context) (func(), error) {
	waitCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	if err := p.slots.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p.logger.Warnw("Connection pool exhausted",
			"capacity", p.capacity,
			"wait", p.acquireTimeout.String(),
		)
		return nil, fmt.Errorf("acquire connection: %w", apperr.ErrUnavailable)
	}
	p.inUse.Add(1)

	var once sync.Once
	return func() {
		once.Do(func() {
			p.inUse.Add(-1)
			p.slots.Release(1)
		})
	}, nil
}

func (p *Pool) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	release, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return p.db.WithContext(ctx).Transaction(fn)
}

func (p *Pool) InUse() int64 {
	return p.inUse.Load()
}

func (p *Pool) Capacity() int64 {
	return p.capacity
}
