// Package batcher groups items queued from many goroutines and hands them
// to a flush function by size or age.
package batcher

import (
	"context"
	"errors"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrClosed is returned by Add once Run has returned.
var ErrClosed = errors.New("batcher closed")

const drainTimeout = 10 * time.Second

type Config struct {
	// Size is the number of items that triggers a flush.
	Size int
	// Interval is the longest an item waits in the buffer.
	Interval time.Duration
	// RPS caps flushes per second. Zero leaves them unlimited.
	RPS int
}

// Batcher buffers items of type T for a flush function.
type Batcher[T any] struct {
	cfg     Config
	flush   func(context.Context, []T) error
	limiter ratelimit.Limiter
	logger  *zap.Logger

	items chan T
	done  chan struct{}
}

func New[T any](cfg Config, flush func(context.Context, []T) error, logger *zap.Logger) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		cfg:     cfg,
		flush:   flush,
		limiter: limiter,
		logger:  logger,
		items:   make(chan T, cfg.Size*4),
		done:    make(chan struct{}),
	}
}

// Add queues item. It blocks while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrClosed
	case b.items <- item:
		return nil
	}
}

// Run flushes until ctx is done. Items still queued then are flushed with a
// short detached deadline before Run returns.
func (b *Batcher[T]) Run(ctx context.Context) error {
	defer close(b.done)

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)
	for {
		select {
		case <-ctx.Done():
			buf = b.drain(buf)
			dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
			b.send(dctx, buf)
			cancel()
			return nil
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				buf = b.send(ctx, buf)
			}
		case <-ticker.C:
			buf = b.send(ctx, buf)
		}
	}
}

func (b *Batcher[T]) drain(buf []T) []T {
	for {
		select {
		case item := <-b.items:
			buf = append(buf, item)
		default:
			return buf
		}
	}
}

// send flushes buf and returns it emptied. Failed batches are dropped.
func (b *Batcher[T]) send(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}
	b.limiter.Take()
	if err := b.flush(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
	}
	return buf[:0]
}
