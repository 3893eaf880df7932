// Package tiptracker polls lightwalletd for the chain tip and notifies
// observers when it moves.
package tiptracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/lightningnetwork/lnd/ticker"
	"go.uber.org/zap"
)

// DefaultPollInterval is used when a chain profile does not set one.
const DefaultPollInterval = 75 * time.Second

// Tracker follows the tip of one chain.
type Tracker struct {
	logger      *zap.Logger
	chain       model.ChainID
	client      ChainClient
	metrics     Metrics
	ticker      ticker.Ticker
	blockSignal <-chan struct{}

	mu        sync.RWMutex
	height    uint64
	observers []Observer
}

// New builds a Tracker. blockSignal may be nil; every receive on it forces
// an immediate poll.
func New(
	chain model.ChainID,
	client ChainClient,
	metrics Metrics,
	t ticker.Ticker,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Tracker, error) {
	if client == nil {
		return nil, errors.New("chain client is required")
	}
	if metrics == nil {
		return nil, errors.New("tip tracker metrics is required")
	}
	if t == nil {
		return nil, errors.New("ticker is required")
	}

	return &Tracker{
		logger:      logger.With(zap.String("chain", string(chain))).Named("tipTracker"),
		chain:       chain,
		client:      client,
		metrics:     metrics,
		ticker:      t,
		blockSignal: blockSignal,
	}, nil
}

// Chain returns the tracked chain.
func (t *Tracker) Chain() model.ChainID {
	return t.chain
}

// Height returns the last observed tip, zero before the first successful poll.
func (t *Tracker) Height() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.height
}

// Subscribe registers an observer for tip changes.
func (t *Tracker) Subscribe(o Observer) {
	t.mu.Lock()
	t.observers = append(t.observers, o)
	t.mu.Unlock()
}

// Run polls until ctx is canceled. The first poll happens immediately.
func (t *Tracker) Run(ctx context.Context) error {
	t.ticker.Resume()
	defer t.ticker.Stop()

	t.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.ticker.Ticks():
			t.poll(ctx)
		case <-t.blockSignal:
			t.logger.Debug("block signal received")
			t.poll(ctx)
		}
	}
}

func (t *Tracker) poll(ctx context.Context) {
	started := time.Now()
	block, err := t.client.GetLatestBlock(ctx, t.chain)
	t.metrics.ObservePoll(t.chain, err, started)
	if err != nil {
		t.logger.Warn("get latest block failed", zap.Error(err))
		return
	}

	t.mu.Lock()
	if block.Height == t.height {
		t.mu.Unlock()
		return
	}
	t.height = block.Height
	observers := append([]Observer(nil), t.observers...)
	t.mu.Unlock()

	t.metrics.ObserveTip(t.chain, block.Height)
	t.logger.Debug("chain tip changed", zap.Uint64("height", block.Height))
	for _, o := range observers {
		o(ctx, t.chain, block.Height)
	}
}
