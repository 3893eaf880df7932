// Package archive ships transaction lifecycle events and scan batches to
// the analytical store in batches.
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/pkg/batcher"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize     = 500
	defaultFlushInterval = 2 * time.Second
	defaultFlushRPS      = 10
)

type Config struct {
	BatchSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// Service queues archive records. Nothing is written until Run is called.
type Service struct {
	repo    Repository
	logger  *zap.Logger
	events  *batcher.Batcher[model.TxEvent]
	batches *batcher.Batcher[model.ScanBatch]
}

func NewService(repo Repository, cfg Config, logger *zap.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("archive repository is required")
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.FlushRPS == 0 {
		cfg.FlushRPS = defaultFlushRPS
	}
	logger = logger.Named("archive")
	bc := batcher.Config{Size: cfg.BatchSize, Interval: cfg.FlushInterval, RPS: cfg.FlushRPS}

	return &Service{
		repo:    repo,
		logger:  logger,
		events:  batcher.New(bc, repo.InsertTxEvents, logger.With(zap.String("stream", "tx_events"))),
		batches: batcher.New(bc, repo.InsertScanBatches, logger.With(zap.String("stream", "scan_batches"))),
	}, nil
}

// Run flushes both streams until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.events.Run(ctx) })
	g.Go(func() error { return s.batches.Run(ctx) })
	return g.Wait()
}

// Record queues a lifecycle transition.
func (s *Service) Record(ctx context.Context, event model.TxEvent) error {
	return s.events.Add(ctx, event)
}

// ArchiveBatch queues a persisted scan batch. Witness-sized fields are
// dropped, the archive keeps only what the analytics read.
func (s *Service) ArchiveBatch(ctx context.Context, batch model.ScanBatch) error {
	batch.TreeState = nil
	return s.batches.Add(ctx, batch)
}

// History returns the archived events of a transaction, oldest first.
func (s *Service) History(ctx context.Context, chain model.ChainID, txID string) ([]model.TxEvent, error) {
	return s.repo.TxEvents(ctx, chain, txID)
}
