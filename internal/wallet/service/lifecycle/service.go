// Package lifecycle owns wallet transactions from construction to
// confirmation: Unapproved, Approved, Submitted and Confirmed, with Error
// reachable from every non-terminal state.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultPollWorkers = 4

// ChainConfig holds the per-chain build options.
type ChainConfig struct {
	// ShieldedSends enables payments to Orchard receivers.
	ShieldedSends bool
}

// Config configures a Service.
type Config struct {
	Chains      map[model.ChainID]ChainConfig
	PollWorkers int
}

// Service is the transaction lifecycle manager.
type Service struct {
	logger    *zap.Logger
	repo      Repository
	client    ChainClient
	addresses AddressBook
	completer Completer
	parser    AddressParser
	events    EventSink
	metrics   Metrics
	clock     clock.Clock
	cfg       Config

	// approvals single-flights Approve per transaction id.
	approvals singleflight.Group
	// polls single-flights confirmation polling per chain.
	polls singleflight.Group
	// inFlight serializes the single in-flight check with the transition
	// to Approved.
	inFlight sync.Mutex
}

// NewService builds a Service. events may be nil.
func NewService(
	repo Repository,
	client ChainClient,
	addresses AddressBook,
	completer Completer,
	parser AddressParser,
	events EventSink,
	metrics Metrics,
	clk clock.Clock,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("lifecycle repository is required")
	}
	if client == nil {
		return nil, errors.New("chain client is required")
	}
	if addresses == nil {
		return nil, errors.New("address book is required")
	}
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if parser == nil {
		return nil, errors.New("address parser is required")
	}
	if metrics == nil {
		return nil, errors.New("lifecycle metrics is required")
	}
	if clk == nil {
		clk = clock.NewDefaultClock()
	}
	if cfg.PollWorkers <= 0 {
		cfg.PollWorkers = defaultPollWorkers
	}

	return &Service{
		logger:    logger.Named("lifecycle"),
		repo:      repo,
		client:    client,
		addresses: addresses,
		completer: completer,
		parser:    parser,
		events:    events,
		metrics:   metrics,
		clock:     clk,
		cfg:       cfg,
	}, nil
}

// Get returns the transaction with id.
func (s *Service) Get(ctx context.Context, id string) (model.TxMeta, error) {
	return s.repo.GetTxMeta(ctx, id)
}

// List returns the transactions of an account on a chain.
func (s *Service) List(ctx context.Context, account string, chain model.ChainID) ([]model.TxMeta, error) {
	return s.repo.ListTxMetas(ctx, account, chain)
}

// SpeedupOrRetry always fails: the fee model has no replacement mechanism.
func (s *Service) SpeedupOrRetry(_ context.Context, id string) error {
	return fmt.Errorf("speedup or retry %s: %w", id, model.ErrNotSupported)
}

// Reject drops an Unapproved transaction.
func (s *Service) Reject(ctx context.Context, id string) error {
	meta, err := s.repo.GetTxMeta(ctx, id)
	if err != nil {
		return err
	}
	if meta.Status != model.TxUnapproved {
		return fmt.Errorf("reject %s in status %s: %w", id, meta.Status, model.ErrInvalidState)
	}
	meta.Status = model.TxRejected
	return s.transition(ctx, meta, model.TxUnapproved)
}

// transition persists meta if it is still in status from and records the
// event.
func (s *Service) transition(ctx context.Context, meta model.TxMeta, from model.TxStatus) error {
	if err := s.repo.UpdateTxMeta(ctx, meta, from); err != nil {
		return fmt.Errorf("move %s from %s to %s: %w", meta.ID, from, meta.Status, err)
	}
	s.record(ctx, meta)
	return nil
}

func (s *Service) record(ctx context.Context, meta model.TxMeta) {
	s.metrics.ObserveTransition(meta.Chain, meta.Status)
	s.logger.Info("transaction transition",
		zap.String("id", meta.ID),
		zap.String("chain", string(meta.Chain)),
		zap.String("status", string(meta.Status)),
		zap.String("tx_hash", meta.TxHash),
	)
	if s.events == nil {
		return
	}

	err := s.events.Record(ctx, model.TxEvent{
		TxID:      meta.ID,
		Account:   meta.Account,
		Chain:     meta.Chain,
		Status:    meta.Status,
		TxHash:    meta.TxHash,
		Message:   meta.ErrorMessage,
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		s.logger.Warn("record tx event failed", zap.String("id", meta.ID), zap.Error(err))
	}
}
