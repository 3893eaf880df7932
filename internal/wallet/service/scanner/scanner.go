// Package scanner tracks the Orchard notes of one account on one chain. It
// downloads compact blocks in batches, trial-decrypts them through the
// shielded pool library and persists each batch atomically.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/clock"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"go.uber.org/zap"
)

const (
	DefaultBatchSize     uint64 = 10
	DefaultSyncThreshold uint64 = 100
	DefaultReorgMargin   uint64 = 150

	defaultRetryDelay    = 30 * time.Second
	defaultMaxRetryDelay = 10 * time.Minute
)

// Config holds the scan parameters of one account on one chain.
type Config struct {
	// Birthday is the first height that can hold notes of the account.
	Birthday uint64
	// BatchSize is the number of blocks scanned and persisted together.
	BatchSize uint64
	// SyncThreshold bounds how far one pass runs ahead of the persisted
	// state before the tip and the checkpoint are checked again.
	SyncThreshold uint64
	// ReorgMargin is how far below a stale checkpoint the scan restarts.
	ReorgMargin uint64
	// RetryDelay is the wait after a failed sync. It doubles on every
	// consecutive failure up to MaxRetryDelay.
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration
}

func (c *Config) setDefaults() {
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.SyncThreshold == 0 {
		c.SyncThreshold = DefaultSyncThreshold
	}
	if c.ReorgMargin == 0 {
		c.ReorgMargin = DefaultReorgMargin
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = defaultRetryDelay
	}
	if c.MaxRetryDelay == 0 {
		c.MaxRetryDelay = defaultMaxRetryDelay
	}
}

// Scanner syncs the notes of an account on a chain. Only one sync runs at a
// time.
type Scanner struct {
	logger  *zap.Logger
	account string
	chain   model.ChainID
	cfg     Config
	client  ChainClient
	repo    Repository
	keys    KeyProvider
	library BlockScanner
	archive BatchArchive
	metrics Metrics
	sleep   func(context.Context, time.Duration) error
	retry   backoff.BackOff
	trigger chan struct{}

	syncing sync.Mutex

	mu        sync.Mutex
	paused    bool
	status    model.SyncStatus
	observers []StatusObserver
}

// New builds a Scanner. archive may be nil.
func New(
	account string,
	chain model.ChainID,
	cfg Config,
	client ChainClient,
	repo Repository,
	keys KeyProvider,
	library BlockScanner,
	archive BatchArchive,
	metrics Metrics,
	logger *zap.Logger,
) (*Scanner, error) {
	if account == "" {
		return nil, errors.New("account is required")
	}
	if cfg.Birthday == 0 {
		return nil, errors.New("birthday height is required")
	}
	if client == nil {
		return nil, errors.New("chain client is required")
	}
	if repo == nil {
		return nil, errors.New("scanner repository is required")
	}
	if keys == nil {
		return nil, errors.New("key provider is required")
	}
	if library == nil {
		return nil, errors.New("block scanner is required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	cfg.setDefaults()

	return &Scanner{
		logger: logger.Named("scanner").With(
			zap.String("account", account),
			zap.String("chain", string(chain)),
		),
		account: account,
		chain:   chain,
		cfg:     cfg,
		client:  client,
		repo:    repo,
		keys:    keys,
		library: library,
		archive: archive,
		metrics: metrics,
		sleep:   clock.Sleep,
		retry:   newRetryBackOff(cfg),
		trigger: make(chan struct{}, 1),
		status:  model.SyncStatus{Account: account, Chain: chain, State: model.SyncIdle},
	}, nil
}

func (s *Scanner) Account() string {
	return s.account
}

func (s *Scanner) Chain() model.ChainID {
	return s.chain
}

// Subscribe registers o for status updates.
func (s *Scanner) Subscribe(o StatusObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Status returns the last reported sync status.
func (s *Scanner) Status() model.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Trigger requests a sync. Requests made while one is pending coalesce.
func (s *Scanner) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// OnTip triggers a sync when chain has a new tip.
func (s *Scanner) OnTip(_ context.Context, chain model.ChainID, _ uint64) {
	if chain == s.chain {
		s.Trigger()
	}
}

// Pause stops the running sync after its current batch.
func (s *Scanner) Pause() {
	s.update(func(st *model.SyncStatus) bool {
		s.paused = true
		if st.State == model.SyncPaused {
			return false
		}
		st.State = model.SyncPaused
		return true
	})
}

// Resume lifts a pause and triggers a sync from the last checkpoint.
func (s *Scanner) Resume() {
	s.update(func(st *model.SyncStatus) bool {
		s.paused = false
		if st.State != model.SyncPaused {
			return false
		}
		st.State = model.SyncIdle
		return true
	})
	s.Trigger()
}

func (s *Scanner) isPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// update applies fn to the status and notifies observers when fn reports a
// change.
func (s *Scanner) update(fn func(st *model.SyncStatus) bool) {
	s.mu.Lock()
	changed := fn(&s.status)
	status := s.status
	observers := append([]StatusObserver(nil), s.observers...)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, o := range observers {
		o(status)
	}
}

func (s *Scanner) setState(state model.SyncState) {
	s.update(func(st *model.SyncStatus) bool {
		if st.State == state {
			return false
		}
		st.State = state
		return true
	})
}

// Run syncs once and then on every trigger until ctx is done. A failed sync
// is retried with backoff.
func (s *Scanner) Run(ctx context.Context) error {
	s.retry.Reset()
	s.Trigger()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.trigger:
		}

		err := s.Sync(ctx)
		if err == nil {
			s.retry.Reset()
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		delay := s.retry.NextBackOff()
		s.logger.Warn("sync failed, retrying", zap.Error(err), zap.Duration("sleep", delay))
		if err := s.sleep(ctx, delay); err != nil {
			return err
		}
		s.Trigger()
	}
}

// newRetryBackOff doubles the delay from RetryDelay up to MaxRetryDelay and
// never gives up.
func newRetryBackOff(cfg Config) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.RetryDelay
	b.MaxInterval = cfg.MaxRetryDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Sync scans from the persisted position to the chain tip. It returns
// immediately when another sync is running or the scanner is paused.
func (s *Scanner) Sync(ctx context.Context) (err error) {
	if !s.syncing.TryLock() {
		return nil
	}
	defer s.syncing.Unlock()

	if s.isPaused() {
		return nil
	}
	s.setState(model.SyncRunning)
	defer func() {
		switch {
		case err != nil:
			s.setState(model.SyncFailed)
		case s.isPaused():
			s.setState(model.SyncPaused)
		default:
			s.setState(model.SyncIdle)
		}
	}()

	keys, err := s.keys.OrchardKeys(ctx, s.account)
	if err != nil {
		return fmt.Errorf("orchard keys: %w", err)
	}

	for {
		done, err := s.pass(ctx, keys.FullViewingKey)
		if err != nil {
			return err
		}
		if done || s.isPaused() {
			return nil
		}
	}
}
