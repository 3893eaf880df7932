// Package completer finishes transactions before broadcast: it fixes lock
// time and expiry from the chain tip, picks an Orchard anchor, builds and
// authorizes the Orchard bundle and signs the transparent inputs.
package completer

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/orchard"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultExpiryDelta      uint32 = 20
	DefaultMinConfirmations uint64 = 10

	defaultSigningWorkers = 2
)

// ErrTask wraps every completion failure.
var ErrTask = errors.New("transaction completion failed")

// ChainConfig holds the per-chain completion parameters.
type ChainConfig struct {
	ExpiryDelta      uint32
	MinConfirmations uint64
}

// Service runs completion tasks and owns their lifetime.
type Service struct {
	logger  *zap.Logger
	client  ChainClient
	store   CheckpointStore
	keys    KeyProvider
	library ShieldedLibrary
	metrics Metrics
	chains  map[model.ChainID]ChainConfig
	signers *semaphore.Weighted

	mu     sync.Mutex
	nextID uint64
	tasks  map[uint64]*task
}

// NewService builds a Service. Chains missing from chains use the defaults.
func NewService(
	client ChainClient,
	store CheckpointStore,
	keys KeyProvider,
	library ShieldedLibrary,
	metrics Metrics,
	chains map[model.ChainID]ChainConfig,
	logger *zap.Logger,
) (*Service, error) {
	if client == nil {
		return nil, errors.New("chain client is required")
	}
	if store == nil {
		return nil, errors.New("checkpoint store is required")
	}
	if keys == nil {
		return nil, errors.New("key provider is required")
	}
	if library == nil {
		return nil, errors.New("shielded library is required")
	}
	if metrics == nil {
		return nil, errors.New("completer metrics is required")
	}

	return &Service{
		logger:  logger.Named("completer"),
		client:  client,
		store:   store,
		keys:    keys,
		library: library,
		metrics: metrics,
		chains:  chains,
		signers: semaphore.NewWeighted(defaultSigningWorkers),
		tasks:   make(map[uint64]*task),
	}, nil
}

func (s *Service) config(chain model.ChainID) ChainConfig {
	cfg, ok := s.chains[chain]
	if !ok {
		return ChainConfig{ExpiryDelta: DefaultExpiryDelta, MinConfirmations: DefaultMinConfirmations}
	}
	return cfg
}

// Complete runs a single-use task over tx, mutating it in place. On error
// tx may be partially completed and must not be broadcast.
func (s *Service) Complete(ctx context.Context, account string, chain model.ChainID, tx *zcash.Transaction) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveTask(chain, err, started)
	}()

	t := s.register(account, chain, tx)
	defer s.release(t)

	return s.advance(ctx, t)
}

// Pending returns the number of tasks still running.
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Service) register(account string, chain model.ChainID, tx *zcash.Transaction) *task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := &task{id: s.nextID, account: account, chain: chain, tx: tx}
	s.tasks[t.id] = t
	return t
}

func (s *Service) release(t *task) {
	s.mu.Lock()
	delete(s.tasks, t.id)
	s.mu.Unlock()
}

// advance runs the next missing step until the task is done or a step fails.
func (s *Service) advance(ctx context.Context, t *task) error {
	logger := s.logger.With(zap.Uint64("task", t.id), zap.String("chain", string(t.chain)))
	for {
		st := t.next()
		if st == stepDone {
			if !t.tx.ValidateTransaction() {
				return fmt.Errorf("%w: %w", ErrTask, model.ErrInsufficientFunds)
			}
			logger.Debug("transaction completed")
			return nil
		}

		started := time.Now()
		err := s.run(ctx, t, st)
		s.metrics.ObserveStep(t.chain, st.String(), err, started)
		if err != nil {
			logger.Warn("completion step failed", zap.Stringer("step", st), zap.Error(err))
			return fmt.Errorf("%w: %s: %w", ErrTask, st, err)
		}
	}
}

func (s *Service) run(ctx context.Context, t *task, st step) error {
	switch st {
	case stepChainTip:
		return s.chainTip(ctx, t)
	case stepAnchor:
		return s.chooseAnchor(ctx, t)
	case stepWitnesses:
		return s.witnesses(ctx, t)
	case stepTreeState:
		return s.treeState(ctx, t)
	case stepBundle:
		return s.buildBundle(ctx, t)
	case stepTransparentSignatures:
		return zcash.SignTransparentPart(ctx, s.keys, t.account, t.tx)
	default:
		return fmt.Errorf("unexpected step %d", st)
	}
}

func (s *Service) chainTip(ctx context.Context, t *task) error {
	block, err := s.client.GetLatestBlock(ctx, t.chain)
	if err != nil {
		return err
	}
	if block.Height > uint64(^uint32(0)-s.config(t.chain).ExpiryDelta) {
		return fmt.Errorf("tip height %d out of range", block.Height)
	}
	height := block.Height
	t.tip = &height
	t.tx.LockTime = uint32(height)
	t.tx.ExpiryHeight = uint32(height) + s.config(t.chain).ExpiryDelta
	return nil
}

func (s *Service) chooseAnchor(ctx context.Context, t *task) error {
	tip := *t.tip
	if len(t.tx.Orchard.Inputs) == 0 {
		t.anchor = &tip
		t.tx.Orchard.AnchorHeight = tip
		return nil
	}

	minConf := s.config(t.chain).MinConfirmations
	if tip < minConf {
		return fmt.Errorf("tip %d below %d confirmations: %w", tip, minConf, model.ErrWitnessUnavailable)
	}
	cp, treeState, err := s.store.CheckpointAtOrBelow(ctx, t.account, t.chain, tip-minConf)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("no checkpoint at or below %d: %w", tip-minConf, model.ErrWitnessUnavailable)
		}
		return err
	}
	height := cp.Height
	t.anchor = &height
	t.anchorTree = treeState
	t.tx.Orchard.AnchorHeight = height
	return nil
}

func (s *Service) witnesses(ctx context.Context, t *task) error {
	for i := range t.tx.Orchard.Inputs {
		in := &t.tx.Orchard.Inputs[i]
		witness, err := s.library.Witness(ctx, t.anchorTree, in.Note.Position)
		if err != nil {
			return fmt.Errorf("note at position %d: %w: %w", in.Note.Position, model.ErrWitnessUnavailable, err)
		}
		in.Witness = witness
	}
	t.witnessed = true
	return nil
}

func (s *Service) treeState(ctx context.Context, t *task) error {
	ts, err := s.client.GetTreeState(ctx, t.chain, lightwalletd.BlockID{Height: *t.anchor})
	if err != nil {
		return err
	}
	if ts.Height != *t.anchor {
		return fmt.Errorf("tree state height %d, want %d", ts.Height, *t.anchor)
	}
	frontier, err := hex.DecodeString(ts.OrchardTree)
	if err != nil {
		return fmt.Errorf("decode orchard tree: %w", err)
	}
	if frontier == nil {
		frontier = []byte{}
	}
	t.frontier = frontier
	return nil
}

type signResult struct {
	data []byte
	err  error
}

func (s *Service) buildBundle(ctx context.Context, t *task) error {
	keys, err := s.keys.OrchardKeys(ctx, t.account)
	if err != nil {
		return err
	}

	bundle, err := s.library.BuildBundle(ctx, orchard.BundleRequest{
		Keys:         keys,
		Spends:       t.tx.Orchard.Inputs,
		Outputs:      t.tx.Orchard.Outputs,
		AnchorHeight: *t.anchor,
		Frontier:     t.frontier,
	})
	if err != nil {
		return fmt.Errorf("build bundle: %w", err)
	}
	digest := bundle.Digest
	t.tx.Orchard.Digest = &digest
	sighash := zcash.CalculateSignatureDigest(t.tx, nil)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-s.signBundle(ctx, bundle, keys.SpendingKey, sighash):
		if res.err != nil {
			return fmt.Errorf("authorize bundle: %w", res.err)
		}
		t.tx.Orchard.RawBundle = res.data
	}
	t.bundle = &bundle
	return nil
}

// signBundle proves and signs on a background worker.
func (s *Service) signBundle(ctx context.Context, bundle orchard.Bundle, spendingKey []byte, sighash [32]byte) <-chan signResult {
	out := make(chan signResult, 1)
	go func() {
		if err := s.signers.Acquire(ctx, 1); err != nil {
			out <- signResult{err: err}
			return
		}
		defer s.signers.Release(1)

		data, err := s.library.ProveAndSign(ctx, bundle, spendingKey, sighash)
		out <- signResult{data: data, err: err}
	}()
	return out
}
