package scanner

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"golang.org/x/sync/errgroup"
)

type key struct {
	account string
	chain   model.ChainID
}

// Manager runs one Scanner per (account, chain).
type Manager struct {
	scanners map[key]*Scanner
	order    []*Scanner
}

// NewManager groups scanners. Duplicate (account, chain) pairs are rejected.
func NewManager(scanners ...*Scanner) (*Manager, error) {
	m := &Manager{scanners: make(map[key]*Scanner, len(scanners))}
	for _, s := range scanners {
		k := key{account: s.account, chain: s.chain}
		if _, ok := m.scanners[k]; ok {
			return nil, fmt.Errorf("duplicate scanner for %s on %s", s.account, s.chain)
		}
		m.scanners[k] = s
		m.order = append(m.order, s)
	}
	return m, nil
}

// Run runs every scanner until ctx is done or one of them fails.
func (m *Manager) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range m.order {
		g.Go(func() error {
			return s.Run(ctx)
		})
	}
	return g.Wait()
}

// OnTip fans a new tip out to the scanners of chain.
func (m *Manager) OnTip(ctx context.Context, chain model.ChainID, height uint64) {
	for _, s := range m.order {
		s.OnTip(ctx, chain, height)
	}
}

// Scanner returns the scanner of account on chain.
func (m *Manager) Scanner(account string, chain model.ChainID) (*Scanner, error) {
	s, ok := m.scanners[key{account: account, chain: chain}]
	if !ok {
		return nil, fmt.Errorf("scanner for %s on %s: %w", account, chain, model.ErrNotFound)
	}
	return s, nil
}

// Statuses returns the status of every scanner.
func (m *Manager) Statuses() []model.SyncStatus {
	out := make([]model.SyncStatus, 0, len(m.order))
	for _, s := range m.order {
		out = append(out, s.Status())
	}
	return out
}

// Pause pauses the scanner of account on chain.
func (m *Manager) Pause(account string, chain model.ChainID) error {
	s, err := m.Scanner(account, chain)
	if err != nil {
		return err
	}
	s.Pause()
	return nil
}

// Resume resumes the scanner of account on chain and triggers a sync.
func (m *Manager) Resume(account string, chain model.ChainID) error {
	s, err := m.Scanner(account, chain)
	if err != nil {
		return err
	}
	s.Resume()
	return nil
}

// Status returns the sync status of account on chain.
func (m *Manager) Status(account string, chain model.ChainID) (model.SyncStatus, error) {
	s, err := m.Scanner(account, chain)
	if err != nil {
		return model.SyncStatus{}, err
	}
	return s.Status(), nil
}
