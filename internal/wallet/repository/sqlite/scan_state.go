package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

// EnsureAccountMeta returns the scan position of the account, creating it at
// birthday when missing.
func (r *Repository) EnsureAccountMeta(ctx context.Context, account string, chain model.ChainID, birthday uint64) (meta model.AccountMeta, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("ensure_account_meta", chain, err, start)
	}()

	const insert = `INSERT OR IGNORE INTO account_meta (account, chain, next_scan_height, latest_known_height) VALUES (?, ?, ?, 0)`
	if _, err = r.db.ExecContext(ctx, insert, account, string(chain), birthday); err != nil {
		return model.AccountMeta{}, fmt.Errorf("init account meta: %w", err)
	}

	const query = `SELECT next_scan_height, latest_known_height FROM account_meta WHERE account = ? AND chain = ?`
	meta = model.AccountMeta{Account: account, Chain: chain}
	if err = r.db.QueryRowContext(ctx, query, account, string(chain)).Scan(&meta.NextScanHeight, &meta.LatestKnownHeight); err != nil {
		return model.AccountMeta{}, fmt.Errorf("get account meta: %w", err)
	}
	return meta, nil
}

// SetLatestKnownHeight records the chain tip seen by the scanner.
func (r *Repository) SetLatestKnownHeight(ctx context.Context, account string, chain model.ChainID, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("set_latest_known_height", chain, err, start)
	}()

	const query = `UPDATE account_meta SET latest_known_height = ? WHERE account = ? AND chain = ?`
	if _, err = r.db.ExecContext(ctx, query, height, account, string(chain)); err != nil {
		return fmt.Errorf("set latest known height: %w", err)
	}
	return nil
}

// LatestCheckpoint returns the highest checkpoint of the account.
func (r *Repository) LatestCheckpoint(ctx context.Context, account string, chain model.ChainID) (model.SyncCheckpoint, []byte, error) {
	return r.checkpoint(ctx, "latest_checkpoint", account, chain, ^uint64(0)>>1)
}

// CheckpointAtOrBelow returns the highest checkpoint not above height and
// its commitment tree state.
func (r *Repository) CheckpointAtOrBelow(ctx context.Context, account string, chain model.ChainID, height uint64) (model.SyncCheckpoint, []byte, error) {
	return r.checkpoint(ctx, "checkpoint_at_or_below", account, chain, height)
}

func (r *Repository) checkpoint(ctx context.Context, op, account string, chain model.ChainID, height uint64) (cp model.SyncCheckpoint, treeState []byte, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(op, chain, err, start)
	}()

	const query = `
SELECT height, block_hash, tree_state
FROM checkpoints
WHERE account = ? AND chain = ? AND height <= ?
ORDER BY height DESC
LIMIT 1`

	cp = model.SyncCheckpoint{Account: account, Chain: chain}
	err = r.db.QueryRowContext(ctx, query, account, string(chain), height).Scan(&cp.Height, &cp.BlockHash, &treeState)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SyncCheckpoint{}, nil, fmt.Errorf("checkpoint at or below %d: %w", height, model.ErrNotFound)
	}
	if err != nil {
		return model.SyncCheckpoint{}, nil, fmt.Errorf("get checkpoint: %w", err)
	}
	return cp, treeState, nil
}

// Rollback drops every checkpoint and note above height, unspends notes
// spent above it and moves the scan position to height+1. It runs in one
// transaction.
func (r *Repository) Rollback(ctx context.Context, account string, chain model.ChainID, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("rollback", chain, err, start)
	}()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rollback: %w", err)
	}
	defer rollback(tx, &err)

	statements := []struct {
		name  string
		query string
		args  []any
	}{
		{"delete checkpoints", `DELETE FROM checkpoints WHERE account = ? AND chain = ? AND height > ?`, []any{account, string(chain), height}},
		{"delete notes", `DELETE FROM notes WHERE account = ? AND chain = ? AND block_height > ?`, []any{account, string(chain), height}},
		{"unspend notes", `UPDATE notes SET spent_height = 0 WHERE account = ? AND chain = ? AND spent_height > ?`, []any{account, string(chain), height}},
		{"reset scan height", `UPDATE account_meta SET next_scan_height = ? WHERE account = ? AND chain = ?`, []any{height + 1, account, string(chain)}},
	}
	for _, st := range statements {
		if _, err = tx.ExecContext(ctx, st.query, st.args...); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit rollback: %w", err)
	}
	return nil
}
