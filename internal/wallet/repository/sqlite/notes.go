package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

// SpendableNotes returns the unspent notes of the account ordered by height.
func (r *Repository) SpendableNotes(ctx context.Context, account string, chain model.ChainID) (notes []model.Note, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("spendable_notes", chain, err, start)
	}()

	const query = `
SELECT nullifier, address, value, position, data, block_height, tx_hash
FROM notes
WHERE account = ? AND chain = ? AND spent_height = 0
ORDER BY block_height, position`

	rows, err := r.db.QueryContext(ctx, query, account, string(chain))
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		note := model.Note{Account: account, Chain: chain}
		var nullifier, address []byte
		if err = rows.Scan(&nullifier, &address, &note.Value, &note.Position, &note.Data, &note.BlockHeight, &note.TxHash); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		copy(note.Nullifier[:], nullifier)
		copy(note.Address[:], address)
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// ApplyScanBatch persists the notes, spent nullifiers, checkpoint and scan
// position of a batch. Either all of it is stored or none.
func (r *Repository) ApplyScanBatch(ctx context.Context, batch model.ScanBatch) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("apply_scan_batch", batch.Chain, err, start)
	}()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin scan batch: %w", err)
	}
	defer rollback(tx, &err)

	const insertNote = `
INSERT OR IGNORE INTO notes (account, chain, nullifier, address, value, position, data, block_height, tx_hash)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, note := range batch.Notes {
		if _, err = tx.ExecContext(ctx, insertNote,
			batch.Account,
			string(batch.Chain),
			note.Nullifier[:],
			note.Address[:],
			note.Value,
			note.Position,
			note.Data,
			note.BlockHeight,
			note.TxHash,
		); err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
	}

	const spendNote = `UPDATE notes SET spent_height = ? WHERE account = ? AND chain = ? AND nullifier = ? AND spent_height = 0`
	for _, nf := range batch.SpentNullifiers {
		if _, err = tx.ExecContext(ctx, spendNote, batch.ToHeight, batch.Account, string(batch.Chain), nf[:]); err != nil {
			return fmt.Errorf("spend note: %w", err)
		}
	}

	const upsertCheckpoint = `INSERT OR REPLACE INTO checkpoints (account, chain, height, block_hash, tree_state) VALUES (?, ?, ?, ?, ?)`
	treeState := batch.TreeState
	if treeState == nil {
		treeState = []byte{}
	}
	if _, err = tx.ExecContext(ctx, upsertCheckpoint,
		batch.Account,
		string(batch.Chain),
		batch.Checkpoint.Height,
		batch.Checkpoint.BlockHash,
		treeState,
	); err != nil {
		return fmt.Errorf("store checkpoint: %w", err)
	}

	const advance = `UPDATE account_meta SET next_scan_height = ?, latest_known_height = max(latest_known_height, ?) WHERE account = ? AND chain = ?`
	res, err := tx.ExecContext(ctx, advance, batch.NextScanHeight, batch.ToHeight, batch.Account, string(batch.Chain))
	if err != nil {
		return fmt.Errorf("advance scan height: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("advance scan height: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account meta %s/%s: %w", batch.Account, batch.Chain, model.ErrNotFound)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit scan batch: %w", err)
	}
	return nil
}
