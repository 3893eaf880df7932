package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

const insertScanBatchesQuery = `
INSERT INTO wallet_scan_batches (
	account,
	chain,
	from_height,
	to_height,
	notes,
	received_zat,
	spent_nullifiers,
	next_scan_height,
	checkpoint_hash,
	scanned_at
) VALUES`

// InsertScanBatches archives persisted scan batches.
func (r *Repository) InsertScanBatches(ctx context.Context, batches []model.ScanBatch) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_scan_batches", firstChain(batches), err, start)
	}()

	if len(batches) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertScanBatchesQuery)
	if err != nil {
		return fmt.Errorf("prepare scan batches batch: %w", err)
	}

	for _, b := range batches {
		var received uint64
		for _, note := range b.Notes {
			received += note.Value
		}
		if err = batch.Append(
			b.Account,
			string(b.Chain),
			b.FromHeight,
			b.ToHeight,
			uint32(len(b.Notes)),
			received,
			nullifiersHex(b.SpentNullifiers),
			b.NextScanHeight,
			b.Checkpoint.BlockHash,
			b.ScannedAt,
		); err != nil {
			return fmt.Errorf("append scan batch: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert scan batches: %w", err)
	}
	return nil
}

func nullifiersHex(nullifiers [][32]byte) []string {
	out := make([]string, 0, len(nullifiers))
	for _, nf := range nullifiers {
		out = append(out, hex.EncodeToString(nf[:]))
	}
	return out
}
