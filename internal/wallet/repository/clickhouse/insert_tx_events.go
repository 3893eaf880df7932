package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

const insertTxEventsQuery = `
INSERT INTO wallet_tx_events (
	tx_id,
	account,
	chain,
	status,
	tx_hash,
	message,
	timestamp
) VALUES`

// InsertTxEvents archives transaction lifecycle transitions.
func (r *Repository) InsertTxEvents(ctx context.Context, events []model.TxEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_tx_events", firstChain(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTxEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare tx events batch: %w", err)
	}

	for _, e := range events {
		if err = batch.Append(
			e.TxID,
			e.Account,
			string(e.Chain),
			string(e.Status),
			e.TxHash,
			e.Message,
			e.Timestamp,
		); err != nil {
			return fmt.Errorf("append tx event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert tx events: %w", err)
	}
	return nil
}
