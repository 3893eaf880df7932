package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

const txEventsQuery = `
SELECT tx_id, account, chain, status, tx_hash, message, timestamp
FROM wallet_tx_events
WHERE chain = ? AND tx_id = ?
ORDER BY timestamp`

// TxEvents returns the archived transitions of a transaction, oldest first.
func (r *Repository) TxEvents(ctx context.Context, chain model.ChainID, txID string) (events []model.TxEvent, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tx_events", chain, err, start)
	}()

	rows, err := r.conn.Query(ctx, txEventsQuery, string(chain), txID)
	if err != nil {
		return nil, fmt.Errorf("query tx events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			e              model.TxEvent
			chainID, state string
		)
		if err = rows.Scan(&e.TxID, &e.Account, &chainID, &state, &e.TxHash, &e.Message, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan tx event: %w", err)
		}
		e.Chain = model.ChainID(chainID)
		e.Status = model.TxStatus(state)
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tx events: %w", err)
	}
	return events, nil
}
