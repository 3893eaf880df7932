package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

const txMetaColumns = `id, account, origin, chain, created_at, submitted_at, confirmed_at, tx_hash, status, error_message, tx`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTxMeta(row rowScanner) (model.TxMeta, error) {
	var (
		meta                                model.TxMeta
		chain, status, txJSON               string
		createdAt, submittedAt, confirmedAt int64
	)
	if err := row.Scan(
		&meta.ID,
		&meta.Account,
		&meta.Origin,
		&chain,
		&createdAt,
		&submittedAt,
		&confirmedAt,
		&meta.TxHash,
		&status,
		&meta.ErrorMessage,
		&txJSON,
	); err != nil {
		return model.TxMeta{}, err
	}
	meta.Chain = model.ChainID(chain)
	meta.Status = model.TxStatus(status)
	meta.CreatedAt = fromUnixNano(createdAt)
	meta.SubmittedAt = fromUnixNano(submittedAt)
	meta.ConfirmedAt = fromUnixNano(confirmedAt)

	meta.Tx = &zcash.Transaction{}
	if err := json.Unmarshal([]byte(txJSON), meta.Tx); err != nil {
		return model.TxMeta{}, fmt.Errorf("decode transaction %s: %w", meta.ID, err)
	}
	return meta, nil
}

func encodeTx(tx *zcash.Transaction) (string, error) {
	if tx == nil {
		return "", errors.New("transaction is required")
	}
	b, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("encode transaction: %w", err)
	}
	return string(b), nil
}

// InsertTxMeta stores a new transaction record.
func (r *Repository) InsertTxMeta(ctx context.Context, meta model.TxMeta) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_tx_meta", meta.Chain, err, start)
	}()

	txJSON, err := encodeTx(meta.Tx)
	if err != nil {
		return err
	}

	const query = `INSERT INTO tx_meta (` + txMetaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err = r.db.ExecContext(ctx, query,
		meta.ID,
		meta.Account,
		meta.Origin,
		string(meta.Chain),
		unixNano(meta.CreatedAt),
		unixNano(meta.SubmittedAt),
		unixNano(meta.ConfirmedAt),
		meta.TxHash,
		string(meta.Status),
		meta.ErrorMessage,
		txJSON,
	); err != nil {
		return fmt.Errorf("insert tx meta %s: %w", meta.ID, err)
	}
	return nil
}

// UpdateTxMeta overwrites the record if it is still in status from.
func (r *Repository) UpdateTxMeta(ctx context.Context, meta model.TxMeta, from model.TxStatus) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_tx_meta", meta.Chain, err, start)
	}()

	txJSON, err := encodeTx(meta.Tx)
	if err != nil {
		return err
	}

	const query = `
UPDATE tx_meta SET
	submitted_at = ?,
	confirmed_at = ?,
	tx_hash = ?,
	status = ?,
	error_message = ?,
	tx = ?
WHERE id = ? AND status = ?`

	res, err := r.db.ExecContext(ctx, query,
		unixNano(meta.SubmittedAt),
		unixNano(meta.ConfirmedAt),
		meta.TxHash,
		string(meta.Status),
		meta.ErrorMessage,
		txJSON,
		meta.ID,
		string(from),
	)
	if err != nil {
		return fmt.Errorf("update tx meta %s: %w", meta.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tx meta %s: %w", meta.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("tx meta %s is not %s: %w", meta.ID, from, model.ErrInvalidState)
	}
	return nil
}

// GetTxMeta returns the record with id.
func (r *Repository) GetTxMeta(ctx context.Context, id string) (meta model.TxMeta, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_tx_meta", meta.Chain, err, start)
	}()

	const query = `SELECT ` + txMetaColumns + ` FROM tx_meta WHERE id = ?`
	meta, err = scanTxMeta(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TxMeta{}, fmt.Errorf("tx meta %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return model.TxMeta{}, fmt.Errorf("get tx meta %s: %w", id, err)
	}
	return meta, nil
}

// ListTxMetas returns the records of an account on chain, newest first.
func (r *Repository) ListTxMetas(ctx context.Context, account string, chain model.ChainID) (metas []model.TxMeta, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_tx_metas", chain, err, start)
	}()

	const query = `SELECT ` + txMetaColumns + ` FROM tx_meta WHERE account = ? AND chain = ? ORDER BY created_at DESC, id`
	return r.queryTxMetas(ctx, query, account, string(chain))
}

// TxMetasByStatus returns every record on chain in status.
func (r *Repository) TxMetasByStatus(ctx context.Context, chain model.ChainID, status model.TxStatus) (metas []model.TxMeta, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tx_metas_by_status", chain, err, start)
	}()

	const query = `SELECT ` + txMetaColumns + ` FROM tx_meta WHERE chain = ? AND status = ? ORDER BY created_at, id`
	return r.queryTxMetas(ctx, query, string(chain), string(status))
}

func (r *Repository) queryTxMetas(ctx context.Context, query string, args ...any) (metas []model.TxMeta, err error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tx metas: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		meta, scanErr := scanTxMeta(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan tx meta: %w", scanErr)
		}
		metas = append(metas, meta)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tx metas: %w", err)
	}
	return metas, nil
}

// CountTxMetas counts the records of an account on chain in any of statuses.
func (r *Repository) CountTxMetas(ctx context.Context, account string, chain model.ChainID, statuses ...model.TxStatus) (count int, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("count_tx_metas", chain, err, start)
	}()

	if len(statuses) == 0 {
		return 0, nil
	}
	query := `SELECT count(*) FROM tx_meta WHERE account = ? AND chain = ? AND status IN (?` + strings.Repeat(", ?", len(statuses)-1) + `)`
	args := []any{account, string(chain)}
	for _, s := range statuses {
		args = append(args, string(s))
	}
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tx metas: %w", err)
	}
	return count, nil
}
