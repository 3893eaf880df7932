// Package clickhouse archives scan batches and transaction lifecycle events.
package clickhouse

import (
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

func firstChain[T any](items []T) model.ChainID {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.ScanBatch:
		return v.Chain
	case model.TxEvent:
		return v.Chain
	default:
		return ""
	}
}
