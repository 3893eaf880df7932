package archive

import (
	"context"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Repository interface {
	InsertScanBatches(ctx context.Context, batches []model.ScanBatch) error
	InsertTxEvents(ctx context.Context, events []model.TxEvent) error
	TxEvents(ctx context.Context, chain model.ChainID, txID string) ([]model.TxEvent, error)
}
