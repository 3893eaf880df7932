package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/orchard"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		GetLatestBlock(ctx context.Context, chain model.ChainID) (lightwalletd.BlockID, error)
		GetTreeState(ctx context.Context, chain model.ChainID, block lightwalletd.BlockID) (lightwalletd.TreeState, error)
		GetCompactBlocks(ctx context.Context, chain model.ChainID, r lightwalletd.BlockRange) ([]lightwalletd.CompactBlock, error)
	}
	Repository interface {
		EnsureAccountMeta(ctx context.Context, account string, chain model.ChainID, birthday uint64) (model.AccountMeta, error)
		SetLatestKnownHeight(ctx context.Context, account string, chain model.ChainID, height uint64) error
		LatestCheckpoint(ctx context.Context, account string, chain model.ChainID) (model.SyncCheckpoint, []byte, error)
		CheckpointAtOrBelow(ctx context.Context, account string, chain model.ChainID, height uint64) (model.SyncCheckpoint, []byte, error)
		Rollback(ctx context.Context, account string, chain model.ChainID, height uint64) error
		SpendableNotes(ctx context.Context, account string, chain model.ChainID) ([]model.Note, error)
		ApplyScanBatch(ctx context.Context, batch model.ScanBatch) error
	}
	KeyProvider interface {
		OrchardKeys(ctx context.Context, account string) (orchard.Keys, error)
	}
	BlockScanner interface {
		ScanBlocks(ctx context.Context, req orchard.ScanRequest) (orchard.ScanResult, error)
	}
	BatchArchive interface {
		ArchiveBatch(ctx context.Context, batch model.ScanBatch) error
	}
	Metrics interface {
		ObserveBatch(chain model.ChainID, err error, blocks int, started time.Time)
		ObserveReorg(chain model.ChainID)
		ObserveHeight(chain model.ChainID, account string, height uint64)
	}
)

// StatusObserver receives the sync status after every batch and on pause
// or resume.
type StatusObserver func(status model.SyncStatus)
