package completer

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
	}
	CheckpointStore interface {
		CheckpointAtOrBelow(ctx context.Context, account string, chain model.ChainID, height uint64) (model.SyncCheckpoint, []byte, error)
	}
	KeyProvider interface {
		SignDigest(ctx context.Context, account, address string, digest [32]byte) ([]byte, []byte, error)
		OrchardKeys(ctx context.Context, account string) (orchard.Keys, error)
	}
	ShieldedLibrary interface {
		BuildBundle(ctx context.Context, req orchard.BundleRequest) (orchard.Bundle, error)
		ProveAndSign(ctx context.Context, bundle orchard.Bundle, spendingKey []byte, sighash [32]byte) ([]byte, error)
		Witness(ctx context.Context, treeState []byte, position uint64) ([]byte, error)
	}
	Metrics interface {
		ObserveStep(chain model.ChainID, step string, err error, started time.Time)
		ObserveTask(chain model.ChainID, err error, started time.Time)
	}
)
