package tiptracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		GetLatestBlock(ctx context.Context, chain model.ChainID) (lightwalletd.BlockID, error)
	}
	Metrics interface {
		ObservePoll(chain model.ChainID, err error, started time.Time)
		ObserveTip(chain model.ChainID, height uint64)
	}
)

// Observer is notified with the new tip height of a chain.
type Observer func(ctx context.Context, chain model.ChainID, height uint64)
