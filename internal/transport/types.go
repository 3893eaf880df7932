package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Transactions interface {
		AddUnapproved(ctx context.Context, chain model.ChainID, req model.TxRequest, origin string) (string, error)
		Approve(ctx context.Context, id string) (model.SubmissionResult, error)
		Reject(ctx context.Context, id string) error
		SpeedupOrRetry(ctx context.Context, id string) error
		Get(ctx context.Context, id string) (model.TxMeta, error)
		List(ctx context.Context, account string, chain model.ChainID) ([]model.TxMeta, error)
	}

	Sync interface {
		Pause(account string, chain model.ChainID) error
		Resume(account string, chain model.ChainID) error
		Status(account string, chain model.ChainID) (model.SyncStatus, error)
		Statuses() []model.SyncStatus
	}

	History interface {
		History(ctx context.Context, chain model.ChainID, txID string) ([]model.TxEvent, error)
	}

	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
