package lifecycle

import (
	"context"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertTxMeta(ctx context.Context, meta model.TxMeta) error
		UpdateTxMeta(ctx context.Context, meta model.TxMeta, from model.TxStatus) error
		GetTxMeta(ctx context.Context, id string) (model.TxMeta, error)
		ListTxMetas(ctx context.Context, account string, chain model.ChainID) ([]model.TxMeta, error)
		TxMetasByStatus(ctx context.Context, chain model.ChainID, status model.TxStatus) ([]model.TxMeta, error)
		CountTxMetas(ctx context.Context, account string, chain model.ChainID, statuses ...model.TxStatus) (int, error)
		SpendableNotes(ctx context.Context, account string, chain model.ChainID) ([]model.Note, error)
	}
	ChainClient interface {
		GetUtxoList(ctx context.Context, chain model.ChainID, addresses []string) ([]lightwalletd.AddressUtxo, error)
		GetTransaction(ctx context.Context, chain model.ChainID, txHash []byte) (lightwalletd.RawTransaction, error)
		SendTransaction(ctx context.Context, chain model.ChainID, raw []byte) (lightwalletd.SendResponse, error)
	}
	AddressBook interface {
		Addresses(ctx context.Context, account string, chain model.ChainID) ([]string, error)
	}
	Completer interface {
		Complete(ctx context.Context, account string, chain model.ChainID, tx *zcash.Transaction) error
	}
	AddressParser interface {
		ParseAddress(address string, params *zcash.Params) ([zcash.OrchardAddressSize]byte, bool)
	}
	EventSink interface {
		Record(ctx context.Context, event model.TxEvent) error
	}
	Metrics interface {
		ObserveTransition(chain model.ChainID, to model.TxStatus)
		ObserveApprove(chain model.ChainID, err error, started time.Time)
		ObservePoll(chain model.ChainID, err error, checked int, started time.Time)
	}
)
