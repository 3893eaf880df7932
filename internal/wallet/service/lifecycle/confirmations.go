package lifecycle

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// OnTip polls confirmations of every Submitted transaction on chain. It is
// registered as a tip tracker observer.
func (s *Service) OnTip(ctx context.Context, chain model.ChainID, height uint64) {
	_, _, _ = s.polls.Do(string(chain), func() (any, error) {
		return nil, s.PollConfirmations(ctx, chain, height)
	})
}

// PollConfirmations checks each Submitted transaction once. Lookup errors
// are logged and retried on the next tip; they never fail a transaction.
func (s *Service) PollConfirmations(ctx context.Context, chain model.ChainID, tip uint64) (err error) {
	started := time.Now()
	var metas []model.TxMeta
	defer func() {
		s.metrics.ObservePoll(chain, err, len(metas), started)
	}()

	metas, err = s.repo.TxMetasByStatus(ctx, chain, model.TxSubmitted)
	if err != nil {
		s.logger.Warn("list submitted transactions failed", zap.String("chain", string(chain)), zap.Error(err))
		return err
	}
	if len(metas) == 0 {
		return nil
	}

	return workerpool.Each(ctx, s.cfg.PollWorkers, metas, func(ctx context.Context, meta model.TxMeta) error {
		s.checkConfirmation(ctx, meta, tip)
		return nil
	})
}

func (s *Service) checkConfirmation(ctx context.Context, meta model.TxMeta, tip uint64) {
	logger := s.logger.With(zap.String("id", meta.ID), zap.String("tx_hash", meta.TxHash))

	hash, err := chainhash.NewHashFromStr(meta.TxHash)
	if err != nil {
		logger.Warn("submitted transaction has malformed hash", zap.Error(err))
		return
	}
	raw, err := s.client.GetTransaction(ctx, meta.Chain, hash[:])
	if err != nil {
		logger.Debug("confirmation lookup failed", zap.Error(err))
		return
	}

	switch {
	case raw.Height != 0 && raw.Height != lightwalletd.MempoolHeight:
		meta.Status = model.TxConfirmed
		meta.ConfirmedAt = s.clock.Now()
		if err := s.transition(ctx, meta, model.TxSubmitted); err != nil {
			logger.Warn("mark confirmed failed", zap.Error(err))
		}
	case meta.Tx != nil && meta.Tx.ExpiryHeight != 0 && tip > uint64(meta.Tx.ExpiryHeight):
		meta.Status = model.TxError
		meta.ErrorMessage = "transaction expired unmined"
		if err := s.transition(ctx, meta, model.TxSubmitted); err != nil {
			logger.Warn("mark expired failed", zap.Error(err))
		}
	}
}
