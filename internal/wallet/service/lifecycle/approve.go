package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
	"go.uber.org/zap"
)

const (
	// approveTimeout bounds a shared approval run.
	approveTimeout = 2 * time.Minute
	// persistTimeout bounds the final status write of an approval.
	persistTimeout = 10 * time.Second
)

// Approve moves an Unapproved transaction to Approved, completes and
// broadcasts it. Concurrent calls for one id share a single run, which is
// detached from the cancellation of any one caller.
//
// Domain failures move the transaction to Error and are reported in the
// result as well as the returned error. A transaction of the same account
// already Approved or Submitted on the chain fails the approval with
// model.ErrTransactionInFlight.
func (s *Service) Approve(ctx context.Context, id string) (model.SubmissionResult, error) {
	v, err, _ := s.approvals.Do(id, func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), approveTimeout)
		defer cancel()
		return s.approve(runCtx, id)
	})
	res, _ := v.(model.SubmissionResult)
	return res, err
}

func (s *Service) approve(ctx context.Context, id string) (res model.SubmissionResult, err error) {
	meta, err := s.repo.GetTxMeta(ctx, id)
	if err != nil {
		return model.SubmissionResult{ErrorMessage: err.Error()}, err
	}
	started := time.Now()
	defer func() {
		s.metrics.ObserveApprove(meta.Chain, err, started)
	}()

	if meta.Status != model.TxUnapproved {
		err = fmt.Errorf("approve %s in status %s: %w", id, meta.Status, model.ErrInvalidState)
		return model.SubmissionResult{ErrorMessage: err.Error()}, err
	}

	if err := s.markApproved(ctx, &meta); err != nil {
		return s.fail(ctx, meta, model.TxUnapproved, err)
	}

	if err := s.completer.Complete(ctx, meta.Account, meta.Chain, meta.Tx); err != nil {
		return s.fail(ctx, meta, model.TxApproved, err)
	}
	raw, err := zcash.SerializeRawTransaction(meta.Tx)
	if err != nil {
		return s.fail(ctx, meta, model.TxApproved, err)
	}

	resp, err := s.client.SendTransaction(ctx, meta.Chain, raw)
	if err != nil {
		return s.fail(ctx, meta, model.TxApproved, fmt.Errorf("broadcast: %w", err))
	}
	if resp.ErrorCode != 0 {
		return s.fail(ctx, meta, model.TxApproved, fmt.Errorf("broadcast rejected with code %d: %s", resp.ErrorCode, resp.ErrorMessage))
	}

	meta.TxHash = meta.Tx.TxID().String()
	meta.SubmittedAt = s.clock.Now()
	meta.Status = model.TxSubmitted
	persistCtx, cancel := persistContext(ctx)
	defer cancel()
	if err := s.transition(persistCtx, meta, model.TxApproved); err != nil {
		// The transaction is on the network; the poller cannot see it until
		// the record is fixed, so surface the hash with the error.
		return model.SubmissionResult{TxHash: meta.TxHash, ErrorMessage: err.Error()}, err
	}
	return model.SubmissionResult{Success: true, TxHash: meta.TxHash}, nil
}

// markApproved enforces one in-flight transaction per (account, chain).
func (s *Service) markApproved(ctx context.Context, meta *model.TxMeta) error {
	s.inFlight.Lock()
	defer s.inFlight.Unlock()

	n, err := s.repo.CountTxMetas(ctx, meta.Account, meta.Chain, model.TxApproved, model.TxSubmitted)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("account %s on %s: %w", meta.Account, meta.Chain, model.ErrTransactionInFlight)
	}

	meta.Status = model.TxApproved
	if err := s.transition(ctx, *meta, model.TxUnapproved); err != nil {
		meta.Status = model.TxUnapproved
		return err
	}
	return nil
}

// fail moves meta from status from to Error. The write does not depend on
// ctx, so a failed approval never stays Approved.
func (s *Service) fail(ctx context.Context, meta model.TxMeta, from model.TxStatus, cause error) (model.SubmissionResult, error) {
	meta.Status = model.TxError
	meta.ErrorMessage = cause.Error()
	persistCtx, cancel := persistContext(ctx)
	defer cancel()
	if err := s.transition(persistCtx, meta, from); err != nil {
		s.logger.Error("persist failed transaction", zap.String("id", meta.ID), zap.Error(err))
	}
	return model.SubmissionResult{ErrorMessage: meta.ErrorMessage}, cause
}

func persistContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
}
