package scanner

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/orchard"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"go.uber.org/zap"
)

// pass runs one bounded scan pass: tip, reorg check, note refresh and up to
// SyncThreshold blocks of batches. It reports whether the tip was reached.
func (s *Scanner) pass(ctx context.Context, fvk []byte) (bool, error) {
	meta, err := s.repo.EnsureAccountMeta(ctx, s.account, s.chain, s.cfg.Birthday)
	if err != nil {
		return false, err
	}

	latest, err := s.client.GetLatestBlock(ctx, s.chain)
	if err != nil {
		return false, fmt.Errorf("chain tip: %w", err)
	}
	tip := latest.Height
	if err := s.repo.SetLatestKnownHeight(ctx, s.account, s.chain, tip); err != nil {
		return false, err
	}

	next, tree, err := s.resume(ctx, meta.NextScanHeight)
	if err != nil {
		return false, err
	}

	notes, err := s.repo.SpendableNotes(ctx, s.account, s.chain)
	if err != nil {
		return false, err
	}

	limit := min(tip, next+s.cfg.SyncThreshold-1)
	for next <= limit {
		if s.isPaused() {
			s.logger.Info("sync paused", zap.Uint64("next_height", next))
			return false, nil
		}
		to := min(next+s.cfg.BatchSize-1, limit)
		if tree, notes, err = s.scanBatch(ctx, fvk, next, to, tip, tree, notes); err != nil {
			return false, err
		}
		next = to + 1
	}

	if next > tip {
		s.update(func(st *model.SyncStatus) bool {
			st.Current, st.Target, st.SpendableBalance = tip, tip, balance(notes)
			return true
		})
		return true, nil
	}
	return false, nil
}

// resume verifies the last checkpoint against the chain and returns the
// next height to scan with the commitment tree state below it. A
// checkpoint whose block is no longer on the best chain is rolled back by
// ReorgMargin, and the rollback is persisted before anything is scanned.
func (s *Scanner) resume(ctx context.Context, next uint64) (uint64, []byte, error) {
	for {
		cp, tree, err := s.repo.LatestCheckpoint(ctx, s.account, s.chain)
		if errors.Is(err, model.ErrNotFound) {
			tree, err := s.remoteTree(ctx, next-1)
			return next, tree, err
		}
		if err != nil {
			return 0, nil, err
		}

		remote, err := s.client.GetTreeState(ctx, s.chain, lightwalletd.BlockID{Height: cp.Height})
		if err != nil {
			return 0, nil, fmt.Errorf("tree state at checkpoint %d: %w", cp.Height, err)
		}
		if remote.Hash == cp.BlockHash {
			if cp.Height+1 != next {
				s.logger.Warn("scan position disagrees with checkpoint, rewinding",
					zap.Uint64("next_height", next), zap.Uint64("checkpoint", cp.Height))
				if err := s.repo.Rollback(ctx, s.account, s.chain, cp.Height); err != nil {
					return 0, nil, err
				}
			}
			return cp.Height + 1, tree, nil
		}

		s.metrics.ObserveReorg(s.chain)
		to, err := s.rollbackTarget(ctx, cp.Height)
		if err != nil {
			return 0, nil, err
		}
		s.logger.Warn("reorg detected, rolling back",
			zap.Uint64("checkpoint", cp.Height),
			zap.String("local_hash", cp.BlockHash),
			zap.String("remote_hash", remote.Hash),
			zap.Uint64("rollback_to", to),
		)
		if err := s.repo.Rollback(ctx, s.account, s.chain, to); err != nil {
			return 0, nil, fmt.Errorf("rollback to %d: %w", to, err)
		}
		next = to + 1
	}
}

// rollbackTarget is the highest checkpoint at least ReorgMargin below
// height, or the block before the birthday when there is none.
func (s *Scanner) rollbackTarget(ctx context.Context, height uint64) (uint64, error) {
	floor := s.cfg.Birthday - 1
	if height < floor+s.cfg.ReorgMargin {
		return floor, nil
	}
	cp, _, err := s.repo.CheckpointAtOrBelow(ctx, s.account, s.chain, height-s.cfg.ReorgMargin)
	if errors.Is(err, model.ErrNotFound) {
		return floor, nil
	}
	if err != nil {
		return 0, err
	}
	return max(cp.Height, floor), nil
}

// remoteTree fetches the Orchard frontier after height.
func (s *Scanner) remoteTree(ctx context.Context, height uint64) ([]byte, error) {
	ts, err := s.client.GetTreeState(ctx, s.chain, lightwalletd.BlockID{Height: height})
	if err != nil {
		return nil, fmt.Errorf("tree state at %d: %w", height, err)
	}
	tree, err := hex.DecodeString(ts.OrchardTree)
	if err != nil {
		return nil, fmt.Errorf("decode orchard tree at %d: %w", height, err)
	}
	return tree, nil
}

// scanBatch downloads, scans and persists blocks from..to.
func (s *Scanner) scanBatch(
	ctx context.Context,
	fvk []byte,
	from, to, tip uint64,
	tree []byte,
	notes []model.Note,
) (_ []byte, _ []model.Note, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBatch(s.chain, err, int(to-from+1), started)
	}()

	blocks, err := s.client.GetCompactBlocks(ctx, s.chain, lightwalletd.BlockRange{Start: from, End: to})
	if err != nil {
		return nil, nil, fmt.Errorf("download blocks %d-%d: %w", from, to, err)
	}
	if err := checkContiguous(blocks, from, to); err != nil {
		return nil, nil, err
	}

	known := make([][32]byte, 0, len(notes))
	for _, n := range notes {
		known = append(known, n.Nullifier)
	}
	res, err := s.library.ScanBlocks(ctx, orchard.ScanRequest{
		FullViewingKey:  fvk,
		Blocks:          blocks,
		KnownNullifiers: known,
		TreeState:       tree,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan blocks %d-%d: %w", from, to, err)
	}

	batch := model.ScanBatch{
		Account:         s.account,
		Chain:           s.chain,
		FromHeight:      from,
		ToHeight:        to,
		SpentNullifiers: res.Spent,
		TreeState:       res.TreeState,
		NextScanHeight:  to + 1,
		Checkpoint: model.SyncCheckpoint{
			Account:   s.account,
			Chain:     s.chain,
			Height:    to,
			BlockHash: displayHash(blocks[len(blocks)-1].Hash),
		},
		ScannedAt: time.Now(),
	}
	for _, found := range res.Notes {
		batch.Notes = append(batch.Notes, model.Note{
			OrchardNote: found.Note,
			Account:     s.account,
			Chain:       s.chain,
			BlockHeight: found.BlockHeight,
			TxHash:      displayHash(found.TxHash),
		})
	}
	if err := s.repo.ApplyScanBatch(ctx, batch); err != nil {
		return nil, nil, err
	}
	s.metrics.ObserveHeight(s.chain, s.account, batch.NextScanHeight)

	if s.archive != nil {
		if err := s.archive.ArchiveBatch(ctx, batch); err != nil {
			s.logger.Warn("archive scan batch failed", zap.Error(err))
		}
	}

	notes = applySpends(append(slices.Clone(notes), batch.Notes...), res.Spent)
	s.update(func(st *model.SyncStatus) bool {
		st.Current, st.Target, st.SpendableBalance = to, tip, balance(notes)
		return true
	})
	s.logger.Debug("batch scanned",
		zap.Uint64("from", from),
		zap.Uint64("to", to),
		zap.Int("notes", len(batch.Notes)),
		zap.Int("spent", len(res.Spent)),
	)
	return res.TreeState, notes, nil
}

func checkContiguous(blocks []lightwalletd.CompactBlock, from, to uint64) error {
	if uint64(len(blocks)) != to-from+1 {
		return fmt.Errorf("got %d blocks for range %d-%d", len(blocks), from, to)
	}
	for i, b := range blocks {
		if b.Height != from+uint64(i) {
			return fmt.Errorf("block %d at position %d of range %d-%d", b.Height, i, from, to)
		}
		if i > 0 && !bytes.Equal(b.PrevHash, blocks[i-1].Hash) {
			return fmt.Errorf("block %d does not extend block %d", b.Height, blocks[i-1].Height)
		}
	}
	return nil
}

func applySpends(notes []model.Note, spent [][32]byte) []model.Note {
	return slices.DeleteFunc(notes, func(n model.Note) bool {
		return slices.Contains(spent, n.Nullifier)
	})
}

func balance(notes []model.Note) uint64 {
	var total uint64
	for _, n := range notes {
		total += n.Value
	}
	return total
}

// displayHash renders an internal byte order hash the way explorers do.
func displayHash(b []byte) string {
	h, err := chainhash.NewHash(b)
	if err != nil {
		return hex.EncodeToString(b)
	}
	return h.String()
}
