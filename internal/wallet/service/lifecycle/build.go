package lifecycle

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
	"github.com/goodnatureofminers/zcashwallet-backend/pkg/safe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidRequest is returned for malformed payment requests.
var ErrInvalidRequest = errors.New("invalid transaction request")

// AddUnapproved builds the transaction for req and persists it as
// Unapproved. Transparent destinations get a plain transparent send. Orchard
// destinations spend notes when they cover the payment and shield
// transparent funds otherwise.
func (s *Service) AddUnapproved(ctx context.Context, chain model.ChainID, req model.TxRequest, origin string) (string, error) {
	if req.Account == "" || req.To == "" || req.Amount == 0 {
		return "", fmt.Errorf("%w: account, destination and amount are required", ErrInvalidRequest)
	}
	params, err := zcash.ParamsForNetwork(chain.Network())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var tx *zcash.Transaction
	if zcash.IsTransparentAddress(req.To, params) {
		if len(req.Memo) > 0 {
			return "", fmt.Errorf("memo to transparent address: %w", ErrInvalidRequest)
		}
		tx, err = s.buildTransparent(ctx, chain, params, req)
	} else if receiver, ok := s.parser.ParseAddress(req.To, params); ok {
		if !s.cfg.Chains[chain].ShieldedSends {
			return "", fmt.Errorf("shielded sends on %s: %w", chain, model.ErrNotSupported)
		}
		tx, err = s.buildShielded(ctx, chain, params, req, receiver)
	} else {
		return "", fmt.Errorf("destination %q: %w", req.To, zcash.ErrInvalidAddress)
	}
	if err != nil {
		return "", err
	}
	tx.ConsensusBranchID = params.ConsensusBranchID
	tx.To = req.To
	tx.Amount = req.Amount
	tx.Memo = req.Memo

	meta := model.TxMeta{
		ID:        uuid.NewString(),
		Account:   req.Account,
		Origin:    origin,
		Chain:     chain,
		CreatedAt: s.clock.Now(),
		Status:    model.TxUnapproved,
		Tx:        tx,
	}
	if err := s.repo.InsertTxMeta(ctx, meta); err != nil {
		return "", err
	}
	s.record(ctx, meta)
	return meta.ID, nil
}

func (s *Service) buildTransparent(ctx context.Context, chain model.ChainID, params *zcash.Params, req model.TxRequest) (*zcash.Transaction, error) {
	pay, err := zcash.NewTransparentOutput(req.To, req.Amount, params)
	if err != nil {
		return nil, err
	}
	utxos, changeAddr, err := s.utxos(ctx, chain, req)
	if err != nil {
		return nil, err
	}
	change, err := zcash.NewTransparentOutput(changeAddr, 0, params)
	if err != nil {
		return nil, err
	}

	outSize := zcash.TransparentOutputSize(pay.ScriptPubKey) + zcash.TransparentOutputSize(change.ScriptPubKey)
	selected, total, fee, err := selectUtxos(utxos, req.Amount, func(inputs int) uint64 {
		return zcash.FeeZIP317(uint64(inputs)*zcash.TransparentInputSize(), outSize, 0)
	})
	if err != nil {
		return nil, err
	}

	tx := &zcash.Transaction{Fee: fee}
	if err := addInputs(tx, selected); err != nil {
		return nil, err
	}
	tx.Transparent.Outputs = append(tx.Transparent.Outputs, pay)
	addChange(tx, change, total-req.Amount-fee)
	return tx, nil
}

func (s *Service) buildShielded(
	ctx context.Context,
	chain model.ChainID,
	params *zcash.Params,
	req model.TxRequest,
	receiver [zcash.OrchardAddressSize]byte,
) (*zcash.Transaction, error) {
	if len(req.Memo) > zcash.OrchardMemoSize {
		return nil, fmt.Errorf("memo of %d bytes: %w", len(req.Memo), ErrInvalidRequest)
	}
	pay := zcash.OrchardOutput{Address: receiver, Value: req.Amount, Memo: req.Memo}

	notes, err := s.repo.SpendableNotes(ctx, req.Account, chain)
	if err != nil {
		return nil, err
	}
	if tx, ok := spendNotes(notes, pay); ok {
		return tx, nil
	}

	utxos, changeAddr, err := s.utxos(ctx, chain, req)
	if err != nil {
		return nil, err
	}
	change, err := zcash.NewTransparentOutput(changeAddr, 0, params)
	if err != nil {
		return nil, err
	}
	selected, total, fee, err := selectUtxos(utxos, req.Amount, func(inputs int) uint64 {
		return zcash.FeeZIP317(uint64(inputs)*zcash.TransparentInputSize(), zcash.TransparentOutputSize(change.ScriptPubKey), zcash.OrchardActions(0, 1))
	})
	if err != nil {
		return nil, err
	}

	tx := &zcash.Transaction{Fee: fee}
	if err := addInputs(tx, selected); err != nil {
		return nil, err
	}
	tx.Orchard.Outputs = []zcash.OrchardOutput{pay}
	addChange(tx, change, total-req.Amount-fee)
	s.logger.Debug("shielding transparent funds", zap.String("account", req.Account), zap.Int("inputs", len(selected)))
	return tx, nil
}

// addChange appends transparent change of value. Change below
// zcash.DustThreshold is left to the miner as extra fee.
func addChange(tx *zcash.Transaction, change zcash.TransparentOutput, value uint64) {
	switch {
	case value == 0:
	case value < zcash.DustThreshold:
		tx.Fee += value
	default:
		change.Value = value
		tx.Transparent.Outputs = append(tx.Transparent.Outputs, change)
	}
}

// spendNotes pays from the largest notes first. Change returns to the
// address of the largest spent note, one of the account's own receivers.
// Orchard change is never dust: the bundle pads to two actions, so the
// change output adds no fee.
func spendNotes(notes []model.Note, pay zcash.OrchardOutput) (*zcash.Transaction, bool) {
	notes = slices.Clone(notes)
	slices.SortFunc(notes, func(a, b model.Note) int {
		return cmp.Compare(b.Value, a.Value)
	})

	var total uint64
	for i, note := range notes {
		total += note.Value
		spends := i + 1
		fee := zcash.FeeZIP317(0, 0, zcash.OrchardActions(spends, 2))
		if total < pay.Value+fee {
			continue
		}

		tx := &zcash.Transaction{Fee: fee}
		for _, n := range notes[:spends] {
			tx.Orchard.Inputs = append(tx.Orchard.Inputs, zcash.OrchardInput{Note: n.OrchardNote})
		}
		tx.Orchard.Outputs = []zcash.OrchardOutput{pay}
		if change := total - pay.Value - fee; change > 0 {
			tx.Orchard.Outputs = append(tx.Orchard.Outputs, zcash.OrchardOutput{Address: notes[0].Address, Value: change})
		}
		return tx, true
	}
	return nil, false
}

// utxos returns the unspent outputs the request may spend and the change
// address.
func (s *Service) utxos(ctx context.Context, chain model.ChainID, req model.TxRequest) ([]lightwalletd.AddressUtxo, string, error) {
	addrs, err := s.addresses.Addresses(ctx, req.Account, chain)
	if err != nil {
		return nil, "", err
	}
	if req.From != "" {
		if !slices.Contains(addrs, req.From) {
			return nil, "", fmt.Errorf("address %s: %w", req.From, model.ErrKeyNotFound)
		}
		addrs = []string{req.From}
	}
	if len(addrs) == 0 {
		return nil, "", fmt.Errorf("account %s has no transparent addresses: %w", req.Account, model.ErrKeyNotFound)
	}

	utxos, err := s.client.GetUtxoList(ctx, chain, addrs)
	if err != nil {
		return nil, "", err
	}
	return utxos, addrs[0], nil
}

// selectUtxos takes the largest outputs first until they cover amount and
// the fee for that many inputs.
func selectUtxos(utxos []lightwalletd.AddressUtxo, amount uint64, feeFor func(inputs int) uint64) ([]lightwalletd.AddressUtxo, uint64, uint64, error) {
	utxos = slices.DeleteFunc(slices.Clone(utxos), func(u lightwalletd.AddressUtxo) bool {
		return u.ValueZat <= 0
	})
	slices.SortFunc(utxos, func(a, b lightwalletd.AddressUtxo) int {
		if c := cmp.Compare(b.ValueZat, a.ValueZat); c != 0 {
			return c
		}
		return cmp.Compare(a.Height, b.Height)
	})

	var total uint64
	for i, u := range utxos {
		total += uint64(u.ValueZat)
		fee := feeFor(i + 1)
		if total >= amount+fee {
			return utxos[:i+1], total, fee, nil
		}
	}
	return nil, 0, 0, fmt.Errorf("have %d zat, need %d plus fee: %w", total, amount, model.ErrInsufficientFunds)
}

func addInputs(tx *zcash.Transaction, utxos []lightwalletd.AddressUtxo) error {
	for _, u := range utxos {
		txid, err := chainhash.NewHash(u.TxID)
		if err != nil {
			return fmt.Errorf("utxo txid: %w", err)
		}
		index, err := safe.Uint32(u.Index)
		if err != nil {
			return fmt.Errorf("utxo index: %w", err)
		}
		tx.Transparent.Inputs = append(tx.Transparent.Inputs,
			zcash.NewTransparentInput(zcash.Outpoint{TxID: *txid, Index: index}, u.Address, uint64(u.ValueZat), u.Script))
	}
	return nil
}
