package zcash

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrInsufficientFunds is returned when inputs cannot cover outputs and fee.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Outpoint references a previous transparent output.
type Outpoint struct {
	TxID  chainhash.Hash `json:"txid"`
	Index uint32         `json:"index"`
}

// TransparentInput spends a transparent output.
type TransparentInput struct {
	Outpoint     Outpoint `json:"outpoint"`
	Address      string   `json:"address"`
	Value        uint64   `json:"value"`
	Sequence     uint32   `json:"sequence"`
	ScriptPubKey []byte   `json:"script_pubkey"`
	ScriptSig    []byte   `json:"script_sig,omitempty"`
}

// NewTransparentInput builds an unsigned input with the default sequence.
func NewTransparentInput(outpoint Outpoint, address string, value uint64, scriptPubKey []byte) TransparentInput {
	return TransparentInput{
		Outpoint:     outpoint,
		Address:      address,
		Value:        value,
		Sequence:     DefaultSequence,
		ScriptPubKey: scriptPubKey,
	}
}

// IsSigned reports whether the input carries an unlocking script.
func (in TransparentInput) IsSigned() bool {
	return len(in.ScriptSig) > 0
}

// TransparentOutput pays value to a transparent address.
type TransparentOutput struct {
	Address      string `json:"address"`
	ScriptPubKey []byte `json:"script_pubkey"`
	Value        uint64 `json:"value"`
}

// NewTransparentOutput derives the locking script from address.
func NewTransparentOutput(address string, value uint64, params *Params) (TransparentOutput, error) {
	script, err := PayToAddrScript(address, params)
	if err != nil {
		return TransparentOutput{}, err
	}
	return TransparentOutput{Address: address, ScriptPubKey: script, Value: value}, nil
}

// OrchardOutput creates a note for a raw Orchard receiver.
type OrchardOutput struct {
	Address [OrchardAddressSize]byte `json:"address"`
	Value   uint64                   `json:"value"`
	Memo    []byte                   `json:"memo,omitempty"`
}

// OrchardNote is a note discovered by the scanner. Data is the opaque note
// encoding understood by the shielded pool library.
type OrchardNote struct {
	Address   [OrchardAddressSize]byte `json:"address"`
	Value     uint64                   `json:"value"`
	Nullifier [32]byte                 `json:"nullifier"`
	Position  uint64                   `json:"position"`
	Data      []byte                   `json:"data,omitempty"`
}

// OrchardInput spends a note. Witness is set once an anchor is chosen.
type OrchardInput struct {
	Note    OrchardNote `json:"note"`
	Witness []byte      `json:"witness,omitempty"`
}

// TransparentPart is the ordered transparent inputs and outputs.
type TransparentPart struct {
	Inputs  []TransparentInput  `json:"inputs"`
	Outputs []TransparentOutput `json:"outputs"`
}

// OrchardPart is the Orchard inputs and outputs plus build artifacts.
type OrchardPart struct {
	Inputs       []OrchardInput  `json:"inputs,omitempty"`
	Outputs      []OrchardOutput `json:"outputs,omitempty"`
	AnchorHeight uint64          `json:"anchor_height,omitempty"`
	Digest       *[32]byte       `json:"digest,omitempty"`
	RawBundle    []byte          `json:"raw_bundle,omitempty"`
}

// Transaction is a v5 transaction under construction.
type Transaction struct {
	Transparent       TransparentPart `json:"transparent"`
	Orchard           OrchardPart     `json:"orchard"`
	LockTime          uint32          `json:"lock_time"`
	ExpiryHeight      uint32          `json:"expiry_height"`
	ConsensusBranchID uint32          `json:"consensus_branch_id"`

	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Memo   []byte `json:"memo,omitempty"`
	Fee    uint64 `json:"fee"`
}

// HasOrchardPart reports whether the transaction has any Orchard input or output.
func (tx *Transaction) HasOrchardPart() bool {
	return len(tx.Orchard.Inputs) > 0 || len(tx.Orchard.Outputs) > 0
}

// TotalInputs sums transparent and Orchard input values.
func (tx *Transaction) TotalInputs() (uint64, error) {
	var total uint64
	for _, in := range tx.Transparent.Inputs {
		if total+in.Value < total {
			return 0, fmt.Errorf("input value overflow")
		}
		total += in.Value
	}
	for _, in := range tx.Orchard.Inputs {
		if total+in.Note.Value < total {
			return 0, fmt.Errorf("input value overflow")
		}
		total += in.Note.Value
	}
	return total, nil
}

// TotalOutputs sums transparent and Orchard output values.
func (tx *Transaction) TotalOutputs() (uint64, error) {
	var total uint64
	for _, out := range tx.Transparent.Outputs {
		if total+out.Value < total {
			return 0, fmt.Errorf("output value overflow")
		}
		total += out.Value
	}
	for _, out := range tx.Orchard.Outputs {
		if total+out.Value < total {
			return 0, fmt.Errorf("output value overflow")
		}
		total += out.Value
	}
	return total, nil
}

// ValidateTransaction reports whether inputs equal outputs plus fee exactly.
func (tx *Transaction) ValidateTransaction() bool {
	in, err := tx.TotalInputs()
	if err != nil {
		return false
	}
	out, err := tx.TotalOutputs()
	if err != nil {
		return false
	}
	if out+tx.Fee < out {
		return false
	}
	return in == out+tx.Fee
}

// IsTransparentPartSigned reports whether every transparent input is signed.
func (tx *Transaction) IsTransparentPartSigned() bool {
	for _, in := range tx.Transparent.Inputs {
		if !in.IsSigned() {
			return false
		}
	}
	return true
}

// TxID returns the transaction id in internal byte order.
func (tx *Transaction) TxID() chainhash.Hash {
	return chainhash.Hash(CalculateTxIDDigest(tx))
}
