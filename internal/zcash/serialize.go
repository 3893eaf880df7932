package zcash

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrNotSigned is returned when serializing a transaction with an unsigned input.
	ErrNotSigned = errors.New("transparent input is not signed")
	// ErrMissingBundle is returned when the Orchard bundle has not been built.
	ErrMissingBundle = errors.New("orchard bundle is missing")
)

// SerializeRawTransaction encodes a fully signed transaction for broadcast.
func SerializeRawTransaction(tx *Transaction) ([]byte, error) {
	if !tx.IsTransparentPartSigned() {
		return nil, ErrNotSigned
	}
	if tx.HasOrchardPart() && len(tx.Orchard.RawBundle) == 0 {
		return nil, ErrMissingBundle
	}

	var buf bytes.Buffer
	writeUint32(&buf, TxVersion|overwinteredFlag)
	writeUint32(&buf, VersionGroupID)
	writeUint32(&buf, tx.ConsensusBranchID)
	writeUint32(&buf, tx.LockTime)
	writeUint32(&buf, tx.ExpiryHeight)

	if err := wire.WriteVarInt(&buf, 0, uint64(len(tx.Transparent.Inputs))); err != nil {
		return nil, fmt.Errorf("write input count: %w", err)
	}
	for _, in := range tx.Transparent.Inputs {
		buf.Write(in.Outpoint.TxID[:])
		writeUint32(&buf, in.Outpoint.Index)
		writeVarBytes(&buf, in.ScriptSig)
		writeUint32(&buf, in.Sequence)
	}

	if err := wire.WriteVarInt(&buf, 0, uint64(len(tx.Transparent.Outputs))); err != nil {
		return nil, fmt.Errorf("write output count: %w", err)
	}
	for _, out := range tx.Transparent.Outputs {
		writeUint64(&buf, out.Value)
		writeVarBytes(&buf, out.ScriptPubKey)
	}

	// No Sapling spends or outputs.
	buf.Write([]byte{0x00, 0x00})

	if tx.HasOrchardPart() {
		buf.Write(tx.Orchard.RawBundle)
	} else {
		buf.WriteByte(0x00)
	}

	return buf.Bytes(), nil
}
