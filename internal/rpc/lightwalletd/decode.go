package lightwalletd

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var errMalformed = errors.New("malformed protobuf message")

type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

func (f field) isVarint(num protowire.Number) bool {
	return f.num == num && f.typ == protowire.VarintType
}

func (f field) isBytes(num protowire.Number) bool {
	return f.num == num && f.typ == protowire.BytesType
}

// decodeFields walks the top-level fields of b, skipping unknown wire types.
func decodeFields(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: tag: %v", errMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", errMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func decodeBlockID(b []byte) (BlockID, error) {
	var id BlockID
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isVarint(1):
			id.Height = f.varint
		case f.isBytes(2):
			id.Hash = f.bytes
		}
		return nil
	})
	return id, err
}

func decodeRawTransaction(b []byte) (RawTransaction, error) {
	var tx RawTransaction
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isBytes(1):
			tx.Data = f.bytes
		case f.isVarint(2):
			tx.Height = f.varint
		}
		return nil
	})
	return tx, err
}

func decodeSendResponse(b []byte) (SendResponse, error) {
	var resp SendResponse
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isVarint(1):
			resp.ErrorCode = int32(int64(f.varint))
		case f.isBytes(2):
			resp.ErrorMessage = string(f.bytes)
		}
		return nil
	})
	return resp, err
}

func decodeTreeState(b []byte) (TreeState, error) {
	var ts TreeState
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isBytes(1):
			ts.Network = string(f.bytes)
		case f.isVarint(2):
			ts.Height = f.varint
		case f.isBytes(3):
			ts.Hash = string(f.bytes)
		case f.isVarint(4):
			ts.Time = uint32(f.varint)
		case f.isBytes(5):
			ts.SaplingTree = string(f.bytes)
		case f.isBytes(6):
			ts.OrchardTree = string(f.bytes)
		}
		return nil
	})
	return ts, err
}

func decodeSubtreeRoot(b []byte) (SubtreeRoot, error) {
	var root SubtreeRoot
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isBytes(2):
			root.RootHash = f.bytes
		case f.isBytes(3):
			root.CompletingBlockHash = f.bytes
		case f.isVarint(4):
			root.CompletingBlockHeight = f.varint
		}
		return nil
	})
	return root, err
}

func decodeAddressUtxo(b []byte) (AddressUtxo, error) {
	var utxo AddressUtxo
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isBytes(1):
			utxo.TxID = f.bytes
		case f.isVarint(2):
			utxo.Index = int32(int64(f.varint))
		case f.isBytes(3):
			utxo.Script = f.bytes
		case f.isVarint(4):
			utxo.ValueZat = int64(f.varint)
		case f.isVarint(5):
			utxo.Height = f.varint
		case f.isBytes(6):
			utxo.Address = string(f.bytes)
		}
		return nil
	})
	return utxo, err
}

func decodeAddressUtxoList(b []byte) ([]AddressUtxo, error) {
	var utxos []AddressUtxo
	err := decodeFields(b, func(f field) error {
		if !f.isBytes(1) {
			return nil
		}
		utxo, err := decodeAddressUtxo(f.bytes)
		if err != nil {
			return fmt.Errorf("address utxo: %w", err)
		}
		utxos = append(utxos, utxo)
		return nil
	})
	return utxos, err
}

func decodeCompactBlock(b []byte) (CompactBlock, error) {
	var block CompactBlock
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isVarint(1):
			block.ProtoVersion = uint32(f.varint)
		case f.isVarint(2):
			block.Height = f.varint
		case f.isBytes(3):
			block.Hash = f.bytes
		case f.isBytes(4):
			block.PrevHash = f.bytes
		case f.isVarint(5):
			block.Time = uint32(f.varint)
		case f.isBytes(6):
			block.Header = f.bytes
		case f.isBytes(7):
			tx, err := decodeCompactTx(f.bytes)
			if err != nil {
				return fmt.Errorf("compact tx: %w", err)
			}
			block.Vtx = append(block.Vtx, tx)
		case f.isBytes(8):
			meta, err := decodeChainMetadata(f.bytes)
			if err != nil {
				return fmt.Errorf("chain metadata: %w", err)
			}
			block.ChainMetadata = meta
		}
		return nil
	})
	return block, err
}

func decodeCompactTx(b []byte) (CompactTx, error) {
	var tx CompactTx
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isVarint(1):
			tx.Index = f.varint
		case f.isBytes(2):
			tx.Hash = f.bytes
		case f.isVarint(3):
			tx.Fee = uint32(f.varint)
		case f.isBytes(6):
			action, err := decodeCompactOrchardAction(f.bytes)
			if err != nil {
				return fmt.Errorf("orchard action: %w", err)
			}
			tx.Actions = append(tx.Actions, action)
		}
		return nil
	})
	return tx, err
}

func decodeCompactOrchardAction(b []byte) (CompactOrchardAction, error) {
	var action CompactOrchardAction
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isBytes(1):
			action.Nullifier = f.bytes
		case f.isBytes(2):
			action.Cmx = f.bytes
		case f.isBytes(3):
			action.EphemeralKey = f.bytes
		case f.isBytes(4):
			action.Ciphertext = f.bytes
		}
		return nil
	})
	return action, err
}

func decodeChainMetadata(b []byte) (ChainMetadata, error) {
	var meta ChainMetadata
	err := decodeFields(b, func(f field) error {
		switch {
		case f.isVarint(1):
			meta.SaplingCommitmentTreeSize = uint32(f.varint)
		case f.isVarint(2):
			meta.OrchardCommitmentTreeSize = uint32(f.varint)
		}
		return nil
	})
	return meta, err
}
