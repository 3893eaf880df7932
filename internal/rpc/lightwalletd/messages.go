package lightwalletd

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// MempoolHeight is reported by some indexers for transactions outside the
// main chain.
const MempoolHeight = ^uint64(0)

// ShieldedProtocol selects the commitment tree for subtree root queries.
type ShieldedProtocol uint64

const (
	ShieldedProtocolSapling ShieldedProtocol = 0
	ShieldedProtocolOrchard ShieldedProtocol = 1
)

type (
	// BlockID identifies a block by height and hash.
	BlockID struct {
		Height uint64
		Hash   []byte
	}
	// BlockRange is an inclusive height range.
	BlockRange struct {
		Start uint64
		End   uint64
	}
	// RawTransaction is a serialized transaction and its mined height.
	RawTransaction struct {
		Data   []byte
		Height uint64
	}
	// SendResponse carries the indexer's verdict on a broadcast.
	SendResponse struct {
		ErrorCode    int32
		ErrorMessage string
	}
	// TreeState holds hex encoded commitment tree frontiers at a block.
	TreeState struct {
		Network     string
		Height      uint64
		Hash        string
		Time        uint32
		SaplingTree string
		OrchardTree string
	}
	// SubtreeRoot is a completed 2^16 leaf subtree of a commitment tree.
	SubtreeRoot struct {
		RootHash              []byte
		CompletingBlockHash   []byte
		CompletingBlockHeight uint64
	}
	// AddressUtxo is one unspent transparent output.
	AddressUtxo struct {
		Address  string
		TxID     []byte
		Index    int32
		Script   []byte
		ValueZat int64
		Height   uint64
	}
	// CompactBlock is the scan-relevant subset of a block.
	CompactBlock struct {
		ProtoVersion  uint32
		Height        uint64
		Hash          []byte
		PrevHash      []byte
		Time          uint32
		Header        []byte
		Vtx           []CompactTx
		ChainMetadata ChainMetadata
	}
	// CompactTx is the scan-relevant subset of a transaction.
	CompactTx struct {
		Index   uint64
		Hash    []byte
		Fee     uint32
		Actions []CompactOrchardAction
	}
	// CompactOrchardAction is the trial-decryptable part of an Orchard action.
	CompactOrchardAction struct {
		Nullifier    []byte
		Cmx          []byte
		EphemeralKey []byte
		Ciphertext   []byte
	}
	// ChainMetadata reports commitment tree sizes at the end of a block.
	ChainMetadata struct {
		SaplingCommitmentTreeSize uint32
		OrchardCommitmentTreeSize uint32
	}
)

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendStringField(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessageField(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func encodeChainSpec() []byte {
	return []byte{}
}

func encodeBlockID(id BlockID) []byte {
	var b []byte
	b = appendVarintField(b, 1, id.Height)
	b = appendBytesField(b, 2, id.Hash)
	return b
}

func encodeBlockRange(r BlockRange) []byte {
	var b []byte
	b = appendMessageField(b, 1, encodeBlockID(BlockID{Height: r.Start}))
	b = appendMessageField(b, 2, encodeBlockID(BlockID{Height: r.End}))
	return b
}

func encodeTxFilter(hash []byte) []byte {
	return appendBytesField(nil, 3, hash)
}

func encodeRawTransaction(data []byte) []byte {
	return appendBytesField(nil, 1, data)
}

func encodeTransparentAddressBlockFilter(address string, r BlockRange) []byte {
	var b []byte
	b = appendStringField(b, 1, address)
	b = appendMessageField(b, 2, encodeBlockRange(r))
	return b
}

func encodeGetSubtreeRootsArg(startIndex, maxEntries uint32, protocol ShieldedProtocol) []byte {
	var b []byte
	b = appendVarintField(b, 1, uint64(startIndex))
	b = appendVarintField(b, 2, uint64(protocol))
	b = appendVarintField(b, 3, uint64(maxEntries))
	return b
}

func encodeGetAddressUtxosArg(addresses []string, startHeight uint64, maxEntries uint32) []byte {
	var b []byte
	for _, address := range addresses {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, address)
	}
	b = appendVarintField(b, 2, startHeight)
	b = appendVarintField(b, 3, uint64(maxEntries))
	return b
}
