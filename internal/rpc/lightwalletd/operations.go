package lightwalletd

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/grpcweb"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

const (
	methodGetLatestBlock      = "GetLatestBlock"
	methodGetTreeState        = "GetTreeState"
	methodGetLatestTreeState  = "GetLatestTreeState"
	methodGetAddressUtxos     = "GetAddressUtxos"
	methodGetTransaction      = "GetTransaction"
	methodSendTransaction     = "SendTransaction"
	methodGetTaddressTxids    = "GetTaddressTxids"
	methodGetBlockRange       = "GetBlockRange"
	methodGetSubtreeRoots     = "GetSubtreeRoots"
	decodeFailedMessageFormat = "decode %s response: %w"
)

// GetLatestBlock returns the chain tip as seen by the indexer.
func (c *Client) GetLatestBlock(ctx context.Context, chain model.ChainID) (BlockID, error) {
	msg, err := c.unary(ctx, chain, methodGetLatestBlock, encodeChainSpec())
	if err != nil {
		return BlockID{}, err
	}
	id, err := decodeBlockID(msg)
	if err != nil {
		return BlockID{}, internalError(methodGetLatestBlock, fmt.Errorf(decodeFailedMessageFormat, methodGetLatestBlock, err))
	}
	return id, nil
}

// GetTreeState returns the commitment tree state at the given block.
func (c *Client) GetTreeState(ctx context.Context, chain model.ChainID, block BlockID) (TreeState, error) {
	msg, err := c.unary(ctx, chain, methodGetTreeState, encodeBlockID(block))
	if err != nil {
		return TreeState{}, err
	}
	ts, err := decodeTreeState(msg)
	if err != nil {
		return TreeState{}, internalError(methodGetTreeState, fmt.Errorf(decodeFailedMessageFormat, methodGetTreeState, err))
	}
	return ts, nil
}

// GetLatestTreeState returns the commitment tree state at the chain tip.
func (c *Client) GetLatestTreeState(ctx context.Context, chain model.ChainID) (TreeState, error) {
	msg, err := c.unary(ctx, chain, methodGetLatestTreeState, encodeChainSpec())
	if err != nil {
		return TreeState{}, err
	}
	ts, err := decodeTreeState(msg)
	if err != nil {
		return TreeState{}, internalError(methodGetLatestTreeState, fmt.Errorf(decodeFailedMessageFormat, methodGetLatestTreeState, err))
	}
	return ts, nil
}

// GetUtxoList returns the unspent transparent outputs of the addresses.
func (c *Client) GetUtxoList(ctx context.Context, chain model.ChainID, addresses []string) ([]AddressUtxo, error) {
	msg, err := c.unary(ctx, chain, methodGetAddressUtxos, encodeGetAddressUtxosArg(addresses, 0, 0))
	if err != nil {
		return nil, err
	}
	utxos, err := decodeAddressUtxoList(msg)
	if err != nil {
		return nil, internalError(methodGetAddressUtxos, fmt.Errorf(decodeFailedMessageFormat, methodGetAddressUtxos, err))
	}
	return utxos, nil
}

// GetTransaction looks a transaction up by its txid in internal byte order.
func (c *Client) GetTransaction(ctx context.Context, chain model.ChainID, txHash []byte) (RawTransaction, error) {
	msg, err := c.unary(ctx, chain, methodGetTransaction, encodeTxFilter(txHash))
	if err != nil {
		return RawTransaction{}, err
	}
	tx, err := decodeRawTransaction(msg)
	if err != nil {
		return RawTransaction{}, internalError(methodGetTransaction, fmt.Errorf(decodeFailedMessageFormat, methodGetTransaction, err))
	}
	return tx, nil
}

// SendTransaction broadcasts a raw transaction.
func (c *Client) SendTransaction(ctx context.Context, chain model.ChainID, raw []byte) (SendResponse, error) {
	msg, err := c.unary(ctx, chain, methodSendTransaction, encodeRawTransaction(raw))
	if err != nil {
		return SendResponse{}, err
	}
	resp, err := decodeSendResponse(msg)
	if err != nil {
		return SendResponse{}, internalError(methodSendTransaction, fmt.Errorf(decodeFailedMessageFormat, methodSendTransaction, err))
	}
	return resp, nil
}

// IsKnownAddress reports whether any transaction touches the address inside
// the range. The stream is dropped after the first message.
func (c *Client) IsKnownAddress(ctx context.Context, chain model.ChainID, address string, r BlockRange) (bool, error) {
	messages, err := c.stream(ctx, chain, methodGetTaddressTxids, encodeTransparentAddressBlockFilter(address, r), grpcweb.DefaultMaxMessageSize, true)
	if err != nil {
		return false, err
	}
	return len(messages) > 0, nil
}

// GetCompactBlocks streams every compact block in the inclusive range.
func (c *Client) GetCompactBlocks(ctx context.Context, chain model.ChainID, r BlockRange) ([]CompactBlock, error) {
	messages, err := c.stream(ctx, chain, methodGetBlockRange, encodeBlockRange(r), grpcweb.BlockRangeMaxMessageSize, false)
	if err != nil {
		return nil, err
	}
	blocks := make([]CompactBlock, 0, len(messages))
	for _, msg := range messages {
		block, decodeErr := decodeCompactBlock(msg)
		if decodeErr != nil {
			return nil, internalError(methodGetBlockRange, fmt.Errorf(decodeFailedMessageFormat, methodGetBlockRange, decodeErr))
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// GetSubtreeRoots streams Orchard subtree roots starting at startIndex.
// A zero count asks for every available root.
func (c *Client) GetSubtreeRoots(ctx context.Context, chain model.ChainID, startIndex, count uint32) ([]SubtreeRoot, error) {
	request := encodeGetSubtreeRootsArg(startIndex, count, ShieldedProtocolOrchard)
	messages, err := c.stream(ctx, chain, methodGetSubtreeRoots, request, grpcweb.DefaultMaxMessageSize, false)
	if err != nil {
		return nil, err
	}
	roots := make([]SubtreeRoot, 0, len(messages))
	for _, msg := range messages {
		root, decodeErr := decodeSubtreeRoot(msg)
		if decodeErr != nil {
			return nil, internalError(methodGetSubtreeRoots, fmt.Errorf(decodeFailedMessageFormat, methodGetSubtreeRoots, decodeErr))
		}
		roots = append(roots, root)
	}
	return roots, nil
}
