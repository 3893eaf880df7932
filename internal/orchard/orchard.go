// Package orchard declares the shielded pool library the wallet drives.
// Proof generation, note encryption and the commitment tree live behind
// these interfaces.
package orchard

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

// ErrUnavailable is returned by Unavailable for every shielded operation.
var ErrUnavailable = errors.New("orchard library unavailable")

// Keys is the Orchard key material of an account.
type Keys struct {
	FullViewingKey []byte
	SpendingKey    []byte
}

// BundleRequest describes the Orchard actions to build.
type BundleRequest struct {
	Keys         Keys
	Spends       []zcash.OrchardInput
	Outputs      []zcash.OrchardOutput
	AnchorHeight uint64
	// Frontier is the decoded Orchard tree frontier at the anchor.
	Frontier []byte
}

// Bundle is an unauthorized bundle and its ZIP-244 digest.
type Bundle struct {
	Data   []byte
	Digest [32]byte
}

// ScanRequest is one batch of compact blocks to trial-decrypt.
type ScanRequest struct {
	FullViewingKey  []byte
	Blocks          []lightwalletd.CompactBlock
	KnownNullifiers [][32]byte
	// TreeState is the opaque commitment tree state before the first block.
	TreeState []byte
}

// DiscoveredNote is a note found while scanning.
type DiscoveredNote struct {
	Note        zcash.OrchardNote
	BlockHeight uint64
	TxHash      []byte
}

// ScanResult is the outcome of ScanBlocks.
type ScanResult struct {
	Notes []DiscoveredNote
	Spent [][32]byte
	// TreeState is the opaque commitment tree state after the last block.
	TreeState []byte
}

// Library is the shielded pool library.
type Library interface {
	// ParseAddress returns the raw Orchard receiver of a unified address.
	ParseAddress(address string, params *zcash.Params) ([zcash.OrchardAddressSize]byte, bool)
	BuildBundle(ctx context.Context, req BundleRequest) (Bundle, error)
	// ProveAndSign authorizes the bundle over sighash and returns its
	// transaction encoding.
	ProveAndSign(ctx context.Context, bundle Bundle, spendingKey []byte, sighash [32]byte) ([]byte, error)
	ScanBlocks(ctx context.Context, req ScanRequest) (ScanResult, error)
	// Witness computes the authentication path of the note at position
	// against the tree state of an anchor.
	Witness(ctx context.Context, treeState []byte, position uint64) ([]byte, error)
}

// Unavailable is the Library used when shielded support is disabled.
type Unavailable struct{}

func (Unavailable) ParseAddress(string, *zcash.Params) ([zcash.OrchardAddressSize]byte, bool) {
	return [zcash.OrchardAddressSize]byte{}, false
}

func (Unavailable) BuildBundle(context.Context, BundleRequest) (Bundle, error) {
	return Bundle{}, ErrUnavailable
}

func (Unavailable) ProveAndSign(context.Context, Bundle, []byte, [32]byte) ([]byte, error) {
	return nil, ErrUnavailable
}

func (Unavailable) ScanBlocks(context.Context, ScanRequest) (ScanResult, error) {
	return ScanResult{}, ErrUnavailable
}

func (Unavailable) Witness(context.Context, []byte, uint64) ([]byte, error) {
	return nil, ErrUnavailable
}
