// Package zcash models v5 Zcash transactions: the transparent and Orchard
// parts, ZIP-244 digests, raw serialization and transparent signing.
package zcash

import "fmt"

const (
	// TxVersion is the only transaction version produced.
	TxVersion uint32 = 5
	// VersionGroupID is the NU5 version group.
	VersionGroupID uint32 = 0x26A7270A

	overwinteredFlag uint32 = 1 << 31

	// BranchIDNU5 and BranchIDNU6 are consensus branch ids.
	BranchIDNU5 uint32 = 0xC2D6D0B4
	BranchIDNU6 uint32 = 0xC8E71055

	// DefaultSequence disables lock time checks for an input.
	DefaultSequence uint32 = 0xffffffff

	// OrchardAddressSize is the size of a raw Orchard receiver.
	OrchardAddressSize = 43
	// OrchardMemoSize is the size of an Orchard memo field.
	OrchardMemoSize = 512

	sigHashAll byte = 0x01
)

// Params holds the per-network address prefixes and the active branch.
type Params struct {
	Name              string
	PubKeyHashAddrID  [2]byte
	ScriptHashAddrID  [2]byte
	ConsensusBranchID uint32
}

var (
	// MainNetParams are the Zcash mainnet parameters.
	MainNetParams = &Params{
		Name:              "mainnet",
		PubKeyHashAddrID:  [2]byte{0x1C, 0xB8},
		ScriptHashAddrID:  [2]byte{0x1C, 0xBD},
		ConsensusBranchID: BranchIDNU6,
	}
	// TestNetParams are the Zcash testnet parameters.
	TestNetParams = &Params{
		Name:              "testnet",
		PubKeyHashAddrID:  [2]byte{0x1D, 0x25},
		ScriptHashAddrID:  [2]byte{0x1C, 0xBA},
		ConsensusBranchID: BranchIDNU6,
	}
)

// ParamsForNetwork returns the parameters for a network name.
func ParamsForNetwork(name string) (*Params, error) {
	switch name {
	case MainNetParams.Name:
		return MainNetParams, nil
	case TestNetParams.Name:
		return TestNetParams, nil
	default:
		return nil, fmt.Errorf("unknown zcash network %q", name)
	}
}
