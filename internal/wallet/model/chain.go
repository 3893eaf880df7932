// Package model defines domain models for the wallet engine.
package model

import (
	"errors"
	"fmt"
)

type ChainID string

var (
	ZcashMainnet ChainID = "zcash_mainnet"
	ZcashTestnet ChainID = "zcash_testnet"
)

// Network returns the address network name of the chain.
func (c ChainID) Network() string {
	switch c {
	case ZcashMainnet:
		return "mainnet"
	case ZcashTestnet:
		return "testnet"
	}
	return ""
}

// OrchardActivation is the NU5 activation height, the earliest height that
// can hold Orchard notes.
func (c ChainID) OrchardActivation() uint64 {
	switch c {
	case ZcashMainnet:
		return 1687104
	case ZcashTestnet:
		return 1842420
	}
	return 0
}

// ErrUnknownChain is returned by ParseChain.
var ErrUnknownChain = errors.New("unknown chain")

// Chains lists the supported chains.
func Chains() []ChainID {
	return []ChainID{ZcashMainnet, ZcashTestnet}
}

// ParseChain accepts a chain id or its network name.
func ParseChain(name string) (ChainID, error) {
	for _, c := range Chains() {
		if name == string(c) || name == c.Network() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChain, name)
}
