package zcash

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// ErrInvalidAddress is returned for strings that are not transparent addresses
// of the expected network.
var ErrInvalidAddress = errors.New("invalid transparent address")

// DecodeAddress parses a transparent address. Zcash uses a two byte address
// id, so the payload is rebuilt as a btcutil address for script building.
func DecodeAddress(addr string, params *Params) (btcutil.Address, error) {
	b := base58.Decode(addr)
	if len(b) != 2+20+4 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidAddress, len(b))
	}

	var cksum [4]byte
	copy(cksum[:], b[len(b)-4:])
	if checksum(b[:len(b)-4]) != cksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}

	var addrID [2]byte
	copy(addrID[:], b[:2])
	data := b[2 : len(b)-4]

	switch addrID {
	case params.PubKeyHashAddrID:
		return btcutil.NewAddressPubKeyHash(data, &chaincfg.MainNetParams)
	case params.ScriptHashAddrID:
		return btcutil.NewAddressScriptHashFromHash(data, &chaincfg.MainNetParams)
	}
	return nil, fmt.Errorf("%w: unknown address id %x for %s", ErrInvalidAddress, addrID, params.Name)
}

// EncodeAddress renders a btcutil address with the network's address id.
func EncodeAddress(addr btcutil.Address, params *Params) (string, error) {
	switch addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return b58Encode(addr.ScriptAddress(), params.PubKeyHashAddrID), nil
	case *btcutil.AddressScriptHash:
		return b58Encode(addr.ScriptAddress(), params.ScriptHashAddrID), nil
	}
	return "", fmt.Errorf("unsupported address type %T", addr)
}

// PubKeyHashAddress returns the P2PKH address of a serialized public key.
func PubKeyHashAddress(pubKey []byte, params *Params) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubKey), &chaincfg.MainNetParams)
	if err != nil {
		return "", err
	}
	return EncodeAddress(addr, params)
}

// PayToAddrScript returns the locking script paying to addr.
func PayToAddrScript(addr string, params *Params) ([]byte, error) {
	decoded, err := DecodeAddress(addr, params)
	if err != nil {
		return nil, err
	}
	return txscript.PayToAddrScript(decoded)
}

// IsTransparentAddress reports whether addr decodes for the network.
func IsTransparentAddress(addr string, params *Params) bool {
	_, err := DecodeAddress(addr, params)
	return err == nil
}

func b58Encode(input []byte, addrID [2]byte) string {
	b := make([]byte, 0, 2+len(input)+4)
	b = append(b, addrID[:]...)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

func checksum(input []byte) (cksum [4]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return cksum
}
