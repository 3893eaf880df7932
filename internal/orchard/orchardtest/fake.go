// Package orchardtest provides a deterministic stand-in for the shielded
// pool library.
//
// Addresses are "zfake1" followed by the hex receiver. An action belongs to
// a viewing key when its ciphertext starts with the key; the next 8 bytes
// are the little-endian value and the nullifier is sha256(cmx). The tree
// state is the big-endian leaf count.
package orchardtest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/orchard"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

const addressPrefix = "zfake1"

// ErrNotInTree is returned by Witness for positions past the tree size.
var ErrNotInTree = errors.New("note is not in the tree state")

// Library is a fake orchard.Library.
type Library struct{}

var _ orchard.Library = Library{}

// Address renders a raw receiver as a fake unified address.
func Address(receiver [zcash.OrchardAddressSize]byte) string {
	return addressPrefix + hex.EncodeToString(receiver[:])
}

// Ciphertext encrypts value to the viewing key.
func Ciphertext(fvk []byte, value uint64) []byte {
	return binary.LittleEndian.AppendUint64(bytes.Clone(fvk), value)
}

// Nullifier is the nullifier the fake assigns to a note commitment.
func Nullifier(cmx []byte) [32]byte {
	return sha256.Sum256(cmx)
}

// TreeState encodes a tree of size leaves.
func TreeState(size uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, size)
}

func treeSize(state []byte) (uint64, error) {
	if len(state) == 0 {
		return 0, nil
	}
	if len(state) != 8 {
		return 0, fmt.Errorf("bad tree state length %d", len(state))
	}
	return binary.BigEndian.Uint64(state), nil
}

func (Library) ParseAddress(address string, _ *zcash.Params) ([zcash.OrchardAddressSize]byte, bool) {
	var out [zcash.OrchardAddressSize]byte
	rest, ok := strings.CutPrefix(address, addressPrefix)
	if !ok {
		return out, false
	}
	raw, err := hex.DecodeString(rest)
	if err != nil || len(raw) != len(out) {
		return out, false
	}
	copy(out[:], raw)
	return out, true
}

func (Library) BuildBundle(_ context.Context, req orchard.BundleRequest) (orchard.Bundle, error) {
	var data bytes.Buffer
	for _, in := range req.Spends {
		if len(in.Witness) == 0 {
			return orchard.Bundle{}, fmt.Errorf("spend %x has no witness", in.Note.Nullifier)
		}
		data.Write(in.Note.Nullifier[:])
	}
	for _, out := range req.Outputs {
		data.Write(out.Address[:])
		data.Write(binary.LittleEndian.AppendUint64(nil, out.Value))
	}
	data.Write(binary.LittleEndian.AppendUint64(nil, req.AnchorHeight))
	return orchard.Bundle{Data: data.Bytes(), Digest: sha256.Sum256(data.Bytes())}, nil
}

func (Library) ProveAndSign(_ context.Context, bundle orchard.Bundle, spendingKey []byte, sighash [32]byte) ([]byte, error) {
	if len(spendingKey) == 0 {
		return nil, errors.New("empty spending key")
	}
	out := []byte{0x01}
	out = append(out, bundle.Data...)
	return append(out, sighash[:]...), nil
}

func (Library) ScanBlocks(_ context.Context, req orchard.ScanRequest) (orchard.ScanResult, error) {
	size, err := treeSize(req.TreeState)
	if err != nil {
		return orchard.ScanResult{}, err
	}
	known := make(map[[32]byte]struct{}, len(req.KnownNullifiers))
	for _, nf := range req.KnownNullifiers {
		known[nf] = struct{}{}
	}

	var res orchard.ScanResult
	for _, block := range req.Blocks {
		for _, tx := range block.Vtx {
			for _, action := range tx.Actions {
				var spent [32]byte
				copy(spent[:], action.Nullifier)
				if _, ok := known[spent]; ok {
					res.Spent = append(res.Spent, spent)
				}
				if note, ok := trialDecrypt(req.FullViewingKey, action.Cmx, action.Ciphertext, size); ok {
					res.Notes = append(res.Notes, orchard.DiscoveredNote{
						Note:        note,
						BlockHeight: block.Height,
						TxHash:      tx.Hash,
					})
				}
				size++
			}
		}
	}
	res.TreeState = TreeState(size)
	return res, nil
}

func trialDecrypt(fvk, cmx, ciphertext []byte, position uint64) (zcash.OrchardNote, bool) {
	if len(fvk) == 0 || len(ciphertext) < len(fvk)+8 || !bytes.HasPrefix(ciphertext, fvk) {
		return zcash.OrchardNote{}, false
	}
	note := zcash.OrchardNote{
		Value:     binary.LittleEndian.Uint64(ciphertext[len(fvk):]),
		Nullifier: Nullifier(cmx),
		Position:  position,
		Data:      bytes.Clone(cmx),
	}
	copy(note.Address[:], fvk)
	return note, true
}

func (Library) Witness(_ context.Context, treeState []byte, position uint64) ([]byte, error) {
	size, err := treeSize(treeState)
	if err != nil {
		return nil, err
	}
	if position >= size {
		return nil, ErrNotInTree
	}
	return binary.BigEndian.AppendUint64(TreeState(size), position), nil
}
