package zcash

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// ErrKeyNotFound is returned by a Signer that holds no key for an address.
var ErrKeyNotFound = errors.New("signing key not found")

// Signer signs transparent digests on behalf of an account.
type Signer interface {
	// SignDigest returns a DER signature over digest and the compressed
	// public key that verifies it.
	SignDigest(ctx context.Context, account, address string, digest [32]byte) (signature, pubKey []byte, err error)
}

// SignTransparentPart signs every unsigned transparent input with a P2PKH
// unlocking script. On failure the inputs signed so far keep their scripts.
func SignTransparentPart(ctx context.Context, signer Signer, account string, tx *Transaction) error {
	for i := range tx.Transparent.Inputs {
		in := &tx.Transparent.Inputs[i]
		if in.IsSigned() {
			continue
		}

		digest := CalculateSignatureDigest(tx, in)
		signature, pubKey, err := signer.SignDigest(ctx, account, in.Address, digest)
		if err != nil {
			return fmt.Errorf("sign input %d (%s): %w", i, in.Address, err)
		}

		script, err := txscript.NewScriptBuilder().
			AddData(append(bytes.Clone(signature), sigHashAll)).
			AddData(pubKey).
			Script()
		if err != nil {
			return fmt.Errorf("build unlocking script for input %d: %w", i, err)
		}
		in.ScriptSig = script
	}
	return nil
}
