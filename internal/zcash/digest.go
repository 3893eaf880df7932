package zcash

import (
	"encoding/binary"
	"hash"
	"io"

	"github.com/btcsuite/btcd/wire"
	"github.com/dchest/blake2b"
)

// ZIP-244 personalizations.
const (
	personalizationTxHash      = "ZcashTxHash_"
	personalizationHeaders     = "ZTxIdHeadersHash"
	personalizationTransparent = "ZTxIdTranspaHash"
	personalizationPrevouts    = "ZTxIdPrevoutHash"
	personalizationSequences   = "ZTxIdSequencHash"
	personalizationOutputs     = "ZTxIdOutputsHash"
	personalizationAmounts     = "ZTxTrAmountsHash"
	personalizationScripts     = "ZTxTrScriptsHash"
	personalizationTxIn        = "Zcash___TxInHash"
	personalizationSapling     = "ZTxIdSaplingHash"
	personalizationOrchard     = "ZTxIdOrchardHash"
)

func newHash(person []byte) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: 32, Person: person})
	if err != nil {
		// Only reachable with a personalization longer than 16 bytes.
		panic(err)
	}
	return h
}

func sum(h hash.Hash) (out [32]byte) {
	copy(out[:], h.Sum(nil))
	return out
}

func writeUint32(w io.Writer, v uint32) {
	var i [4]byte
	binary.LittleEndian.PutUint32(i[:], v)
	_, _ = w.Write(i[:])
}

func writeUint64(w io.Writer, v uint64) {
	var i [8]byte
	binary.LittleEndian.PutUint64(i[:], v)
	_, _ = w.Write(i[:])
}

func writeVarBytes(w io.Writer, b []byte) {
	_ = wire.WriteVarBytes(w, 0, b)
}

// HashHeader digests version, group id, branch id, lock time and expiry.
func HashHeader(tx *Transaction) [32]byte {
	h := newHash([]byte(personalizationHeaders))
	writeUint32(h, TxVersion|overwinteredFlag)
	writeUint32(h, VersionGroupID)
	writeUint32(h, tx.ConsensusBranchID)
	writeUint32(h, tx.LockTime)
	writeUint32(h, tx.ExpiryHeight)
	return sum(h)
}

// HashPrevouts digests every input outpoint in order.
func HashPrevouts(tx *Transaction) [32]byte {
	h := newHash([]byte(personalizationPrevouts))
	for _, in := range tx.Transparent.Inputs {
		_, _ = h.Write(in.Outpoint.TxID[:])
		writeUint32(h, in.Outpoint.Index)
	}
	return sum(h)
}

// HashSequences digests every input sequence number in order.
func HashSequences(tx *Transaction) [32]byte {
	h := newHash([]byte(personalizationSequences))
	for _, in := range tx.Transparent.Inputs {
		writeUint32(h, in.Sequence)
	}
	return sum(h)
}

// HashOutputs digests every output value and script in order.
func HashOutputs(tx *Transaction) [32]byte {
	h := newHash([]byte(personalizationOutputs))
	for _, out := range tx.Transparent.Outputs {
		writeUint64(h, out.Value)
		writeVarBytes(h, out.ScriptPubKey)
	}
	return sum(h)
}

// HashAmounts digests the value of every spent output.
func HashAmounts(tx *Transaction) [32]byte {
	h := newHash([]byte(personalizationAmounts))
	for _, in := range tx.Transparent.Inputs {
		writeUint64(h, in.Value)
	}
	return sum(h)
}

// HashScriptPubKeys digests the locking script of every spent output.
func HashScriptPubKeys(tx *Transaction) [32]byte {
	h := newHash([]byte(personalizationScripts))
	for _, in := range tx.Transparent.Inputs {
		writeVarBytes(h, in.ScriptPubKey)
	}
	return sum(h)
}

// HashTxIn binds a single input. A nil input yields the empty digest used
// when no transparent input is being signed.
func HashTxIn(in *TransparentInput) [32]byte {
	h := newHash([]byte(personalizationTxIn))
	if in == nil {
		return sum(h)
	}
	_, _ = h.Write(in.Outpoint.TxID[:])
	writeUint32(h, in.Outpoint.Index)
	writeUint64(h, in.Value)
	writeVarBytes(h, in.ScriptPubKey)
	writeUint32(h, in.Sequence)
	return sum(h)
}

// HashTransparent is the transparent digest used in the transaction id.
func HashTransparent(tx *Transaction) [32]byte {
	h := newHash([]byte(personalizationTransparent))
	if len(tx.Transparent.Inputs) == 0 && len(tx.Transparent.Outputs) == 0 {
		return sum(h)
	}
	prevouts := HashPrevouts(tx)
	sequences := HashSequences(tx)
	outputs := HashOutputs(tx)
	_, _ = h.Write(prevouts[:])
	_, _ = h.Write(sequences[:])
	_, _ = h.Write(outputs[:])
	return sum(h)
}

// HashSapling is always the empty Sapling digest.
func HashSapling() [32]byte {
	return sum(newHash([]byte(personalizationSapling)))
}

// HashOrchard returns the bundle digest computed by the shielded pool
// library, or the empty Orchard digest when there is no bundle.
func HashOrchard(tx *Transaction) [32]byte {
	if tx.Orchard.Digest != nil {
		return *tx.Orchard.Digest
	}
	return sum(newHash([]byte(personalizationOrchard)))
}

func transparentSigDigest(tx *Transaction, in *TransparentInput) [32]byte {
	if len(tx.Transparent.Inputs) == 0 {
		return HashTransparent(tx)
	}

	h := newHash([]byte(personalizationTransparent))
	prevouts := HashPrevouts(tx)
	amounts := HashAmounts(tx)
	scripts := HashScriptPubKeys(tx)
	sequences := HashSequences(tx)
	outputs := HashOutputs(tx)
	txIn := HashTxIn(in)

	_, _ = h.Write([]byte{sigHashAll})
	_, _ = h.Write(prevouts[:])
	_, _ = h.Write(amounts[:])
	_, _ = h.Write(scripts[:])
	_, _ = h.Write(sequences[:])
	_, _ = h.Write(outputs[:])
	_, _ = h.Write(txIn[:])
	return sum(h)
}

func txHashPersonalization(branchID uint32) []byte {
	person := make([]byte, 16)
	copy(person, personalizationTxHash)
	binary.LittleEndian.PutUint32(person[12:], branchID)
	return person
}

func rootDigest(tx *Transaction, transparent [32]byte) [32]byte {
	h := newHash(txHashPersonalization(tx.ConsensusBranchID))
	header := HashHeader(tx)
	sapling := HashSapling()
	orchard := HashOrchard(tx)
	_, _ = h.Write(header[:])
	_, _ = h.Write(transparent[:])
	_, _ = h.Write(sapling[:])
	_, _ = h.Write(orchard[:])
	return sum(h)
}

// CalculateTxIDDigest returns the transaction id digest. It does not depend
// on any unlocking script.
func CalculateTxIDDigest(tx *Transaction) [32]byte {
	return rootDigest(tx, HashTransparent(tx))
}

// CalculateSignatureDigest returns the SIGHASH_ALL digest for in, or the
// shielded signature digest when in is nil.
func CalculateSignatureDigest(tx *Transaction, in *TransparentInput) [32]byte {
	return rootDigest(tx, transparentSigDigest(tx, in))
}
