package zcash

import "github.com/btcsuite/btcd/wire"

// ZIP-317 conventional fee constants.
const (
	MarginalFee           uint64 = 5000
	GraceActions          uint64 = 2
	P2PKHStandardInSize   uint64 = 150
	P2PKHStandardOutSize  uint64 = 34
	P2PKHSigScriptMaxSize uint64 = 107

	// DustThreshold is the smallest transparent change worth creating: a
	// smaller output costs at least its value in fees to spend.
	DustThreshold = MarginalFee
)

// FeeZIP317 computes the conventional fee from transparent input and output
// byte sizes and the number of Orchard actions.
func FeeZIP317(transparentInSize, transparentOutSize, orchardActions uint64) uint64 {
	nIn := ceilDiv(transparentInSize, P2PKHStandardInSize)
	nOut := ceilDiv(transparentOutSize, P2PKHStandardOutSize)

	logicalActions := max(nIn, nOut) + orchardActions
	return MarginalFee * max(GraceActions, logicalActions)
}

// TransparentInputSize is the serialized size of a signed P2PKH input.
func TransparentInputSize() uint64 {
	return 32 + 4 + uint64(wire.VarIntSerializeSize(P2PKHSigScriptMaxSize)) + P2PKHSigScriptMaxSize + 4
}

// TransparentOutputSize is the serialized size of an output with script.
func TransparentOutputSize(script []byte) uint64 {
	return 8 + uint64(wire.VarIntSerializeSize(uint64(len(script)))) + uint64(len(script))
}

// OrchardActions is the number of actions an Orchard bundle pads to.
func OrchardActions(spends, outputs int) uint64 {
	if spends == 0 && outputs == 0 {
		return 0
	}
	return uint64(max(2, spends, outputs))
}

// EstimateFee returns the ZIP-317 fee of the transaction as currently shaped.
func EstimateFee(tx *Transaction) uint64 {
	var inSize, outSize uint64
	for range tx.Transparent.Inputs {
		inSize += TransparentInputSize()
	}
	for _, out := range tx.Transparent.Outputs {
		outSize += TransparentOutputSize(out.ScriptPubKey)
	}
	return FeeZIP317(inSize, outSize, OrchardActions(len(tx.Orchard.Inputs), len(tx.Orchard.Outputs)))
}

func ceilDiv(a, b uint64) uint64 {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}
