package completer

import (
	"github.com/goodnatureofminers/zcashwallet-backend/internal/orchard"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

type step int

const (
	stepChainTip step = iota
	stepAnchor
	stepWitnesses
	stepTreeState
	stepBundle
	stepTransparentSignatures
	stepDone
)

var stepNames = [...]string{
	stepChainTip:              "chain_tip",
	stepAnchor:                "anchor",
	stepWitnesses:             "witnesses",
	stepTreeState:             "tree_state",
	stepBundle:                "bundle",
	stepTransparentSignatures: "transparent_signatures",
	stepDone:                  "done",
}

func (s step) String() string {
	return stepNames[s]
}

// task completes one transaction. Every field left nil is a step still to
// run; next picks the first one in order.
type task struct {
	id      uint64
	account string
	chain   model.ChainID
	tx      *zcash.Transaction

	tip *uint64
	// anchor and anchorTree are the chosen anchor height and, when notes
	// are spent, the local tree state of the checkpoint at that height.
	anchor     *uint64
	anchorTree []byte
	witnessed  bool
	frontier   []byte
	bundle     *orchard.Bundle
}

func (t *task) next() step {
	switch {
	case t.tip == nil:
		return stepChainTip
	case t.tx.HasOrchardPart() && t.anchor == nil:
		return stepAnchor
	case len(t.tx.Orchard.Inputs) > 0 && !t.witnessed:
		return stepWitnesses
	case t.tx.HasOrchardPart() && t.frontier == nil:
		return stepTreeState
	case t.tx.HasOrchardPart() && t.bundle == nil:
		return stepBundle
	case !t.tx.IsTransparentPartSigned():
		return stepTransparentSignatures
	default:
		return stepDone
	}
}
