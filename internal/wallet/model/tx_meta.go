package model

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

// TxStatus describes where a transaction is in its lifecycle.
type TxStatus string

var (
	TxUnapproved TxStatus = "unapproved"
	TxApproved   TxStatus = "approved"
	TxSubmitted  TxStatus = "submitted"
	TxConfirmed  TxStatus = "confirmed"
	TxRejected   TxStatus = "rejected"
	TxError      TxStatus = "error"
)

// Terminal reports whether no further transition is allowed.
func (s TxStatus) Terminal() bool {
	return s == TxConfirmed || s == TxRejected || s == TxError
}

// TxMeta wraps a transaction with its orchestration state.
type TxMeta struct {
	ID           string
	Account      string
	Origin       string
	Chain        ChainID
	CreatedAt    time.Time
	SubmittedAt  time.Time
	ConfirmedAt  time.Time
	TxHash       string
	Status       TxStatus
	ErrorMessage string
	Tx           *zcash.Transaction
}

// TxRequest asks for a payment from an account.
type TxRequest struct {
	Account string
	// From restricts transparent coin selection to one address. Empty means
	// every address of the account.
	From   string
	To     string
	Amount uint64
	Memo   []byte
}

// SubmissionResult is returned by Approve. ErrorMessage is empty iff Success.
type SubmissionResult struct {
	Success      bool
	TxHash       string
	ErrorMessage string
}

// TxEvent records a lifecycle transition for the archive.
type TxEvent struct {
	TxID      string
	Account   string
	Chain     ChainID
	Status    TxStatus
	TxHash    string
	Message   string
	Timestamp time.Time
}
