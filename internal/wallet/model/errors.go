package model

import (
	"errors"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

var (
	// ErrInsufficientFunds is returned when spendable funds cannot cover amount and fee.
	ErrInsufficientFunds = zcash.ErrInsufficientFunds
	// ErrKeyNotFound is returned when the key provider has no key for an address or account.
	ErrKeyNotFound = zcash.ErrKeyNotFound
	// ErrWitnessUnavailable is returned when a note has no witness at the requested anchor.
	ErrWitnessUnavailable = errors.New("witness unavailable at anchor")
	// ErrTransactionInFlight is returned when the account already has a submitted transaction on the chain.
	ErrTransactionInFlight = errors.New("another transaction is in flight for the account")
	// ErrNotSupported is returned for speedup and retry requests.
	ErrNotSupported = errors.New("operation not supported for this chain")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState is returned when a transition is not allowed from the current status.
	ErrInvalidState = errors.New("invalid transaction state")
)
