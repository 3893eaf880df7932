package model

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

// AccountMeta is the persisted scan position of an account on a chain.
type AccountMeta struct {
	Account           string
	Chain             ChainID
	NextScanHeight    uint64
	LatestKnownHeight uint64
}

// SyncCheckpoint is a trusted commitment tree checkpoint.
type SyncCheckpoint struct {
	Account   string
	Chain     ChainID
	Height    uint64
	BlockHash string
}

// Note is an Orchard note discovered by the scanner.
type Note struct {
	zcash.OrchardNote
	Account     string
	Chain       ChainID
	BlockHeight uint64
	TxHash      string
	Spent       bool
}

// ScanBatch is the all-or-nothing result of scanning one batch of blocks.
type ScanBatch struct {
	Account         string
	Chain           ChainID
	FromHeight      uint64
	ToHeight        uint64
	Notes           []Note
	SpentNullifiers [][32]byte
	// TreeState is the opaque commitment tree state after ToHeight.
	TreeState      []byte
	NextScanHeight uint64
	Checkpoint     SyncCheckpoint
	ScannedAt      time.Time
}

// SyncState describes what the scanner is doing for an account.
type SyncState string

var (
	SyncIdle    SyncState = "idle"
	SyncRunning SyncState = "running"
	SyncPaused  SyncState = "paused"
	SyncFailed  SyncState = "failed"
)

// SyncStatus is pushed to observers after every batch and on pause/resume.
type SyncStatus struct {
	Account          string
	Chain            ChainID
	State            SyncState
	Current          uint64
	Target           uint64
	SpendableBalance uint64
}
