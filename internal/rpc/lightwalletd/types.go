package lightwalletd

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, chain model.ChainID, err error, started time.Time)
	}
)
