// Package metrics exposes application metrics collectors.
package metrics

import "github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"

const namespace = "zcashwallet"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func chainLabel(chain model.ChainID) string {
	if chain == "" {
		return "unknown"
	}
	return string(chain)
}
