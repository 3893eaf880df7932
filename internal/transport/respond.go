package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/lifecycle"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// zatDecimals is the number of decimal places of one ZEC.
const zatDecimals = 8

var errBadAmount = errors.New("amount must be a positive ZEC value with at most 8 decimals")

type errorBody struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errorCodes = []struct {
	err    error
	status int
	code   string
}{
	{model.ErrNotFound, http.StatusNotFound, "not_found"},
	{model.ErrUnknownChain, http.StatusNotFound, "unknown_chain"},
	{model.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{model.ErrTransactionInFlight, http.StatusConflict, "transaction_in_flight"},
	{model.ErrInsufficientFunds, http.StatusUnprocessableEntity, "insufficient_funds"},
	{model.ErrWitnessUnavailable, http.StatusServiceUnavailable, "witness_unavailable"},
	{model.ErrKeyNotFound, http.StatusBadRequest, "key_not_found"},
	{model.ErrNotSupported, http.StatusNotImplemented, "not_supported"},
	{lifecycle.ErrInvalidRequest, http.StatusBadRequest, "bad_request"},
	{zcash.ErrInvalidAddress, http.StatusBadRequest, "invalid_address"},
	{errBadAmount, http.StatusBadRequest, "bad_request"},
}

// errorStatus maps err to an HTTP status and a stable code. fallback is
// used for errors of no known kind.
func errorStatus(err error, fallback int) (int, string) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.status, c.code
		}
	}
	if fallback == http.StatusBadGateway {
		return fallback, "upstream_error"
	}
	return fallback, "internal"
}

func (a *API) sendJSON(w http.ResponseWriter, status int, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		a.sendError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		a.logger.Debug("write response failed", zap.Error(err))
	}
}

func (a *API) sendError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err, http.StatusInternalServerError)
	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed", zap.String("code", code), zap.Error(err))
	}
	a.sendJSON(w, status, errorBody{Error: errorInfo{Code: code, Message: err.Error()}})
}

// parseZEC converts a decimal ZEC amount to zatoshis.
func parseZEC(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadAmount, s)
	}
	zat := d.Shift(zatDecimals)
	if !zat.IsInteger() || zat.Sign() <= 0 || !zat.BigInt().IsUint64() {
		return 0, fmt.Errorf("%w: %q", errBadAmount, s)
	}
	return zat.BigInt().Uint64(), nil
}

// formatZEC renders zatoshis as a decimal ZEC amount.
func formatZEC(zat uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(zat), -zatDecimals).StringFixed(zatDecimals)
}

type txView struct {
	ID           string     `json:"id"`
	Account      string     `json:"account"`
	Chain        string     `json:"chain"`
	Origin       string     `json:"origin,omitempty"`
	Status       string     `json:"status"`
	To           string     `json:"to"`
	Amount       string     `json:"amount"`
	AmountZat    uint64     `json:"amount_zat"`
	Fee          string     `json:"fee"`
	FeeZat       uint64     `json:"fee_zat"`
	Memo         string     `json:"memo,omitempty"`
	ExpiryHeight uint32     `json:"expiry_height,omitempty"`
	TxHash       string     `json:"tx_hash,omitempty"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func newTxView(meta model.TxMeta) txView {
	v := txView{
		ID:          meta.ID,
		Account:     meta.Account,
		Chain:       string(meta.Chain),
		Origin:      meta.Origin,
		Status:      string(meta.Status),
		TxHash:      meta.TxHash,
		Error:       meta.ErrorMessage,
		CreatedAt:   meta.CreatedAt,
		SubmittedAt: optionalTime(meta.SubmittedAt),
		ConfirmedAt: optionalTime(meta.ConfirmedAt),
	}
	if tx := meta.Tx; tx != nil {
		v.To = tx.To
		v.AmountZat, v.Amount = tx.Amount, formatZEC(tx.Amount)
		v.FeeZat, v.Fee = tx.Fee, formatZEC(tx.Fee)
		v.Memo = string(tx.Memo)
		v.ExpiryHeight = tx.ExpiryHeight
	}
	return v
}

type syncView struct {
	Account             string `json:"account"`
	Chain               string `json:"chain"`
	State               string `json:"state"`
	Current             uint64 `json:"current_height"`
	Target              uint64 `json:"target_height"`
	SpendableBalance    string `json:"spendable_balance"`
	SpendableBalanceZat uint64 `json:"spendable_balance_zat"`
}

func newSyncView(st model.SyncStatus) syncView {
	return syncView{
		Account:             st.Account,
		Chain:               string(st.Chain),
		State:               string(st.State),
		Current:             st.Current,
		Target:              st.Target,
		SpendableBalance:    formatZEC(st.SpendableBalance),
		SpendableBalanceZat: st.SpendableBalance,
	}
}

type eventView struct {
	Status    string    `json:"status"`
	TxHash    string    `json:"tx_hash,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
