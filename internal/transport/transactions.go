package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/lifecycle"
	"github.com/julienschmidt/httprouter"
)

const (
	defaultOrigin  = "api"
	maxRequestBody = 1 << 16
)

type createRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	Memo   string `json:"memo"`
	Origin string `json:"origin"`
}

type createResponse struct {
	ID          string `json:"id"`
	Transaction txView `json:"transaction"`
}

type approveResponse struct {
	Success bool   `json:"success"`
	TxHash  string `json:"tx_hash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// POST /v1/chains/:chain/accounts/:account/transactions
// { "to": "t1...", "amount": "0.01", "memo": "..." } -> { id, transaction }
func (a *API) createTransaction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	chain, err := model.ParseChain(p.ByName("chain"))
	if err != nil {
		a.sendError(w, err)
		return
	}

	var body createRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&body); err != nil {
		a.sendError(w, fmt.Errorf("%w: decode body: %w", lifecycle.ErrInvalidRequest, err))
		return
	}
	amount, err := parseZEC(body.Amount)
	if err != nil {
		a.sendError(w, err)
		return
	}
	origin := body.Origin
	if origin == "" {
		origin = defaultOrigin
	}

	req := model.TxRequest{
		Account: p.ByName("account"),
		From:    body.From,
		To:      body.To,
		Amount:  amount,
	}
	if body.Memo != "" {
		req.Memo = []byte(body.Memo)
	}

	id, err := a.txs.AddUnapproved(r.Context(), chain, req, origin)
	if err != nil {
		a.sendError(w, err)
		return
	}
	meta, err := a.txs.Get(r.Context(), id)
	if err != nil {
		a.sendError(w, err)
		return
	}
	a.sendJSON(w, http.StatusCreated, createResponse{ID: id, Transaction: newTxView(meta)})
}

// GET /v1/chains/:chain/accounts/:account/transactions -> [ transaction, ... ]
func (a *API) listTransactions(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	chain, err := model.ParseChain(p.ByName("chain"))
	if err != nil {
		a.sendError(w, err)
		return
	}
	metas, err := a.txs.List(r.Context(), p.ByName("account"), chain)
	if err != nil {
		a.sendError(w, err)
		return
	}
	out := make([]txView, 0, len(metas))
	for _, m := range metas {
		out = append(out, newTxView(m))
	}
	a.sendJSON(w, http.StatusOK, out)
}

// GET /v1/transactions/:id -> transaction
func (a *API) getTransaction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	meta, err := a.txs.Get(r.Context(), p.ByName("id"))
	if err != nil {
		a.sendError(w, err)
		return
	}
	a.sendJSON(w, http.StatusOK, newTxView(meta))
}

// POST /v1/transactions/:id/approve -> { success, tx_hash, error }
//
// The body carries the submission result for failures too. Unclassified
// failures answer 502.
func (a *API) approveTransaction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	res, err := a.txs.Approve(r.Context(), p.ByName("id"))
	body := approveResponse{Success: res.Success, TxHash: res.TxHash, Error: res.ErrorMessage}
	if err != nil {
		status, _ := errorStatus(err, http.StatusBadGateway)
		if body.Error == "" {
			body.Error = err.Error()
		}
		a.sendJSON(w, status, body)
		return
	}
	a.sendJSON(w, http.StatusOK, body)
}

// POST /v1/transactions/:id/reject
func (a *API) rejectTransaction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id := p.ByName("id")
	if err := a.txs.Reject(r.Context(), id); err != nil {
		a.sendError(w, err)
		return
	}
	meta, err := a.txs.Get(r.Context(), id)
	if err != nil {
		a.sendError(w, err)
		return
	}
	a.sendJSON(w, http.StatusOK, newTxView(meta))
}

// POST /v1/transactions/:id/retry
func (a *API) retryTransaction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := a.txs.SpeedupOrRetry(r.Context(), p.ByName("id")); err != nil {
		a.sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// GET /v1/transactions/:id/events -> [ event, ... ] from the archive
func (a *API) transactionEvents(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if a.history == nil {
		a.sendError(w, fmt.Errorf("transaction archive is disabled: %w", model.ErrNotSupported))
		return
	}
	meta, err := a.txs.Get(r.Context(), p.ByName("id"))
	if err != nil {
		a.sendError(w, err)
		return
	}
	events, err := a.history.History(r.Context(), meta.Chain, meta.ID)
	if err != nil {
		a.sendError(w, err)
		return
	}
	out := make([]eventView, 0, len(events))
	for _, e := range events {
		out = append(out, eventView{Status: string(e.Status), TxHash: e.TxHash, Message: e.Message, Timestamp: e.Timestamp})
	}
	a.sendJSON(w, http.StatusOK, out)
}
