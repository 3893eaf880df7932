package transport

import (
	"net/http"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/julienschmidt/httprouter"
)

type balanceView struct {
	Account      string `json:"account"`
	Chain        string `json:"chain"`
	Spendable    string `json:"spendable"`
	SpendableZat uint64 `json:"spendable_zat"`
	// Height is the last scanned height the balance is valid at.
	Height uint64 `json:"height"`
}

func (a *API) accountStatus(w http.ResponseWriter, p httprouter.Params) (model.SyncStatus, bool) {
	chain, err := model.ParseChain(p.ByName("chain"))
	if err != nil {
		a.sendError(w, err)
		return model.SyncStatus{}, false
	}
	st, err := a.sync.Status(p.ByName("account"), chain)
	if err != nil {
		a.sendError(w, err)
		return model.SyncStatus{}, false
	}
	return st, true
}

// GET /v1/chains/:chain/accounts/:account/sync -> sync status
func (a *API) getSync(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	if st, ok := a.accountStatus(w, p); ok {
		a.sendJSON(w, http.StatusOK, newSyncView(st))
	}
}

// GET /v1/chains/:chain/accounts/:account/balance -> spendable shielded balance
func (a *API) getBalance(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	st, ok := a.accountStatus(w, p)
	if !ok {
		return
	}
	a.sendJSON(w, http.StatusOK, balanceView{
		Account:      st.Account,
		Chain:        string(st.Chain),
		Spendable:    formatZEC(st.SpendableBalance),
		SpendableZat: st.SpendableBalance,
		Height:       st.Current,
	})
}

// POST /v1/chains/:chain/accounts/:account/sync/start
func (a *API) startSync(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	a.control(w, p, a.sync.Resume)
}

// POST /v1/chains/:chain/accounts/:account/sync/pause
func (a *API) pauseSync(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	a.control(w, p, a.sync.Pause)
}

func (a *API) control(w http.ResponseWriter, p httprouter.Params, fn func(string, model.ChainID) error) {
	chain, err := model.ParseChain(p.ByName("chain"))
	if err != nil {
		a.sendError(w, err)
		return
	}
	account := p.ByName("account")
	if err := fn(account, chain); err != nil {
		a.sendError(w, err)
		return
	}
	st, err := a.sync.Status(account, chain)
	if err != nil {
		a.sendError(w, err)
		return
	}
	a.sendJSON(w, http.StatusAccepted, newSyncView(st))
}

// GET /v1/sync -> [ sync status, ... ]
func (a *API) listSync(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	statuses := a.sync.Statuses()
	out := make([]syncView, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, newSyncView(st))
	}
	a.sendJSON(w, http.StatusOK, out)
}
