// Package transport exposes the wallet over HTTP and the gRPC health
// protocol.
package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// API serves the wallet HTTP API.
type API struct {
	txs     Transactions
	sync    Sync
	history History
	metrics Metrics
	logger  *zap.Logger
}

// NewAPI builds an API. history may be nil, the events route then answers
// 501.
func NewAPI(txs Transactions, sync Sync, history History, metrics Metrics, logger *zap.Logger) (*API, error) {
	if txs == nil {
		return nil, errors.New("transactions service is required")
	}
	if sync == nil {
		return nil, errors.New("sync service is required")
	}
	if metrics == nil {
		return nil, errors.New("api metrics is required")
	}
	return &API{
		txs:     txs,
		sync:    sync,
		history: history,
		metrics: metrics,
		logger:  logger.Named("http_api"),
	}, nil
}

// Handler returns the routes of the API.
func (a *API) Handler() http.Handler {
	r := httprouter.New()

	// Payments of an account.
	r.POST("/v1/chains/:chain/accounts/:account/transactions", a.route("create_transaction", a.createTransaction))
	r.GET("/v1/chains/:chain/accounts/:account/transactions", a.route("list_transactions", a.listTransactions))
	r.GET("/v1/chains/:chain/accounts/:account/balance", a.route("get_balance", a.getBalance))

	// Sync control.
	r.GET("/v1/chains/:chain/accounts/:account/sync", a.route("get_sync", a.getSync))
	r.POST("/v1/chains/:chain/accounts/:account/sync/start", a.route("start_sync", a.startSync))
	r.POST("/v1/chains/:chain/accounts/:account/sync/pause", a.route("pause_sync", a.pauseSync))
	r.GET("/v1/sync", a.route("list_sync", a.listSync))

	// Lifecycle of a single transaction.
	r.GET("/v1/transactions/:id", a.route("get_transaction", a.getTransaction))
	r.POST("/v1/transactions/:id/approve", a.route("approve_transaction", a.approveTransaction))
	r.POST("/v1/transactions/:id/reject", a.route("reject_transaction", a.rejectTransaction))
	r.POST("/v1/transactions/:id/retry", a.route("retry_transaction", a.retryTransaction))
	r.GET("/v1/transactions/:id/events", a.route("transaction_events", a.transactionEvents))

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (a *API) route(name string, h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		h(rec, r, p)
		a.metrics.ObserveRequest(name, rec.code, started)
		a.logger.Debug("request served",
			zap.String("route", name),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("code", rec.code),
			zap.Duration("duration", time.Since(started)),
		)
	}
}
