package metrics

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lightwalletdRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "lightwalletd_client",
		Name:      "operations_total",
		Help:      "Count of lightwalletd RPC operations.",
	}, []string{"operation", "chain", "status"})
	lightwalletdRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "lightwalletd_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of lightwalletd RPC operations including retries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// LightwalletdClient tracks metrics for calls to lightwalletd.
type LightwalletdClient struct{}

func NewLightwalletdClient() *LightwalletdClient {
	return &LightwalletdClient{}
}

// Observe records a single RPC call outcome and duration.
func (m LightwalletdClient) Observe(operation string, chain model.ChainID, err error, started time.Time) {
	lightwalletdRequestsTotal.WithLabelValues(operation, chainLabel(chain), status(err)).Inc()
	lightwalletdRequestDuration.WithLabelValues(operation, chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
}
