package metrics

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lifecycleTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "lifecycle",
		Name:      "transitions_total",
		Help:      "Count of transaction status transitions by target status.",
	}, []string{"chain", "to"})

	lifecycleApproveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "lifecycle",
		Name:      "approve_total",
		Help:      "Count of approve calls.",
	}, []string{"chain", "status"})

	lifecycleApproveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "lifecycle",
		Name:      "approve_duration_seconds",
		Help:      "Duration of approve from completion to broadcast.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"chain", "status"})

	lifecyclePollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "lifecycle",
		Name:      "poll_duration_seconds",
		Help:      "Duration of a confirmation poll cycle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	lifecyclePollSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "lifecycle",
		Name:      "poll_size",
		Help:      "Number of submitted transactions checked per poll cycle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"chain"})
)

// Lifecycle tracks metrics for the transaction lifecycle manager.
type Lifecycle struct{}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// ObserveTransition counts a move into status.
func (m Lifecycle) ObserveTransition(chain model.ChainID, to model.TxStatus) {
	lifecycleTransitionsTotal.WithLabelValues(chainLabel(chain), string(to)).Inc()
}

// ObserveApprove records an approve outcome and duration.
func (m Lifecycle) ObserveApprove(chain model.ChainID, err error, started time.Time) {
	lifecycleApproveTotal.WithLabelValues(chainLabel(chain), status(err)).Inc()
	lifecycleApproveDuration.WithLabelValues(chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
}

// ObservePoll records a confirmation poll cycle over checked transactions.
func (m Lifecycle) ObservePoll(chain model.ChainID, err error, checked int, started time.Time) {
	lifecyclePollDuration.WithLabelValues(chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
	lifecyclePollSize.WithLabelValues(chainLabel(chain)).Observe(float64(checked))
}
