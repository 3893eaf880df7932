package metrics

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tipPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tip_tracker",
		Name:      "poll_total",
		Help:      "Count of chain tip polls.",
	}, []string{"chain", "status"})

	tipPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tip_tracker",
		Name:      "poll_duration_seconds",
		Help:      "Duration of chain tip polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	tipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tip_tracker",
		Name:      "height",
		Help:      "Last chain tip height observed.",
	}, []string{"chain"})
)

// TipTracker tracks metrics for the chain tip tracker.
type TipTracker struct{}

func NewTipTracker() *TipTracker {
	return &TipTracker{}
}

// ObservePoll records a tip poll outcome and duration.
func (m TipTracker) ObservePoll(chain model.ChainID, err error, started time.Time) {
	tipPollTotal.WithLabelValues(chainLabel(chain), status(err)).Inc()
	tipPollDuration.WithLabelValues(chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
}

// ObserveTip records a new tip.
func (m TipTracker) ObserveTip(chain model.ChainID, height uint64) {
	tipHeight.WithLabelValues(chainLabel(chain)).Set(float64(height))
}
