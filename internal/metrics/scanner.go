package metrics

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "batch_total",
		Help:      "Count of scanned block batches.",
	}, []string{"chain", "status"})

	scannerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "batch_duration_seconds",
		Help:      "Duration of downloading, scanning and persisting a batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	scannerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "batch_size",
		Help:      "Number of blocks per scanned batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"chain"})

	scannerReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "reorgs_total",
		Help:      "Count of detected reorganizations.",
	}, []string{"chain"})

	scannerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "next_scan_height",
		Help:      "Next block height to scan per account.",
	}, []string{"chain", "account"})
)

// Scanner tracks metrics for the chain scanner.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// ObserveBatch records a scanned batch of blocks.
func (m Scanner) ObserveBatch(chain model.ChainID, err error, blocks int, started time.Time) {
	scannerBatchTotal.WithLabelValues(chainLabel(chain), status(err)).Inc()
	scannerBatchDuration.WithLabelValues(chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
	scannerBatchSize.WithLabelValues(chainLabel(chain)).Observe(float64(blocks))
}

func (m Scanner) ObserveReorg(chain model.ChainID) {
	scannerReorgsTotal.WithLabelValues(chainLabel(chain)).Inc()
}

func (m Scanner) ObserveHeight(chain model.ChainID, account string, height uint64) {
	scannerHeight.WithLabelValues(chainLabel(chain), account).Set(float64(height))
}
