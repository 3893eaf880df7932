package metrics

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walletRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "wallet_repository",
		Name:      "operations_total",
		Help:      "Count of wallet store operations.",
	}, []string{"operation", "chain", "status"})
	walletRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "wallet_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet store operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "chain", "status"})

	archiveRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of archive repository operations.",
	}, []string{"operation", "chain", "status"})
	archiveRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of archive repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "chain", "status"})
)

// WalletRepository tracks metrics for the sqlite wallet store.
type WalletRepository struct{}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{}
}

// Observe records duration and status of a store operation.
func (m WalletRepository) Observe(operation string, chain model.ChainID, err error, started time.Time) {
	walletRepositoryRequestsTotal.WithLabelValues(operation, chainLabel(chain), status(err)).Inc()
	walletRepositoryRequestDuration.WithLabelValues(operation, chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
}

// ArchiveRepository tracks metrics for ClickHouse archive operations.
type ArchiveRepository struct{}

func NewArchiveRepository() *ArchiveRepository {
	return &ArchiveRepository{}
}

// Observe records duration and status of an archive operation.
func (m ArchiveRepository) Observe(operation string, chain model.ChainID, err error, started time.Time) {
	archiveRepositoryRequestsTotal.WithLabelValues(operation, chainLabel(chain), status(err)).Inc()
	archiveRepositoryRequestDuration.WithLabelValues(operation, chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
}
