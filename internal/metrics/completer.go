package metrics

import (
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	completerStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "completer",
		Name:      "step_duration_seconds",
		Help:      "Duration of a transaction completion step.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "step", "status"})

	completerTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "completer",
		Name:      "tasks_total",
		Help:      "Count of finished completion tasks.",
	}, []string{"chain", "status"})

	completerTaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "completer",
		Name:      "task_duration_seconds",
		Help:      "Duration of a completion task from start to done.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"chain", "status"})
)

// Completer tracks metrics for the transaction completion pipeline.
type Completer struct{}

func NewCompleter() *Completer {
	return &Completer{}
}

// ObserveStep records one completion step.
func (m Completer) ObserveStep(chain model.ChainID, step string, err error, started time.Time) {
	completerStepDuration.WithLabelValues(chainLabel(chain), step, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveTask records a finished task.
func (m Completer) ObserveTask(chain model.ChainID, err error, started time.Time) {
	completerTasksTotal.WithLabelValues(chainLabel(chain), status(err)).Inc()
	completerTaskDuration.WithLabelValues(chainLabel(chain), status(err)).Observe(time.Since(started).Seconds())
}
