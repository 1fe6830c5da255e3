package metrics

import (
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	plannerEstimateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proposer",
		Subsystem: "planner",
		Name:      "estimate_height_total",
		Help:      "Count of block height estimations.",
	}, []string{"network", "status"})

	plannerEstimateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "proposer",
		Subsystem: "planner",
		Name:      "estimate_height_duration_seconds",
		Help:      "Duration of block height estimations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	plannerPlanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proposer",
		Subsystem: "planner",
		Name:      "plan_upgrade_total",
		Help:      "Count of full upgrade plan computations.",
	}, []string{"network", "status"})

	plannerPlanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "proposer",
		Subsystem: "planner",
		Name:      "plan_upgrade_duration_seconds",
		Help:      "Duration of full upgrade plan computations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	plannerBlockTimesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proposer",
		Subsystem: "planner",
		Name:      "block_times_total",
		Help:      "Count of block time analyses.",
	}, []string{"network", "status"})

	plannerBlockTimesDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "proposer",
		Subsystem: "planner",
		Name:      "block_times_duration_seconds",
		Help:      "Duration of block time analyses.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	plannerBlockTimesWindow = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "proposer",
		Subsystem: "planner",
		Name:      "block_times_window",
		Help:      "Number of blocks covered per block time analysis.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})
)

// Planner tracks metrics for upgrade planning operations.
type Planner struct {
	network model.Network
}

// NewPlanner constructs a metrics collector for planning operations.
func NewPlanner(network model.Network) *Planner {
	if network == "" {
		network = "unknown"
	}
	return &Planner{network: network}
}

func (m Planner) ObserveEstimate(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	plannerEstimateTotal.WithLabelValues(string(m.network), status).Inc()
	plannerEstimateDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

func (m Planner) ObservePlan(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	plannerPlanTotal.WithLabelValues(string(m.network), status).Inc()
	plannerPlanDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

func (m Planner) ObserveBlockTimes(err error, window int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	plannerBlockTimesTotal.WithLabelValues(string(m.network), status).Inc()
	plannerBlockTimesDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	plannerBlockTimesWindow.WithLabelValues(string(m.network)).Observe(float64(window))
}
