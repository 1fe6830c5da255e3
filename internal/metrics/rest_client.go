package metrics

import (
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	restRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proposer",
		Subsystem: "rest_client",
		Name:      "operations_total",
		Help:      "Count of node REST operations.",
	}, []string{"operation", "network", "status"})
	restRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "proposer",
		Subsystem: "rest_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// RESTClient tracks metrics for REST calls to blockchain nodes.
type RESTClient struct {
	network model.Network
}

// NewRESTClient constructs a metrics collector for REST calls.
func NewRESTClient(network model.Network) *RESTClient {
	if network == "" {
		network = "unknown"
	}
	return &RESTClient{network: network}
}

// Observe records a single REST call outcome and duration.
func (m RESTClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	restRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	restRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
