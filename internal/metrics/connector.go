package metrics

import (
	"time"

	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectorOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "certproof",
		Subsystem: "anchor_connector",
		Name:      "operations_total",
		Help:      "Count of explorer API connector operations.",
	}, []string{"operation", "provider", "network", "status"})
	connectorOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "certproof",
		Subsystem: "anchor_connector",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer API connector operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "provider", "network", "status"})
)

// Connector tracks metrics for explorer API lookups.
type Connector struct {
	provider model.Provider
	network  model.Network
}

// NewConnector constructs a metrics collector for connector operations.
func NewConnector(provider model.Provider, network model.Network) *Connector {
	if provider == "" {
		provider = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Connector{provider: provider, network: network}
}

// Observe records a single operation outcome and duration.
func (m Connector) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	connectorOpsTotal.WithLabelValues(operation, string(m.provider), string(m.network), status).Inc()
	connectorOpDuration.WithLabelValues(operation, string(m.provider), string(m.network), status).Observe(time.Since(started).Seconds())
}
