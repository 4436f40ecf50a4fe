package rpc

import (
	"time"

	"github.com/goran-ethernal/BlockLake/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPC metrics
	RPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blocklake_rpc_requests_total",
			Help: "Total number of RPC requests by method",
		},
		[]string{"method"},
	)

	RPCErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blocklake_rpc_errors_total",
			Help: "Total number of RPC errors by method and type",
		},
		[]string{"method", "error_type"},
	)

	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blocklake_rpc_request_duration_seconds",
			Help:    "Duration of RPC requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	RPCRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blocklake_rpc_retries_total",
			Help: "Total number of RPC retries by method",
		},
		[]string{"method"},
	)

	// Head probe metrics
	ProbeOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blocklake_head_probe_total",
			Help: "Chain head probes by finality and outcome (ok, transport_failure, client_rejected)",
		},
		[]string{"finality", "outcome"},
	)

	ProbeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blocklake_head_probe_duration_seconds",
			Help:    "Duration of chain head probes",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"finality"},
	)

	ChainHeadHeight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "blocklake_chain_head_height",
			Help: "Last observed chain head height by finality",
		},
		[]string{"finality"},
	)
)

func RPCMethodInc(method string) {
	RPCRequests.WithLabelValues(method).Inc()
}

func RPCMethodDuration(method string, duration time.Duration) {
	RPCDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func RPCMethodError(method, errorType string) {
	RPCErrors.WithLabelValues(method, errorType).Inc()
}

func RPCRetryInc(method string) {
	RPCRetries.WithLabelValues(method).Inc()
}

func ProbeOutcomeInc(finality types.BlockFinality, outcome string) {
	ProbeOutcomes.WithLabelValues(finality.String(), outcome).Inc()
}

func ProbeDuration(finality types.BlockFinality, duration time.Duration) {
	ProbeLatency.WithLabelValues(finality.String()).Observe(duration.Seconds())
}

func ChainHeadSet(finality types.BlockFinality, height uint64) {
	ChainHeadHeight.WithLabelValues(finality.String()).Set(float64(height))
}
