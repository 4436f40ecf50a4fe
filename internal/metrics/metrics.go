package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	startTime = time.Now()

	// Streaming metrics
	LastStreamedHeight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blocklake_last_streamed_height",
			Help: "Height of the last block published to the sink",
		},
	)

	BlocksStreamed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blocklake_blocks_streamed_total",
			Help: "Total number of blocks published to the sink",
		},
	)

	TransactionsStreamed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blocklake_transactions_streamed_total",
			Help: "Total number of transactions published to the sink",
		},
	)

	BlockFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blocklake_block_fetch_duration_seconds",
			Help:    "Duration of fetching a block with its receipts",
			Buckets: prometheus.DefBuckets,
		},
	)

	PublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blocklake_block_publish_duration_seconds",
			Help:    "Duration of publishing a block to the sink and checkpointing it",
			Buckets: prometheus.DefBuckets,
		},
	)

	StreamLag = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blocklake_stream_lag_blocks",
			Help: "Distance between the chain head at the run's finality and the last streamed block",
		},
	)

	// Reorg metrics
	ReorgsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blocklake_reorgs_recovered_total",
			Help: "Total number of reorgs rolled back to a common ancestor",
		},
	)

	ReorgDepth = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blocklake_reorg_depth_blocks",
			Help:    "Number of published blocks orphaned by a reorg",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	ReorgLastDetected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blocklake_reorg_last_detected_timestamp",
			Help: "Unix timestamp of the last recovered reorg",
		},
	)

	// Run metrics
	RunStarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blocklake_run_starts_total",
			Help: "Runs started by sync mode and finality level",
		},
		[]string{"sync_mode", "finality"},
	)

	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blocklake_errors_total",
			Help: "Total number of errors by component and type",
		},
		[]string{"component", "type"},
	)

	// System metrics
	Uptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blocklake_uptime_seconds",
			Help: "Time since the process started",
		},
	)

	ComponentHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "blocklake_component_health",
			Help: "Component health (1 = healthy, 0 = unhealthy)",
		},
		[]string{"component"},
	)

	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blocklake_goroutines",
			Help: "Number of goroutines",
		},
	)

	MemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "blocklake_memory_usage_bytes",
			Help: "Memory usage by type",
		},
		[]string{"type"},
	)
)

func BlockStreamed(height uint64, transactions int) {
	LastStreamedHeight.Set(float64(height))
	BlocksStreamed.Inc()
	TransactionsStreamed.Add(float64(transactions))
}

func BlockFetchTimeLog(duration time.Duration) {
	BlockFetchDuration.Observe(duration.Seconds())
}

func PublishTimeLog(duration time.Duration) {
	PublishDuration.Observe(duration.Seconds())
}

func StreamLagSet(head, last uint64) {
	if head < last {
		StreamLag.Set(0)
		return
	}
	StreamLag.Set(float64(head - last))
}

func ReorgRecoveredLog(depth uint64) {
	ReorgsRecovered.Inc()
	ReorgDepth.Observe(float64(depth))
	ReorgLastDetected.Set(float64(time.Now().Unix()))
}

func RunStartInc(syncMode, finality string) {
	RunStarts.WithLabelValues(syncMode, finality).Inc()
}

func ErrorsInc(component, errorType string) {
	Errors.WithLabelValues(component, errorType).Inc()
}

func ComponentHealthSet(component string, healthy bool) {
	boolAsFloat := float64(1)
	if !healthy {
		boolAsFloat = 0
	}

	ComponentHealth.WithLabelValues(component).Set(boolAsFloat)
}

// UpdateSystemMetrics updates runtime system metrics.
func UpdateSystemMetrics() {
	Uptime.Set(time.Since(startTime).Seconds())
	Goroutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	MemoryUsage.WithLabelValues("alloc").Set(float64(m.Alloc))
	MemoryUsage.WithLabelValues("sys").Set(float64(m.Sys))
	MemoryUsage.WithLabelValues("heap_inuse").Set(float64(m.HeapInuse))
}
