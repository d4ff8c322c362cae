// Package metrics records platform query and run outcome metrics for a changelog run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run results used as the "result" label of changelog_runs_total.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Collector owns a private registry so that each run exports only its own series.
type Collector struct {
	registry *prometheus.Registry

	// QueriesTotal counts platform queries by operation and status
	QueriesTotal *prometheus.CounterVec
	// QueryDuration tracks platform query latency
	QueryDuration *prometheus.HistogramVec
	// CacheLookupsTotal counts cache lookups by operation and outcome (hit, miss, error)
	CacheLookupsTotal *prometheus.CounterVec
	// EntriesTotal counts changelog entries by attribution
	EntriesTotal *prometheus.CounterVec
	// RunsTotal counts generator runs by result
	RunsTotal *prometheus.CounterVec
	// LastRunTimestamp is the unix time of the last finished run
	LastRunTimestamp prometheus.Gauge
}

// New creates a Collector with its own registry.
func New() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "changelog_platform_queries_total",
				Help: "Total number of platform API queries",
			},
			[]string{"operation", "status"},
		),
		QueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "changelog_platform_query_duration_seconds",
				Help:    "Platform API query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "changelog_cache_lookups_total",
				Help: "Total number of cache lookups",
			},
			[]string{"operation", "outcome"},
		),
		EntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "changelog_entries_total",
				Help: "Total number of changelog entries produced",
			},
			[]string{"attribution"},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "changelog_runs_total",
				Help: "Total number of changelog runs",
			},
			[]string{"result"},
		),
		LastRunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "changelog_last_run_timestamp_seconds",
				Help: "Unix time of the last finished changelog run",
			},
		),
	}
}

// ObserveQuery records one platform query.
func (c *Collector) ObserveQuery(operation string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.QueriesTotal.WithLabelValues(operation, status).Inc()
	c.QueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveCacheLookup records a cache hit, miss or error.
func (c *Collector) ObserveCacheLookup(operation, outcome string) {
	c.CacheLookupsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveEntry records one produced changelog entry.
func (c *Collector) ObserveEntry(attribution string) {
	c.EntriesTotal.WithLabelValues(attribution).Inc()
}

// ObserveRun records the outcome of a run.
func (c *Collector) ObserveRun(result string, finished time.Time) {
	c.RunsTotal.WithLabelValues(result).Inc()
	c.LastRunTimestamp.Set(float64(finished.Unix()))
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics in the node_exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
