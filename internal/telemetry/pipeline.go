package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics records dashboard runs, upstream fetches and ledger cache use.
type PipelineMetrics struct {
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	fetch       *prometheus.HistogramVec
	cache       *prometheus.CounterVec
	rows        prometheus.Gauge
}

// NewPipelineMetrics registers the collectors on reg. A nil reg yields a
// no-op recorder.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	if reg == nil {
		return &PipelineMetrics{}
	}
	m := &PipelineMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_runs_total",
			Help: "Dashboard pipeline runs by outcome.",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_run_duration_seconds",
			Help:    "Duration of dashboard pipeline runs.",
			Buckets: prometheus.DefBuckets,
		}),
		fetch: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "upstream_fetch_duration_seconds",
			Help:    "Duration of upstream fetches by source and result.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source", "result"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_cache_lookups_total",
			Help: "Sales ledger cache lookups by result.",
		}, []string{"result"}),
		rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_rows",
			Help: "Rows in the most recently loaded sales ledger.",
		}),
	}
	reg.MustRegister(m.runs, m.runDuration, m.fetch, m.cache, m.rows)
	return m
}

func (m *PipelineMetrics) ObserveRun(outcome string, d time.Duration) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.WithLabelValues(normalizeLabel(outcome)).Inc()
	m.runDuration.Observe(d.Seconds())
}

func (m *PipelineMetrics) ObserveFetch(source string, err error, d time.Duration) {
	if m == nil || m.fetch == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fetch.WithLabelValues(normalizeLabel(source), result).Observe(d.Seconds())
}

func (m *PipelineMetrics) CacheLookup(hit bool) {
	if m == nil || m.cache == nil {
		return
	}
	if hit {
		m.cache.WithLabelValues("hit").Inc()
		return
	}
	m.cache.WithLabelValues("miss").Inc()
}

func (m *PipelineMetrics) SetLedgerRows(n int) {
	if m == nil || m.rows == nil {
		return
	}
	m.rows.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
