package diag

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsNamespace prefixes every metric registered by NewMetricsSink.
const MetricsNamespace = "mldwidth"

// MetricsSink turns events into Prometheus metrics:
//
//	mldwidth_events_total{component,name}      counter, one per event
//	mldwidth_frontier_width{component,name}    histogram of integer "width" attributes
//	mldwidth_peak_width{strategy}              gauge, set from "max_width" on summary events
type MetricsSink struct {
	events *prometheus.CounterVec
	width  *prometheus.HistogramVec
	peak   *prometheus.GaugeVec
}

// NewMetricsSink registers its collectors on reg. A nil reg registers on the
// default Prometheus registry. Registering twice on the same registry panics,
// as with any promauto collector.
func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &MetricsSink{
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "events_total",
			Help:      "Diagnostic events recorded, by component and event name.",
		}, []string{"component", "name"}),
		width: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Name:      "frontier_width",
			Help:      "Frontier width observed per elimination step.",
			Buckets:   prometheus.LinearBuckets(0, 4, 16), // 0..60
		}, []string{"component", "name"}),
		peak: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "peak_width",
			Help:      "Peak frontier width of the last finished run, by strategy.",
		}, []string{"strategy"}),
	}
}

// Record updates the counters for e.
func (s *MetricsSink) Record(e Event) {
	s.events.WithLabelValues(e.Component, e.Name).Inc()
	if v, ok := e.Lookup("width"); ok {
		if w, ok := v.(int); ok {
			s.width.WithLabelValues(e.Component, e.Name).Observe(float64(w))
		}
	}
	if v, ok := e.Lookup("max_width"); ok {
		w, isInt := v.(int)
		st, _ := e.Lookup("strategy")
		name, isStr := st.(string)
		if isInt && isStr {
			s.peak.WithLabelValues(name).Set(float64(w))
		}
	}
}
