package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

const namespace = "site_monitor"

// Metrics is safe to use as a nil pointer, every method is then a no-op.
type Metrics struct {
	probes         *prometheus.CounterVec
	probeDuration  *prometheus.HistogramVec
	cycles         *prometheus.CounterVec
	deliveries     *prometheus.CounterVec
	subscribers    prometheus.Gauge
	lastCycleEndAt prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		probes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Endpoint probes by outcome status.",
		}, []string{"status"}),
		probeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Time spent waiting for endpoint responses.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		cycles: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Check cycles by result: ok, problems, failed.",
		}, []string{"result"}),
		deliveries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Telegram message deliveries by result: sent, failed, blocked.",
		}, []string{"result"}),
		subscribers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "subscribers",
			Help:      "Subscribers loaded at the start of the last cycle.",
		}),
		lastCycleEndAt: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_cycle_timestamp_seconds",
			Help:      "Unix time the last check cycle finished.",
		}),
	}
}

func (m *Metrics) ObserveProbe(o dal.Outcome) {
	if m == nil {
		return
	}
	m.probes.WithLabelValues(string(o.Status)).Inc()
	m.probeDuration.WithLabelValues(o.URL).Observe(o.Latency.Seconds())
}

func (m *Metrics) ObserveCycle(result string, at time.Time) {
	if m == nil {
		return
	}
	m.cycles.WithLabelValues(result).Inc()
	m.lastCycleEndAt.Set(float64(at.Unix()))
}

func (m *Metrics) ObserveDelivery(result string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(result).Inc()
}

func (m *Metrics) SetSubscribers(n int) {
	if m == nil {
		return
	}
	m.subscribers.Set(float64(n))
}
