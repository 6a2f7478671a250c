// Package metrics exposes the dashboard figures and the refresh loop health
// as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/stats"
)

const namespace = "collectdesk"

// Collector owns a private registry so several collectors can coexist in
// one process.
type Collector struct {
	registry *prometheus.Registry

	refreshesTotal  *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	lastRefresh     prometheus.Gauge

	patientsByStatus   *prometheus.GaugeVec
	outstandingBalance prometheus.Gauge
	queueByStatus      *prometheus.GaugeVec
	callsToday         prometheus.Gauge
	successRate        prometheus.Gauge
	notifications      prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		refreshesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refreshes_total",
			Help:      "Dashboard refreshes by result.",
		}, []string{"result"}),
		refreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Time spent loading and summarizing records.",
			Buckets:   prometheus.DefBuckets,
		}),
		lastRefresh: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_refresh_timestamp_seconds",
			Help:      "Unix time of the last successful refresh.",
		}),
		patientsByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "patients",
			Help:      "Patients by account status.",
		}, []string{"status"}),
		outstandingBalance: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outstanding_balance_dollars",
			Help:      "Sum of balances on unresolved accounts.",
		}),
		queueByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_entries",
			Help:      "Call queue entries by status.",
		}, []string{"status"}),
		callsToday: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "calls_today",
			Help:      "Calls placed today.",
		}),
		successRate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "success_rate_percent",
			Help:      "Share of today's calls that reached a contact.",
		}),
		notifications: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_notifications",
			Help:      "Notifications currently shown.",
		}),
	}
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRefresh records one refresh attempt ending at now.
func (c *Collector) ObserveRefresh(d time.Duration, now time.Time, err error) {
	c.refreshDuration.Observe(d.Seconds())
	if err != nil {
		c.refreshesTotal.WithLabelValues("error").Inc()
		return
	}
	c.refreshesTotal.WithLabelValues("ok").Inc()
	c.lastRefresh.Set(float64(now.Unix()))
}

// SetPatients replaces the patient gauges. Statuses absent from s are
// dropped.
func (c *Collector) SetPatients(s stats.PatientStats) {
	c.patientsByStatus.Reset()
	for status, n := range s.ByStatus {
		c.patientsByStatus.WithLabelValues(string(status)).Set(float64(n))
	}
	c.outstandingBalance.Set(s.OutstandingBalance)
}

func (c *Collector) SetQueue(s stats.QueueStats) {
	c.queueByStatus.Reset()
	for status, n := range s.ByStatus {
		c.queueByStatus.WithLabelValues(string(status)).Set(float64(n))
	}
}

func (c *Collector) SetDashboard(s domain.DashboardStats) {
	c.callsToday.Set(float64(s.CallsToday))
	c.successRate.Set(s.SuccessRate)
}

func (c *Collector) SetNotifications(n int) {
	c.notifications.Set(float64(n))
}
