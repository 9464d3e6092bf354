package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the engine's outcome counters. A nil *Metrics records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	webhookEvents  *prometheus.CounterVec
	checkouts      *prometheus.CounterVec
	refunds        *prometheus.CounterVec
	refundedAmount prometheus.Counter
	waitlist       *prometheus.CounterVec
	notifications  *prometheus.CounterVec
}

func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_commerce",
			Name:      "webhook_events_total",
			Help:      "Gateway webhook deliveries by event type and outcome.",
		}, []string{"type", "outcome"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_commerce",
			Name:      "checkouts_total",
			Help:      "Checkout and join attempts by payment method and outcome.",
		}, []string{"method", "outcome"}),
		refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_commerce",
			Name:      "refunds_total",
			Help:      "Refund attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		refundedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_commerce",
			Name:      "refunded_minor_units_total",
			Help:      "Sum of refunded amounts in minor currency units.",
		}),
		waitlist: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_commerce",
			Name:      "waitlist_transitions_total",
			Help:      "Waitlist entry transitions by resulting status.",
		}, []string{"status"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_commerce",
			Name:      "notifications_total",
			Help:      "Outbound notifications by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	registry.MustRegister(m.webhookEvents, m.checkouts, m.refunds, m.refundedAmount, m.waitlist, m.notifications)
	return m
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) WebhookEvent(eventType, outcome string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

func (m *Metrics) Checkout(method, outcome string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) Refund(source, outcome string, amount int64) {
	if m == nil {
		return
	}
	m.refunds.WithLabelValues(source, outcome).Inc()
	if amount > 0 {
		m.refundedAmount.Add(float64(amount))
	}
}

func (m *Metrics) Waitlist(status string) {
	if m == nil {
		return
	}
	m.waitlist.WithLabelValues(status).Inc()
}

func (m *Metrics) Notification(kind, outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}
