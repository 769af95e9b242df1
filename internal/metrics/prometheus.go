// Package metrics wraps the Prometheus collectors exposed by riftd's admin
// listener. One registry per process; call InitPrometheus once at startup
// and use the package-level recording helpers from the broker.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics wraps the broker's Prometheus collectors.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	messagesPublished   *prometheus.CounterVec
	messagesDelivered   *prometheus.CounterVec
	messagesRedelivered *prometheus.CounterVec
	messagesAcked       *prometheus.CounterVec

	leasesInFlight  *prometheus.GaugeVec
	pendingDepth    *prometheus.GaugeVec
	activeSubs      *prometheus.GaugeVec

	publishDuration *prometheus.HistogramVec
}

var defaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

var promMetrics *PrometheusMetrics

// InitPrometheus initializes the Prometheus metrics subsystem under the
// given namespace (e.g. "rift") and registers the process/Go collectors
// alongside the broker's own.
func InitPrometheus(namespace string, buckets []float64) {
	if len(buckets) == 0 {
		buckets = defaultBuckets
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	pm := &PrometheusMetrics{
		registry: registry,

		messagesPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "messages_published_total", Help: "Total messages accepted by Publish, per topic."},
			[]string{"topic"},
		),
		messagesDelivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "messages_delivered_total", Help: "Total deliveries to a subscriber stream, including redeliveries."},
			[]string{"topic", "subscription"},
		),
		messagesRedelivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "messages_redelivered_total", Help: "Total redeliveries, split by reason."},
			[]string{"topic", "subscription", "reason"},
		),
		messagesAcked: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "messages_acked_total", Help: "Total acknowledged leases."},
			[]string{"topic", "subscription"},
		),
		leasesInFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "leases_in_flight", Help: "Current count of unresolved leases."},
			[]string{"topic", "subscription"},
		),
		pendingDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "subscription_pending_depth", Help: "Current pending+redelivery backlog depth."},
			[]string{"topic", "subscription"},
		),
		activeSubs: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "active_subscribers", Help: "Current count of live subscriber streams."},
			[]string{"topic"},
		),
		publishDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "publish_duration_seconds", Help: "Publish call latency.", Buckets: buckets},
			[]string{"topic"},
		),
	}

	registry.MustRegister(
		pm.messagesPublished,
		pm.messagesDelivered,
		pm.messagesRedelivered,
		pm.messagesAcked,
		pm.leasesInFlight,
		pm.pendingDepth,
		pm.activeSubs,
		pm.publishDuration,
	)

	promMetrics = pm
}

// Handler returns the http.Handler serving the Prometheus exposition format,
// or http.NotFoundHandler if InitPrometheus has not been called.
func Handler() http.Handler {
	if promMetrics == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(promMetrics.registry, promhttp.HandlerOpts{})
}

// RecordPublish records one published message and its handling latency.
func RecordPublish(topic string, seconds float64) {
	if promMetrics == nil {
		return
	}
	promMetrics.messagesPublished.WithLabelValues(topic).Inc()
	promMetrics.publishDuration.WithLabelValues(topic).Observe(seconds)
}

// RecordDelivery records one delivery attempt (first delivery or redelivery).
func RecordDelivery(topic, subscription string) {
	if promMetrics == nil {
		return
	}
	promMetrics.messagesDelivered.WithLabelValues(topic, subscription).Inc()
}

// RecordRedelivery records a nack- or expiry-driven redelivery.
func RecordRedelivery(topic, subscription, reason string) {
	if promMetrics == nil {
		return
	}
	promMetrics.messagesRedelivered.WithLabelValues(topic, subscription, reason).Inc()
}

// RecordAck records one successful acknowledgement.
func RecordAck(topic, subscription string) {
	if promMetrics == nil {
		return
	}
	promMetrics.messagesAcked.WithLabelValues(topic, subscription).Inc()
}

// SetLeasesInFlight sets the current in-flight lease gauge for a subscription.
func SetLeasesInFlight(topic, subscription string, n int) {
	if promMetrics == nil {
		return
	}
	promMetrics.leasesInFlight.WithLabelValues(topic, subscription).Set(float64(n))
}

// SetPendingDepth sets the current pending+redelivery backlog gauge.
func SetPendingDepth(topic, subscription string, n int) {
	if promMetrics == nil {
		return
	}
	promMetrics.pendingDepth.WithLabelValues(topic, subscription).Set(float64(n))
}

// SetActiveSubscribers sets the current live-stream gauge for a topic.
func SetActiveSubscribers(topic string, n int) {
	if promMetrics == nil {
		return
	}
	promMetrics.activeSubs.WithLabelValues(topic).Set(float64(n))
}
