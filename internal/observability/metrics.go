package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики Prometheus для слоя обогащения и кеширования.
// Методы безопасны для nil-получателя, чтобы тесты сервисов могли
// не регистрировать метрики вовсе.
type Metrics struct {
	CacheLookups       *prometheus.CounterVec // labels: feature, result={hit,miss,error}
	ProviderRequests   *prometheus.CounterVec // labels: provider, outcome={success,error,empty}
	BroadcastsSent     *prometheus.CounterVec // labels: event
	ProximityFallbacks prometheus.Counter
}

// NewMetrics создает и регистрирует метрики в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := &Metrics{
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by feature and result.",
		}, []string{"feature", "result"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "provider_requests_total",
			Help:      "External provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		BroadcastsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "broadcasts_sent_total",
			Help:      "Realtime events broadcast to connected observers.",
		}, []string{"event"}),
		ProximityFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "proximity_fallbacks_total",
			Help:      "Resource lookups that fell back to the plain filter.",
		}),
	}

	prometheus.MustRegister(
		m.CacheLookups,
		m.ProviderRequests,
		m.BroadcastsSent,
		m.ProximityFallbacks,
	)
	return m
}

func (m *Metrics) CacheLookup(feature, result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(feature, result).Inc()
}

func (m *Metrics) ProviderRequest(provider, outcome string) {
	if m == nil {
		return
	}
	m.ProviderRequests.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) BroadcastSent(event string) {
	if m == nil {
		return
	}
	m.BroadcastsSent.WithLabelValues(event).Inc()
}

func (m *Metrics) ProximityFallback() {
	if m == nil {
		return
	}
	m.ProximityFallbacks.Inc()
}
