package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados registrados nas operações de terminologia
const (
	OutcomeLegacy      = "legacy"
	OutcomeCurrent     = "current"
	OutcomeBoth        = "both"
	OutcomeExpanded    = "expanded"
	OutcomePassThrough = "pass_through"
	OutcomeHit         = "hit"
	OutcomeEmpty       = "empty"
	OutcomeSkipped     = "skipped"
)

// Metrics agrupa os coletores Prometheus do serviço. Um *Metrics nil é
// aceito em todos os métodos e não registra nada.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	terminology *prometheus.CounterVec
}

// NewMetrics cria um registry próprio com as métricas HTTP, de terminologia e do runtime Go
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vergunningen_http_requests_total",
			Help: "Requisições HTTP por rota, método e status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vergunningen_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		terminology: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vergunningen_terminology_operations_total",
			Help: "Operações de sugestão, classificação e expansão por resultado.",
		}, []string{"operation", "outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.terminology,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest registra uma requisição concluída
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordTerminology registra uma operação do vocabulário
func (m *Metrics) RecordTerminology(operation, outcome string) {
	if m == nil {
		return
	}
	m.terminology.WithLabelValues(operation, outcome).Inc()
}

// Registry expõe o registry (usado nos testes)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serve o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
