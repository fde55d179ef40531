package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	orcamentosCriados = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orcamentos_criados_total",
			Help: "Total number of quotes created",
		},
	)

	transicoesStatus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orcamentos_transicoes_total",
			Help: "Total number of quote status transitions",
		},
		[]string{"status"},
	)

	exportsGerados = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_gerados_total",
			Help: "Total number of export files generated",
		},
		[]string{"formato"},
	)

	pipelineCards = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pipeline_cards",
			Help: "Number of cards per pipeline stage",
		},
		[]string{"estagio"},
	)

	followupsPendentes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "followups_pendentes",
			Help: "Number of pending follow-ups per level",
		},
		[]string{"nivel"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordOrcamentoCriado() {
	orcamentosCriados.Inc()
}

func RecordTransicaoStatus(status string) {
	transicoesStatus.WithLabelValues(status).Inc()
}

func RecordExport(formato string) {
	exportsGerados.WithLabelValues(formato).Inc()
}

func SetPipelineCards(estagio string, quantidade int) {
	pipelineCards.WithLabelValues(estagio).Set(float64(quantidade))
}

func SetFollowUpsPendentes(nivel string, quantidade int) {
	followupsPendentes.WithLabelValues(nivel).Set(float64(quantidade))
}
