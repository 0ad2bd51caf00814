package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Файловое хранилище
	StorageOpsTotal   *prometheus.CounterVec
	StorageOpDuration *prometheus.HistogramVec
}

// New регистрирует и возвращает метрики сервиса.
// serviceName попадает в константный лейбл service у всех метрик.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		StorageOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "storage_operations_total",
			Help:        "Total number of appointment storage operations",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		StorageOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "storage_operation_duration_seconds",
			Help:        "Appointment storage operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// ObserveRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveStorageOp фиксирует операцию с хранилищем
func (m *Metrics) ObserveStorageOp(operation string, success bool, seconds float64) {
	result := "ok"
	if !success {
		result = "error"
	}
	m.StorageOpsTotal.WithLabelValues(operation, result).Inc()
	m.StorageOpDuration.WithLabelValues(operation).Observe(seconds)
}
