package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Admission outcomes
const (
	OutcomeAdmitted           = "admitted"
	OutcomeInvalidAppointment = "invalid_appointment"
	OutcomeSlotFull           = "slot_full"
	OutcomeDuplicate          = "duplicate"
	OutcomeUnknownService     = "unknown_service"
	OutcomeStorageFailure     = "storage_failure"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя, чтобы метрики можно было выключить конфигом
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	admissionsTotal     *prometheus.CounterVec
	slotLockWait        prometheus.Histogram
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		admissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_admissions_total",
				Help:        "Booking admission decisions by outcome.",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		slotLockWait: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "booking_slot_lock_wait_seconds",
				Help:        "Time spent waiting for a per-slot admission lock.",
				ConstLabels: constLabels,
				Buckets:     []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 2},
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.admissionsTotal,
		m.slotLockWait,
	)

	return m
}

// Handler возвращает HTTP handler для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats регистрирует сбор статистики пула соединений
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) {
	if m == nil || db == nil {
		return
	}
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveAdmission фиксирует решение о допуске бронирования
func (m *Metrics) ObserveAdmission(outcome string) {
	if m == nil {
		return
	}
	m.admissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSlotLockWait фиксирует время ожидания блокировки слота
func (m *Metrics) ObserveSlotLockWait(d time.Duration) {
	if m == nil {
		return
	}
	m.slotLockWait.Observe(d.Seconds())
}
