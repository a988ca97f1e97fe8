package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик Prometheus сервиса
// Все методы безопасны для nil (метрики выключены)
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	upstreamDuration *prometheus.HistogramVec

	polls          *prometheus.CounterVec
	actions        *prometheus.CounterVec
	trackedByState *prometheus.GaugeVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served by the local view API.",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests served by the local view API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "hotel_api_request_duration_seconds",
			Help:      "Duration of requests to the hotel backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_polls_total",
			Help:      "Booking list loads by result.",
		}, []string{"result"}),

		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_actions_total",
			Help:      "Confirm and cancel actions by result.",
		}, []string{"action", "result"}),

		trackedByState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "tracked_bookings",
			Help:      "Bookings currently tracked, by client-observed state.",
		}, []string{"state"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.upstreamDuration,
		m.polls,
		m.actions,
		m.trackedByState,
	)

	return m
}

// Handler HTTP обработчик для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRequest фиксирует запрос к backend гостиницы (status 0 = транспортная ошибка)
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// ObservePoll фиксирует результат загрузки списка бронирований
func (m *Metrics) ObservePoll(result string) {
	if m == nil {
		return
	}
	m.polls.WithLabelValues(result).Inc()
}

// ObserveAction фиксирует результат подтверждения/отмены
func (m *Metrics) ObserveAction(action, result string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(action, result).Inc()
}

// SetTracked выставляет число отслеживаемых бронирований по состояниям
func (m *Metrics) SetTracked(byState map[string]int) {
	if m == nil {
		return
	}
	m.trackedByState.Reset()
	for state, count := range byState {
		m.trackedByState.WithLabelValues(state).Set(float64(count))
	}
}
