// Package metrics описывает Prometheus-метрики сервиса.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tinylink"

type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Redirects       *prometheus.CounterVec
}

// New регистрирует метрики в собственном реестре. links сообщает текущее число
// сохранённых ссылок и вызывается при каждом сборе.
func New(links func() int) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Redirects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "redirects_total",
				Help:      "Short key lookups by outcome",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.Redirects,
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "links",
				Help:      "Number of registered short links",
			},
			func() float64 { return float64(links()) },
		),
		collectors.NewGoCollector(),
	)

	return m
}

// RecordRedirect учитывает результат перехода по короткой ссылке: "found" или "not_found".
func (m *Metrics) RecordRedirect(outcome string) {
	m.Redirects.WithLabelValues(outcome).Inc()
}

// Handler отдаёт метрики в формате Prometheus. Сжатие ответа остаётся за GzipMiddleware.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
