package coderland

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/coderland/pkg/httpserver"
)

type metrics struct {
	registry *prometheus.Registry
	requests prometheus.Counter
}

func newMetrics(uptime func() time.Duration) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coderland",
			Name:      "requests_total",
			Help:      "Requests answered with the greeting.",
		}),
	}
	m.registry.MustRegister(
		m.requests,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "coderland",
			Name:      "uptime_seconds",
			Help:      "Seconds since the server started.",
		}, func() float64 { return uptime().Seconds() }),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the App's private metrics registry.
func (a *App) Registry() *prometheus.Registry {
	return a.metrics.registry
}

// AdminHandler serves the admin listener: liveness, readiness and metrics.
func (a *App) AdminHandler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, a.ready))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

func (a *App) ready(context.Context) error {
	if a.State() != StateRunning {
		return ErrNotRunning
	}
	return nil
}
