package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	request "contacts/pkg/platform/middleware/request"
)

// RouteRegistrar mounts a feature's routes.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// RouterConfig lists everything the router mounts. Gatherer and Metrics may be nil.
type RouterConfig struct {
	Logger         *slog.Logger
	Contacts       RouteRegistrar
	Health         RouteRegistrar
	Gatherer       prometheus.Gatherer
	Metrics        *request.Metrics
	RequestTimeout time.Duration
}

const defaultRequestTimeout = 30 * time.Second

// NewRouter wires all public endpoints with middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(request.Latency(cfg.Metrics))
	}
	r.Use(request.Timeout(timeout))

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	cfg.Contacts.Register(r)

	return r
}
