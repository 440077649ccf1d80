package service

import (
	"log/slog"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/platform/tracer"
)

// serviceConfig holds optional dependencies for services.
type serviceConfig struct {
	logger    *slog.Logger
	publisher EventPublisher
	metrics   *contactsmetrics.Metrics
	tracer    tracer.Tracer
	tx        StoreTx
}

// Option configures a service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithEventPublisher(publisher EventPublisher) Option {
	return func(c *serviceConfig) {
		c.publisher = publisher
	}
}

func WithMetrics(m *contactsmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}

// WithTx sets the transactional boundary. Without it mutations are serialized in memory.
func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

func newConfig(opts []Option) *serviceConfig {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tx == nil {
		cfg.tx = newInMemoryStoreTx()
	}
	if cfg.tracer == nil {
		cfg.tracer = tracer.NewNoop()
	}
	return cfg
}
