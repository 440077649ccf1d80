package query

import (
	"context"
	"time"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	"contacts/internal/platform/tracer"
)

// Params is a combined filter-then-sort request as received from a caller.
type Params struct {
	SearchBy     string
	SearchString string
	SortBy       string
	Order        SortOrder
}

// Engine wraps Filter and Sort with tracing and latency metrics.
type Engine struct {
	metrics *contactsmetrics.Metrics
	tracer  tracer.Tracer
}

type Option func(*Engine)

func WithMetrics(m *contactsmetrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithTracer(t tracer.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{tracer: tracer.NewNoop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Filter(ctx context.Context, views []models.PersonView, fieldName, search string) []models.PersonView {
	start := time.Now()
	_, span := e.tracer.Start(ctx, "persons.filter",
		tracer.String("field", ParseField(fieldName).String()),
		tracer.Int("input", len(views)),
	)
	out := Filter(views, fieldName, search)
	span.SetAttributes(tracer.Int("output", len(out)))
	span.End(nil)
	e.observe("filter", start)
	return out
}

func (e *Engine) Sort(ctx context.Context, views []models.PersonView, fieldName string, order SortOrder) []models.PersonView {
	start := time.Now()
	_, span := e.tracer.Start(ctx, "persons.sort",
		tracer.String("field", ParseField(fieldName).String()),
		tracer.String("order", string(order)),
	)
	out := Sort(views, fieldName, order)
	span.End(nil)
	e.observe("sort", start)
	return out
}

// Apply filters then sorts.
func (e *Engine) Apply(ctx context.Context, views []models.PersonView, p Params) []models.PersonView {
	return e.Sort(ctx, e.Filter(ctx, views, p.SearchBy, p.SearchString), p.SortBy, p.Order)
}

func (e *Engine) observe(op string, start time.Time) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveQuery(op, start)
}
