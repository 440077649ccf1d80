// Package metrics provides Prometheus metrics for the contacts domain.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PersonMutationsTotal  *prometheus.CounterVec   // by op: add, update, delete
	CountriesCreated      prometheus.Counter
	CountriesImported     prometheus.Counter
	QueryDurationSeconds  *prometheus.HistogramVec // by op: filter, sort
	CountryCacheLookups   *prometheus.CounterVec   // by result: hit, miss, error, bypass
	PersonEventsPublished *prometheus.CounterVec   // by outcome: ok, error
}

// New registers all metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers all metrics with reg. Tests pass a fresh prometheus.NewRegistry().
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PersonMutationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_persons_mutations_total",
			Help: "Total number of committed person mutations by operation",
		}, []string{"op"}),
		CountriesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "contacts_countries_created_total",
			Help: "Total number of countries created",
		}),
		CountriesImported: f.NewCounter(prometheus.CounterOpts{
			Name: "contacts_countries_imported_total",
			Help: "Total number of countries inserted by bulk import",
		}),
		QueryDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contacts_query_duration_seconds",
			Help:    "Duration of in-memory person filter/sort operations",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"op"}),
		CountryCacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_country_cache_lookups_total",
			Help: "Country cache lookups by result",
		}, []string{"result"}),
		PersonEventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_person_events_published_total",
			Help: "Person change events handed to the publisher by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementPersonMutation(op string) {
	m.PersonMutationsTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) IncrementCountryCreated() {
	m.CountriesCreated.Inc()
}

func (m *Metrics) AddCountriesImported(n int) {
	m.CountriesImported.Add(float64(n))
}

func (m *Metrics) ObserveQuery(op string, start time.Time) {
	m.QueryDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) RecordCacheLookup(result string) {
	m.CountryCacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordEventPublish(outcome string) {
	m.PersonEventsPublished.WithLabelValues(outcome).Inc()
}
