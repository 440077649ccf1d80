package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"contacts/internal/contacts/events"
	contactshandler "contacts/internal/contacts/handler"
	"contacts/internal/contacts/importer"
	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/query"
	"contacts/internal/contacts/seed"
	"contacts/internal/contacts/service"
	countrystore "contacts/internal/contacts/store/country"
	personstore "contacts/internal/contacts/store/person"
	"contacts/internal/platform/config"
	"contacts/internal/platform/database"
	"contacts/internal/platform/health"
	"contacts/internal/platform/kafka/producer"
	"contacts/internal/platform/logger"
	"contacts/internal/platform/redis"
	"contacts/internal/platform/tracer"
	"contacts/internal/seeder"
	httptransport "contacts/internal/transport/http"
	"contacts/pkg/platform/circuit"
	request "contacts/pkg/platform/middleware/request"
)

const (
	shutdownTimeout   = 10 * time.Second
	poolStatsInterval = 15 * time.Second
)

// infra groups the optional backing services; nil fields mean "not configured".
type infra struct {
	db       *database.Pool
	redis    *redis.Client
	producer *producer.Producer
}

func (i *infra) Close(log *slog.Logger) {
	if i.producer != nil {
		_ = i.producer.Close()
	}
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if err := i.db.Close(); err != nil {
		log.Warn("database close failed", "error", err)
	}
}

// main wires dependencies, exposes the HTTP router, and keeps the server
// lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	log.Info("initializing contacts",
		"addr", cfg.Addr,
		"postgres", cfg.Database.URL != "",
		"redis", cfg.Redis.URL != "",
		"kafka", cfg.Kafka.Brokers != "",
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps, err := openInfra(ctx, cfg, log, reg)
	if err != nil {
		return err
	}
	defer deps.Close(log)

	m := contactsmetrics.NewWithRegisterer(reg)
	trc := tracer.NewOTel(tracer.WithOTelTracer(otel.Tracer("contacts")))

	countries, persons, storeTx, err := buildStores(ctx, cfg, deps, m, log)
	if err != nil {
		return err
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithTracer(trc),
		service.WithTx(storeTx),
	}
	if deps.producer != nil {
		opts = append(opts, service.WithEventPublisher(events.NewKafkaPublisher(deps.producer, cfg.Kafka.Topic)))
	}

	countrySvc := service.NewCountryService(countries, opts...)
	personSvc := service.NewPersonService(persons, countrySvc, opts...)
	countryImporter := importer.New(countrySvc, importer.WithLogger(log), importer.WithMetrics(m))
	engine := query.NewEngine(query.WithMetrics(m), query.WithTracer(trc))

	healthHandler := health.New(cfg.Environment)
	if deps.db != nil {
		healthHandler.RegisterCheck("postgres", deps.db.Health)
	}
	if deps.redis != nil {
		healthHandler.RegisterCheck("redis", deps.redis.Health)
	}
	if deps.producer != nil {
		healthHandler.RegisterCheck("kafka", deps.producer.Health)
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:   log,
		Contacts: contactshandler.New(personSvc, countrySvc, countryImporter, engine, log),
		Health:   healthHandler,
		Gatherer: reg,
		Metrics:  request.NewMetrics(reg),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if deps.redis != nil {
		g.Go(func() error {
			return deps.redis.RunPoolStats(gctx, poolStatsInterval)
		})
	}

	return g.Wait()
}

func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger, reg prometheus.Registerer) (*infra, error) {
	i := &infra{}

	db, err := database.New(ctx, database.DefaultConfig(cfg.Database.URL))
	if err != nil {
		return nil, err
	}
	i.db = db

	rc, err := redis.New(ctx, cfg.Redis, reg)
	if err != nil {
		i.Close(log)
		return nil, err
	}
	i.redis = rc

	if cfg.Kafka.Brokers != "" {
		p, err := producer.New(producer.DefaultConfig(cfg.Kafka.Brokers), log)
		if err != nil {
			i.Close(log)
			return nil, err
		}
		i.producer = p
	}
	return i, nil
}

// buildStores picks Postgres when a database is configured and in-memory
// stores otherwise. Demo data goes in through WithSeed for memory and through
// the seeder for Postgres.
func buildStores(ctx context.Context, cfg config.Server, i *infra, m *contactsmetrics.Metrics, log *slog.Logger) (service.CountryStore, service.PersonStore, service.StoreTx, error) {
	if i.db == nil {
		var countryOpts []countrystore.Option
		var personOpts []personstore.Option
		if cfg.SeedDemoData {
			countryOpts = append(countryOpts, countrystore.WithSeed(seed.Countries()...))
			personOpts = append(personOpts, personstore.WithSeed(seed.Persons()...))
		}
		return countrystore.NewInMemory(countryOpts...), personstore.NewInMemory(personOpts...), service.NewInMemoryTx(), nil
	}

	var countries service.CountryStore = countrystore.NewPostgres(i.db.DB())
	persons := personstore.NewPostgres(i.db.DB())

	if cfg.SeedDemoData {
		if err := seeder.New(countries, persons, log).SeedAll(ctx, seed.Countries(), seed.Persons()); err != nil {
			return nil, nil, nil, err
		}
	}
	if i.redis != nil {
		breaker := circuit.New("country-cache", circuit.WithStateChange(func(name string, to circuit.State) {
			log.Warn("circuit breaker state changed", "breaker", name, "state", to.String())
		}))
		countries = countrystore.NewRedisCache(countries, i.redis.Client, cfg.Redis.CountryTTL, m, countrystore.WithBreaker(breaker))
	}
	return countries, persons, newContactsPostgresTx(i.db.DB()), nil
}
