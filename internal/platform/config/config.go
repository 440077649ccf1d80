package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr         string
	Environment  string
	LogLevel     slog.Level
	SeedDemoData bool
	Database     DatabaseConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
}

// DatabaseConfig selects the durable stores. An empty URL keeps everything in memory.
type DatabaseConfig struct {
	URL string
}

// RedisConfig configures the country lookup cache. An empty URL disables caching.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CountryTTL   time.Duration
}

// KafkaConfig configures person event publishing. Empty brokers disables publishing.
type KafkaConfig struct {
	Brokers string
	Topic   string
}

const (
	DefaultAddr            = ":8080"
	DefaultCountryCacheTTL = 10 * time.Minute
	DefaultPersonTopic     = "contacts.person-events"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Server {
	addr := getenv("CONTACTS_ADDR")
	if addr == "" {
		addr = DefaultAddr
	}
	environment := getenv("CONTACTS_ENV")
	if environment == "" {
		environment = "development"
	}

	countryTTL := DefaultCountryCacheTTL
	if v := getenv("COUNTRY_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			countryTTL = d
		}
	}

	topic := getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = DefaultPersonTopic
	}

	return Server{
		Addr:         addr,
		Environment:  environment,
		LogLevel:     parseLevel(getenv("LOG_LEVEL")),
		SeedDemoData: getenv("SEED_DEMO_DATA") == "true",
		Database:     DatabaseConfig{URL: getenv("DATABASE_URL")},
		Redis: RedisConfig{
			URL:          getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			CountryTTL:   countryTTL,
		},
		Kafka: KafkaConfig{
			Brokers: getenv("KAFKA_BROKERS"),
			Topic:   topic,
		},
	}
}

func parseLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
