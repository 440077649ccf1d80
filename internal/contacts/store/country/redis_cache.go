package country

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	id "contacts/pkg/domain"
	"contacts/pkg/platform/circuit"
)

const redisCountryKeyPrefix = "contacts:country:"

// Backend is the durable store the cache reads through to.
type Backend interface {
	CreateIfNameAvailable(ctx context.Context, c *models.Country) error
	FindByID(ctx context.Context, countryID id.CountryID) (*models.Country, error)
	FindByName(ctx context.Context, name string) (*models.Country, error)
	ListAll(ctx context.Context) ([]*models.Country, error)
}

// RedisCache caches id lookups in Redis in front of a Backend. Countries are
// never mutated, so entries only expire by TTL.
type RedisCache struct {
	next     Backend
	client   *redis.Client
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	breaker  *circuit.Breaker
}

type CacheOption func(*RedisCache)

// WithBreaker skips Redis entirely while b is open.
func WithBreaker(b *circuit.Breaker) CacheOption {
	return func(c *RedisCache) {
		c.breaker = b
	}
}

// NewRedisCache wraps next with a read-through cache; metrics may be nil.
func NewRedisCache(next Backend, client *redis.Client, cacheTTL time.Duration, m *metrics.Metrics, opts ...CacheOption) *RedisCache {
	c := &RedisCache{
		next:     next,
		client:   client,
		cacheTTL: cacheTTL,
		metrics:  m,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache) CreateIfNameAvailable(ctx context.Context, country *models.Country) error {
	return c.next.CreateIfNameAvailable(ctx, country)
}

// FindByID serves from Redis when possible. A Redis failure degrades to the backend.
func (c *RedisCache) FindByID(ctx context.Context, countryID id.CountryID) (*models.Country, error) {
	if !c.allow() {
		c.record("bypass")
		return c.next.FindByID(ctx, countryID)
	}

	data, err := c.client.Get(ctx, countryKey(countryID)).Bytes()
	switch {
	case err == nil:
		c.succeeded()
		var country models.Country
		if jsonErr := json.Unmarshal(data, &country); jsonErr == nil {
			c.record("hit")
			return &country, nil
		}
		c.record("error")
	case errors.Is(err, redis.Nil):
		c.succeeded()
		c.record("miss")
	default:
		c.failed()
		c.record("error")
	}

	country, err := c.next.FindByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, country); err != nil {
		c.failed()
		c.record("error")
	}
	return country, nil
}

func (c *RedisCache) FindByName(ctx context.Context, name string) (*models.Country, error) {
	return c.next.FindByName(ctx, name)
}

func (c *RedisCache) ListAll(ctx context.Context) ([]*models.Country, error) {
	return c.next.ListAll(ctx)
}

func (c *RedisCache) save(ctx context.Context, country *models.Country) error {
	payload, err := json.Marshal(country)
	if err != nil {
		return fmt.Errorf("encode country cache: %w", err)
	}
	if err := c.client.Set(ctx, countryKey(country.ID), payload, c.cacheTTL).Err(); err != nil {
		return fmt.Errorf("save country cache: %w", err)
	}
	return nil
}

func (c *RedisCache) allow() bool {
	return c.breaker == nil || c.breaker.Allow()
}

func (c *RedisCache) succeeded() {
	if c.breaker != nil {
		c.breaker.Success()
	}
}

func (c *RedisCache) failed() {
	if c.breaker != nil {
		c.breaker.Failure()
	}
}

func (c *RedisCache) record(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCacheLookup(result)
}

func countryKey(countryID id.CountryID) string {
	return redisCountryKeyPrefix + countryID.String()
}
