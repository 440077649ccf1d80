package country

import (
	"context"
	"fmt"
	"sync"

	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
)

// ErrNotFound is returned when a country is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory keeps countries in insertion order for the lifetime of the process.
type InMemory struct {
	mu        sync.RWMutex
	countries map[id.CountryID]*models.Country
	nameIdx   map[string]id.CountryID
	order     []id.CountryID
}

// Option configures an InMemory store.
type Option func(*InMemory)

// WithSeed preloads countries. Seeds reusing an id or a name are skipped.
func WithSeed(countries ...*models.Country) Option {
	return func(s *InMemory) {
		for _, c := range countries {
			_ = s.insert(c)
		}
	}
}

// NewInMemory creates an in-memory country store.
func NewInMemory(opts ...Option) *InMemory {
	s := &InMemory{
		countries: make(map[id.CountryID]*models.Country),
		nameIdx:   make(map[string]id.CountryID),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateIfNameAvailable atomically creates the country if no country has exactly the same name.
func (s *InMemory) CreateIfNameAvailable(_ context.Context, c *models.Country) error {
	if c == nil {
		return fmt.Errorf("country is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(c)
}

func (s *InMemory) insert(c *models.Country) error {
	if _, exists := s.countries[c.ID]; exists {
		return fmt.Errorf("country id must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	if _, exists := s.nameIdx[c.Name]; exists {
		return fmt.Errorf("country name must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	stored := *c
	s.countries[c.ID] = &stored
	s.nameIdx[c.Name] = c.ID
	s.order = append(s.order, c.ID)
	return nil
}

// FindByID retrieves a country by its UUID.
func (s *InMemory) FindByID(_ context.Context, countryID id.CountryID) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.countries[countryID]; ok {
		out := *c
		return &out, nil
	}
	return nil, ErrNotFound
}

// FindByName retrieves a country by exact (case-sensitive) name.
func (s *InMemory) FindByName(_ context.Context, name string) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if countryID, ok := s.nameIdx[name]; ok {
		out := *s.countries[countryID]
		return &out, nil
	}
	return nil, ErrNotFound
}

// ListAll returns a fresh copy of every country in insertion order.
func (s *InMemory) ListAll(_ context.Context) ([]*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Country, 0, len(s.order))
	for _, countryID := range s.order {
		c := *s.countries[countryID]
		out = append(out, &c)
	}
	return out, nil
}
