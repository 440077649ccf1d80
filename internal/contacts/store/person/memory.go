package person

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
)

// ErrNotFound is returned when a person is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory keeps persons in insertion order. Records are cloned on the way in
// and out so callers never share storage with the store.
type InMemory struct {
	mu      sync.RWMutex
	persons map[id.PersonID]*models.Person
	order   []id.PersonID
}

// Option configures an InMemory store.
type Option func(*InMemory)

// WithSeed preloads persons. Seeds reusing an id are skipped.
func WithSeed(persons ...*models.Person) Option {
	return func(s *InMemory) {
		for _, p := range persons {
			if _, exists := s.persons[p.ID]; exists {
				continue
			}
			s.persons[p.ID] = p.Clone()
			s.order = append(s.order, p.ID)
		}
	}
}

// NewInMemory creates an in-memory person store.
func NewInMemory(opts ...Option) *InMemory {
	s := &InMemory{persons: make(map[id.PersonID]*models.Person)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemory) Create(_ context.Context, p *models.Person) error {
	if p == nil {
		return fmt.Errorf("person is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.persons[p.ID]; exists {
		return fmt.Errorf("person id must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	s.persons[p.ID] = p.Clone()
	s.order = append(s.order, p.ID)
	return nil
}

// Update replaces the stored record with p.
func (s *InMemory) Update(_ context.Context, p *models.Person) error {
	if p == nil {
		return fmt.Errorf("person is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.persons[p.ID]; !exists {
		return ErrNotFound
	}
	s.persons[p.ID] = p.Clone()
	return nil
}

func (s *InMemory) Delete(_ context.Context, personID id.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.persons[personID]; !exists {
		return ErrNotFound
	}
	delete(s.persons, personID)
	s.order = slices.DeleteFunc(s.order, func(v id.PersonID) bool { return v == personID })
	return nil
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.persons[personID]; ok {
		return p.Clone(), nil
	}
	return nil, ErrNotFound
}

// ListAll returns a fresh copy of every person in insertion order.
func (s *InMemory) ListAll(_ context.Context) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Person, 0, len(s.order))
	for _, personID := range s.order {
		out = append(out, s.persons[personID].Clone())
	}
	return out, nil
}
