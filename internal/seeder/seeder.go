package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
)

// CountryStore defines methods for seeding countries
type CountryStore interface {
	CreateIfNameAvailable(ctx context.Context, country *models.Country) error
}

// PersonStore defines methods for seeding persons
type PersonStore interface {
	Create(ctx context.Context, person *models.Person) error
}

// Seeder writes the demo data set into durable stores. Re-running it is safe:
// records that already exist are skipped.
type Seeder struct {
	countries CountryStore
	persons   PersonStore
	logger    *slog.Logger
}

// New creates a new seeder
func New(countries CountryStore, persons PersonStore, logger *slog.Logger) *Seeder {
	return &Seeder{
		countries: countries,
		persons:   persons,
		logger:    logger,
	}
}

// SeedAll writes the given countries, then persons.
func (s *Seeder) SeedAll(ctx context.Context, countries []*models.Country, persons []*models.Person) error {
	s.logger.InfoContext(ctx, "seeding demo data...")

	insertedCountries := 0
	for _, c := range countries {
		if err := s.countries.CreateIfNameAvailable(ctx, c); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				continue
			}
			return fmt.Errorf("failed to seed country %q: %w", c.Name, err)
		}
		insertedCountries++
	}

	insertedPersons := 0
	for _, p := range persons {
		if err := s.persons.Create(ctx, p); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				continue
			}
			return fmt.Errorf("failed to seed person %q: %w", p.Name, err)
		}
		insertedPersons++
	}

	s.logger.InfoContext(ctx, "demo data seeded successfully",
		"countries", insertedCountries,
		"persons", insertedPersons,
	)
	return nil
}
