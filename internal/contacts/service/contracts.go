package service

import (
	"context"

	"contacts/internal/contacts/models"
	id "contacts/pkg/domain"
)

// Store interfaces define persistence contracts. Stores return sentinel errors;
// services translate them into domain errors exactly once.

type CountryStore interface {
	CreateIfNameAvailable(ctx context.Context, country *models.Country) error
	FindByID(ctx context.Context, countryID id.CountryID) (*models.Country, error)
	FindByName(ctx context.Context, name string) (*models.Country, error)
	ListAll(ctx context.Context) ([]*models.Country, error)
}

type PersonStore interface {
	Create(ctx context.Context, person *models.Person) error
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, personID id.PersonID) error
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	ListAll(ctx context.Context) ([]*models.Person, error)
}

// CountryDirectory resolves country names for person views.
// CountryService satisfies it; PersonService never touches the country store directly.
type CountryDirectory interface {
	GetByID(ctx context.Context, countryID id.CountryID) (*models.CountryView, error)
	GetAll(ctx context.Context) ([]models.CountryView, error)
}

// EventPublisher delivers person change events after a mutation commits.
type EventPublisher interface {
	Publish(ctx context.Context, event models.PersonEvent) error
}
