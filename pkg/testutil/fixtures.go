package testutil

import (
	"time"

	"contacts/internal/contacts/models"
	id "contacts/pkg/domain"
)

// PersonBuilder provides a fluent interface for building test persons.
type PersonBuilder struct {
	person *models.Person
}

// NewPersonBuilder starts from a valid person with no optional fields.
func NewPersonBuilder() *PersonBuilder {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &PersonBuilder{
		person: &models.Person{
			ID:        id.NewPersonID(),
			Name:      "Test Person",
			Email:     "test@example.com",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (b *PersonBuilder) WithID(personID id.PersonID) *PersonBuilder {
	b.person.ID = personID
	return b
}

func (b *PersonBuilder) WithName(name string) *PersonBuilder {
	b.person.Name = name
	return b
}

func (b *PersonBuilder) WithEmail(email string) *PersonBuilder {
	b.person.Email = email
	return b
}

func (b *PersonBuilder) WithCountry(countryID id.CountryID) *PersonBuilder {
	b.person.CountryID = countryID
	return b
}

func (b *PersonBuilder) WithDateOfBirth(y int, m time.Month, d int) *PersonBuilder {
	dob := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	b.person.DateOfBirth = &dob
	return b
}

func (b *PersonBuilder) WithGender(g models.Gender) *PersonBuilder {
	b.person.Gender = g
	return b
}

func (b *PersonBuilder) WithAddress(address string) *PersonBuilder {
	b.person.Address = address
	return b
}

func (b *PersonBuilder) WithNewsletters() *PersonBuilder {
	b.person.ReceiveNewsletters = true
	return b
}

func (b *PersonBuilder) Build() *models.Person {
	return b.person
}

// NewCountry builds a country with a fresh id.
func NewCountry(name string) *models.Country {
	return &models.Country{
		ID:        id.NewCountryID(),
		Name:      name,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
