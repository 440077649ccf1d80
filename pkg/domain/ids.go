// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "contacts/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing PersonID where CountryID is expected.
type (
	PersonID  uuid.UUID
	CountryID uuid.UUID
)

// NewPersonID generates a fresh random person identifier.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// NewCountryID generates a fresh random country identifier.
func NewCountryID() CountryID { return CountryID(uuid.New()) }

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParsePersonID(s string) (PersonID, error) {
	id, err := parseUUID(s, "person ID")
	return PersonID(id), err
}

func ParseCountryID(s string) (CountryID, error) {
	id, err := parseUUID(s, "country ID")
	return CountryID(id), err
}

// MustCountryID parses a literal country ID and panics on failure. Seed data only.
func MustCountryID(s string) CountryID { return CountryID(uuid.MustParse(s)) }

// MustPersonID parses a literal person ID and panics on failure. Seed data only.
func MustPersonID(s string) PersonID { return PersonID(uuid.MustParse(s)) }

// String methods - for logging and debugging.

func (id PersonID) String() string  { return uuid.UUID(id).String() }
func (id CountryID) String() string { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id PersonID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id CountryID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// Text encoding - lets typed IDs travel through JSON as canonical UUID strings.

func (id PersonID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id CountryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PersonID) UnmarshalText(b []byte) error  { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *CountryID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// parseUUID is the shared validation logic.
// Note: Nil UUIDs are allowed here. Lookups treat the nil ID as "absent" and return
// an empty result rather than an error, so the service layer decides what nil means.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
