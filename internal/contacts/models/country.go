package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
	"contacts/pkg/validation"
)

type Country struct {
	ID        id.CountryID `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
}

func NewCountry(countryID id.CountryID, name string, now time.Time) (*Country, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "country name cannot be empty")
	}
	if utf8.RuneCountInString(name) > validation.MaxCountryNameLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("country name must be %d characters or less", validation.MaxCountryNameLength))
	}
	return &Country{
		ID:        countryID,
		Name:      name,
		CreatedAt: now,
	}, nil
}

// View returns a detached read-only projection of the country.
func (c *Country) View() CountryView {
	return CountryView{ID: c.ID, Name: c.Name}
}
