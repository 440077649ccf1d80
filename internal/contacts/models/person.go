package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
	"contacts/pkg/validation"
)

// Person is the stored record. Derived values (country name, age) live on PersonView only.
type Person struct {
	ID                 id.PersonID
	Name               string
	Email              string
	DateOfBirth        *time.Time
	Gender             Gender
	CountryID          id.CountryID
	Address            string
	ReceiveNewsletters bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PersonDetails is the set of mutable person fields, always written as a whole.
type PersonDetails struct {
	Name               string
	Email              string
	DateOfBirth        *time.Time
	Gender             Gender
	CountryID          id.CountryID
	Address            string
	ReceiveNewsletters bool
}

func NewPerson(personID id.PersonID, details PersonDetails, now time.Time) (*Person, error) {
	if personID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "person ID cannot be nil")
	}
	p := &Person{ID: personID, CreatedAt: now}
	if err := p.Replace(details, now); err != nil {
		return nil, err
	}
	return p, nil
}

// Replace overwrites every mutable field. There is no partial update.
func (p *Person) Replace(details PersonDetails, now time.Time) error {
	if details.Name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "person name cannot be empty")
	}
	if details.Email == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "person email cannot be empty")
	}
	if err := checkLength("name", details.Name, validation.MaxNameLength); err != nil {
		return err
	}
	if err := checkLength("email", details.Email, validation.MaxEmailLength); err != nil {
		return err
	}
	if err := checkLength("address", details.Address, validation.MaxAddressLength); err != nil {
		return err
	}
	p.Name = details.Name
	p.Email = details.Email
	p.DateOfBirth = copyTime(details.DateOfBirth)
	p.Gender = details.Gender
	p.CountryID = details.CountryID
	p.Address = details.Address
	p.ReceiveNewsletters = details.ReceiveNewsletters
	p.UpdatedAt = now
	return nil
}

func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("person %s must be %d characters or less", field, max))
	}
	return nil
}

// Clone returns a deep copy so stores never hand out their own records.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	c := *p
	c.DateOfBirth = copyTime(p.DateOfBirth)
	return &c
}

func (p *Person) Details() PersonDetails {
	return PersonDetails{
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        copyTime(p.DateOfBirth),
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		Address:            p.Address,
		ReceiveNewsletters: p.ReceiveNewsletters,
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
