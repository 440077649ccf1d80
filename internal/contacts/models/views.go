package models

import (
	"time"

	id "contacts/pkg/domain"
)

type CountryView struct {
	ID   id.CountryID
	Name string
}

// PersonView is the denormalized projection returned to callers.
// CountryName is empty when the country id does not resolve; Age is nil without a birth date.
type PersonView struct {
	ID                 id.PersonID
	Name               string
	Email              string
	DateOfBirth        *time.Time
	Gender             Gender
	CountryID          id.CountryID
	CountryName        string
	Address            string
	ReceiveNewsletters bool
	Age                *int
}

// NewPersonView projects p at instant now, attaching the resolved country name.
func NewPersonView(p *Person, countryName string, now time.Time) PersonView {
	v := PersonView{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        copyTime(p.DateOfBirth),
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		CountryName:        countryName,
		Address:            p.Address,
		ReceiveNewsletters: p.ReceiveNewsletters,
	}
	if p.DateOfBirth != nil {
		age := id.AgeInYears(*p.DateOfBirth, now)
		v.Age = &age
	}
	return v
}
