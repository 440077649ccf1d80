package models

import (
	"strings"
	"time"

	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
	s "contacts/pkg/string"
	"contacts/pkg/validation"
)

// DateLayout is the wire format for birth dates.
const DateLayout = "2006-01-02"

type CountryAddRequest struct {
	Name string `json:"name" validate:"required,notblank,max=128"`
}

func (r *CountryAddRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CountryAddRequest) Validate() error {
	return validation.Validate(r)
}

// PersonFields are the caller-supplied mutable fields shared by add and update.
type PersonFields struct {
	Name               string `json:"name" validate:"required,notblank,max=128"`
	Email              string `json:"email" validate:"required,email,max=255"`
	DateOfBirth        string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender             string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	CountryID          string `json:"country_id,omitempty" validate:"omitempty,uuid"`
	Address            string `json:"address,omitempty" validate:"max=512"`
	ReceiveNewsletters bool   `json:"receive_newsletters"`
}

func (f *PersonFields) normalize() {
	s.TrimStrings(&f.Name, &f.Email, &f.DateOfBirth, &f.CountryID, &f.Address)
	f.Gender = string(ParseGender(f.Gender))
}

// Details converts validated fields into the stored representation.
func (f *PersonFields) Details() (PersonDetails, error) {
	d := PersonDetails{
		Name:               f.Name,
		Email:              f.Email,
		Gender:             Gender(f.Gender),
		Address:            f.Address,
		ReceiveNewsletters: f.ReceiveNewsletters,
	}
	if f.DateOfBirth != "" {
		dob, err := time.Parse(DateLayout, f.DateOfBirth)
		if err != nil {
			return PersonDetails{}, dErrors.NewField("date_of_birth", "date_of_birth must be YYYY-MM-DD")
		}
		d.DateOfBirth = &dob
	}
	if f.CountryID != "" {
		countryID, err := id.ParseCountryID(f.CountryID)
		if err != nil {
			return PersonDetails{}, dErrors.NewField("country_id", "country_id must be a valid uuid")
		}
		d.CountryID = countryID
	}
	return d, nil
}

type PersonAddRequest struct {
	PersonFields
}

func (r *PersonAddRequest) Normalize() {
	if r == nil {
		return
	}
	r.normalize()
}

func (r *PersonAddRequest) Validate() error {
	return validation.Validate(r)
}

// PersonUpdateRequest carries the full desired state of an existing person.
type PersonUpdateRequest struct {
	ID string `json:"id" validate:"required,uuid"`
	PersonFields
}

func (r *PersonUpdateRequest) Normalize() {
	if r == nil {
		return
	}
	r.ID = strings.TrimSpace(r.ID)
	r.normalize()
}

func (r *PersonUpdateRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	personID, err := id.ParsePersonID(r.ID)
	if err != nil || personID.IsNil() {
		return dErrors.NewField("id", "id is required")
	}
	return nil
}

// PersonID returns the parsed target id; call after Validate.
func (r *PersonUpdateRequest) PersonID() id.PersonID {
	personID, _ := id.ParsePersonID(r.ID)
	return personID
}
