package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
	"contacts/pkg/validation"
)

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

// PersonModelSuite tests the stored record and its projection.
type PersonModelSuite struct {
	suite.Suite
}

func TestPersonModelSuite(t *testing.T) {
	suite.Run(t, new(PersonModelSuite))
}

func (s *PersonModelSuite) details() PersonDetails {
	dob := time.Date(1990, 1, 5, 0, 0, 0, 0, time.UTC)
	return PersonDetails{
		Name:        "Ann",
		Email:       "ann@x.com",
		DateOfBirth: &dob,
		Gender:      GenderFemale,
		CountryID:   id.NewCountryID(),
		Address:     "1 Main St",
	}
}

func (s *PersonModelSuite) TestNewPerson() {
	s.Run("nil id is rejected", func() {
		_, err := NewPerson(id.PersonID{}, s.details(), fixedNow)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("empty name is rejected", func() {
		d := s.details()
		d.Name = ""
		_, err := NewPerson(id.NewPersonID(), d, fixedNow)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("multi-byte name at the cap is accepted", func() {
		d := s.details()
		d.Name = strings.Repeat("é", validation.MaxNameLength)
		_, err := NewPerson(id.NewPersonID(), d, fixedNow)
		s.NoError(err)
	})

	s.Run("overlong email and address are rejected", func() {
		d := s.details()
		d.Email = strings.Repeat("a", validation.MaxEmailLength) + "@x.com"
		_, err := NewPerson(id.NewPersonID(), d, fixedNow)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))

		d = s.details()
		d.Address = strings.Repeat("a", validation.MaxAddressLength+1)
		_, err = NewPerson(id.NewPersonID(), d, fixedNow)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("stamps timestamps", func() {
		p, err := NewPerson(id.NewPersonID(), s.details(), fixedNow)
		s.Require().NoError(err)
		s.Equal(fixedNow, p.CreatedAt)
		s.Equal(fixedNow, p.UpdatedAt)
	})
}

// TestReplace verifies that every mutable field is overwritten, including
// optional fields cleared by the caller.
func TestNewCountry(t *testing.T) {
	t.Run("length is counted in characters", func(t *testing.T) {
		name := strings.Repeat("日", validation.MaxCountryNameLength)
		c, err := NewCountry(id.NewCountryID(), name, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name)
	})

	t.Run("over the cap is rejected", func(t *testing.T) {
		_, err := NewCountry(id.NewCountryID(), strings.Repeat("日", validation.MaxCountryNameLength+1), fixedNow)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := NewCountry(id.NewCountryID(), "", fixedNow)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *PersonModelSuite) TestReplace() {
	p, err := NewPerson(id.NewPersonID(), s.details(), fixedNow)
	s.Require().NoError(err)
	originalID := p.ID

	later := fixedNow.Add(time.Hour)
	s.Require().NoError(p.Replace(PersonDetails{Name: "Bo", Email: "bo@x.com"}, later))

	s.Equal(originalID, p.ID)
	s.Equal("Bo", p.Name)
	s.Nil(p.DateOfBirth)
	s.Equal(GenderUnspecified, p.Gender)
	s.True(p.CountryID.IsNil())
	s.Empty(p.Address)
	s.Equal(fixedNow, p.CreatedAt)
	s.Equal(later, p.UpdatedAt)
}

func (s *PersonModelSuite) TestCloneIsDetached() {
	p, err := NewPerson(id.NewPersonID(), s.details(), fixedNow)
	s.Require().NoError(err)

	c := p.Clone()
	*c.DateOfBirth = c.DateOfBirth.AddDate(1, 0, 0)
	c.Name = "changed"

	s.Equal("Ann", p.Name)
	s.Equal(1990, p.DateOfBirth.Year())
}

func (s *PersonModelSuite) TestView() {
	s.Run("denormalizes country name and age", func() {
		p, err := NewPerson(id.NewPersonID(), s.details(), fixedNow)
		s.Require().NoError(err)

		v := NewPersonView(p, "Canada", fixedNow)
		s.Equal("Canada", v.CountryName)
		s.Require().NotNil(v.Age)
		s.Equal(37, *v.Age)
	})

	s.Run("absent birth date gives absent age", func() {
		d := s.details()
		d.DateOfBirth = nil
		p, err := NewPerson(id.NewPersonID(), d, fixedNow)
		s.Require().NoError(err)

		v := NewPersonView(p, "", fixedNow)
		s.Nil(v.Age)
		s.Empty(v.CountryName)
	})
}

// RequestSuite covers the rule set declared on mutation requests.
type RequestSuite struct {
	suite.Suite
}

func TestRequestSuite(t *testing.T) {
	suite.Run(t, new(RequestSuite))
}

func validFields() PersonFields {
	return PersonFields{
		Name:        " Ann ",
		Email:       "ann@x.com",
		DateOfBirth: "1990-01-05",
		Gender:      "female",
		CountryID:   id.NewCountryID().String(),
	}
}

func (s *RequestSuite) TestPersonAddRequest() {
	s.Run("nil request is a missing argument", func() {
		var r *PersonAddRequest
		s.True(dErrors.HasCode(r.Validate(), dErrors.CodeMissingArgument))
	})

	s.Run("normalizes then validates", func() {
		r := &PersonAddRequest{PersonFields: validFields()}
		r.Gender = " Female"
		r.Email = " ann@x.com\t"
		r.Address = "  1 Main St "
		r.Normalize()
		s.Require().NoError(r.Validate())
		s.Equal("Ann", r.Name)
		s.Equal("ann@x.com", r.Email)
		s.Equal("1 Main St", r.Address)
		s.Equal("female", r.Gender)
	})

	s.Run("missing email", func() {
		r := &PersonAddRequest{PersonFields: validFields()}
		r.Email = ""
		err := r.Validate()
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("email", dErrors.FieldOf(err))
	})

	s.Run("bad email syntax", func() {
		r := &PersonAddRequest{PersonFields: validFields()}
		r.Email = "ann-at-x"
		s.Equal("email", dErrors.FieldOf(r.Validate()))
	})

	s.Run("unknown gender", func() {
		r := &PersonAddRequest{PersonFields: validFields()}
		r.Gender = "robot"
		s.Equal("gender", dErrors.FieldOf(r.Validate()))
	})

	s.Run("bad birth date", func() {
		r := &PersonAddRequest{PersonFields: validFields()}
		r.DateOfBirth = "05/01/1990"
		s.Equal("date_of_birth", dErrors.FieldOf(r.Validate()))
	})

	s.Run("address length cap", func() {
		r := &PersonAddRequest{PersonFields: validFields()}
		r.Address = strings.Repeat("a", 513)
		s.Equal("address", dErrors.FieldOf(r.Validate()))
	})
}

func (s *RequestSuite) TestPersonUpdateRequest() {
	s.Run("nil request is a missing argument", func() {
		var r *PersonUpdateRequest
		s.True(dErrors.HasCode(r.Validate(), dErrors.CodeMissingArgument))
	})

	s.Run("nil id is rejected", func() {
		r := &PersonUpdateRequest{ID: "00000000-0000-0000-0000-000000000000", PersonFields: validFields()}
		err := r.Validate()
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("id", dErrors.FieldOf(err))
	})

	s.Run("empty name is rejected", func() {
		personID := id.NewPersonID()
		r := &PersonUpdateRequest{ID: personID.String(), PersonFields: validFields()}
		r.Name = ""
		err := r.Validate()
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("name", dErrors.FieldOf(err))
	})

	s.Run("exposes parsed id", func() {
		personID := id.NewPersonID()
		r := &PersonUpdateRequest{ID: personID.String(), PersonFields: validFields()}
		s.Require().NoError(r.Validate())
		s.Equal(personID, r.PersonID())
	})
}

func (s *RequestSuite) TestDetails() {
	f := validFields()
	f.normalize()

	d, err := f.Details()
	s.Require().NoError(err)
	s.Equal("Ann", d.Name)
	s.Equal(GenderFemale, d.Gender)
	s.Require().NotNil(d.DateOfBirth)
	s.Equal(time.Date(1990, 1, 5, 0, 0, 0, 0, time.UTC), *d.DateOfBirth)
	s.False(d.CountryID.IsNil())
}

func (s *RequestSuite) TestCountryAddRequest() {
	s.Run("blank name", func() {
		r := &CountryAddRequest{Name: "   "}
		r.Normalize()
		err := r.Validate()
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("name", dErrors.FieldOf(err))
	})

	s.Run("nil request", func() {
		var r *CountryAddRequest
		s.True(dErrors.HasCode(r.Validate(), dErrors.CodeMissingArgument))
	})
}
