package service

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
)

func (s *ServiceSuite) TestCountryAdd() {
	s.Run("returns a view with a generated id", func() {
		v := s.addCountry("Canada")
		s.False(v.ID.IsNil())
		s.Equal("Canada", v.Name)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.CountriesCreated))
	})

	s.Run("trims the name", func() {
		v := s.addCountry("  Peru ")
		s.Equal("Peru", v.Name)
	})

	s.Run("nil request is a missing argument", func() {
		_, err := s.countries.Add(s.ctx, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeMissingArgument))
	})

	s.Run("multi-byte name within the cap is accepted", func() {
		name := strings.Repeat("日", 50)
		v, err := s.countries.Add(s.ctx, &models.CountryAddRequest{Name: name})
		s.Require().NoError(err)
		s.Equal(name, v.Name)
	})

	s.Run("name over the cap is an argument error", func() {
		_, err := s.countries.Add(s.ctx, &models.CountryAddRequest{Name: strings.Repeat("日", 129)})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("name", dErrors.FieldOf(err))
	})

	s.Run("empty name is an argument error", func() {
		_, err := s.countries.Add(s.ctx, &models.CountryAddRequest{Name: ""})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("name", dErrors.FieldOf(err))
	})
}

func (s *ServiceSuite) TestCountryAdd_DuplicateName() {
	s.addCountry("Canada")

	_, err := s.countries.Add(s.ctx, &models.CountryAddRequest{Name: "Canada"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	s.True(IsDuplicateName(err))

	s.Run("differently cased name is distinct", func() {
		v, err := s.countries.Add(s.ctx, &models.CountryAddRequest{Name: "canada"})
		s.Require().NoError(err)
		s.Equal("canada", v.Name)
	})
}

func (s *ServiceSuite) TestCountryGetByID() {
	c := s.addCountry("Chile")

	got, err := s.countries.GetByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(c, got)

	got, err = s.countries.GetByID(s.ctx, id.CountryID{})
	s.NoError(err)
	s.Nil(got)

	got, err = s.countries.GetByID(s.ctx, id.NewCountryID())
	s.NoError(err)
	s.Nil(got)
}

func (s *ServiceSuite) TestCountryGetByName() {
	s.addCountry("Japan")

	got, err := s.countries.GetByName(s.ctx, "Japan")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Japan", got.Name)

	got, err = s.countries.GetByName(s.ctx, "japan")
	s.NoError(err)
	s.Nil(got)
}

func (s *ServiceSuite) TestCountryGetAll_FreshCopyInInsertionOrder() {
	s.addCountry("B")
	s.addCountry("A")

	first, err := s.countries.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Equal("B", first[0].Name)
	s.Equal("A", first[1].Name)

	first[0].Name = "mutated"
	second, err := s.countries.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Equal("B", second[0].Name)
}
