package service

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	"contacts/internal/contacts/service/mocks"
	countrystore "contacts/internal/contacts/store/country"
	personstore "contacts/internal/contacts/store/person"
	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
)

func ann(countryID string) models.PersonFields {
	return models.PersonFields{
		Name:        "Ann",
		Email:       "ann@x.com",
		DateOfBirth: "1990-01-05",
		Gender:      "female",
		CountryID:   countryID,
		Address:     "1 Main St",
	}
}

func (s *ServiceSuite) TestPersonAdd() {
	canada := s.addCountry("Canada")

	s.Run("denormalizes country name and age", func() {
		v := s.addPerson(ann(canada.ID.String()))

		s.False(v.ID.IsNil())
		s.Equal("Canada", v.CountryName)
		s.Require().NotNil(v.Age)
		s.Equal(37, *v.Age)

		all, err := s.persons.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 1)
		s.Equal(v.ID, all[0].ID)
	})

	s.Run("unresolved country leaves name empty", func() {
		v := s.addPerson(ann(id.NewCountryID().String()))
		s.Empty(v.CountryName)
	})

	s.Run("without birth date age is absent", func() {
		f := ann("")
		f.DateOfBirth = ""
		v := s.addPerson(f)
		s.Nil(v.Age)
		s.True(v.CountryID.IsNil())
	})

	s.Run("nil request is a missing argument", func() {
		_, err := s.persons.Add(s.ctx, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeMissingArgument))
	})

	s.Run("invalid email is an argument error", func() {
		f := ann("")
		f.Email = "nope"
		_, err := s.persons.Add(s.ctx, &models.PersonAddRequest{PersonFields: f})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("email", dErrors.FieldOf(err))
	})

	s.Equal(float64(3), testutil.ToFloat64(s.metrics.PersonMutationsTotal.WithLabelValues("add")))
}

func (s *ServiceSuite) TestPersonGetByID_AbsentIsNotAnError() {
	got, err := s.persons.GetByID(s.ctx, id.PersonID{})
	s.NoError(err)
	s.Nil(got)

	got, err = s.persons.GetByID(s.ctx, id.NewPersonID())
	s.NoError(err)
	s.Nil(got)
}

func (s *ServiceSuite) TestPersonUpdate() {
	canada := s.addCountry("Canada")
	mexico := s.addCountry("Mexico")
	added := s.addPerson(ann(canada.ID.String()))

	s.Run("replaces every mutable field", func() {
		v, err := s.persons.Update(s.ctx, &models.PersonUpdateRequest{
			ID: added.ID.String(),
			PersonFields: models.PersonFields{
				Name:               "Ann Lee",
				Email:              "lee@x.com",
				CountryID:          mexico.ID.String(),
				ReceiveNewsletters: true,
			},
		})
		s.Require().NoError(err)
		s.Equal(added.ID, v.ID)
		s.Equal("Ann Lee", v.Name)
		s.Equal("Mexico", v.CountryName)
		s.Nil(v.DateOfBirth)
		s.Nil(v.Age)
		s.Empty(v.Address)
		s.Equal(models.GenderUnspecified, v.Gender)
		s.True(v.ReceiveNewsletters)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.persons.Update(s.ctx, &models.PersonUpdateRequest{
			ID:           id.NewPersonID().String(),
			PersonFields: ann(""),
		})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("nil request is a missing argument", func() {
		_, err := s.persons.Update(s.ctx, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeMissingArgument))
	})

	s.Run("empty name fails and leaves the record unchanged", func() {
		f := ann("")
		f.Name = ""
		_, err := s.persons.Update(s.ctx, &models.PersonUpdateRequest{ID: added.ID.String(), PersonFields: f})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		got, err := s.persons.GetByID(s.ctx, added.ID)
		s.Require().NoError(err)
		s.Equal("Ann Lee", got.Name)
	})

	s.Run("cancelled context leaves the record unchanged", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := s.persons.Update(ctx, &models.PersonUpdateRequest{ID: added.ID.String(), PersonFields: ann("")})
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))

		got, err := s.persons.GetByID(s.ctx, added.ID)
		s.Require().NoError(err)
		s.Equal("Ann Lee", got.Name)
	})
}

func (s *ServiceSuite) TestPersonDelete() {
	v := s.addPerson(ann(""))

	deleted, err := s.persons.Delete(s.ctx, v.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.persons.Delete(s.ctx, v.ID)
	s.Require().NoError(err)
	s.False(deleted)

	got, err := s.persons.GetByID(s.ctx, v.ID)
	s.NoError(err)
	s.Nil(got)

	_, err = s.persons.Delete(s.ctx, id.PersonID{})
	s.True(dErrors.HasCode(err, dErrors.CodeMissingArgument))

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.PersonMutationsTotal.WithLabelValues("delete")))
}

// TestEndToEnd walks the add-country, add-person, rejected-update, delete flow.
func (s *ServiceSuite) TestEndToEnd() {
	c, err := s.countries.Add(s.ctx, &models.CountryAddRequest{Name: "Canada"})
	s.Require().NoError(err)

	p, err := s.persons.Add(s.ctx, &models.PersonAddRequest{PersonFields: models.PersonFields{
		Name: "Ann", Email: "ann@x.com", CountryID: c.ID.String(),
	}})
	s.Require().NoError(err)
	s.Equal("Canada", p.CountryName)

	_, err = s.persons.Update(s.ctx, &models.PersonUpdateRequest{
		ID:           p.ID.String(),
		PersonFields: models.PersonFields{Name: "", Email: "ann@x.com"},
	})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	got, err := s.persons.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Ann", got.Name)

	deleted, err := s.persons.Delete(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(deleted)

	got, err = s.persons.GetByID(s.ctx, p.ID)
	s.NoError(err)
	s.Nil(got)
}

// TestPersonEvents checks what is handed to the publisher.
func (s *ServiceSuite) TestPersonEvents() {
	ctrl := gomock.NewController(s.T())
	publisher := mocks.NewMockEventPublisher(ctrl)
	metrics := contactsmetrics.NewWithRegisterer(prometheus.NewRegistry())
	svc := NewPersonService(personstore.NewInMemory(), NewCountryService(countrystore.NewInMemory()),
		WithEventPublisher(publisher),
		WithMetrics(metrics),
	)

	var added models.PersonEvent
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.PersonEvent) error {
			added = e
			return nil
		})
	v, err := svc.Add(s.ctx, &models.PersonAddRequest{PersonFields: ann("")})
	s.Require().NoError(err)
	s.Equal(models.PersonAdded, added.Type)
	s.Equal(v.ID.String(), added.PersonID)
	s.Equal(fixedNow, added.OccurredAt)

	s.Run("publish failure does not fail the mutation", func() {
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		deleted, err := svc.Delete(s.ctx, v.ID)
		s.Require().NoError(err)
		s.True(deleted)
		s.Equal(float64(1), testutil.ToFloat64(metrics.PersonEventsPublished.WithLabelValues("error")))
	})

	s.Run("no event when nothing was deleted", func() {
		deleted, err := svc.Delete(s.ctx, v.ID)
		s.Require().NoError(err)
		s.False(deleted)
	})
}

func (s *ServiceSuite) TestPersonStoreFailures() {
	ctrl := gomock.NewController(s.T())
	store := mocks.NewMockPersonStore(ctrl)
	svc := NewPersonService(store, NewCountryService(countrystore.NewInMemory()))

	s.Run("list failure is internal", func() {
		store.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection reset"))
		_, err := svc.GetAll(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("find failure is internal, not absent", func() {
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
		_, err := svc.GetByID(s.ctx, id.NewPersonID())
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("create failure is internal", func() {
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		_, err := svc.Add(s.ctx, &models.PersonAddRequest{PersonFields: ann("")})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("delete timeout is surfaced as timeout", func() {
		store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)
		_, err := svc.Delete(s.ctx, id.NewPersonID())
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	})
}
