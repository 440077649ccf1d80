package service

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks PersonStore,EventPublisher

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	"contacts/internal/contacts/service/mocks"
	countrystore "contacts/internal/contacts/store/country"
	personstore "contacts/internal/contacts/store/person"
	"contacts/pkg/requestcontext"
)

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

// ServiceSuite wires both services over in-memory stores sharing one StoreTx.
type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	publisher *mocks.MockEventPublisher
	metrics   *contactsmetrics.Metrics
	countries *CountryService
	persons   *PersonService
	personDB  *personstore.InMemory
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), fixedNow)
	s.ctrl = gomock.NewController(s.T())
	s.publisher = mocks.NewMockEventPublisher(s.ctrl)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.metrics = contactsmetrics.NewWithRegisterer(prometheus.NewRegistry())

	tx := NewInMemoryTx()
	s.countries = NewCountryService(countrystore.NewInMemory(), WithTx(tx), WithMetrics(s.metrics))
	s.personDB = personstore.NewInMemory()
	s.persons = NewPersonService(s.personDB, s.countries,
		WithTx(tx),
		WithMetrics(s.metrics),
		WithEventPublisher(s.publisher),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) addCountry(name string) *models.CountryView {
	v, err := s.countries.Add(s.ctx, &models.CountryAddRequest{Name: name})
	s.Require().NoError(err)
	return v
}

func (s *ServiceSuite) addPerson(fields models.PersonFields) *models.PersonView {
	v, err := s.persons.Add(s.ctx, &models.PersonAddRequest{PersonFields: fields})
	s.Require().NoError(err)
	return v
}
