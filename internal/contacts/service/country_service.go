package service

import (
	"context"
	"errors"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	"contacts/internal/platform/tracer"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
	"contacts/pkg/requestcontext"
)

// CountryService owns country records and enforces exact-name uniqueness.
type CountryService struct {
	countries CountryStore
	emitter   *mutationEmitter
	metrics   *contactsmetrics.Metrics
	tracer    tracer.Tracer
	tx        StoreTx
}

func NewCountryService(countries CountryStore, opts ...Option) *CountryService {
	cfg := newConfig(opts)
	return &CountryService{
		countries: countries,
		emitter:   newMutationEmitter(cfg),
		metrics:   cfg.metrics,
		tracer:    cfg.tracer,
		tx:        cfg.tx,
	}
}

// Add creates a country. A nil request is a missing argument; an empty or
// already-used name is an argument error.
func (s *CountryService) Add(ctx context.Context, req *models.CountryAddRequest) (view *models.CountryView, err error) {
	ctx, span := s.tracer.Start(ctx, "countries.add")
	defer func() { span.End(err) }()

	if req == nil {
		return nil, errMissingRequest()
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var country *models.Country
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := models.NewCountry(id.NewCountryID(), req.Name, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.countries.CreateIfNameAvailable(txCtx, c); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return errDuplicateCountryName(err)
			}
			return wrapStoreErr(err, "failed to create country")
		}
		country = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.audit(ctx, "country_created", "country_id", country.ID.String(), "name", country.Name)
	if s.metrics != nil {
		s.metrics.IncrementCountryCreated()
	}
	v := country.View()
	return &v, nil
}

// GetAll returns every country in insertion order as a fresh slice.
func (s *CountryService) GetAll(ctx context.Context) ([]models.CountryView, error) {
	countries, err := s.countries.ListAll(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list countries")
	}
	views := make([]models.CountryView, 0, len(countries))
	for _, c := range countries {
		views = append(views, c.View())
	}
	return views, nil
}

// GetByID returns nil without error when countryID is nil or unknown.
func (s *CountryService) GetByID(ctx context.Context, countryID id.CountryID) (*models.CountryView, error) {
	if countryID.IsNil() {
		return nil, nil
	}
	c, err := s.countries.FindByID(ctx, countryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get country")
	}
	v := c.View()
	return &v, nil
}

// GetByName returns nil without error when no country has exactly this name.
func (s *CountryService) GetByName(ctx context.Context, name string) (*models.CountryView, error) {
	if name == "" {
		return nil, nil
	}
	c, err := s.countries.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get country")
	}
	v := c.View()
	return &v, nil
}
