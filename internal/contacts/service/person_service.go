package service

import (
	"context"
	"errors"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	"contacts/internal/platform/tracer"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
	"contacts/pkg/requestcontext"
)

// PersonService owns person records and builds their denormalized views.
type PersonService struct {
	persons   PersonStore
	countries CountryDirectory
	emitter   *mutationEmitter
	metrics   *contactsmetrics.Metrics
	tracer    tracer.Tracer
	tx        StoreTx
}

func NewPersonService(persons PersonStore, countries CountryDirectory, opts ...Option) *PersonService {
	cfg := newConfig(opts)
	return &PersonService{
		persons:   persons,
		countries: countries,
		emitter:   newMutationEmitter(cfg),
		metrics:   cfg.metrics,
		tracer:    cfg.tracer,
		tx:        cfg.tx,
	}
}

// Add validates req, assigns a fresh id and stores the person.
func (s *PersonService) Add(ctx context.Context, req *models.PersonAddRequest) (view *models.PersonView, err error) {
	ctx, span := s.tracer.Start(ctx, "persons.add")
	defer func() { span.End(err) }()

	if req == nil {
		return nil, errMissingRequest()
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	details, err := req.Details()
	if err != nil {
		return nil, err
	}

	var person *models.Person
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := models.NewPerson(id.NewPersonID(), details, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.persons.Create(txCtx, p); err != nil {
			return wrapStoreErr(err, "failed to create person")
		}
		person = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, models.PersonAdded, person.ID, "person_added")
	return s.view(ctx, person)
}

// GetAll returns a view of every person, with age relative to the request time.
func (s *PersonService) GetAll(ctx context.Context) ([]models.PersonView, error) {
	persons, err := s.persons.ListAll(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list persons")
	}
	countries, err := s.countries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[id.CountryID]string, len(countries))
	for _, c := range countries {
		names[c.ID] = c.Name
	}

	now := requestcontext.Now(ctx)
	views := make([]models.PersonView, 0, len(persons))
	for _, p := range persons {
		views = append(views, models.NewPersonView(p, names[p.CountryID], now))
	}
	return views, nil
}

// GetByID returns nil without error when personID is nil or unknown.
func (s *PersonService) GetByID(ctx context.Context, personID id.PersonID) (*models.PersonView, error) {
	if personID.IsNil() {
		return nil, nil
	}
	p, err := s.persons.FindByID(ctx, personID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get person")
	}
	return s.view(ctx, p)
}

// Update replaces every mutable field of an existing person.
// Unlike GetByID and Delete, an unknown id is an error.
func (s *PersonService) Update(ctx context.Context, req *models.PersonUpdateRequest) (view *models.PersonView, err error) {
	ctx, span := s.tracer.Start(ctx, "persons.update")
	defer func() { span.End(err) }()

	if req == nil {
		return nil, errMissingRequest()
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	details, err := req.Details()
	if err != nil {
		return nil, err
	}
	personID := req.PersonID()

	var person *models.Person
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.persons.FindByID(txCtx, personID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "person not found")
			}
			return wrapStoreErr(err, "failed to get person")
		}
		if err := p.Replace(details, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.persons.Update(txCtx, p); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "person not found")
			}
			return wrapStoreErr(err, "failed to update person")
		}
		person = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, models.PersonUpdated, person.ID, "person_updated")
	return s.view(ctx, person)
}

// Delete removes the person. It reports false, not an error, when nothing matched.
func (s *PersonService) Delete(ctx context.Context, personID id.PersonID) (deleted bool, err error) {
	ctx, span := s.tracer.Start(ctx, "persons.delete")
	defer func() { span.End(err) }()

	if personID.IsNil() {
		return false, dErrors.New(dErrors.CodeMissingArgument, "person ID is required")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.persons.Delete(txCtx, personID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return wrapStoreErr(err, "failed to delete person")
		}
		deleted = true
		return nil
	})
	if err != nil || !deleted {
		return false, err
	}

	s.afterMutation(ctx, models.PersonDeleted, personID, "person_deleted")
	return true, nil
}

func (s *PersonService) view(ctx context.Context, p *models.Person) (*models.PersonView, error) {
	country, err := s.countries.GetByID(ctx, p.CountryID)
	if err != nil {
		return nil, err
	}
	var countryName string
	if country != nil {
		countryName = country.Name
	}
	v := models.NewPersonView(p, countryName, requestcontext.Now(ctx))
	return &v, nil
}

func (s *PersonService) afterMutation(ctx context.Context, t models.PersonEventType, personID id.PersonID, event string) {
	s.emitter.audit(ctx, event, "person_id", personID.String())
	s.emitter.publish(ctx, models.NewPersonEvent(t, personID, requestcontext.Now(ctx)))
	if s.metrics != nil {
		s.metrics.IncrementPersonMutation(t.Op())
	}
}
