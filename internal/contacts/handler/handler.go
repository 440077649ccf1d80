package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contacts/internal/contacts/models"
	"contacts/internal/contacts/query"
	id "contacts/pkg/domain"
	dErrors "contacts/pkg/domain-errors"
	"contacts/pkg/platform/httputil"
	request "contacts/pkg/platform/middleware/request"
	"contacts/pkg/requestcontext"
	"contacts/pkg/validation"
)

// PersonService defines the person operations exposed over HTTP.
// Returns views, not HTTP response DTOs.
type PersonService interface {
	Add(ctx context.Context, req *models.PersonAddRequest) (*models.PersonView, error)
	GetAll(ctx context.Context) ([]models.PersonView, error)
	GetByID(ctx context.Context, personID id.PersonID) (*models.PersonView, error)
	Update(ctx context.Context, req *models.PersonUpdateRequest) (*models.PersonView, error)
	Delete(ctx context.Context, personID id.PersonID) (bool, error)
}

// CountryService defines the country directory operations exposed over HTTP.
type CountryService interface {
	Add(ctx context.Context, req *models.CountryAddRequest) (*models.CountryView, error)
	GetAll(ctx context.Context) ([]models.CountryView, error)
	GetByID(ctx context.Context, countryID id.CountryID) (*models.CountryView, error)
}

// Importer loads countries from an uploaded CSV.
type Importer interface {
	ImportCountries(ctx context.Context, r io.Reader) (int, error)
}

// Query filters and sorts person views.
type Query interface {
	Apply(ctx context.Context, views []models.PersonView, p query.Params) []models.PersonView
}

type Handler struct {
	persons   PersonService
	countries CountryService
	importer  Importer
	query     Query
	logger    *slog.Logger
}

func New(persons PersonService, countries CountryService, importer Importer, q Query, logger *slog.Logger) *Handler {
	return &Handler{
		persons:   persons,
		countries: countries,
		importer:  importer,
		query:     q,
		logger:    logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(request.ContentType("application/json"))
		r.Get("/persons", h.HandleListPersons)
		r.Post("/persons", h.HandleAddPerson)
		r.Get("/persons/{id}", h.HandleGetPerson)
		r.Put("/persons/{id}", h.HandleUpdatePerson)
		r.Delete("/persons/{id}", h.HandleDeletePerson)

		r.Get("/countries", h.HandleListCountries)
		r.Post("/countries", h.HandleAddCountry)
		r.Get("/countries/{id}", h.HandleGetCountry)
	})
	r.With(
		request.ContentType("text/csv", "application/csv", "text/plain"),
		request.BodyLimit(validation.MaxImportSize),
	).Post("/countries/import", h.HandleImportCountries)
}

// HandleListPersons returns every person, optionally filtered and sorted.
// Query parameters: searchBy, searchString, sortBy (default name), sortOrder (asc|desc).
func (h *Handler) HandleListPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	q := r.URL.Query()
	if err := validation.CheckStringLength("searchString", q.Get("searchString"), validation.MaxSearchLength); err != nil {
		httputil.WriteError(w, err)
		return
	}
	params := query.Params{
		SearchBy:     q.Get("searchBy"),
		SearchString: q.Get("searchString"),
		SortBy:       q.Get("sortBy"),
		Order:        query.ParseSortOrder(q.Get("sortOrder")),
	}
	if params.SortBy == "" {
		params.SortBy = query.FieldName.String()
	}

	views, err := h.persons.GetAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list persons failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonListResponse(h.query.Apply(ctx, views, params)))
}

// HandleAddPerson creates a person.
func (h *Handler) HandleAddPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.PersonAddRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	view, err := h.persons.Add(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "add person failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toPersonResponse(view))
}

func (h *Handler) HandleGetPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid person id"))
		return
	}

	view, err := h.persons.GetByID(ctx, personID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}
	if view == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "person not found"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(view))
}

// HandleUpdatePerson replaces a person's fields. The id in the path wins over any id in the body.
func (h *Handler) HandleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	if _, err := id.ParsePersonID(chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid person id"))
		return
	}

	req, ok := httputil.DecodeJSON[models.PersonUpdateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	req.ID = chi.URLParam(r, "id")
	if err := httputil.PrepareRequest(req); err != nil {
		h.logger.WarnContext(ctx, "invalid request", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	view, err := h.persons.Update(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "update person failed", "error", err, "request_id", requestID, "person_id", req.ID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(view))
}

func (h *Handler) HandleDeletePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid person id"))
		return
	}

	deleted, err := h.persons.Delete(ctx, personID)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}
	if !deleted {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "person not found"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleListCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	views, err := h.countries.GetAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list countries failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCountryListResponse(views))
}

// HandleAddCountry registers a country. Duplicate names are a validation error on "name".
func (h *Handler) HandleAddCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CountryAddRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	view, err := h.countries.Add(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "add country failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toCountryResponse(view))
}

func (h *Handler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	countryID, err := id.ParseCountryID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid country id"))
		return
	}

	view, err := h.countries.GetByID(ctx, countryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get country failed", "error", err, "request_id", requestID, "country_id", countryID)
		httputil.WriteError(w, err)
		return
	}
	if view == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "country not found"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCountryResponse(view))
}

// HandleImportCountries accepts a CSV body (header row, names in the first column).
func (h *Handler) HandleImportCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	imported, err := h.importer.ImportCountries(ctx, r.Body)
	if err != nil {
		h.logger.ErrorContext(ctx, "import countries failed", "error", err, "request_id", requestID, "imported", imported)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &ImportResponse{Imported: imported})
}
