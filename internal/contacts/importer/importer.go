// Package importer loads country names in bulk from a CSV upload.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	dErrors "contacts/pkg/domain-errors"
	"contacts/pkg/validation"
)

// Directory is the country directory the importer writes through.
type Directory interface {
	GetByName(ctx context.Context, name string) (*models.CountryView, error)
	Add(ctx context.Context, req *models.CountryAddRequest) (*models.CountryView, error)
}

// Importer skips names that already exist before calling Add. The directory's
// own uniqueness check remains the backstop for races.
type Importer struct {
	countries Directory
	logger    *slog.Logger
	metrics   *contactsmetrics.Metrics
}

type Option func(*Importer)

func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) { i.logger = logger }
}

func WithMetrics(m *contactsmetrics.Metrics) Option {
	return func(i *Importer) { i.metrics = m }
}

func New(countries Directory, opts ...Option) *Importer {
	i := &Importer{countries: countries}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportCountries reads a CSV whose first row is a header and whose first
// column holds country names. Blank cells and names that already exist (in
// the directory or earlier in the file) are skipped silently. It returns the
// number of countries inserted.
func (i *Importer) ImportCountries(ctx context.Context, r io.Reader) (inserted int, err error) {
	if r == nil {
		return 0, dErrors.New(dErrors.CodeMissingArgument, "import file is required")
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid import file")
	}

	seen := make(map[string]struct{})
	rows := 0
	defer func() { i.record(ctx, rows, inserted, err) }()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return inserted, dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("invalid import file at row %d", rows+2))
		}
		rows++
		if rows > validation.MaxImportRows {
			return inserted, dErrors.New(dErrors.CodeBadRequest,
				fmt.Sprintf("import file exceeds %d rows", validation.MaxImportRows))
		}

		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		added, err := i.addIfAbsent(ctx, name)
		if err != nil {
			return inserted, err
		}
		if added {
			inserted++
		}
	}

	return inserted, nil
}

// record counts inserted countries even when the import stopped early.
func (i *Importer) record(ctx context.Context, rows, inserted int, err error) {
	if i.metrics != nil {
		i.metrics.AddCountriesImported(inserted)
	}
	if i.logger == nil {
		return
	}
	if err != nil {
		i.logger.WarnContext(ctx, "country import stopped", "rows", rows, "inserted", inserted, "error", err)
		return
	}
	i.logger.InfoContext(ctx, "countries imported", "rows", rows, "inserted", inserted)
}

func (i *Importer) addIfAbsent(ctx context.Context, name string) (bool, error) {
	existing, err := i.countries.GetByName(ctx, name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := i.countries.Add(ctx, &models.CountryAddRequest{Name: name}); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
