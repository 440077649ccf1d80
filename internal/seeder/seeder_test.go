package seeder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts/internal/contacts/seed"
	countrystore "contacts/internal/contacts/store/country"
	personstore "contacts/internal/contacts/store/person"
)

func TestSeedAll_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	countries := countrystore.NewInMemory()
	persons := personstore.NewInMemory()
	s := New(countries, persons, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, s.SeedAll(ctx, seed.Countries(), seed.Persons()))
	require.NoError(t, s.SeedAll(ctx, seed.Countries(), seed.Persons()))

	allCountries, err := countries.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allCountries, 3)

	allPersons, err := persons.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allPersons, 10)
	assert.Equal(t, "Imon Islam", allPersons[0].Name)
}
