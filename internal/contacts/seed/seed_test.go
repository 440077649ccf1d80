package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "contacts/pkg/domain"
	"contacts/pkg/validation"
)

func TestPersonsReferenceSeedCountries(t *testing.T) {
	known := map[id.CountryID]bool{}
	for _, c := range Countries() {
		known[c.ID] = true
	}

	persons := Persons()
	require.Len(t, persons, 10)
	seen := map[id.PersonID]bool{}
	for _, p := range persons {
		assert.True(t, known[p.CountryID], p.Name)
		assert.False(t, seen[p.ID], "duplicate id for %s", p.Name)
		seen[p.ID] = true
		assert.True(t, p.Gender.IsValid())
		assert.LessOrEqual(t, len(p.Name), validation.MaxNameLength)
	}
}

func TestSeedsAreFreshCopies(t *testing.T) {
	a := Persons()
	a[0].Name = "changed"
	assert.Equal(t, "Imon Islam", Persons()[0].Name)
}
