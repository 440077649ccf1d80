package string

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Name":               "name",
		"DateOfBirth":        "date_of_birth",
		"CountryID":          "country_id",
		"ReceiveNewsletters": "receive_newsletters",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestFoldKey(t *testing.T) {
	assert.Equal(t, "dateofbirth", FoldKey("date_of_birth"))
	assert.Equal(t, "dateofbirth", FoldKey("DateOfBirth"))
	assert.Equal(t, "countryname", FoldKey("Country Name"))
	assert.Equal(t, "", FoldKey(""))
}

func TestTrimStrings(t *testing.T) {
	a, b := "  x ", "\ty\n"
	TrimStrings(&a, &b, nil)
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)
}
