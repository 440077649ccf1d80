package query

import (
	"strings"

	"contacts/internal/contacts/models"
)

// DateDisplayLayout is the rendering birth dates are matched against, e.g. "05 Jan 1990".
const DateDisplayLayout = "02 Jan 2006"

// textOf returns the searchable text of a view for fields that support filtering.
var textOf = map[Field]func(v *models.PersonView) string{
	FieldName:        func(v *models.PersonView) string { return v.Name },
	FieldEmail:       func(v *models.PersonView) string { return v.Email },
	FieldGender:      func(v *models.PersonView) string { return string(v.Gender) },
	FieldCountryName: func(v *models.PersonView) string { return v.CountryName },
	FieldAddress:     func(v *models.PersonView) string { return v.Address },
	FieldDateOfBirth: func(v *models.PersonView) string {
		if v.DateOfBirth == nil {
			return ""
		}
		return v.DateOfBirth.Format(DateDisplayLayout)
	},
}

// Filter returns the views whose field contains search, ignoring case.
//
// A view whose field is empty always matches. An empty field name, an empty
// search, or a field that cannot be filtered returns a copy of views.
// The input slice is never modified or aliased.
func Filter(views []models.PersonView, fieldName, search string) []models.PersonView {
	extract, ok := textOf[ParseField(fieldName)]
	if !ok || search == "" {
		return clone(views)
	}

	needle := strings.ToLower(search)
	out := make([]models.PersonView, 0, len(views))
	for i := range views {
		value := extract(&views[i])
		if value == "" || strings.Contains(strings.ToLower(value), needle) {
			out = append(out, views[i])
		}
	}
	return out
}

func clone(views []models.PersonView) []models.PersonView {
	out := make([]models.PersonView, len(views))
	copy(out, views)
	return out
}
