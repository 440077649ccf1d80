package query

import (
	"cmp"
	"slices"
	"strings"

	"contacts/internal/contacts/models"
)

type comparator func(a, b *models.PersonView) int

func byText(get func(v *models.PersonView) string) comparator {
	return func(a, b *models.PersonView) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

// Absent values compare lower than any present value.
var comparators = map[Field]comparator{
	FieldName:        byText(func(v *models.PersonView) string { return v.Name }),
	FieldEmail:       byText(func(v *models.PersonView) string { return v.Email }),
	FieldGender:      byText(func(v *models.PersonView) string { return string(v.Gender) }),
	FieldCountryName: byText(func(v *models.PersonView) string { return v.CountryName }),
	FieldAddress:     byText(func(v *models.PersonView) string { return v.Address }),
	FieldDateOfBirth: func(a, b *models.PersonView) int {
		switch {
		case a.DateOfBirth == nil && b.DateOfBirth == nil:
			return 0
		case a.DateOfBirth == nil:
			return -1
		case b.DateOfBirth == nil:
			return 1
		}
		return a.DateOfBirth.Compare(*b.DateOfBirth)
	},
	FieldAge: func(a, b *models.PersonView) int {
		switch {
		case a.Age == nil && b.Age == nil:
			return 0
		case a.Age == nil:
			return -1
		case b.Age == nil:
			return 1
		}
		return cmp.Compare(*a.Age, *b.Age)
	},
	FieldReceiveNewsletters: func(a, b *models.PersonView) int {
		return cmp.Compare(boolRank(a.ReceiveNewsletters), boolRank(b.ReceiveNewsletters))
	},
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Sort returns a stably ordered copy of views.
//
// Equal keys keep their input order in both directions. An empty or
// unrecognized field name returns a copy of views in input order.
func Sort(views []models.PersonView, fieldName string, order SortOrder) []models.PersonView {
	out := clone(views)
	compare, ok := comparators[ParseField(fieldName)]
	if !ok {
		return out
	}
	if order == Descending {
		slices.SortStableFunc(out, func(a, b models.PersonView) int { return compare(&b, &a) })
		return out
	}
	slices.SortStableFunc(out, func(a, b models.PersonView) int { return compare(&a, &b) })
	return out
}
