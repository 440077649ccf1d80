package query

import (
	"strings"

	s "contacts/pkg/string"
)

// Field is a person view attribute selectable by name at runtime.
type Field int

const (
	FieldUnknown Field = iota
	FieldName
	FieldEmail
	FieldDateOfBirth
	FieldGender
	FieldCountryName
	FieldAddress
	FieldAge
	FieldReceiveNewsletters
)

// fieldsByKey is keyed by s.FoldKey of every accepted spelling.
var fieldsByKey = map[string]Field{
	"name":               FieldName,
	"personname":         FieldName,
	"email":              FieldEmail,
	"dateofbirth":        FieldDateOfBirth,
	"gender":             FieldGender,
	"countryname":        FieldCountryName,
	"country":            FieldCountryName,
	"countryid":          FieldCountryName,
	"address":            FieldAddress,
	"age":                FieldAge,
	"receivenewsletters": FieldReceiveNewsletters,
}

var fieldNames = map[Field]string{
	FieldName:               "name",
	FieldEmail:              "email",
	FieldDateOfBirth:        "dateOfBirth",
	FieldGender:             "gender",
	FieldCountryName:        "countryName",
	FieldAddress:            "address",
	FieldAge:                "age",
	FieldReceiveNewsletters: "receiveNewsletters",
}

// ParseField resolves a user-supplied selector. Unrecognized input yields FieldUnknown.
func ParseField(name string) Field {
	return fieldsByKey[s.FoldKey(strings.TrimSpace(name))]
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// SortOrder is the direction of Sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder accepts asc/desc in any case (and the long forms); anything else is ascending.
func ParseSortOrder(v string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}
