package validation

import (
	"fmt"
	"unicode/utf8"

	dErrors "contacts/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed JSON request body size (64 KB).
	MaxBodySize = 64 * 1024

	// MaxImportSize is the maximum allowed bulk-import upload size (1 MB).
	MaxImportSize = 1024 * 1024
)

// String element length limits. Keep in sync with the `max=` struct tags.
const (
	MaxNameLength        = 128
	MaxEmailLength       = 255
	MaxAddressLength     = 512
	MaxCountryNameLength = 128
	MaxSearchLength      = 256
)

// MaxImportRows caps the number of data rows read from a single import file.
const MaxImportRows = 10000

// CheckStringLength validates that a string does not exceed max characters.
func CheckStringLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.NewField(fieldName, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}
