package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "contacts/pkg/domain-errors"
)

type sampleRequest struct {
	Name    string `validate:"required,notblank,max=8"`
	Email   string `validate:"required,email"`
	Gender  string `validate:"omitempty,oneof=male female other"`
	Address string `validate:"max=16"`
}

// ValidationSuite tests the struct-tag rule engine.
//
// Every mutation request passes through Validate, so the nil-request and
// first-failing-field contracts are checked here directly.
type ValidationSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

func valid() *sampleRequest {
	return &sampleRequest{Name: "Ann", Email: "ann@x.com"}
}

func (s *ValidationSuite) TestMissingArgument() {
	s.Run("untyped nil", func() {
		err := Validate(nil)
		s.True(dErrors.HasCode(err, dErrors.CodeMissingArgument))
	})

	s.Run("typed nil pointer", func() {
		var req *sampleRequest
		err := Validate(req)
		s.True(dErrors.HasCode(err, dErrors.CodeMissingArgument))
	})
}

func (s *ValidationSuite) TestRules() {
	s.Run("valid request passes", func() {
		s.NoError(Validate(valid()))
	})

	s.Run("required name", func() {
		req := valid()
		req.Name = ""
		err := Validate(req)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("name", dErrors.FieldOf(err))
		s.Equal("name is required", err.Error())
	})

	s.Run("blank name", func() {
		req := valid()
		req.Name = "   "
		err := Validate(req)
		s.Equal("name must not be blank", err.Error())
	})

	s.Run("email syntax", func() {
		req := valid()
		req.Email = "not-an-email"
		err := Validate(req)
		s.Equal("email", dErrors.FieldOf(err))
		s.Equal("email must be a valid email", err.Error())
	})

	s.Run("enumeration", func() {
		req := valid()
		req.Gender = "unknown"
		err := Validate(req)
		s.Equal("gender must be one of [male female other]", err.Error())
	})

	s.Run("optional enumeration may be empty", func() {
		req := valid()
		req.Gender = ""
		s.NoError(Validate(req))
	})

	s.Run("length cap", func() {
		req := valid()
		req.Address = strings.Repeat("a", 17)
		err := Validate(req)
		s.Equal("address", dErrors.FieldOf(err))
		s.Equal("address must be at most 16 characters", err.Error())
	})
}

func (s *ValidationSuite) TestCheckStringLength() {
	s.NoError(CheckStringLength("name", strings.Repeat("a", MaxNameLength), MaxNameLength))

	err := CheckStringLength("name", strings.Repeat("a", MaxNameLength+1), MaxNameLength)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal("name", dErrors.FieldOf(err))

	s.Run("counts characters, not bytes", func() {
		s.NoError(CheckStringLength("searchString", strings.Repeat("ü", MaxSearchLength), MaxSearchLength))
		s.Error(CheckStringLength("searchString", strings.Repeat("ü", MaxSearchLength+1), MaxSearchLength))
	})
}
