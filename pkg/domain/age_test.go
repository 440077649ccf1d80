package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// AgeSuite tests age derivation.
//
// Pure function with date arithmetic edge cases: rounding to the nearest year,
// leap-year averaging and timezone normalisation.
type AgeSuite struct {
	suite.Suite
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *AgeSuite) TestAgeInYears_Rounding() {
	s.Run("rounds up past the half-year mark", func() {
		s.Equal(37, AgeInYears(date(1990, 1, 5), date(2026, 10, 17)))
	})

	s.Run("rounds down before the half-year mark", func() {
		s.Equal(1, AgeInYears(date(2000, 1, 1), date(2001, 6, 30)))
	})

	s.Run("rounds up just after the half-year mark", func() {
		s.Equal(2, AgeInYears(date(2000, 1, 1), date(2001, 7, 3)))
	})

	s.Run("newborn is zero", func() {
		s.Equal(0, AgeInYears(date(2000, 1, 1), date(2000, 7, 1)))
	})
}

func (s *AgeSuite) TestAgeInYears_LeapYearAveraging() {
	s.Run("ten calendar years is ten years", func() {
		s.Equal(10, AgeInYears(date(2000, 1, 1), date(2010, 1, 1)))
	})

	s.Run("Feb 29 birthday", func() {
		s.Equal(18, AgeInYears(date(2000, 2, 29), date(2018, 3, 1)))
	})
}

func (s *AgeSuite) TestAgeInYears_TimezoneHandling() {
	s.Run("different timezones are normalized to UTC", func() {
		pst := time.FixedZone("PST", -8*60*60)
		birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, pst)
		now := time.Date(2018, 1, 15, 8, 0, 0, 0, time.UTC)
		s.Equal(18, AgeInYears(birthDate, now))
	})
}

func (s *AgeSuite) TestAgeInYears_FutureBirthDate() {
	s.Equal(-5, AgeInYears(date(2030, 1, 1), date(2025, 1, 1)))
}
