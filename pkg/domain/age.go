package domain

import (
	"math"
	"time"
)

// daysPerYear averages leap years into the year length.
const daysPerYear = 365.25

// AgeInYears returns the elapsed time between birthDate and now expressed in
// 365.25-day years, rounded half-to-even to a whole number. A birth date in the
// future yields a negative age.
//
// Example:
//
//	birthDate := time.Date(1990, 1, 5, 0, 0, 0, 0, time.UTC)
//	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC) // 36.78 years
//	AgeInYears(birthDate, now) // returns 37
func AgeInYears(birthDate, now time.Time) int {
	days := now.UTC().Sub(birthDate.UTC()).Hours() / 24
	return int(math.RoundToEven(days / daysPerYear))
}
