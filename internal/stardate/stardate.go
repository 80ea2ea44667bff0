// Package stardate implements Kelvin-timeline stardate conversion.
// Kelvin stardates take the form YYYY.DDD: the Earth year followed by
// a day ordinal inside that year.
//
// Two ordinal conventions are supported:
//
//	no_leap:   fixed 365-day year, the leap day is compressed away
//	gregorian: true calendar ordinal, 1-366 in leap years
//
// Astronomical stardates are fractional years instead:
//
//	stardate = year + dayOfYear/365.2425, rounded to 5 decimals
package stardate

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Mode selects the ordinal convention for a conversion.
type Mode int

const (
	NoLeap Mode = iota
	Gregorian
	Astronomical
	// All is a presentation mode: callers fan out over the three
	// conversion modes themselves. Conversion functions reject it.
	All
)

func (m Mode) String() string {
	switch m {
	case NoLeap:
		return "no_leap"
	case Gregorian:
		return "gregorian"
	case Astronomical:
		return "astronomical"
	case All:
		return "all"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

var (
	ErrUnknownMode  = errors.New("unknown conversion mode")
	ErrModeMismatch = errors.New("stardate kind does not match mode")
	ErrYearRange    = errors.New("year out of range")
	ErrOrdinalRange = errors.New("day ordinal out of range")
	ErrInvalidDate  = errors.New("invalid calendar date")
	ErrFormat       = errors.New("malformed stardate")
)

// Mean Gregorian year length, the divisor for astronomical stardates.
const daysPerYear = 365.2425

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal of t within its year.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// NewDate builds a UTC calendar date and validates it. Years run 1
// through 9999. time.Date normalizes out-of-range components, so any
// component that moved means the combination was never a real date.
func NewDate(year, month, day int) (time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrYearRange, year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// FromDate converts an Earth date to a Kelvin stardate. Only NoLeap
// and Gregorian apply; astronomical stardates come from Astronomical.
//
// In NoLeap mode every year has 365 days. Dates past February 28 of a
// leap year shift down by one so December 31 always lands on 365, and
// February 29 shares ordinal 59 with February 28.
func FromDate(t time.Time, mode Mode) (Kelvin, error) {
	doy := t.YearDay()
	switch mode {
	case NoLeap:
		if IsLeapYear(t.Year()) && doy > 59 {
			doy--
		}
	case Gregorian:
	default:
		return Kelvin{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	return Kelvin{Year: t.Year(), OrdinalDay: doy}, nil
}

// Date converts k back to the Earth date it encodes under mode.
func (k Kelvin) Date(mode Mode) (time.Time, error) {
	if k.Year < 1 || k.Year > 9999 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrYearRange, k.Year)
	}
	day := k.OrdinalDay
	switch mode {
	case NoLeap:
		if k.OrdinalDay < 1 || k.OrdinalDay > 365 {
			return time.Time{}, fmt.Errorf("%w: %d (no_leap years have 365 days)", ErrOrdinalRange, k.OrdinalDay)
		}
		if IsLeapYear(k.Year) && k.OrdinalDay > 59 {
			day = k.OrdinalDay + 1
		}
		if day > DaysInYear(k.Year) {
			return time.Time{}, fmt.Errorf("%w: day %d in year %d", ErrOrdinalRange, day, k.Year)
		}
	case Gregorian:
		if k.OrdinalDay < 1 || k.OrdinalDay > DaysInYear(k.Year) {
			return time.Time{}, fmt.Errorf("%w: day %d in year %d", ErrOrdinalRange, k.OrdinalDay, k.Year)
		}
	case Astronomical:
		return time.Time{}, fmt.Errorf("%w: astronomical stardates are fractional years, convert with FromAstronomical", ErrModeMismatch)
	default:
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	return time.Date(k.Year, time.January, day, 0, 0, 0, 0, time.UTC), nil
}

// ToAstronomical converts an Earth date to a fractional-year stardate,
// rounded to 5 decimal places.
func ToAstronomical(t time.Time) float64 {
	return round5(float64(t.Year()) + float64(t.YearDay())/daysPerYear)
}

// FromAstronomical converts a fractional-year stardate back to the
// Earth date it encodes. The integer part is the year; the fraction
// scaled by the mean year length rounds to the day ordinal, clamped
// to 1 so New Year boundaries stay inside the year.
func FromAstronomical(sd float64) (time.Time, error) {
	year := int(math.Floor(sd))
	if year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrYearRange, year)
	}
	ordinal := int(math.Round((sd - float64(year)) * daysPerYear))
	if ordinal < 1 {
		ordinal = 1
	}
	if ordinal > DaysInYear(year) {
		return time.Time{}, fmt.Errorf("%w: day %d in year %d", ErrOrdinalRange, ordinal, year)
	}
	return time.Date(year, time.January, ordinal, 0, 0, 0, 0, time.UTC), nil
}

func round5(x float64) float64 {
	return math.Round(x*1e5) / 1e5
}
