package stardate

import (
	"fmt"
	"strconv"
	"strings"
)

// Kelvin is a parsed Kelvin stardate: an Earth year and a day ordinal
// within it. The ordinal convention (no_leap or gregorian) is not part
// of the value; it is chosen at conversion time.
type Kelvin struct {
	Year       int
	OrdinalDay int
}

// String formats the stardate as YYYY.DDD. The day is zero-padded to
// two digits below 100 and three from 100 up, so day 4 renders as
// "04" and day 142 as "142".
func (k Kelvin) String() string {
	if k.OrdinalDay < 100 {
		return fmt.Sprintf("%d.%02d", k.Year, k.OrdinalDay)
	}
	return fmt.Sprintf("%d.%03d", k.Year, k.OrdinalDay)
}

// ParseKelvin splits a stardate string on its first decimal point into
// a year and a day ordinal. Leading zeros in the day are fine. Range
// checking is left to the conversion: parsing "2258.4" yields day 4,
// which formats back as "2258.04".
func ParseKelvin(s string) (Kelvin, error) {
	yearStr, frac, ok := strings.Cut(s, ".")
	if !ok {
		return Kelvin{}, fmt.Errorf("%w: %q has no decimal point", ErrFormat, s)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return Kelvin{}, fmt.Errorf("%w: bad year in %q", ErrFormat, s)
	}
	if frac == "" || !allDigits(frac) {
		return Kelvin{}, fmt.Errorf("%w: day ordinal in %q must be digits", ErrFormat, s)
	}
	day, err := strconv.Atoi(frac)
	if err != nil {
		return Kelvin{}, fmt.Errorf("%w: day ordinal in %q: %v", ErrFormat, s, err)
	}
	return Kelvin{Year: year, OrdinalDay: day}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
