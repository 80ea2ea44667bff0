// Package validate holds the pure input validators: string in, typed
// value and coded error out. Nothing here prints, prompts, or touches
// the terminal; presentation stays in the CLI layer.
package validate

import (
	"strconv"
	"strings"

	"github.com/KylieKat17/kelvin-stardate/internal/errcode"
	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
)

var monthLookup = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

func trimNonEmpty(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errcode.Newf(errcode.CodeEmptyInput, "Input cannot be empty.")
	}
	return trimmed, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Year parses a strict numeric Earth year: digits only, no decimals,
// 1 through 9999.
func Year(value string) (int, error) {
	raw, err := trimNonEmpty(value)
	if err != nil {
		return 0, err
	}
	if strings.Contains(raw, ".") {
		return 0, errcode.Newf(errcode.CodeYearFormat, "Invalid year '%s' (must be an integer).", value)
	}
	if !allDigits(raw) {
		return 0, errcode.Newf(errcode.CodeYearFormat, "Invalid year '%s' (numeric only).", value)
	}
	y, err := strconv.Atoi(raw)
	if err != nil || y < 1 || y > 9999 {
		return 0, errcode.Newf(errcode.CodeYearRange, "Year '%s' out of range 1–9999.", raw)
	}
	return y, nil
}

// YearYYYY parses a year that must be exactly four digits.
func YearYYYY(value string) (int, error) {
	raw, err := trimNonEmpty(value)
	if err != nil {
		return 0, err
	}
	if strings.Contains(raw, ".") {
		return 0, errcode.Newf(errcode.CodeYearFormat, "Invalid year '%s' (must be an integer).", value)
	}
	if !allDigits(raw) {
		return 0, errcode.Newf(errcode.CodeYearFormat, "Invalid year '%s' (numeric only).", value)
	}
	if len(raw) != 4 {
		return 0, errcode.Newf(errcode.CodeYearFormat, "Invalid year '%s' (expected 4 digits, YYYY).", value)
	}
	y, _ := strconv.Atoi(raw)
	if y < 1 || y > 9999 {
		return 0, errcode.Newf(errcode.CodeYearRange, "Year '%d' out of range 1–9999.", y)
	}
	return y, nil
}

// Month parses a month number or an English month name/abbreviation
// ("sept" included).
func Month(value string) (int, error) {
	raw, err := trimNonEmpty(value)
	if err != nil {
		return 0, err
	}
	raw = strings.ToLower(raw)
	if m, ok := monthLookup[raw]; ok {
		return m, nil
	}
	if allDigits(raw) {
		m, err := strconv.Atoi(raw)
		if err == nil && m >= 1 && m <= 12 {
			return m, nil
		}
		return 0, errcode.Newf(errcode.CodeMonth, "Invalid numeric month '%s'", raw)
	}
	return 0, errcode.Newf(errcode.CodeMonth, "Unrecognized month '%s'", value)
}

// Day parses a day of month, 1 through 31. Whether the day exists for
// a particular month and year is checked at date construction. Day
// failures report E002, matching the published code table.
func Day(value string) (int, error) {
	raw, err := trimNonEmpty(value)
	if err != nil {
		return 0, err
	}
	if !allDigits(raw) {
		return 0, errcode.Newf(errcode.CodeMonth, "Invalid day '%s'", value)
	}
	d, err := strconv.Atoi(raw)
	if err != nil || d < 1 || d > 31 {
		return 0, errcode.Newf(errcode.CodeMonth, "Day '%s' out of range 1–31", raw)
	}
	return d, nil
}

// EarthDate parses YYYY-MM-DD or YYYY-mon-DD into its components.
// February 29 of a non-leap year is rejected here with its own code so
// the message can name the year.
func EarthDate(dateStr string) (year, month, day int, err error) {
	raw, err := trimNonEmpty(dateStr)
	if err != nil {
		return 0, 0, 0, err
	}
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return 0, 0, 0, errcode.Newf(errcode.CodeEarthDateFormat, "Invalid date '%s'. Expected YYYY-MM-DD.", dateStr)
	}
	year, err = Year(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	month, err = Month(parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	day, err = Day(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	if month == 2 && day == 29 && !stardate.IsLeapYear(year) {
		return 0, 0, 0, errcode.Newf(errcode.CodeDay, "%d is not a leap year.", year)
	}
	return year, month, day, nil
}

// StardateString checks the generic stardate shape: one decimal point,
// digits on both sides, a 4-digit year, and at most 8 fractional
// digits. It returns the trimmed string.
func StardateString(sdStr string) (string, error) {
	s, err := trimNonEmpty(sdStr)
	if err != nil {
		return "", err
	}
	if strings.Contains(s, "-") {
		return "", errcode.Newf(errcode.CodeStardate, "Stardate must not contain '-' (Earth date detected).")
	}
	if !strings.Contains(s, ".") {
		return "", errcode.Newf(errcode.CodeStardateFormat, "Stardate must contain a decimal (e.g., 2258.042).")
	}
	if strings.Count(s, ".") != 1 {
		return "", errcode.Newf(errcode.CodeStardate, "Stardate must contain exactly one decimal point.")
	}
	left, right, _ := strings.Cut(s, ".")
	if left == "" || right == "" {
		return "", errcode.Newf(errcode.CodeStardate, "Stardate must have digits on both sides of the decimal.")
	}
	if !allDigits(left) || !allDigits(right) {
		return "", errcode.Newf(errcode.CodeStardate, "Invalid stardate '%s' (numeric only).", sdStr)
	}
	if len(left) != 4 {
		return "", errcode.Newf(errcode.CodeStardate, "Invalid stardate '%s' (year must be 4 digits, e.g., 2258.042).", sdStr)
	}
	year, _ := strconv.Atoi(left)
	if year < 1 || year > 9999 {
		return "", errcode.Newf(errcode.CodeStardate, "Invalid stardate '%s' (year out of range 0001–9999).", sdStr)
	}
	if len(right) > 8 {
		return "", errcode.Newf(errcode.CodeStardate, "Invalid stardate '%s' (fractional part too long).", sdStr)
	}
	return s, nil
}

// KelvinStardateString checks the strict Kelvin shape on top of
// StardateString: exactly three fractional digits encoding a day
// ordinal from 001 to 366.
func KelvinStardateString(sdStr string) (string, error) {
	s, err := StardateString(sdStr)
	if err != nil {
		return "", err
	}
	_, right, _ := strings.Cut(s, ".")
	if len(right) != 3 {
		return "", errcode.Newf(errcode.CodeStardate, "Invalid Kelvin stardate '%s' (expected 3-digit ordinal, e.g., 2258.042).", sdStr)
	}
	ordinal, _ := strconv.Atoi(right)
	if ordinal < 1 || ordinal > 366 {
		return "", errcode.Newf(errcode.CodeStardate, "Invalid Kelvin stardate '%s' (ordinal day must be 001–366).", sdStr)
	}
	return s, nil
}

// Kind discriminates the two stardate families by fraction width.
type Kind int

const (
	KindKelvin Kind = iota
	KindAstronomical
)

func (k Kind) String() string {
	if k == KindAstronomical {
		return "astronomical"
	}
	return "kelvin"
}

// DetectStardateKind guesses the stardate family: four or more
// fractional digits reads as astronomical, anything else as Kelvin.
// Pure heuristic; validation happens separately.
func DetectStardateKind(sd string) Kind {
	s := strings.TrimSpace(sd)
	_, frac, ok := strings.Cut(s, ".")
	if !ok || frac == "" || !allDigits(frac) {
		return KindKelvin
	}
	if len(frac) >= 4 {
		return KindAstronomical
	}
	return KindKelvin
}

// ParseMode maps a mode name, alias, or menu digit to its Mode.
func ParseMode(mode string) (stardate.Mode, error) {
	m := strings.ToLower(strings.TrimSpace(mode))
	switch m {
	case "1", "no_leap", "noleap", "nl", "canon", "ordinal":
		return stardate.NoLeap, nil
	case "2", "gregorian", "greg", "gr":
		return stardate.Gregorian, nil
	case "3", "astronomical", "astro", "astr":
		return stardate.Astronomical, nil
	case "4", "all", "a":
		return stardate.All, nil
	}
	return 0, errcode.Newf(errcode.CodeUnknownMode, "Unknown mode '%s'", m)
}
