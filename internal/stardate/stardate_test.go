package stardate

import (
	"errors"
	"math"
	"testing"
	"time"
)

func date(t *testing.T, year, month, day int) time.Time {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d, %d, %d) error: %v", year, month, day, err)
	}
	return d
}

func TestFromDateFilmDates(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             string
	}{
		{2233, 1, 4, "2233.04"},
		{2230, 1, 6, "2230.06"},
		{2258, 2, 11, "2258.42"},
		{2259, 2, 24, "2259.55"},
		{2263, 1, 2, "2263.02"},
	}
	for _, tt := range tests {
		sd, err := FromDate(date(t, tt.year, tt.month, tt.day), NoLeap)
		if err != nil {
			t.Errorf("FromDate(%d-%02d-%02d) error: %v", tt.year, tt.month, tt.day, err)
			continue
		}
		if got := sd.String(); got != tt.want {
			t.Errorf("FromDate(%d-%02d-%02d) = %q, want %q", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestFromDateLeapCompression(t *testing.T) {
	// 2260 is a leap year; no_leap ordinals trail gregorian by one
	// after February 28.
	tests := []struct {
		month, day        int
		noLeap, gregorian int
	}{
		{1, 1, 1, 1},
		{2, 28, 59, 59},
		{2, 29, 59, 60},
		{3, 1, 60, 61},
		{12, 31, 365, 366},
	}
	for _, tt := range tests {
		d := date(t, 2260, tt.month, tt.day)
		nl, err := FromDate(d, NoLeap)
		if err != nil {
			t.Fatalf("FromDate(2260-%02d-%02d, NoLeap) error: %v", tt.month, tt.day, err)
		}
		if nl.OrdinalDay != tt.noLeap {
			t.Errorf("no_leap ordinal for 2260-%02d-%02d = %d, want %d", tt.month, tt.day, nl.OrdinalDay, tt.noLeap)
		}
		gr, err := FromDate(d, Gregorian)
		if err != nil {
			t.Fatalf("FromDate(2260-%02d-%02d, Gregorian) error: %v", tt.month, tt.day, err)
		}
		if gr.OrdinalDay != tt.gregorian {
			t.Errorf("gregorian ordinal for 2260-%02d-%02d = %d, want %d", tt.month, tt.day, gr.OrdinalDay, tt.gregorian)
		}
	}
}

func TestFromDateRejectsAstronomical(t *testing.T) {
	_, err := FromDate(date(t, 2258, 2, 11), Astronomical)
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("FromDate(Astronomical) error = %v, want ErrUnknownMode", err)
	}
}

func TestDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		date(t, 2233, 1, 4),
		date(t, 2258, 2, 11),
		date(t, 2259, 2, 24),
		date(t, 2260, 1, 1),
		date(t, 2260, 2, 28),
		date(t, 2260, 3, 1),
		date(t, 2260, 12, 31),
		date(t, 2263, 1, 2),
	}
	for _, mode := range []Mode{NoLeap, Gregorian} {
		for _, d := range dates {
			sd, err := FromDate(d, mode)
			if err != nil {
				t.Fatalf("FromDate(%s, %s) error: %v", d.Format("2006-01-02"), mode, err)
			}
			back, err := sd.Date(mode)
			if err != nil {
				t.Fatalf("Date(%s, %s) error: %v", sd, mode, err)
			}
			if !back.Equal(d) {
				t.Errorf("%s round trip via %s = %s, want %s", mode, sd, back.Format("2006-01-02"), d.Format("2006-01-02"))
			}
		}
	}
}

func TestDateLeapExpansion(t *testing.T) {
	// Ordinal 60 of leap year 2260 decompresses to March 1, not
	// February 29; 59 stays February 28.
	got, err := Kelvin{Year: 2260, OrdinalDay: 60}.Date(NoLeap)
	if err != nil {
		t.Fatalf("Date error: %v", err)
	}
	if want := date(t, 2260, 3, 1); !got.Equal(want) {
		t.Errorf("2260.60 no_leap = %s, want 2260-03-01", got.Format("2006-01-02"))
	}

	got, err = Kelvin{Year: 2260, OrdinalDay: 60}.Date(Gregorian)
	if err != nil {
		t.Fatalf("Date error: %v", err)
	}
	if want := date(t, 2260, 2, 29); !got.Equal(want) {
		t.Errorf("2260.60 gregorian = %s, want 2260-02-29", got.Format("2006-01-02"))
	}
}

func TestDateRangeErrors(t *testing.T) {
	tests := []struct {
		name string
		k    Kelvin
		mode Mode
		want error
	}{
		{"no_leap day 366", Kelvin{2260, 366}, NoLeap, ErrOrdinalRange},
		{"no_leap day 0", Kelvin{2258, 0}, NoLeap, ErrOrdinalRange},
		{"gregorian day 366 in common year", Kelvin{2258, 366}, Gregorian, ErrOrdinalRange},
		{"year 0", Kelvin{0, 12}, NoLeap, ErrYearRange},
		{"year 10000", Kelvin{10000, 12}, Gregorian, ErrYearRange},
		{"astronomical mode", Kelvin{2258, 42}, Astronomical, ErrModeMismatch},
		{"all mode", Kelvin{2258, 42}, All, ErrUnknownMode},
	}
	for _, tt := range tests {
		if _, err := tt.k.Date(tt.mode); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}

	// Day 366 of a leap year is valid gregorian.
	got, err := Kelvin{Year: 2260, OrdinalDay: 366}.Date(Gregorian)
	if err != nil {
		t.Fatalf("Date(2260.366, Gregorian) error: %v", err)
	}
	if want := date(t, 2260, 12, 31); !got.Equal(want) {
		t.Errorf("2260.366 gregorian = %s, want 2260-12-31", got.Format("2006-01-02"))
	}
}

func TestAstronomicalKnownValue(t *testing.T) {
	sd := ToAstronomical(date(t, 2258, 2, 11))
	if math.Abs(sd-2258.11499) > 0.0002 {
		t.Errorf("ToAstronomical(2258-02-11) = %v, want ~2258.11499", sd)
	}
}

func TestAstronomicalNoLeapOffset(t *testing.T) {
	// The fractional scale has no leap compression: the gap across a
	// leap day is two days of the mean year, nothing more.
	feb28 := ToAstronomical(date(t, 2260, 2, 28))
	mar1 := ToAstronomical(date(t, 2260, 3, 1))
	if gap := mar1 - feb28; math.Abs(gap-2.0/365.2425) > 1e-4 {
		t.Errorf("astronomical gap Feb 28 to Mar 1 = %v, want ~%v", gap, 2.0/365.2425)
	}
}

func TestAstronomicalRoundTrip(t *testing.T) {
	dates := []time.Time{
		date(t, 2233, 1, 4),
		date(t, 2258, 2, 11),
		date(t, 2259, 12, 31),
		date(t, 2260, 1, 1),
		date(t, 2260, 2, 29),
		date(t, 2263, 1, 2),
	}
	for _, d := range dates {
		back, err := FromAstronomical(ToAstronomical(d))
		if err != nil {
			t.Fatalf("FromAstronomical(%v) error: %v", ToAstronomical(d), err)
		}
		if !back.Equal(d) {
			t.Errorf("astronomical round trip of %s = %s", d.Format("2006-01-02"), back.Format("2006-01-02"))
		}
	}
}

// Ordinal 366 exceeds one mean Gregorian year, so the fractional stardate
// for a leap-year Dec 31 crosses into the following year.
func TestAstronomicalLeapDec31CrossesYear(t *testing.T) {
	sd := ToAstronomical(date(t, 2260, 12, 31))
	if sd < 2261 {
		t.Fatalf("ToAstronomical(2260-12-31) = %v, want >= 2261", sd)
	}
	back, err := FromAstronomical(sd)
	if err != nil {
		t.Fatalf("FromAstronomical(%v) error: %v", sd, err)
	}
	if want := date(t, 2261, 1, 1); !back.Equal(want) {
		t.Errorf("FromAstronomical(%v) = %s, want %s",
			sd, back.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestFromAstronomicalClampsNewYear(t *testing.T) {
	got, err := FromAstronomical(2258.0)
	if err != nil {
		t.Fatalf("FromAstronomical(2258.0) error: %v", err)
	}
	if want := date(t, 2258, 1, 1); !got.Equal(want) {
		t.Errorf("FromAstronomical(2258.0) = %s, want 2258-01-01", got.Format("2006-01-02"))
	}
}

func TestFromAstronomicalYearRange(t *testing.T) {
	for _, sd := range []float64{0.5, 10000.2, -3.1} {
		if _, err := FromAstronomical(sd); !errors.Is(err, ErrYearRange) {
			t.Errorf("FromAstronomical(%v) error = %v, want ErrYearRange", sd, err)
		}
	}
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             error
	}{
		{2258, 2, 11, nil},
		{2260, 2, 29, nil},
		{2259, 2, 29, ErrInvalidDate},
		{2258, 4, 31, ErrInvalidDate},
		{2258, 13, 1, ErrInvalidDate},
		{0, 1, 1, ErrYearRange},
		{10000, 1, 1, ErrYearRange},
	}
	for _, tt := range tests {
		_, err := NewDate(tt.year, tt.month, tt.day)
		if !errors.Is(err, tt.want) {
			t.Errorf("NewDate(%d, %d, %d) error = %v, want %v", tt.year, tt.month, tt.day, err, tt.want)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2260, true},
		{2258, false},
		{2400, true},
		{2100, false},
		{2000, true},
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
		wantDays := 365
		if tt.want {
			wantDays = 366
		}
		if got := DaysInYear(tt.year); got != wantDays {
			t.Errorf("DaysInYear(%d) = %d, want %d", tt.year, got, wantDays)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{NoLeap, "no_leap"},
		{Gregorian, "gregorian"},
		{Astronomical, "astronomical"},
		{All, "all"},
		{Mode(42), "mode(42)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
