package validate

import (
	"testing"

	"github.com/KylieKat17/kelvin-stardate/internal/errcode"
	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
)

func wantCode(t *testing.T, err error, code errcode.Code) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error with code %s, got nil", code)
		return
	}
	if got, ok := errcode.CodeOf(err); !ok || got != code {
		t.Errorf("error = %v, want code %s", err, code)
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2258", 2258},
		{" 2258 ", 2258},
		{"0042", 42},
		{"1", 1},
		{"9999", 9999},
	}
	for _, tt := range tests {
		got, err := Year(tt.in)
		if err != nil {
			t.Errorf("Year(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Year(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestYearErrors(t *testing.T) {
	tests := []struct {
		in   string
		code errcode.Code
	}{
		{"", errcode.CodeEmptyInput},
		{"   ", errcode.CodeEmptyInput},
		{"22.58", errcode.CodeYearFormat},
		{"abc", errcode.CodeYearFormat},
		{"-5", errcode.CodeYearFormat},
		{"0", errcode.CodeYearRange},
		{"10000", errcode.CodeYearRange},
		{"99999999999999999999", errcode.CodeYearRange},
	}
	for _, tt := range tests {
		_, err := Year(tt.in)
		wantCode(t, err, tt.code)
	}
}

func TestYearYYYY(t *testing.T) {
	if got, err := YearYYYY("2258"); err != nil || got != 2258 {
		t.Errorf("YearYYYY(\"2258\") = %d, %v", got, err)
	}
	tests := []struct {
		in   string
		code errcode.Code
	}{
		{"258", errcode.CodeYearFormat},
		{"02258", errcode.CodeYearFormat},
		{"22.8", errcode.CodeYearFormat},
		{"abcd", errcode.CodeYearFormat},
		{"0000", errcode.CodeYearRange},
		{"", errcode.CodeEmptyInput},
	}
	for _, tt := range tests {
		_, err := YearYYYY(tt.in)
		wantCode(t, err, tt.code)
	}
}

func TestMonth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2", 2},
		{"02", 2},
		{"12", 12},
		{"feb", 2},
		{"February", 2},
		{"SEPT", 9},
		{"sep", 9},
		{"september", 9},
		{" may ", 5},
		{"december", 12},
	}
	for _, tt := range tests {
		got, err := Month(tt.in)
		if err != nil {
			t.Errorf("Month(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Month(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"13", "0", "frob", "ja"} {
		_, err := Month(in)
		wantCode(t, err, errcode.CodeMonth)
	}
	_, err := Month("")
	wantCode(t, err, errcode.CodeEmptyInput)
}

func TestDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"11", 11},
		{"01", 1},
		{"31", 31},
	}
	for _, tt := range tests {
		got, err := Day(tt.in)
		if err != nil {
			t.Errorf("Day(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Day(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"32", "0", "abc", "-1"} {
		_, err := Day(in)
		wantCode(t, err, errcode.CodeMonth)
	}
	_, err := Day(" ")
	wantCode(t, err, errcode.CodeEmptyInput)
}

func TestEarthDate(t *testing.T) {
	tests := []struct {
		in      string
		y, m, d int
	}{
		{"2258-02-11", 2258, 2, 11},
		{"2258-feb-11", 2258, 2, 11},
		{" 2259-02-24 ", 2259, 2, 24},
		{"2260-02-29", 2260, 2, 29},
		{"258-01-01", 258, 1, 1},
	}
	for _, tt := range tests {
		y, m, d, err := EarthDate(tt.in)
		if err != nil {
			t.Errorf("EarthDate(%q) error: %v", tt.in, err)
			continue
		}
		if y != tt.y || m != tt.m || d != tt.d {
			t.Errorf("EarthDate(%q) = %d, %d, %d, want %d, %d, %d", tt.in, y, m, d, tt.y, tt.m, tt.d)
		}
	}
}

func TestEarthDateErrors(t *testing.T) {
	tests := []struct {
		in   string
		code errcode.Code
	}{
		{"", errcode.CodeEmptyInput},
		{"2258/02/11", errcode.CodeEarthDateFormat},
		{"2258-02", errcode.CodeEarthDateFormat},
		{"2258-02-11-4", errcode.CodeEarthDateFormat},
		{"2259-02-29", errcode.CodeDay},
		{"2258-13-01", errcode.CodeMonth},
		{"2258-02-32", errcode.CodeMonth},
		{"22x8-02-11", errcode.CodeYearFormat},
	}
	for _, tt := range tests {
		_, _, _, err := EarthDate(tt.in)
		wantCode(t, err, tt.code)
	}
}

func TestEarthDateLeavesCalendarChecksDownstream(t *testing.T) {
	// Field validation passes Feb 30; date construction is what
	// rejects it.
	y, m, d, err := EarthDate("2258-02-30")
	if err != nil {
		t.Fatalf("EarthDate(2258-02-30) error: %v", err)
	}
	if _, err := stardate.NewDate(y, m, d); err == nil {
		t.Error("NewDate(2258, 2, 30) accepted an impossible date")
	}
}

func TestStardateString(t *testing.T) {
	for _, in := range []string{"2258.042", "2258.11499", "2258.4", "2258.12345678"} {
		got, err := StardateString(in)
		if err != nil {
			t.Errorf("StardateString(%q) error: %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("StardateString(%q) = %q", in, got)
		}
	}
	if got, err := StardateString(" 2258.042 "); err != nil || got != "2258.042" {
		t.Errorf("StardateString with padding = %q, %v, want trimmed", got, err)
	}
}

func TestStardateStringErrors(t *testing.T) {
	tests := []struct {
		in   string
		code errcode.Code
	}{
		{"", errcode.CodeEmptyInput},
		{"2258-02-11", errcode.CodeStardate},
		{"2258", errcode.CodeStardateFormat},
		{"2258.4.2", errcode.CodeStardate},
		{".42", errcode.CodeStardate},
		{"2258.", errcode.CodeStardate},
		{"22a8.042", errcode.CodeStardate},
		{"2258.04x", errcode.CodeStardate},
		{"258.042", errcode.CodeStardate},
		{"0000.042", errcode.CodeStardate},
		{"2258.123456789", errcode.CodeStardate},
	}
	for _, tt := range tests {
		_, err := StardateString(tt.in)
		wantCode(t, err, tt.code)
	}
}

func TestKelvinStardateString(t *testing.T) {
	for _, in := range []string{"2258.042", "2258.001", "2260.366"} {
		if _, err := KelvinStardateString(in); err != nil {
			t.Errorf("KelvinStardateString(%q) error: %v", in, err)
		}
	}
	for _, in := range []string{"2258.42", "2258.0420", "2258.999", "2258.000", "2258.367"} {
		_, err := KelvinStardateString(in)
		wantCode(t, err, errcode.CodeStardate)
	}
}

func TestDetectStardateKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"2258.042", KindKelvin},
		{"2258.4", KindKelvin},
		{"2258", KindKelvin},
		{"2258.", KindKelvin},
		{"2258.04a", KindKelvin},
		{"2258.1234", KindAstronomical},
		{"2258.11499", KindAstronomical},
		{" 2258.12345 ", KindAstronomical},
	}
	for _, tt := range tests {
		if got := DetectStardateKind(tt.in); got != tt.want {
			t.Errorf("DetectStardateKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want stardate.Mode
	}{
		{"no_leap", stardate.NoLeap},
		{"noleap", stardate.NoLeap},
		{"nl", stardate.NoLeap},
		{"canon", stardate.NoLeap},
		{"ordinal", stardate.NoLeap},
		{"1", stardate.NoLeap},
		{" NO_LEAP ", stardate.NoLeap},
		{"gregorian", stardate.Gregorian},
		{"greg", stardate.Gregorian},
		{"gr", stardate.Gregorian},
		{"2", stardate.Gregorian},
		{"astronomical", stardate.Astronomical},
		{"astro", stardate.Astronomical},
		{"astr", stardate.Astronomical},
		{"3", stardate.Astronomical},
		{"all", stardate.All},
		{"a", stardate.All},
		{"4", stardate.All},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Errorf("ParseMode(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"5", "kelvin", "stardate", ""} {
		_, err := ParseMode(in)
		wantCode(t, err, errcode.CodeUnknownMode)
	}
}
