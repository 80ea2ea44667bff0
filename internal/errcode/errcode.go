// Package errcode defines the stable error codes the converter reports
// to users, with registry metadata backing the help screens. Codes are
// string-based for debuggability and stay stable across releases; the
// wording of a message may change, the code never does.
package errcode

import (
	"errors"
	"fmt"
	"sort"
)

// Code identifies one user-facing error condition.
type Code string

const (
	// CodeEmptyInput indicates a prompt received nothing but whitespace.
	CodeEmptyInput Code = "E001"

	// CodeMonth indicates a month value or name that could not be
	// recognized. Day parse failures report it too.
	CodeMonth Code = "E002"

	// CodeDay indicates a day that does not exist for the given month and year.
	CodeDay Code = "E003"

	// CodeLeapDay indicates February 29 was used in a non-leap year.
	CodeLeapDay Code = "E004"

	// CodeStardateFormat indicates a stardate missing its decimal point.
	CodeStardateFormat Code = "E005"

	// CodeUnknownMode indicates a conversion mode that matches no known alias.
	CodeUnknownMode Code = "E006"

	// CodeYearFormat indicates a year containing anything but digits.
	CodeYearFormat Code = "E007"

	// CodeYearRange indicates a numeric year outside 1-9999.
	CodeYearRange Code = "E008"

	// CodeMenuChoice indicates a menu selection matching none of the options.
	CodeMenuChoice Code = "E009"

	// CodeYesNo indicates an answer that is neither yes nor no.
	CodeYesNo Code = "E010"

	// CodeStardate indicates a stardate that fails structural or range checks.
	CodeStardate Code = "E011"

	// CodeEarthDateFormat indicates an Earth date not in YYYY-MM-DD shape.
	CodeEarthDateFormat Code = "E012"
)

// Info is the registry metadata for one code: the brief CLI message,
// the longer help-screen explanation, and internal notes.
type Info struct {
	Code  Code
	Short string
	Long  string
	Dev   string
}

// Error is a coded, user-facing error. Its string form matches what the
// CLI prints, so callers can hand it straight to the terminal.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error [%s]: %s", e.Code, e.Msg)
}

// New returns a coded error carrying the registry's short message.
func New(code Code) *Error {
	msg := "Unregistered error code: " + string(code)
	if info, ok := registry[code]; ok {
		msg = info.Short
	}
	return &Error{Code: code, Msg: msg}
}

// Newf returns a coded error with a custom message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == code
}

// CodeOf extracts the code from err, if it carries one.
func CodeOf(err error) (Code, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return "", false
}

// Lookup returns the registry entry for code.
func Lookup(code Code) (Info, bool) {
	info, ok := registry[code]
	return info, ok
}

// Ordered returns every registry entry in help-display order: the six
// most common input errors first, then the rest by code.
func Ordered() []Info {
	preferred := []Code{
		CodeEmptyInput, CodeMonth, CodeDay,
		CodeLeapDay, CodeStardateFormat, CodeUnknownMode,
	}
	out := make([]Info, 0, len(registry))
	seen := make(map[Code]bool, len(preferred))
	for _, c := range preferred {
		if info, ok := registry[c]; ok {
			out = append(out, info)
			seen[c] = true
		}
	}
	var rest []Info
	for c, info := range registry {
		if !seen[c] {
			rest = append(rest, info)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Code < rest[j].Code })
	return append(out, rest...)
}
