// Package ui renders the converter's terminal output: the semantic
// color palette, the bordered result blocks, and the banner boxes.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
)

// Theme names styles by meaning, not hue: one per message kind and one
// per conversion mode.
type Theme struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style

	NoLeap       lipgloss.Style
	Gregorian    lipgloss.Style
	Astronomical lipgloss.Style
	All          lipgloss.Style

	Header lipgloss.Style
	Label  lipgloss.Style
}

// DefaultTheme returns the standard ANSI palette.
func DefaultTheme() Theme {
	return Theme{
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		NoLeap:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Gregorian:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Astronomical: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		All:          lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// PlainTheme styles nothing. Used for NO_COLOR terminals and piped
// output.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Error:        s,
		Warning:      s,
		Info:         s,
		Success:      s,
		NoLeap:       s,
		Gregorian:    s,
		Astronomical: s,
		All:          s,
		Header:       s,
		Label:        s,
	}
}

// Mode returns the style for a conversion mode, falling back to the
// header style.
func (t Theme) Mode(m stardate.Mode) lipgloss.Style {
	switch m {
	case stardate.NoLeap:
		return t.NoLeap
	case stardate.Gregorian:
		return t.Gregorian
	case stardate.Astronomical:
		return t.Astronomical
	case stardate.All:
		return t.All
	}
	return t.Header
}
