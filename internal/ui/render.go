package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KylieKat17/kelvin-stardate/internal/errcode"
	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
)

// DefaultWidth is the result-block width. It fits a terminal sharing
// half a screen with an editor.
const DefaultWidth = 62

const (
	bannerWidth = 58
	labelWidth  = 20

	isoDate  = "2006-01-02"
	longDate = "January 02, 2006"
)

// Renderer writes result blocks, banners, and styled messages. The
// Theme is exported so callers can color their own prompt text with
// the same palette.
type Renderer struct {
	Theme Theme

	out   io.Writer
	width int
}

func NewRenderer(out io.Writer, theme Theme, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{Theme: theme, out: out, width: width}
}

// FormatAstro prints an astronomical stardate the shortest way that
// round-trips, e.g. 2258.11499.
func FormatAstro(sd float64) string {
	return strconv.FormatFloat(sd, 'f', -1, 64)
}

// Banner draws a double-line box around the given lines, each centered.
func (r *Renderer) Banner(lines ...string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Width(bannerWidth).
		Align(lipgloss.Center)
	fmt.Fprintf(r.out, "\n%s\n\n", box.Render(strings.Join(lines, "\n")))
}

// SectionTitle prints the "== Title ==" heading the help screens use.
func (r *Renderer) SectionTitle(title string) {
	fmt.Fprintf(r.out, "\n%s\n\n", r.Theme.Info.Render("== "+title+" =="))
}

// Error prints err in the error style. Coded errors already carry
// their "Error [EXXX]:" prefix; anything else gets a plain one.
func (r *Renderer) Error(err error) {
	msg := err.Error()
	if _, ok := errcode.CodeOf(err); !ok {
		msg = "Error: " + msg
	}
	fmt.Fprintln(r.out, r.Theme.Error.Render(msg))
}

// Info prints msg in the info style.
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, r.Theme.Info.Render(msg))
}

// Goodbye prints the exit line used everywhere quitting is honored.
func (r *Renderer) Goodbye() {
	fmt.Fprintf(r.out, "\n%s\n\n", r.Theme.Info.Render("Goodbye!"))
}

// Result is one single-mode conversion outcome. Zero-valued fields are
// left out of the block, so the same shape serves both directions.
type Result struct {
	Mode      stardate.Mode
	InputDate time.Time
	InputSD   string
	Stardate  string
	Date      time.Time
}

// Result renders the bordered single-mode block: input echo first,
// computed value after.
func (r *Renderer) Result(res Result) {
	border := strings.Repeat("=", r.width)
	title := fmt.Sprintf("RESULT (%s)", strings.ToUpper(res.Mode.String()))
	style := r.Theme.Mode(res.Mode)

	fmt.Fprintf(r.out, "\n %s\n", border)
	fmt.Fprintf(r.out, " %s\n", style.Width(r.width).Align(lipgloss.Center).Render(title))
	fmt.Fprintf(r.out, " %s\n", border)

	if !res.InputDate.IsZero() {
		fmt.Fprintf(r.out, "   Earth date   :  %s  (%s)\n", res.InputDate.Format(isoDate), res.InputDate.Format(longDate))
	}
	if res.InputSD != "" {
		fmt.Fprintf(r.out, "   Stardate     :  %s\n", res.InputSD)
	}
	if res.Stardate != "" {
		fmt.Fprintf(r.out, "   Stardate     :  %s\n", res.Stardate)
	}
	if !res.Date.IsZero() {
		fmt.Fprintf(r.out, "   Earth date   :  %s  (%s)\n", res.Date.Format(isoDate), res.Date.Format(longDate))
	}
	fmt.Fprintf(r.out, " %s\n\n", border)
}

// AllStardates renders the fan-out block for one Earth date converted
// under every mode.
func (r *Renderer) AllStardates(input time.Time, noLeap, gregorian stardate.Kelvin, astro float64) {
	border := strings.Repeat("=", r.width)

	fmt.Fprintf(r.out, "\n %s\n", border)
	fmt.Fprintf(r.out, " %s\n", r.Theme.All.Width(r.width).Align(lipgloss.Center).Render("RESULTS (ALL MODES)"))
	fmt.Fprintf(r.out, " %s\n", border)

	fmt.Fprintf(r.out, "   %s:  %s  (%s)\n\n", r.Label("Earth date", r.Theme.Label), input.Format(isoDate), input.Format(longDate))
	fmt.Fprintf(r.out, "   %s:  %s\n", r.Label("Kelvin (no_leap)", r.Theme.NoLeap), noLeap)
	fmt.Fprintf(r.out, "   %s:  %s\n", r.Label("Kelvin (gregorian)", r.Theme.Gregorian), gregorian)
	fmt.Fprintf(r.out, "   %s:  %s\n", r.Label("Astronomical", r.Theme.Astronomical), FormatAstro(astro))
	fmt.Fprintf(r.out, " %s\n\n", border)
}

// AllDates renders the fan-out block for one stardate read back as an
// Earth date under every mode. A nil date marks a mode that could not
// convert; it renders as an error row while the others still print.
func (r *Renderer) AllDates(inputSD string, noLeap, gregorian, astro *time.Time) {
	border := strings.Repeat("=", r.width)

	fmt.Fprintf(r.out, "\n %s\n", border)
	fmt.Fprintf(r.out, " %s\n", r.Theme.All.Width(r.width).Align(lipgloss.Center).Render("RESULTS (ALL MODES)"))
	fmt.Fprintf(r.out, " %s\n", border)

	fmt.Fprintf(r.out, "   %s:  %s\n\n", r.Label("Stardate", r.Theme.Label), inputSD)
	r.dateRow("Kelvin (no_leap)", r.Theme.NoLeap, noLeap)
	r.dateRow("Kelvin (gregorian)", r.Theme.Gregorian, gregorian)
	r.dateRow("Astronomical", r.Theme.Astronomical, astro)
	fmt.Fprintf(r.out, " %s\n\n", border)
}

func (r *Renderer) dateRow(label string, style lipgloss.Style, d *time.Time) {
	if d == nil {
		fmt.Fprintf(r.out, "   %s\n", r.Theme.Error.Render(label+": ERROR"))
		return
	}
	fmt.Fprintf(r.out, "   %s:  %s  (%s)\n", r.Label(label, style), d.Format(isoDate), d.Format(longDate))
}

// Label styles the text and pads it to the shared label column with
// plain spaces, so rows align even though styled runs differ in byte
// length.
func (r *Renderer) Label(text string, style lipgloss.Style) string {
	pad := ""
	if n := labelWidth - len(text); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	return style.Render(text) + pad
}
