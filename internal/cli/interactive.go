package cli

import (
	"errors"
	"fmt"

	"github.com/KylieKat17/kelvin-stardate/internal/prompt"
	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
	"github.com/KylieKat17/kelvin-stardate/internal/validate"
)

// runInteractive drives the menu session: pick a direction, pick a
// mode, gather inputs, convert, repeat until the user declines or
// quits. Quitting is never an error, so the process exits 0.
func (a *App) runInteractive() error {
	p := prompt.New(a.in, a.out)
	p.Help = func() error { return a.helpLoop(p) }
	p.PrintErr = a.renderer.Error

	a.renderer.Banner(
		"KELVIN TIMELINE STARDATE CONVERTER (v"+Version+")",
		"Based on Roberto Orci's ordinal-date system",
		"Type 'h' for help – 'q' to quit",
	)

	for {
		fmt.Fprintln(a.out, "\n Conversion Modes:")
		fmt.Fprintln(a.out, "   1) Earth → Stardate")
		fmt.Fprintln(a.out, "   2) Stardate → Earth")
		fmt.Fprintln(a.out, menuRule)

		direction, err := p.MenuChoice(" Select an option: ", "1", "2")
		if err != nil {
			return a.finish(err)
		}

		mode, err := a.chooseMode(p)
		if err != nil {
			return a.finish(err)
		}
		fmt.Fprintf(a.out, "\n Using mode: %s\n\n", a.renderer.Theme.Mode(mode).Render(mode.String()))

		if err := a.convertOnce(p, direction, mode); err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				return a.finish(err)
			}
			a.renderer.Error(err)
			continue
		}

		again, err := p.YesNo(" Convert another? (y/n): ")
		if err != nil {
			return a.finish(err)
		}
		if !again {
			a.renderer.Goodbye()
			return nil
		}
	}
}

// finish turns a quit request into a clean exit; anything else is a
// real failure.
func (a *App) finish(err error) error {
	if errors.Is(err, prompt.ErrQuit) {
		a.renderer.Goodbye()
		return nil
	}
	return err
}

func (a *App) chooseMode(p *prompt.Prompter) (stardate.Mode, error) {
	t := a.renderer.Theme
	fmt.Fprintln(a.out, "\n Leap Year / Fractional Mode:")
	fmt.Fprintf(a.out, "   1) %s       (Orci-style 1..365)\n", t.NoLeap.Render("no_leap"))
	fmt.Fprintf(a.out, "   2) %s     (true leap-year handling)\n", t.Gregorian.Render("gregorian"))
	fmt.Fprintf(a.out, "   3) %s  (365.2425 day year)\n", t.Astronomical.Render("astronomical"))
	fmt.Fprintf(a.out, "   4) %s           (display all modes)\n", t.All.Render("all"))
	fmt.Fprintln(a.out, menuRule)

	return prompt.UntilDefault(p, " Choose mode [default=1]: ", stardate.NoLeap, validate.ParseMode)
}

func (a *App) convertOnce(p *prompt.Prompter, direction string, mode stardate.Mode) error {
	if direction == "1" {
		fmt.Fprintln(a.out, " Enter Earth date components:")
		y, err := prompt.Until(p, "   Year  (YYYY): ", validate.YearYYYY)
		if err != nil {
			return err
		}
		m, err := prompt.Until(p, "   Month (1-12 or name): ", validate.Month)
		if err != nil {
			return err
		}
		d, err := prompt.Until(p, "   Day   (1-31): ", validate.Day)
		if err != nil {
			return err
		}
		return a.earthToStardate(y, m, d, mode)
	}

	// The astronomical prompt takes any fraction; every other mode
	// insists on a well-formed Kelvin stardate up front.
	checker := validate.KelvinStardateString
	if mode == stardate.Astronomical {
		checker = validate.StardateString
	}
	sd, err := prompt.Until(p, " Enter stardate (e.g., 2258.042): ", checker)
	if err != nil {
		return err
	}
	return a.stardateToEarth(sd, mode)
}
