package cli

import (
	"fmt"
	"strings"

	"github.com/KylieKat17/kelvin-stardate/internal/errcode"
	"github.com/KylieKat17/kelvin-stardate/internal/prompt"
)

// helpLoop is the interactive help menu, reachable from any prompt via
// 'h' or 'help'. Returning nil re-asks whatever question the user was
// on; prompt.ErrQuit ends the program.
func (a *App) helpLoop(p *prompt.Prompter) error {
	for {
		a.renderer.Banner("KELVIN STARDATE HELP")

		fmt.Fprintln(a.out, "   1) Overview")
		fmt.Fprintln(a.out, "   2) Conversion Modes")
		fmt.Fprintln(a.out, "   3) Error Codes")
		fmt.Fprintln(a.out, "   4) Usage (interactive, flags, subcommands)")
		fmt.Fprintln(a.out, "   5) Examples")
		fmt.Fprintln(a.out, "   6) Troubleshooting / Common Issues")
		fmt.Fprintln(a.out, "   7) All topics (full help dump)")
		fmt.Fprintln(a.out, "   8) Return to previous prompt")
		fmt.Fprintln(a.out, menuRule)

		raw, err := p.Raw(" Select a help topic (1-8, or letter): ")
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "q", "/q", "quit", "exit":
			return prompt.ErrQuit
		case "7", "a", "all":
			err = a.showAllTopics(p)
		case "8", "", "r", "back", "b":
			return nil
		case "1", "o", "overview":
			a.showOverview()
			err = a.pressEnter(p)
		case "2", "m", "mode", "modes":
			a.showModes()
			err = a.pressEnter(p)
		case "3", "e", "err", "errors", "codes":
			a.showErrorCodes()
			err = a.pressEnter(p)
		case "4", "u", "usage":
			a.showUsage()
			err = a.pressEnter(p)
		case "5", "x", "ex", "example", "examples":
			a.showExamples()
			err = a.pressEnter(p)
		case "6", "t", "trouble", "troubleshooting":
			a.showTroubleshooting()
			err = a.pressEnter(p)
		default:
			fmt.Fprintln(a.out, a.renderer.Theme.Error.Render(" Unrecognized choice. Please select 1-8 or a matching letter."))
			err = a.pressEnter(p)
		}
		if err != nil {
			return err
		}
	}
}

// pressEnter holds the screen until the user continues, honoring the
// quit-at-any-time rule.
func (a *App) pressEnter(p *prompt.Prompter) error {
	raw, err := p.Raw("\n" + a.renderer.Theme.Label.Render("[Press Enter to return to the help menu, or 'q' to quit]") + " ")
	if err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "-q", "q", "/q", "quit", "exit":
		return prompt.ErrQuit
	}
	return nil
}

func (a *App) showAllTopics(p *prompt.Prompter) error {
	a.renderer.Banner("FULL HELP (ALL TOPICS)")

	a.showOverview()
	a.showModes()
	a.showErrorCodes()
	a.showUsage()
	a.showExamples()
	a.showTroubleshooting()

	return a.pressEnter(p)
}

func (a *App) showOverview() {
	a.renderer.SectionTitle("Overview")

	fmt.Fprint(a.out,
		"This tool converts between Earth dates and the Kelvin timeline stardates\n"+
			"seen in the J.J. Abrams Star Trek films. The conversion system is based on\n"+
			"statements by co-writer Roberto Orci, who described stardates as:\n\n"+
			"  • The standard year (e.g. 2258), plus a decimal representing the\n"+
			"    fraction of the year / ordinal day within that year.\n\n"+
			"For example, in (Kelvin) canon:\n"+
			"  • Spock logs the destruction of Vulcan on stardate 2258.42.\n"+
			"  • Star Trek Into Darkness begins on stardate 2259.55.\n"+
			"  • Star Trek Beyond begins on stardate 2263.02.\n\n"+
			"This converter uses Earth dates in ISO-like form, e.g. 2258-02-11, and also\n"+
			"prints them in a US-style 'Month DD, YYYY' format for readability.\n\n"+
			"Because the films and Orci's explanations are not 100% mathematically\n"+
			"rigid, this tool supports several 'modes' for interpreting the decimal:\n"+
			"  - A 365-day simplified year (no_leap)\n"+
			"  - A real Gregorian leap-year calendar (gregorian)\n"+
			"  - A purely fractional 365.2425-day year (astronomical)\n\n"+
			"There is also limited auto-detection when converting FROM a stardate:\n"+
			"  • Short fractions (e.g. 2258.42) are assumed to be Kelvin-style day\n"+
			"    fractions.\n"+
			"  • Longer fractional precision (e.g. 2258.11499) helps identify values\n"+
			"    produced in astronomical mode.\n")
}

func (a *App) showModes() {
	t := a.renderer.Theme
	a.renderer.SectionTitle("Conversion Modes")

	fmt.Fprint(a.out,
		"The converter supports multiple ways to interpret the fractional part\n"+
			"of a Kelvin stardate. You can select these via the interactive menu, the\n"+
			"--mode flag, or subcommand options.\n\n"+
			"Each mode exists to address a slightly different way of thinking about\n"+
			"time in the Kelvin timeline and how strict you want to be about calendar\n"+
			"rules and physical year length.\n\n")

	fmt.Fprintf(a.out, "%s  (aliases: 'noleap', 'nl', '1')\n"+
		"  • Uses a 365-day year and ignores leap years entirely.\n"+
		"  • This roughly matches Orci's simplified \"day of year\" description,\n"+
		"    where every year effectively has days 1..365.\n"+
		"  • February 29 is compressed so that dates after it don't get shifted.\n\n",
		t.NoLeap.Render("no_leap"))

	fmt.Fprintf(a.out, "%s  (aliases: 'greg', 'gr', '2')\n"+
		"  • Uses real-world Gregorian calendar rules:\n"+
		"      - divisible by 4   ⇒ leap year\n"+
		"      - divisible by 100 ⇒ NOT a leap year\n"+
		"      - divisible by 400 ⇒ leap year again\n"+
		"  • February 29 exists only in true leap years.\n"+
		"  • This is the most faithful to how Earth calendars actually behave and\n"+
		"    is often useful when reconciling dates against known canon events.\n\n",
		t.Gregorian.Render("gregorian"))

	fmt.Fprintf(a.out, "%s  (aliases: 'astro', 'astr', '3')\n"+
		"  • Uses a mean tropical year length of 365.2425 days.\n"+
		"  • Treats the decimal as a continuous fraction of the year in pure\n"+
		"    mathematical terms, without special rules for leap years.\n"+
		"  • This is appealing if you want a very smooth, physics/astronomy-leaning\n"+
		"    progression of time, even if it diverges slightly from the films.\n\n",
		t.Astronomical.Render("astronomical"))

	fmt.Fprintf(a.out, "%s  (aliases: 'a', '4')\n"+
		"  • Computes and displays conversions under all three modes at once.\n"+
		"  • This is especially helpful when you're trying to decide which mode\n"+
		"    best matches a given interpretation of Kelvin canon.\n\n",
		t.All.Render("all"))

	fmt.Fprint(a.out,
		"Why not Julian or other calendars?\n"+
			"  • The Kelvin films implicitly assume a Gregorian-flavored context, and\n"+
			"    Orci's explanations are conceptually closest to an ordinal-date view\n"+
			"    of Earth years. Julian calendars or other more obscure systems would\n"+
			"    add historical complexity without improving the match to on-screen\n"+
			"    stardates, so they were deliberately not included.\n")
}

func (a *App) showErrorCodes() {
	a.renderer.SectionTitle("Error Codes")

	fmt.Fprint(a.out,
		"When something goes wrong, the CLI may report a structured error in\n"+
			"the form:  Error [EXXX]: message\n\n"+
			"The EXXX codes make it easier to understand and look up what failed.\n"+
			"Here are the currently defined codes:\n\n")

	for _, info := range errcode.Ordered() {
		fmt.Fprintf(a.out, "  %s\n\n", a.renderer.Theme.Label.Render(string(info.Code)+": "+info.Long))
	}

	fmt.Fprint(a.out,
		"If you see an error code not listed here, it was added after this\n"+
			"help screen; the registry in the errcode package is the authority.\n")
}

func (a *App) showUsage() {
	t := a.renderer.Theme
	a.renderer.SectionTitle("Usage (Interactive, Flags, Subcommands)")

	fmt.Fprintf(a.out, "%s\n"+
		"   Run with no arguments:\n"+
		"       stardate\n\n"+
		"   You'll see a menu:\n"+
		"       1) Earth → Stardate\n"+
		"       2) Stardate → Earth\n\n"+
		"   At ANY prompt in the interactive UI you can type:\n"+
		"       q, /q, quit, exit   → quit the program\n"+
		"       h, /h, help, /help  → open this help menu\n\n"+
		"   Month input is flexible:\n"+
		"       '1', '01', 'jan', 'january' → all treated as January.\n\n",
		t.Success.Render("1) Interactive mode"))

	fmt.Fprintf(a.out, "%s\n"+
		"   Earth → Stardate:\n"+
		"       stardate --from-earth 2258-02-11 --mode all\n\n"+
		"   Stardate → Earth:\n"+
		"       stardate --from-sd 2258.42 --mode greg\n\n"+
		"   Mode strings support full names and abbreviations:\n"+
		"       no_leap, noleap, nl, 1\n"+
		"       gregorian, greg, gr, 2\n"+
		"       astronomical, astro, astr, 3\n"+
		"       all, a, 4\n\n",
		t.Success.Render("2) Flag-style usage"))

	fmt.Fprintf(a.out, "%s\n"+
		"   Earth → Stardate:\n"+
		"       stardate earth-to 2258 2 11 --mode all\n\n"+
		"   Stardate → Earth:\n"+
		"       stardate sd-to 2258.42 --mode gregorian\n\n"+
		"   Canon reference table (film dates with their stardates):\n"+
		"       stardate canon\n"+
		"       stardate canon --file my_canon.yaml --watch\n\n"+
		"   Subcommands are useful if you prefer positional arguments or want to\n"+
		"   script things more explicitly.\n",
		t.Success.Render("3) Subcommands"))
}

func (a *App) showExamples() {
	t := a.renderer.Theme
	a.renderer.SectionTitle("Examples")

	fmt.Fprintf(a.out, "%s\n"+
		"   Input:\n"+
		"       stardate earth-to 2258 2 11 --mode all\n\n"+
		"   Output (shape):\n"+
		"       ====================== RESULTS (ALL MODES) ======================\n"+
		"         Earth date         :  2258-02-11  (February 11, 2258)\n"+
		"\n"+
		"         Kelvin (no_leap)   :  2258.42\n"+
		"         Kelvin (gregorian) :  2258.42\n"+
		"         Astronomical       :  2258.11499\n"+
		"       =================================================================\n\n",
		t.Success.Render("Example 1 – Earth → Stardate (ALL modes)"))

	fmt.Fprintf(a.out, "%s\n"+
		"   Input:\n"+
		"       stardate sd-to 2258.42 --mode greg\n\n"+
		"   Output (shape):\n"+
		"       ====================== RESULT (GREGORIAN) ======================\n"+
		"         Stardate     :  2258.42\n"+
		"         Earth date   :  2258-02-11  (February 11, 2258)\n"+
		"       =================================================================\n\n",
		t.Success.Render("Example 2 – Stardate → Earth (gregorian)"))

	fmt.Fprintf(a.out, "%s\n"+
		"   • Run:\n"+
		"       stardate\n"+
		"   • Use 'h' or '/help' at any prompt for this help system.\n"+
		"   • Use 'q' or 'quit' at any prompt to exit immediately.\n",
		t.Success.Render("Example 3 – Interactive, with help and quit"))
}

func (a *App) showTroubleshooting() {
	t := a.renderer.Theme
	a.renderer.SectionTitle("Troubleshooting & Common Issues")

	problem := t.Label.Render("Problem:")
	fmt.Fprintf(a.out,
		"%s Month or date rejected (E002 / E003).\n"+
			"  → Month may be outside 1–12, or the name may be unrecognized.\n"+
			"    Day might be outside 1–31, or invalid for that month and year.\n\n"+
			"%s Leap day issues (E004).\n"+
			"  → You used February 29 on a year that is not a leap year in the\n"+
			"    Gregorian calendar.\n\n"+
			"%s Stardate format error (E005).\n"+
			"  → Kelvin-style stardates must include a decimal fraction, e.g. 2258.42.\n"+
			"    A bare '2258' is not considered valid for conversion.\n\n"+
			"%s Empty input (E001).\n"+
			"  → The program expected a value but you just pressed Enter.\n\n"+
			"%s Unknown mode (E006).\n"+
			"  → Your --mode or menu choice could not be mapped to a known mode.\n"+
			"    Try one of: no_leap, gregorian, astronomical, all, or their aliases.\n",
		problem, problem, problem, problem, problem)
}
