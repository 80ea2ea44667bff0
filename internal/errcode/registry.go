package errcode

// registry holds the metadata for every code. It is populated here and
// never mutated afterward.
var registry = map[Code]Info{
	CodeEmptyInput: {
		Code:  CodeEmptyInput,
		Short: "Input cannot be empty.",
		Long: "You pressed Enter without typing anything when the program asked " +
			"for a value. The converter needs a valid year, month, day, or " +
			"stardate string to work with.",
		Dev: "Returned when trimmed input is empty. Typically surfaces from the prompt layer.",
	},
	CodeMonth: {
		Code:  CodeMonth,
		Short: "Invalid month value.",
		Long: "The month you entered is either outside the valid range (1–12), " +
			"or the month name/abbreviation could not be recognized.\n\n" +
			"Examples of accepted names:\n" +
			"  jan, january, feb, february, mar, march, sept, september, etc.",
		Dev: "Returned when validate.Month cannot normalize the month string into an integer between 1 and 12.",
	},
	CodeDay: {
		Code:  CodeDay,
		Short: "Day or date is not valid for the given month/year.",
		Long: "The day you entered is outside the allowed range (1–31), or it " +
			"does not make sense for the specific month and year.\n\n" +
			"For example:\n" +
			"  - April 31 is invalid (April has only 30 days).\n" +
			"  - February 30 is invalid in all calendars.",
		Dev: "Returned when validate.Day rejects the value or stardate.NewDate rejects the day-month-year combination.",
	},
	CodeLeapDay: {
		Code:  CodeLeapDay,
		Short: "Invalid leap-day usage.",
		Long: "You tried to use February 29 in a year that is not a leap year " +
			"under the Gregorian rules:\n" +
			"  • divisible by 4 ⇒ leap year\n" +
			"  • divisible by 100 ⇒ NOT a leap year\n" +
			"  • divisible by 400 ⇒ leap year again",
		Dev: "Returned when February 29 is given for a non-leap year. The CLI may surface this directly or via E003 depending on context.",
	},
	CodeStardateFormat: {
		Code:  CodeStardateFormat,
		Short: "Invalid stardate format.",
		Long: "A Kelvin-style stardate must include a decimal point, such as " +
			"2258.42, not just '2258'. The part after the decimal expresses " +
			"a fraction of the year/day sequence.",
		Dev: "Returned when stardate parsing fails basic structural checks: missing decimal, alphabetic characters, or an empty fraction.",
	},
	CodeUnknownMode: {
		Code:  CodeUnknownMode,
		Short: "Unknown conversion mode.",
		Long: "The mode you provided could not be mapped to any supported " +
			"conversion mode.\n\n" +
			"Supported values and common aliases:\n" +
			"  • no_leap, noleap, nl, 1\n" +
			"  • gregorian, greg, gr, 2\n" +
			"  • astronomical, astro, astr, 3\n" +
			"  • all, a, 4",
		Dev: "Returned when validate.ParseMode cannot map a mode string to a known mode.",
	},
	CodeYearFormat: {
		Code:  CodeYearFormat,
		Short: "Invalid year format.",
		Long: "The year you entered is not valid.\n\n" +
			"Rules:\n" +
			"  • Digits only (no letters or symbols)\n" +
			"  • No decimal points\n" +
			"  • Must be exactly four digits when requested (YYYY)",
		Dev: "Returned by validate.Year and validate.YearYYYY when the input contains non-numeric characters, decimals, or the wrong length.",
	},
	CodeYearRange: {
		Code:  CodeYearRange,
		Short: "Year out of supported range.",
		Long: "The year you entered is outside the supported range.\n\n" +
			"Valid years must be between 0001 and 9999, inclusive. The " +
			"converter's calendar math and timeline stop there.",
		Dev: "Returned when a parsed year is numeric but outside the 1–9999 range.",
	},
	CodeMenuChoice: {
		Code:  CodeMenuChoice,
		Short: "Invalid menu selection.",
		Long: "The option you selected is not valid for this menu.\n\n" +
			"Please choose one of the listed options exactly as shown " +
			"(for example: 1 or 2).",
		Dev: "Returned by prompt.MenuChoice when the input matches none of the allowed menu values.",
	},
	CodeYesNo: {
		Code:  CodeYesNo,
		Short: "Invalid yes/no response.",
		Long: "The program expected a yes-or-no answer.\n\n" +
			"Accepted values:\n" +
			"  • y / yes\n" +
			"  • n / no",
		Dev: "Returned by prompt.YesNo when input is not recognized as a boolean-style response.",
	},
	CodeStardate: {
		Code:  CodeStardate,
		Short: "Invalid stardate.",
		Long: "The stardate you entered is not valid.\n\n" +
			"Kelvin-format stardates must:\n" +
			"  • Contain exactly one decimal point\n" +
			"  • Use a 4-digit year (0001–9999)\n" +
			"  • Use numeric digits only\n" +
			"  • Not resemble an Earth date (no '-')\n\n" +
			"Examples:\n" +
			"  ✓ 2258.042\n" +
			"  ✗ 2258-02-11\n" +
			"  ✗ 2258.4.2",
		Dev: "Returned by validate.StardateString and validate.KelvinStardateString when structural, numeric, or range checks fail.",
	},
	CodeEarthDateFormat: {
		Code:  CodeEarthDateFormat,
		Short: "Invalid Earth date format.",
		Long: "The Earth date you entered is not in a recognized format.\n\n" +
			"Accepted formats:\n" +
			"  • YYYY-MM-DD\n" +
			"  • YYYY-mon-DD  (month names or abbreviations)\n\n" +
			"Examples:\n" +
			"  ✓ 2258-02-11\n" +
			"  ✓ 2258-feb-11\n" +
			"  ✗ 2258/02/11",
		Dev: "Returned by validate.EarthDate when the input does not split into exactly three '-' separated fields.",
	},
}
