// Package cli wires the converter's three entry styles together: an
// interactive menu, top-level flags (--from-earth, --from-sd), and
// subcommands (earth-to, sd-to, canon, version).
//
// All conversion output goes to the app's out stream; logs stay on the
// logger. Anything that reaches the user as a validation failure is an
// errcode.Error so it prints as "Error [EXXX]: message".
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KylieKat17/kelvin-stardate/internal/config"
	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
	"github.com/KylieKat17/kelvin-stardate/internal/ui"
	"github.com/KylieKat17/kelvin-stardate/internal/validate"
)

const Version = "1.5.0"

// menuRule is the divider the interactive menus print under their options.
const menuRule = "------------------------------------------------------------"

// App carries the state every command shares. Commands read from in and
// write to out, so tests can script entire sessions.
type App struct {
	cfg      config.Config
	logger   *slog.Logger
	in       io.Reader
	out      io.Writer
	renderer *ui.Renderer

	// LogLevel, when set, is raised to debug by --verbose.
	LogLevel *slog.LevelVar

	modeFlag string
	noColor  bool
	width    int
	verbose  bool
}

func NewApp(cfg config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	theme := ui.DefaultTheme()
	if cfg.NoColor {
		theme = ui.PlainTheme()
	}
	return &App{
		cfg:      cfg,
		logger:   logger,
		in:       in,
		out:      out,
		renderer: ui.NewRenderer(out, theme, cfg.Width),
	}
}

// Run executes the root command and maps failures to the process exit
// code: validation and conversion errors exit 2.
func (a *App) Run(ctx context.Context, args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(a.out)
	if err := cmd.ExecuteContext(ctx); err != nil {
		a.renderer.Error(err)
		return 2
	}
	return 0
}

// Execute runs the converter against the process streams.
func Execute(ctx context.Context, cfg config.Config, logger *slog.Logger, level *slog.LevelVar, args []string) int {
	app := NewApp(cfg, logger, os.Stdin, os.Stdout)
	app.LogLevel = level
	return app.Run(ctx, args)
}

func (a *App) rootCmd() *cobra.Command {
	var (
		fromEarth string
		fromSD    string
	)

	cmd := &cobra.Command{
		Use:     "stardate",
		Short:   "Kelvin timeline stardate converter",
		Version: Version,
		Long: `Convert between Earth calendar dates and the Kelvin-timeline stardates
seen in the J.J. Abrams Star Trek films, following Roberto Orci's
ordinal-date description (year, then day-of-year after the decimal).

Run with no arguments for the interactive menu. Type 'h' at any prompt
for the built-in help system, 'q' to quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose && a.LogLevel != nil {
				a.LogLevel.Set(slog.LevelDebug)
			}
			theme := ui.DefaultTheme()
			if a.noColor {
				theme = ui.PlainTheme()
			}
			a.renderer = ui.NewRenderer(a.out, theme, a.width)

			today, _ := stardate.FromDate(time.Now().UTC(), stardate.NoLeap)
			a.logger.Info("stardate converter starting",
				"version", Version, "mode", a.modeFlag, "stardate", today.String())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := validate.ParseMode(a.modeFlag)
			if err != nil {
				return err
			}
			if fromEarth != "" {
				y, m, d, err := validate.EarthDate(fromEarth)
				if err != nil {
					return err
				}
				return a.earthToStardate(y, m, d, mode)
			}
			if fromSD != "" {
				return a.stardateToEarth(fromSD, mode)
			}
			return a.runInteractive()
		},
	}

	cmd.Flags().StringVar(&fromEarth, "from-earth", "", "Convert Earth date YYYY-MM-DD to a stardate (respects --mode)")
	cmd.Flags().StringVar(&fromSD, "from-sd", "", "Convert a stardate back to an Earth date (respects --mode)")

	cmd.PersistentFlags().StringVar(&a.modeFlag, "mode", a.cfg.Mode, "Conversion mode: no_leap, gregorian, astronomical, all (or an alias)")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", a.cfg.NoColor, "Disable colored output")
	cmd.PersistentFlags().IntVar(&a.width, "width", a.cfg.Width, "Width of the bordered result blocks")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(a.earthToCmd(), a.sdToCmd(), a.canonCmd(), a.versionCmd())
	return cmd
}

func (a *App) earthToCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earth-to YEAR MONTH DAY",
		Short: "Convert an Earth date to a stardate",
		Long: `Convert a calendar Earth date into a Kelvin-format stardate.

Month accepts a number (1-12) or a name/abbreviation: 'feb', 'February'
and '2' are all the same month.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := validate.ParseMode(a.modeFlag)
			if err != nil {
				return err
			}
			y, m, d, err := validate.EarthDate(strings.Join(args, "-"))
			if err != nil {
				return err
			}
			return a.earthToStardate(y, m, d, mode)
		},
	}
}

func (a *App) sdToCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sd-to STARDATE",
		Short: "Convert a stardate to an Earth date",
		Long: `Convert a Kelvin-format stardate back into an Earth calendar date.

Stardates with four or more fraction digits (e.g. 2258.11499) are
detected as astronomical values and converted on the 365.2425-day year.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := validate.ParseMode(a.modeFlag)
			if err != nil {
				return err
			}
			return a.stardateToEarth(args[0], mode)
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "stardate version %s\n", Version)
		},
	}
}
