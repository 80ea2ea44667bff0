package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/KylieKat17/kelvin-stardate/internal/canon"
	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
	"github.com/KylieKat17/kelvin-stardate/internal/ui"
)

func (a *App) canonCmd() *cobra.Command {
	var (
		file  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "canon",
		Short: "Show the confirmed canon reference table",
		Long: `List the characters and events in the confirmed canon dataset with
their Earth dates and the stardate each conversion mode assigns them.

A compiled-in dataset is used unless --file (or STARDATE_CANON) points
at a YAML file. With --watch the table re-renders whenever that file
changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				path = a.cfg.CanonFile
			}

			store, err := canon.New(path, a.logger)
			if err != nil {
				return err
			}
			a.renderCanon(store)

			if !watch {
				return nil
			}
			if path == "" {
				return fmt.Errorf("canon --watch needs a file; set --file or STARDATE_CANON")
			}

			w := canon.NewWatcher(path, a.logger, func() {
				if err := store.Reload(); err != nil {
					a.renderer.Error(err)
					return
				}
				a.renderCanon(store)
			})
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			// Watching is the only long-lived state; SIGINT means stop
			// watching, not abort.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.renderer.Info("Watching " + path + " for changes. Ctrl-C to stop.")
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Canon YAML file to load instead of the built-in dataset")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render whenever the canon file changes")
	return cmd
}

func (a *App) renderCanon(s *canon.Store) {
	t := a.renderer.Theme
	border := strings.Repeat("=", a.width)
	rule := " " + strings.Repeat("-", a.width)

	fmt.Fprintf(a.out, "\n %s\n", border)
	fmt.Fprintf(a.out, " %s\n", t.Header.Width(a.width).Align(lipgloss.Center).Render("CANON REFERENCE DATA"))
	fmt.Fprintf(a.out, " %s\n", border)
	fmt.Fprintf(a.out, "   %s:  %s\n", a.renderer.Label("Source", t.Label), s.Source())

	fmt.Fprintf(a.out, "\n   %s\n%s\n", t.All.Render("CHARACTERS"), rule)
	for _, c := range s.Characters() {
		title := c.Name
		if len(c.Nicknames) > 0 {
			title += " \"" + strings.Join(c.Nicknames, "\", \"") + "\""
		}
		if c.Species != "" {
			title += "  (" + c.Species + ")"
		}
		dt, err := c.Date()
		a.canonEntry(title, "Born", dt, err, c.Birth.StardateKelvin, c.Birth.Confidence, c.Birth.Source)
	}

	fmt.Fprintf(a.out, "\n   %s\n%s\n", t.All.Render("EVENTS"), rule)
	for _, e := range s.Events() {
		dt, err := e.Date()
		a.canonEntry(e.Description, "Date", dt, err, 0, e.Confidence, e.Source)
	}

	fmt.Fprintf(a.out, " %s\n\n", border)
}

// canonEntry prints one dated entry with its stardate under every mode.
// A recorded stardate of zero means the dataset did not note one.
func (a *App) canonEntry(title, dateLabel string, dt time.Time, dateErr error, recorded float64, confidence, source string) {
	t := a.renderer.Theme

	fmt.Fprintf(a.out, "   %s\n", t.Header.Render(title))
	if dateErr != nil {
		fmt.Fprintf(a.out, "     %s\n\n", t.Error.Render(dateLabel+": ERROR ("+dateErr.Error()+")"))
		return
	}

	nl, _ := stardate.FromDate(dt, stardate.NoLeap)
	gr, _ := stardate.FromDate(dt, stardate.Gregorian)

	fmt.Fprintf(a.out, "     %s:  %s  (%s)\n", a.renderer.Label(dateLabel, t.Label), dt.Format("2006-01-02"), dt.Format("January 02, 2006"))
	fmt.Fprintf(a.out, "     %s:  %s\n", a.renderer.Label("Kelvin (no_leap)", t.NoLeap), nl)
	fmt.Fprintf(a.out, "     %s:  %s\n", a.renderer.Label("Kelvin (gregorian)", t.Gregorian), gr)
	fmt.Fprintf(a.out, "     %s:  %s\n", a.renderer.Label("Astronomical", t.Astronomical), ui.FormatAstro(stardate.ToAstronomical(dt)))
	if recorded != 0 {
		fmt.Fprintf(a.out, "     %s:  %s\n", a.renderer.Label("Recorded stardate", t.Label), ui.FormatAstro(recorded))
	}

	confStyle := t.Warning
	if confidence == "canon" {
		confStyle = t.Success
	}
	fmt.Fprintf(a.out, "     %s:  %s  [%s]\n\n", a.renderer.Label("Confidence", t.Label), confStyle.Render(confidence), source)
}
