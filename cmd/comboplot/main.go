// Package main provides the CLI entry point for comboplot.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/i18n"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/prefs"
)

// app is the state shared by all commands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// prefsPath overrides the preferences file location.
	prefsPath string

	lang    string
	verbose bool

	loc   *i18n.Localizer
	store *prefs.Store
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := a.execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs the command line and reports a failure once, localized.
func (a *app) execute(ctx context.Context, args []string) error {
	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		if a.loc == nil {
			if loc, lerr := i18n.New(i18n.SystemDefault()); lerr == nil {
				a.loc = loc
			}
		}
		fmt.Fprintln(a.stderr, describe(a.loc, err))
	}
	return err
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "comboplot",
		Short: "Render combination bar/line charts from Excel worksheets",
		Long: `comboplot reads a table from an Excel worksheet and renders bar and line
series, on a primary and an optional secondary axis, into a PNG image.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.lang, "lang", "", "Display language for this run (en-US, zh-CN)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug details")

	rootCmd.AddCommand(a.newGenerateCmd(), a.newInspectCmd(), a.newLangCmd())
	return rootCmd
}

// setup builds the logger and the localizer. The language comes from
// --lang, then the saved preference, then the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: a.stderr}).
		Level(level).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	path := a.prefsPath
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return err
		}
	}
	a.store = prefs.NewStore(path)

	tag := i18n.SystemDefault()
	if saved, err := a.store.Locale(); err != nil {
		logger.Warn().Err(err).Msg("ignoring preferences")
	} else if saved != "" {
		if t, err := i18n.Parse(saved); err == nil {
			tag = t
		}
	}

	override := language.Und
	if a.lang != "" {
		t, err := i18n.Parse(a.lang)
		if err != nil {
			return err
		}
		override = t
	}

	loc, err := i18n.New(tag)
	if err != nil {
		return err
	}
	if override != language.Und {
		// A one-off override is not persisted; the listener comes after it.
		if err := loc.SetLanguage(override); err != nil {
			return err
		}
	}
	loc.AddListener(a.store.LanguageChanged)
	a.loc = loc
	return nil
}
