package main

import (
	"fmt"
	"io"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/log"
	"minigrep/internal/report"
	"minigrep/internal/source"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// exitError carries the status the process should exit with. The
// diagnostic has already been printed when one is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// run executes minigrep for the full argument vector, including the program
// name, and returns the process exit status.
func run(argv []string, stdout, stderr io.Writer) int {
	program := "minigrep"
	var tokens []string
	if len(argv) > 0 {
		program = argv[0]
		tokens = argv[1:]
	}

	cmd := newRootCmd(program, afero.NewOsFs(), stdout, stderr)
	// The leading "--" stops cobra from resolving the first token as a
	// subcommand name (e.g. "__complete"); RunE drops it again.
	cmd.SetArgs(append([]string{"--"}, tokens...))

	if err := cmd.Execute(); err != nil {
		if exitErr, ok := err.(*exitError); ok {
			return exitErr.code
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// newRootCmd creates the root command. Flag parsing is off: every token
// after the program name is positional, and program is put back in front
// so config.Build sees the whole invocation.
func newRootCmd(program string, fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print a file after echoing the query and path",
		Long: `minigrep reads the file named by <file_path> and prints all of it,
preceded by two lines echoing <query> and <file_path>.

Logging and colours are set in $HOME/.config/minigrep/config.yaml.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}

			settings, settingsErr := config.LoadSettings(fs)
			if settingsErr != nil {
				settings = config.NewSettings()
			}

			opts := []log.Option{log.WithOutput(stderr)}
			if settings.Log.Format == "json" {
				opts = append(opts, log.WithJSON())
			}
			if settings.Log.File != "" {
				opts = append(opts, log.WithFile(settings.Log.File))
			}
			log.Configure(opts...)
			log.SetDebug(settings.Log.Debug)
			logger := log.Default()
			defer logger.Close()

			if settingsErr != nil {
				logger.WithError(settingsErr).Warn("using default settings")
			}

			tokens := append([]string{program}, args...)
			logger.With(log.F("tokens", len(tokens))).Debug("building configuration")

			cfg, err := config.Build(tokens)
			if err != nil {
				logger.WithError(err).Debug("configuration rejected")
				report.NewPrinterFromSettings(stderr, settings).Problem(err)
				return &exitError{code: 1, err: err}
			}

			a := app.New(source.NewReader(fs), report.NewPrinterFromSettings(stdout, settings), logger)
			if err := a.Run(cfg); err != nil {
				report.NewPrinterFromSettings(stderr, settings).Failure(err)
				return &exitError{code: 1, err: err}
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}
