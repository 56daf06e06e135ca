// Package app runs minigrep once a Config has been built: it echoes the
// query and path, reads the file and prints its contents.
package app

import (
	"minigrep/internal/config"
	"minigrep/internal/errors"
	"minigrep/internal/log"
	"minigrep/internal/report"
	"minigrep/internal/source"
)

// App ties the file source, the report printer and the logger together.
type App struct {
	reader  *source.Reader
	printer *report.Printer
	logger  *log.Logger
}

// New creates an App.
func New(reader *source.Reader, printer *report.Printer, logger *log.Logger) *App {
	return &App{
		reader:  reader,
		printer: printer,
		logger:  logger,
	}
}

// Run prints the header for cfg, reads the file and prints its contents.
// The header is printed before the read, so it appears even when the read
// fails; the read error is returned without printing any contents.
func (a *App) Run(cfg *config.Config) error {
	l := a.logger.With(log.F("query", cfg.Query()), log.F("file_path", cfg.FilePath()))

	if err := a.printer.Searching(cfg); err != nil {
		return errors.Wrap(err, "cannot write report")
	}

	l.Debug("reading file")
	contents, err := a.reader.ReadString(cfg.FilePath())
	if err != nil {
		l.WithError(err).Debug("read failed")
		return err
	}
	l.Debugf("read %d bytes", len(contents))

	return errors.Wrap(a.printer.Contents(contents), "cannot write report")
}
