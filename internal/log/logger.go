// Package log is minigrep's structured logger, a thin layer over logrus.
// Output goes to stderr by default so stdout only ever carries the report.
package log

import (
	"fmt"
	"io"
	"os"

	"minigrep/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type options struct {
	out  io.Writer
	json bool
	file string
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sets the writer entries go to.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithJSON switches to JSON entries.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithFile additionally appends entries to the file at path.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// Logger writes leveled, structured entries.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogger creates a logger. Without options it writes text entries to stderr.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	// Debug filtering happens in Debug/Debugf so SetDebug applies to every logger.
	base.SetLevel(logrus.DebugLevel)

	out := o.out
	var file *os.File
	if o.file != "" {
		f, err := os.OpenFile(o.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(o.out, "cannot open log file %s: %v\n", o.file, err)
		} else {
			file = f
			out = io.MultiWriter(o.out, f)
		}
	}
	base.SetOutput(out)

	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return &Logger{
		entry: logrus.NewEntry(base),
		file:  file,
	}
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	if logger != nil {
		logger.Close()
	}
	logger = NewLogger(opts...)
}

// Default returns the package-level logger.
func Default() *Logger {
	return logger
}

// SetDebug turns debug entries on or off for all loggers.
func SetDebug(debug bool) {
	isDebug = debug
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// With returns a logger that attaches fields to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{
		entry: l.entry.WithFields(lf),
		file:  l.file,
	}
}

// WithError attaches err and, for typed errors, its kind and detail.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}

	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}

	var argErr *errors.ArgumentError
	var fileErr *errors.FileError
	var settingsErr *errors.SettingsError
	switch {
	case errors.As(err, &argErr):
		fields = append(fields, F("received", argErr.Received()), F("required", argErr.Required()))
	case errors.As(err, &fileErr):
		fields = append(fields, F("path", fileErr.Path()))
	case errors.As(err, &settingsErr):
		fields = append(fields, F("param", settingsErr.Param()))
	}

	return l.With(fields...)
}

// Warn logs msg at warning level.
func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

// Debug logs msg only when debug is on.
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only when debug is on.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}
