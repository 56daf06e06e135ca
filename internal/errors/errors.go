// Package errors provides standardized error handling for minigrep.
// It defines the error kinds the program can report, typed errors for
// argument intake, file reads and settings, and helpers for creating,
// wrapping and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Argument error kinds
	InsufficientArguments
	// File error kinds
	FileNotFound
	FileAccessDenied
	FileReadFailed
	// Settings error kinds
	InvalidSettings
	SettingsNotFound
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case InsufficientArguments:
		return "insufficient_arguments"
	case FileNotFound:
		return "file_not_found"
	case FileAccessDenied:
		return "file_access_denied"
	case FileReadFailed:
		return "file_read_failed"
	case InvalidSettings:
		return "invalid_settings"
	case SettingsNotFound:
		return "settings_not_found"
	default:
		return "unknown"
	}
}

// MsgNotEnoughArguments is the fixed message of every InsufficientArguments error.
const MsgNotEnoughArguments = "not enough arguments"

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ArgumentError is returned when the invocation tokens cannot be turned
// into a configuration. Its message is always "not enough arguments".
type ArgumentError struct {
	ApplicationError
	received int
	required int
}

// NewArgumentError creates an InsufficientArguments error for a token
// sequence of length received where at least required tokens are needed.
func NewArgumentError(received, required int) *ArgumentError {
	return &ArgumentError{
		ApplicationError: ApplicationError{
			msg:  MsgNotEnoughArguments,
			kind: InsufficientArguments,
		},
		received: received,
		required: required,
	}
}

// Received returns the number of tokens that were supplied
func (e *ArgumentError) Received() int {
	return e.received
}

// Required returns the minimum number of tokens
func (e *ArgumentError) Required() int {
	return e.required
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// SettingsError represents errors related to the settings file
type SettingsError struct {
	ApplicationError
	param string
}

// NewSettingsError creates a new settings error
func NewSettingsError(msg string, param string, kind ErrorKind, err error) *SettingsError {
	return &SettingsError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the settings error message
func (e *SettingsError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the settings parameter associated with the error
func (e *SettingsError) Param() string {
	return e.param
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first typed error in err's chain, or
// Unknown if there is none.
func KindOf(err error) ErrorKind {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Kind()
	}
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind()
	}
	var settingsErr *SettingsError
	if errors.As(err, &settingsErr) {
		return settingsErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}
