package domain

import "errors"

// Domain errors
var (
	ErrNoLogGroups      = errors.New("no log groups found")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidSince     = errors.New("invalid since window")
	ErrEmptyKeyword     = errors.New("keyword is required")
	ErrNoSearchMode     = errors.New("no search mode given")
	ErrInvalidPattern   = errors.New("invalid filter pattern")
	ErrNoErrorsDetected = errors.New("no errors detected")
	ErrNoIDsSelected    = errors.New("no execution ids selected")
	ErrAborted          = errors.New("aborted")
	ErrNotInteractive   = errors.New("stdin is not a terminal")
	ErrConfigNotFound   = errors.New("config file not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// Exit codes returned by the CLI
const (
	ExitOK         = 0
	ExitError      = 1
	ExitUsage      = 2
	ExitNoLogGroup = 3
)

// IsInputError returns true for operator input mistakes that should be
// reported without ending an interactive session
func IsInputError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidSince),
		errors.Is(err, ErrEmptyKeyword),
		errors.Is(err, ErrInvalidPattern),
		errors.Is(err, ErrNoIDsSelected):
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit code for an error
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ErrAborted):
		return ExitOK
	case errors.Is(err, ErrNoLogGroups):
		return ExitNoLogGroup
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrNotInteractive),
		errors.Is(err, ErrNoSearchMode), IsInputError(err):
		return ExitUsage
	default:
		return ExitError
	}
}
