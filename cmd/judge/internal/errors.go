package internal

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes returned by the judge binary.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitConfigError = 2
	ExitNotTTY      = 3
)

// CLIError is an error with an associated exit code.
type CLIError struct {
	Code int
	Err  error
}

func (e *CLIError) Error() string {
	return e.Err.Error()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps a configuration or credential failure.
func NewConfigError(err error) *CLIError {
	return &CLIError{Code: ExitConfigError, Err: err}
}

// NewNotTTYError reports that the terminal is unusable for the TUI.
func NewNotTTYError() *CLIError {
	return &CLIError{Code: ExitNotTTY, Err: errors.New("stdout is not a terminal; the judge UI needs an interactive terminal")}
}

// HandleError prints err to stderr and returns the process exit code.
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitError
}
