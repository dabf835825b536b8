package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected failures or any error that doesn't fit the
	// specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, invalid flag values, or when the user
	// needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: task not found.
	ExitNotFound = 3
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithCode attaches an exit code to err
func WithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}
