package dotneterrs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ProcessError describes a CLI invocation that could not be started or
// that exited with a non-zero status.
type ProcessError struct {
	*BaseError
	command  string
	exitCode int
	stderr   string
}

// NewProcessError creates a new process error.
func NewProcessError(
	code ErrorCode,
	message string,
	cause error,
	exitCode int,
	stderr string,
) *ProcessError {
	err := &ProcessError{
		BaseError: NewBaseError(CategoryProcess, code, message, cause),
		exitCode:  exitCode,
		stderr:    stderr,
	}

	err.WithMetadata("exit_code", exitCode)
	err.WithMetadata("stderr", stderr)

	return err
}

// NewSpawnFailedError reports that command could not be started.
func NewSpawnFailedError(command string, cause error) *ProcessError {
	return NewProcessError(
		ErrCodeSpawnFailed,
		"failed to start process",
		cause,
		-1,
		"",
	).WithCommand(command)
}

// NewCommandFailedError reports that command exited with exitCode.
func NewCommandFailedError(
	command string,
	exitCode int,
	stderr string,
	cause error,
) *ProcessError {
	msg := fmt.Sprintf("command exited with code %d", exitCode)
	if s := strings.TrimSpace(stderr); s != "" {
		msg += ": " + s
	}

	return NewProcessError(
		ErrCodeCommandFailed,
		msg,
		cause,
		exitCode,
		stderr,
	).WithCommand(command)
}

// ExitCode returns the process exit code, or -1 if it never ran.
func (e *ProcessError) ExitCode() int {
	return e.exitCode
}

// Stderr returns the captured stderr output.
func (e *ProcessError) Stderr() string {
	return e.stderr
}

// Command returns the command line that failed.
func (e *ProcessError) Command() string {
	return e.command
}

// WithCommand adds command metadata to the error.
func (e *ProcessError) WithCommand(command string) *ProcessError {
	e.command = command
	e.WithMetadata("command", command)

	return e
}

// CancelledError reports that the caller gave up before the command
// finished. It unwraps to the context error that triggered it.
type CancelledError struct {
	*BaseError
}

// NewCancelledError creates a cancellation error for command.
func NewCancelledError(command string, cause error) *CancelledError {
	if cause == nil {
		cause = context.Canceled
	}
	err := &CancelledError{
		BaseError: NewBaseError(
			CategoryProcess,
			ErrCodeCancelled,
			"operation cancelled",
			cause,
		),
	}
	err.WithMetadata("command", command)

	return err
}

// DeadlineExceeded reports whether the cancellation came from a deadline
// rather than an explicit cancel.
func (e *CancelledError) DeadlineExceeded() bool {
	return errors.Is(e.cause, context.DeadlineExceeded)
}
