package pyprints

import (
	"errors"
	"fmt"
)

// Common errors returned by pyprints operations
var (
	// ErrUnsupportedPlatform indicates no bundled executable exists for the platform
	ErrUnsupportedPlatform = errors.New("pyprints: unsupported platform")

	// ErrInvalidArgument indicates a required input is missing or malformed
	ErrInvalidArgument = errors.New("pyprints: invalid argument")

	// ErrFileNotFound indicates a print path is not absolute or does not exist
	ErrFileNotFound = errors.New("pyprints: file not found (path must be absolute)")

	// ErrSpawn indicates the bundled executable could not be started
	ErrSpawn = errors.New("pyprints: spawn failed")

	// ErrExternalTool indicates the bundled executable exited with a non-zero code
	ErrExternalTool = errors.New("pyprints: external tool failed")

	// ErrParse indicates the list output was not valid JSON
	ErrParse = errors.New("pyprints: parse")
)

// OpError represents an error from a pyprints operation
type OpError struct {
	// Op is the operation that failed
	Op Operation
	// Path is the executable or file path involved in the operation
	Path string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	return fmt.Sprintf("pyprints %s %q: %v", e.Op.String(), e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}

// ToolError is returned when the bundled executable ran but exited non-zero.
// Message holds the best available diagnostic: trimmed stderr, then trimmed
// stdout, then "exit N".
type ToolError struct {
	// Op is the operation whose invocation failed
	Op Operation
	// ExitCode is the process exit code
	ExitCode int
	// Stdout is the trimmed standard output
	Stdout string
	// Stderr is the trimmed standard error
	Stderr string
	// Message is the diagnostic surfaced to callers
	Message string
}

// Error returns the diagnostic text verbatim
func (e *ToolError) Error() string {
	return e.Message
}

// Is reports whether target is ErrExternalTool
func (e *ToolError) Is(target error) bool {
	return target == ErrExternalTool
}

func newToolError(op Operation, inv invocation) *ToolError {
	msg := inv.Stderr
	if msg == "" {
		msg = inv.Stdout
	}
	if msg == "" {
		msg = fmt.Sprintf("exit %d", inv.ExitCode)
	}
	return &ToolError{
		Op:       op,
		ExitCode: inv.ExitCode,
		Stdout:   inv.Stdout,
		Stderr:   inv.Stderr,
		Message:  msg,
	}
}

// MultiError aggregates multiple errors from bulk operations
type MultiError struct {
	// Errors contains all accumulated errors
	Errors []error
}

// Error returns a summary of the accumulated errors
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred", len(m.Errors))
}

// Add appends an error to the collection if it's not nil
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Err returns nil if no errors occurred, otherwise returns the MultiError itself
func (m *MultiError) Err() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}
