package config

import "fmt"

// CommandLineError reports input the user has to fix. Message is meant to
// be shown as is.
type CommandLineError struct {
	Message string
	Err     error
}

// Error implements the error interface for CommandLineError.
func (e *CommandLineError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CommandLineError) Unwrap() error {
	return e.Err
}

// Errorf builds a CommandLineError from a format string.
func Errorf(format string, args ...any) *CommandLineError {
	return &CommandLineError{Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a CommandLineError that keeps err as its cause.
func Wrap(err error, format string, args ...any) *CommandLineError {
	return &CommandLineError{Message: fmt.Sprintf(format, args...), Err: err}
}

func invalidContext(reason string) *CommandLineError {
	return Errorf("Option used in invalid context -- %s", reason)
}
