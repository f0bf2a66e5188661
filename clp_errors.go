package clp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ConfigurationErr         = errors.New("invalid configuration")
	UnknownOptionErr         = errors.New("unknown option")
	ArityMismatchErr         = errors.New("arity mismatch")
	ActionFailedErr          = errors.New("action failed")
	RequiredOptionMissingErr = errors.New("required option missing")
	ConflictErr              = errors.New("conflicting options")
)

// ConfigurationError is raised while building or registering options.
// These are bugs in the code using clp, not user input errors.
type ConfigurationError struct {
	msg string
}

func NewConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{msg: msg}
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func (e *ConfigurationError) Unwrap() error {
	return ConfigurationErr
}

type UnknownOptionError struct {
	Name       string
	Suggestion string // closest registered name, empty if none is close enough
}

func (e *UnknownOptionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown option: %s (did you mean %s?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown option: %s", e.Name)
}

func (e *UnknownOptionError) Unwrap() error {
	return UnknownOptionErr
}

type ArityMismatchError struct {
	Option string
	Want   int
	Got    int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("option %s requires %d parameter(s), but only %d remain", e.Option, e.Want, e.Got)
}

func (e *ArityMismatchError) Unwrap() error {
	return ArityMismatchErr
}

// ActionError wraps a failure raised by an option's action. Both ActionFailedErr
// and the underlying cause are reachable through errors.Is / errors.As.
type ActionError struct {
	Option string
	Cause  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("option %s: %s", e.Option, e.Cause)
}

func (e *ActionError) Unwrap() []error {
	return []error{ActionFailedErr, e.Cause}
}

type RequiredOptionMissingError struct {
	Missing []string
}

func (e *RequiredOptionMissingError) Error() string {
	return fmt.Sprintf("missing required options: [%s]", strings.Join(e.Missing, ", "))
}

func (e *RequiredOptionMissingError) Unwrap() error {
	return RequiredOptionMissingErr
}

type ConflictError struct {
	Option string
	With   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("option %s cannot be used with %s", e.Option, e.With)
}

func (e *ConflictError) Unwrap() error {
	return ConflictErr
}
