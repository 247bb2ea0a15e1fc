package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates transport conditions are physically implausible
	ErrValidation = errors.New("invalid transport conditions")

	// ErrParse indicates a temperature string could not be understood
	ErrParse = errors.New("invalid temperature")
)

// ValidationError reports which input field was rejected and why.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ParseError reports a temperature string that is not a number with a C or K unit tag.
// It matches ErrParse with errors.Is.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrParse, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
