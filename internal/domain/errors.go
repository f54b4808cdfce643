package domain

import (
	"errors"
	"fmt"
)

// MalformedSuiteMarkerError is returned when a line carries the suite
// trigger token but no "=" followed by a suite name.
type MalformedSuiteMarkerError struct {
	Path string
	Line int
	Text string
}

func (e *MalformedSuiteMarkerError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("malformed suite marker at %s: %q", loc, e.Text)
}

// IsMalformedSuiteMarker checks if the error is or wraps a MalformedSuiteMarkerError
func IsMalformedSuiteMarker(err error) bool {
	var target *MalformedSuiteMarkerError
	return err != nil && errors.As(err, &target)
}

// MissingInputError is returned when an input file cannot be read
type MissingInputError struct {
	Role string // skeleton, interface or manifest
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s file %s: %v", e.Role, e.Path, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// IsMissingInput checks if the error is or wraps a MissingInputError
func IsMissingInput(err error) bool {
	var target *MissingInputError
	return err != nil && errors.As(err, &target)
}

// WriteError is returned when the emitted unit or the report cannot be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError checks if the error is or wraps a WriteError
func IsWriteError(err error) bool {
	var target *WriteError
	return err != nil && errors.As(err, &target)
}

// StaleOutputError is returned in check mode when the output on disk does
// not match what would be generated.
type StaleOutputError struct {
	Path string
}

func (e *StaleOutputError) Error() string {
	return fmt.Sprintf("%s is out of date, run htgen generate", e.Path)
}

// IsStaleOutput checks if the error is or wraps a StaleOutputError
func IsStaleOutput(err error) bool {
	var target *StaleOutputError
	return err != nil && errors.As(err, &target)
}
