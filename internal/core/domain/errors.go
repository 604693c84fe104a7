package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Billing Errors.

	// ErrPatientNotFound indicates a bill was requested for an unknown patient.
	// It matches ErrNotFound under errors.Is.
	ErrPatientNotFound = fmt.Errorf("patient %w", ErrNotFound)

	// ErrNoBillableServices indicates none of the requested service IDs
	// resolved, so no bill could be created.
	ErrNoBillableServices = errors.New("no valid services provided for the bill")

	// ErrAmountOutOfRange indicates an amount, or a sum of amounts, that does
	// not fit in Money.
	ErrAmountOutOfRange = errors.New("amount out of range")

	// Persistence Errors.

	// ErrFormat indicates the data file exists but could not be decoded
	// into valid records. Every *FormatError matches it.
	ErrFormat = errors.New("invalid data file format")
)

// FormatError describes why a data file was rejected.
type FormatError struct {
	// Path is the file that failed to decode. Empty for non-file stores.
	Path string

	// Reason is a human-readable description of the problem.
	Reason string

	// Err is the underlying decode or validation error, if any.
	Err error
}

// NewFormatError creates a FormatError.
func NewFormatError(path, reason string, err error) *FormatError {
	return &FormatError{Path: path, Reason: reason, Err: err}
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := ErrFormat.Error()
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports ErrFormat as a match so callers can test for the category.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
