// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
)

// Category classifies command errors.
type Category string

const (
	// CategoryValidation indicates invalid input: unknown flag values,
	// unexpected arguments, a malformed config file. The user should
	// fix the input and retry.
	CategoryValidation Category = "validation"

	// CategoryNotFound indicates a referenced file does not exist.
	CategoryNotFound Category = "not_found"

	// CategoryInternal indicates an unexpected failure: I/O errors,
	// terminal setup failures, bugs.
	CategoryInternal Category = "internal"
)

// Error is a categorized error with an optional hint line. It wraps
// an inner error so errors.Is and errors.As see the full chain.
type Error struct {
	Category Category
	Err      error
	Hint     string
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// WithHint attaches a suggestion printed below the error message.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// ExitCode maps the category to a process exit code: 2 for
// validation errors, 1 for everything else.
func (e *Error) ExitCode() int {
	if e.Category == CategoryValidation {
		return 2
	}
	return 1
}

// Validation creates a validation error.
func Validation(format string, args ...any) *Error {
	return &Error{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *Error {
	return &Error{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Report writes err to w the way glide prints fatal errors and
// returns the exit code to use.
func Report(w io.Writer, err error) int {
	fmt.Fprintf(w, "error: %v\n", err)
	var categorized *Error
	if errors.As(err, &categorized) {
		if categorized.Hint != "" {
			fmt.Fprintf(w, "\n%s\n", categorized.Hint)
		}
		return categorized.ExitCode()
	}
	return 1
}
