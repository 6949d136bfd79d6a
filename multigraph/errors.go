// SPDX-License-Identifier: MIT
// Package multigraph: sentinel error set.
//
// All constructors return these sentinels (possibly wrapped in *FormatError);
// callers match them with errors.Is. Panics are reserved for programmer errors
// in unchecked hot-path accessors.

package multigraph

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the umbrella sentinel for malformed adjacency input.
	// Every *FormatError matches it.
	ErrFormat = errors.New("multigraph: malformed adjacency")

	// ErrDimensionMismatch indicates that the adjacency shape disagrees with
	// the declared vertex count (wrong number of rows, ragged rows, non-square).
	ErrDimensionMismatch = errors.New("multigraph: dimension mismatch")

	// ErrNegativeCount indicates a negative edge multiplicity (or a negative order).
	ErrNegativeCount = errors.New("multigraph: negative edge count")

	// ErrCountOverflow indicates an edge multiplicity above MaxMultiplicity.
	ErrCountOverflow = errors.New("multigraph: edge count exceeds MaxMultiplicity")

	// ErrNonIntegral indicates a NaN, ±Inf or fractional entry in a float matrix.
	ErrNonIntegral = errors.New("multigraph: non-integral edge count")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	ErrOutOfRange = errors.New("multigraph: vertex index out of range")

	// ErrNilGraph indicates that a nil *Graph or nil source graph was supplied.
	ErrNilGraph = errors.New("multigraph: graph is nil")
)

// FormatError locates a malformed adjacency entry.
// Row and Col are -1 when the failure is not tied to a single cell
// (e.g. a wrong number of rows).
type FormatError struct {
	Row, Col int
	Err      error
}

// Error implements error.
func (e *FormatError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%v: %v", ErrFormat, e.Err)
	case e.Col < 0:
		return fmt.Sprintf("%v: row %d: %v", ErrFormat, e.Row, e.Err)
	default:
		return fmt.Sprintf("%v: entry (%d,%d): %v", ErrFormat, e.Row, e.Col, e.Err)
	}
}

// Unwrap exposes both the umbrella sentinel and the specific cause.
func (e *FormatError) Unwrap() []error { return []error{ErrFormat, e.Err} }

// formatErrorf builds a *FormatError for the given cell.
func formatErrorf(row, col int, err error) error {
	return &FormatError{Row: row, Col: col, Err: err}
}
