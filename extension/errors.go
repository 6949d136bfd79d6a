// Package extension - sentinel errors and typed failures of the solvers.
//
// Only invariant violations panic; everything else is returned and matched
// with errors.Is / errors.As.

package extension

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned when the pattern or host graph is nil.
	ErrNilGraph = errors.New("extension: graph is nil")

	// ErrInvalidK is returned when k < 1.
	ErrInvalidK = errors.New("extension: k must be positive")

	// ErrInvalidMultiplier is returned when the trials multiplier is not a
	// finite positive number.
	ErrInvalidMultiplier = errors.New("extension: trials multiplier must be positive")

	// ErrInvalidOption is returned for negative worker counts, limits or retries.
	ErrInvalidOption = errors.New("extension: invalid option")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("extension: unsupported algorithm")

	// ErrInfeasible reports that k distinct injective mappings do not exist.
	// It is an expected outcome, not a defect; see InfeasibleError.
	ErrInfeasible = errors.New("extension: infeasible instance")

	// ErrAborted reports cooperative cancellation. Errors matching it also
	// match the context error that caused it.
	ErrAborted = errors.New("extension: computation aborted")

	// ErrSearchSpaceTooLarge is returned when the number of k-subsets does not
	// fit the exact search's integer arithmetic or exceeds Options.MaxSubsets.
	ErrSearchSpaceTooLarge = errors.New("extension: search space too large")

	// ErrInvariantViolation marks programming errors. It is only ever carried
	// by panics and by Solution.Verify.
	ErrInvariantViolation = errors.New("extension: invariant violation")
)

// InfeasibleError details an infeasible instance: Need distinct mappings were
// requested but only Available exist (0 when the host is smaller than the
// pattern).
type InfeasibleError struct {
	Need      int
	Available int
	N1, N2    int
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	if e.N2 < e.N1 {
		return fmt.Sprintf("%v: host order %d is below pattern order %d", ErrInfeasible, e.N2, e.N1)
	}

	return fmt.Sprintf("%v: %d distinct mappings requested, %d exist", ErrInfeasible, e.Need, e.Available)
}

// Unwrap returns ErrInfeasible.
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// abortedErr joins ErrAborted with the context cause.
func abortedErr(cause error) error {
	return errors.Join(ErrAborted, cause)
}

// violation panics with an ErrInvariantViolation-wrapped error.
func violation(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)))
}
