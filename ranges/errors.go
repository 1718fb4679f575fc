// SPDX-License-Identifier: MIT
// Package ranges: sentinel errors and the structured bounds-violation error.
// Callers match with errors.Is; *BoundsError additionally carries the
// requested domain and the offending interval for diagnostics.

package ranges

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates that a selection does not fit the axis domain
	// it was bound to.
	ErrOutOfBounds = errors.New("ranges: selection out of bounds")

	// ErrNonFinite indicates that a NaN, ±Inf or out-of-int-range entry was
	// supplied where an integer position must be derived from a float.
	ErrNonFinite = errors.New("ranges: NaN, Inf or unrepresentable position")
)

// BoundsError reports an interval that does not fit the domain [Lower, Upper).
// Start and End are the interval's own (inclusive) endpoints.
type BoundsError struct {
	Lower int // requested domain, inclusive
	Upper int // requested domain, exclusive
	Start int // interval start, inclusive
	End   int // interval end, inclusive
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("ranges: bounds %d to %d do not contain interval %d to %d",
		e.Lower, e.Upper-1, e.Start, e.End)
}

// Unwrap exposes ErrOutOfBounds to errors.Is.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
