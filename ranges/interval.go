// SPDX-License-Identifier: MIT

package ranges

import "fmt"

// IntervalRange selects the contiguous block start..end (both inclusive).
// Value() and Index() advance together and always differ by start.
type IntervalRange struct {
	start, end int // inclusive endpoints fixed at construction
	value      int // cursor position in [start, end+1]
}

// Init checks that start..end lies inside [lower, upper) and rewinds the cursor.
// MAIN DESCRIPTION:
//   - The only variant that validates itself against the domain.
//
// Implementation:
//   - Stage 1: reject reversed intervals and intervals leaving the domain.
//   - Stage 2: place the cursor on start.
//
// Errors:
//   - *BoundsError (errors.Is(err, ErrOutOfBounds)) reporting both the
//     domain and the interval.
//
// Notes:
//   - On failure the cursor is left exhausted, so a driver that ignores the
//     error iterates nothing.
//
// Complexity:
//   - Time O(1), Space O(1).
func (r *IntervalRange) Init(lower, upper int) error {
	if r.start > r.end || r.start < lower || r.end >= upper {
		r.value = r.end + 1 // exhausted

		return &BoundsError{Lower: lower, Upper: upper, Start: r.start, End: r.end}
	}
	r.value = r.start

	return nil
}

// Len returns end-start+1, or 0 for a reversed interval.
func (r *IntervalRange) Len() int {
	if r.start > r.end {
		return 0
	}

	return r.end - r.start + 1
}

// Value returns the current position, or -1 once past end.
func (r *IntervalRange) Value() int {
	if !r.HasMore() {
		return exhausted
	}

	return r.value
}

// Index returns value-start.
func (r *IntervalRange) Index() int { return r.value - r.start }

// Next advances value (and therefore Index) by one.
func (r *IntervalRange) Next() { r.value++ }

// HasMore is true while the cursor has not passed end.
func (r *IntervalRange) HasMore() bool { return r.value >= r.start && r.value <= r.end }

// Kind returns KindInterval.
func (r *IntervalRange) Kind() Kind { return KindInterval }

// Bounds returns the inclusive endpoints as constructed.
func (r *IntervalRange) Bounds() (start, end int) { return r.start, r.end }

// String renders the selection for diagnostics.
func (r *IntervalRange) String() string {
	return fmt.Sprintf("<IntervalRange from %d to %d, length %d, index=%d, value=%d>",
		r.start, r.end, r.Len(), r.Index(), r.Value())
}
