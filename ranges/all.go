// SPDX-License-Identifier: MIT

package ranges

import "fmt"

// AllRange selects every position lower..upper-1 of the bound domain.
// It has no span of its own: Len() is 0 until Init is called.
type AllRange struct {
	lower, upper int // bound domain, upper exclusive
	value        int // cursor position
}

// Init binds the domain and places the cursor on lower.
// A domain with upper <= lower selects nothing.
func (r *AllRange) Init(lower, upper int) error {
	if upper < lower {
		upper = lower
	}
	r.lower, r.upper = lower, upper
	r.value = lower

	return nil
}

// Len returns upper-lower.
func (r *AllRange) Len() int { return r.upper - r.lower }

// Value returns the current position, or -1 once exhausted.
func (r *AllRange) Value() int {
	if !r.HasMore() {
		return exhausted
	}

	return r.value
}

// Index returns value-lower.
func (r *AllRange) Index() int { return r.value - r.lower }

// Next advances by one position.
func (r *AllRange) Next() { r.value++ }

// HasMore is true while value < upper.
func (r *AllRange) HasMore() bool { return r.value < r.upper }

// Kind returns KindAll.
func (r *AllRange) Kind() Kind { return KindAll }

// String renders the selection for diagnostics.
func (r *AllRange) String() string {
	return fmt.Sprintf("<AllRange from %d to %d, length %d, index=%d, value=%d>",
		r.lower, r.upper, r.Len(), r.Index(), r.Value())
}
