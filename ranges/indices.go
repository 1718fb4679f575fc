// SPDX-License-Identifier: MIT

package ranges

import "fmt"

// IndicesRange selects an explicit list of positions in the given order.
// Repeats and non-monotonic orders are allowed (gather/scatter patterns).
// Positions are NOT checked against the domain at Init.
type IndicesRange struct {
	idx     []int // owned copy of the caller's list
	counter int   // 0-based step
}

// Init rewinds the cursor. The domain is ignored.
func (r *IndicesRange) Init(_, _ int) error {
	r.counter = 0

	return nil
}

// Len returns the list length.
func (r *IndicesRange) Len() int { return len(r.idx) }

// Value returns the listed position at the cursor, or -1 once exhausted.
func (r *IndicesRange) Value() int {
	if r.counter >= len(r.idx) {
		return exhausted
	}

	return r.idx[r.counter]
}

// Index returns the current step.
func (r *IndicesRange) Index() int { return r.counter }

// Next advances to the next listed position.
func (r *IndicesRange) Next() { r.counter++ }

// HasMore is true while unvisited list entries remain.
func (r *IndicesRange) HasMore() bool { return r.counter < len(r.idx) }

// Kind returns KindIndices.
func (r *IndicesRange) Kind() Kind { return KindIndices }

// Positions returns a copy of the selected positions.
func (r *IndicesRange) Positions() []int {
	out := make([]int, len(r.idx))
	copy(out, r.idx)

	return out
}

// String renders the selection for diagnostics.
func (r *IndicesRange) String() string {
	return fmt.Sprintf("<IndicesRange %v, index=%d, value=%d>", r.idx, r.Index(), r.Value())
}
