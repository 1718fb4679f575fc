// SPDX-License-Identifier: MIT
// Package ranges - the Range capability and its variant tag.
//
// Purpose:
//   - Define the single iteration contract shared by all selection kinds.
//   - Keep binding (Init) separate from construction so a selection can be
//     declared before the axis it will be applied to is known.
//
// Contract (after a successful Init):
//   - Len() is fixed and computable without iterating.
//   - Exactly Len() steps satisfy HasMore(); Index() enumerates 0..Len()-1.
//   - Value() is defined only while HasMore() is true.
//   - Init may be called again at any time to rebind and rewind.
//
// AI-Hints:
//   - Drivers re-Init the inner (column) range on every outer step.
//   - Use Collect in tests or validation passes; it consumes the range.

package ranges

//go:generate mockgen -package ranges -destination range_mock.go github.com/katalvlaran/lvslice/ranges Range

// Kind tags the concrete selection variant behind a Range.
type Kind uint8

// Selection variants.
const (
	KindPoint Kind = iota + 1
	KindInterval
	KindIndices
	KindAll
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindInterval:
		return "interval"
	case KindIndices:
		return "indices"
	case KindAll:
		return "all"
	default:
		return "unknown"
	}
}

// exhausted is returned by Value() once the cursor has moved past the last step.
const exhausted = -1

// Range is a stateful, single-pass cursor over axis positions.
// Implementations: *PointRange, *IntervalRange, *IndicesRange, *AllRange.
type Range interface {
	// Init binds the range to the axis domain [lower, upper) and rewinds
	// the cursor. Only *IntervalRange may fail (with *BoundsError).
	Init(lower, upper int) error

	// Len returns the total number of positions the range yields.
	Len() int

	// Value returns the axis position at the cursor, or -1 when exhausted.
	Value() int

	// Index returns the 0-based ordinal of the current step.
	Index() int

	// Next advances the cursor by one step.
	Next()

	// HasMore reports whether Index() < Len().
	HasMore() bool

	// Kind returns the variant tag.
	Kind() Kind
}

// Compile-time conformance of all four variants.
var (
	_ Range = (*PointRange)(nil)
	_ Range = (*IntervalRange)(nil)
	_ Range = (*IndicesRange)(nil)
	_ Range = (*AllRange)(nil)
)

// Collect binds r to [lower, upper) and drains it into a fresh slice.
// MAIN DESCRIPTION:
//   - Materialize the positions a range yields for a given domain.
//
// Implementation:
//   - Stage 1: Init (propagates *BoundsError unchanged).
//   - Stage 2: preallocate Len() slots and walk the cursor.
//
// Behavior highlights:
//   - r is left exhausted; call Init again before reusing it.
//
// Complexity:
//   - Time O(Len), Space O(Len).
func Collect(r Range, lower, upper int) ([]int, error) {
	if err := r.Init(lower, upper); err != nil {
		return nil, err
	}
	out := make([]int, 0, r.Len()) // exact capacity; no regrowth
	for ; r.HasMore(); r.Next() {
		out = append(out, r.Value())
	}

	return out, nil
}
