// SPDX-License-Identifier: MIT

package ranges

import "fmt"

// PointRange selects one fixed position regardless of the bound domain.
type PointRange struct {
	pos  int  // selected position
	done bool // true once Next() consumed the only step
}

// Init rewinds the range. The domain is ignored; the position is not checked.
func (p *PointRange) Init(_, _ int) error {
	p.done = false

	return nil
}

// Len is always 1.
func (p *PointRange) Len() int { return 1 }

// Value returns the fixed position, or -1 once consumed.
func (p *PointRange) Value() int {
	if p.done {
		return exhausted
	}

	return p.pos
}

// Index is 0 before Next() and 1 after.
func (p *PointRange) Index() int {
	if p.done {
		return 1
	}

	return 0
}

// Next consumes the single step.
func (p *PointRange) Next() { p.done = true }

// HasMore is true until Next() is called once.
func (p *PointRange) HasMore() bool { return !p.done }

// Kind returns KindPoint.
func (p *PointRange) Kind() Kind { return KindPoint }

// String renders the selection for diagnostics.
func (p *PointRange) String() string {
	return fmt.Sprintf("<PointRange at %d, index=%d>", p.pos, p.Index())
}
