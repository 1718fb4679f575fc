// SPDX-License-Identifier: MIT

// Package ranges provides index selections for one matrix axis.
//
// What & Why:
//
//	A Range is a declarative request for a subset of positions along an axis
//	(rows or columns). It is built before the axis size is known and bound to
//	the actual axis later via Init(lower, upper). After binding it behaves as a
//	single-pass cursor: Value() is the axis position, Index() the 0-based step.
//
// Variants (tagged by Kind):
//
//	Point(i)        one fixed position, independent of the axis domain.
//	Interval(a, b)  a contiguous block a..b (end-inclusive); Init validates it.
//	Indices(list)   an explicit list; duplicates and any order allowed.
//	Find(vector)    Indices built from the nonzero positions of a vector.
//	All()           every position lower..upper-1 of the bound domain.
//
// Binding protocol (driver side):
//
//	rs.Init(0, rows)
//	for ; rs.HasMore(); rs.Next() {
//		cs.Init(0, cols)
//		for ; cs.HasMore(); cs.Next() {
//			dst[rs.Index()][cs.Index()] = src[rs.Value()][cs.Value()]
//		}
//	}
//
// Concurrency:
//
//	A Range carries mutable cursor state and is NOT safe for concurrent use.
//	Construct (or re-Init) one per slicing call.
//
// Validation policy:
//
//	Only IntervalRange checks itself against the domain. Point and Indices
//	positions are validated by whoever consumes them (see matrix.Get/Put).
package ranges
