// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction, interop and
// slicing. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective state.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy (validateNaNInf) is stamped onto every *Dense produced
//     by NewDenseFrom, FromGonum, FromTensor and the slicing driver (Get*).
//   - Selection policy (strictSelection) decides WHEN out-of-range positions
//     from Point/Indices selections are reported:
//   - strict (default): every position is checked before any element moves,
//     so Put/PutScalar are all-or-nothing.
//   - lazy: the first failing At/Set aborts the call; earlier writes remain.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultStrictSelection pre-validates every selected position against
	// the axis before the driver touches any element.
	DefaultStrictSelection = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps             float64 // >= 0; DefaultEpsilon
	validateNaNInf  bool    // DefaultValidateNaNInf
	strictSelection bool    // DefaultStrictSelection
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance used by ApproxEqual.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-only Set on newly produced matrices (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf pass through on newly produced matrices.
//
// AI-Hints:
//   - Needed when importing foreign data (gonum/tensor) that uses NaN as a
//     missing-value marker and slicing it as-is.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithStrictSelection validates every selected position before moving data (default).
func WithStrictSelection() Option {
	return func(o *Options) { o.strictSelection = true }
}

// WithLazySelection skips the validation pass: an out-of-range position is
// reported by the first failing element access, and writes performed before
// it are kept.
//
// AI-Hints:
//   - Only worth it for very long Indices selections read once.
func WithLazySelection() Option {
	return func(o *Options) { o.strictSelection = false }
}

// NewMatrixOptions resolves opts into an Options snapshot (for inspection).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports the resolved numeric policy.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// StrictSelection reports the resolved selection policy.
func (o Options) StrictSelection() bool { return o.strictSelection }

// gatherOptions applies user-provided setters on top of defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:             DefaultEpsilon,
		validateNaNInf:  DefaultValidateNaNInf,
		strictSelection: DefaultStrictSelection,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
