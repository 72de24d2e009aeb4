// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - validateNaNInf controls whether Set()/Apply() reject NaN/Inf at ingestion.
//     It is OFF by default: a Dense may legally hold ±Inf/NaN, and the kernels
//     that need finite data (Scale) check for themselves and report ErrNaNInf.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the effective configuration for a Dense.
// Fields are unexported; use the WithX constructors.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf in Set/Apply when true
}

// ValidateNaNInf reports whether the strict finite-value policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithValidateNaNInf enables strict finite-value validation on Set/Apply.
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables the finite-value guard (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// NewMatrixOptions resolves opts on top of the defaults.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// Nil setters are skipped; last writer wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn == nil {
			continue
		}
		fn(&o)
	}

	return o
}
