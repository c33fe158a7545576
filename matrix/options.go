// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for ingestion and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Under this policy "NaN", "Inf" and "Infinity" tokens are rejected by ParseMatrix
	// as ErrInvalidNumberFormat.
	DefaultValidateNaNInf = true

	// DefaultMaxElements bounds rows*cols of every parsed or produced matrix.
	// Zero means "no explicit limit"; int overflow of rows*cols is always rejected.
	DefaultMaxElements = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxElementsInvalid = "matrix: WithMaxElements: limit must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	maxElements    int  // DefaultMaxElements; 0 = unlimited
}

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// MaxElements reports the configured element limit (0 = unlimited).
func (o Options) MaxElements() int { return o.maxElements }

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation (the default).
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - ParseMatrix rejects NaN/±Inf tokens with ErrInvalidNumberFormat.
//   - Dense values created under this policy reject NaN/±Inf on Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite tokens then parse as ordinary values; truncation of a
// non-finite product still fails with ErrNaNInf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxElements bounds rows*cols for every matrix parsed or produced
// under these options. Exceeding the bound yields ErrTooLarge.
// Implementation:
//   - Stage 1: validate n >= 0 (panic otherwise).
//   - Stage 2: return a setter writing n.
//
// Inputs:
//   - n: maximum element count; 0 disables the explicit limit.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxElements(n int) Option {
	if n < 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// NewOptions resolves the given setters over the documented defaults.
// Exposed so callers (e.g. HTTP handlers) can inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over defaults in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		maxElements:    DefaultMaxElements,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
