// SPDX-License-Identifier: MIT

// Package matfile: functional configuration for the readers' numeric
// ingestion policy.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults in one place.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public entry points
//     consume ...Option and resolve them via gatherOptions.

package matfile

// DefaultValidateNaNInf toggles strict finite-value validation during
// parsing. When enabled (the default), a NaN or ±Inf value in the file is
// a parse-time failure (ErrNaNInf); matrix exchange files carry measured
// or assembled coefficients, and a non-finite one is almost always a
// producer bug surfacing here.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Unexported fields prevent external mutation.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf values at parse time when true
}

// WithValidateNaNInf enables strict finite-value validation (the default;
// provided to restore it after WithNoValidateNaNInf in composed option
// sets).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation, letting non-finite
// values flow into the staging buffers. Use only when ingesting data with
// known ±Inf placeholders and sanitizing downstream.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults; last-writer-wins. The canonical internal entry for every
// public reader.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
