// SPDX-License-Identifier: MIT
// Package matfile: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// readers and the generic dispatch layer. All paths MUST return these
// sentinels and tests MUST check them via errors.Is. Malformed input never
// panics and never yields a bare boolean: the error policy is typed
// sentinels wrapped with file/line context, applied uniformly across all
// three formats.

package matfile

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matfile: ..." for consistency and easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; attach context with fmt.Errorf("ctx: %w", ErrX) at the
// detection site — callers still match via errors.Is.

var (
	// ErrUnsupportedFormat is returned when no reader matches the file
	// extension. Detection happens before any file I/O.
	ErrUnsupportedFormat = errors.New("matfile: file format not detected")

	// ErrParse indicates malformed file content: wrong header, field-width
	// mismatch, dimension mismatch between header and body, unreadable
	// numeric field. Wrapped errors carry the file path and line number.
	ErrParse = errors.New("matfile: malformed input")

	// ErrRead indicates the file is missing or unreadable. The underlying
	// I/O error stays on the chain, so errors.Is(err, fs.ErrNotExist)
	// keeps working.
	ErrRead = errors.New("matfile: unreadable input")

	// ErrNaNInf signals a NaN or ±Inf value was parsed while the numeric
	// ingestion policy requires finite values (the default).
	ErrNaNInf = errors.New("matfile: NaN or Inf encountered")

	// ErrNonSquare signals that a square matrix was required downstream
	// but the file declared a rectangular extent.
	ErrNonSquare = errors.New("matfile: expected square matrix")

	// ErrPrecision marks a numeric type a precision-dispatching caller
	// cannot serve (the generic entry points themselves are constrained
	// at compile time; this sentinel is for runtime dispatchers).
	ErrPrecision = errors.New("matfile: unsupported numeric precision")
)

// parseErrorf wraps ErrParse with the offending file, line and a detail
// message. Detection sites call this as close to the malformation as
// practical; no partial results are returned past it.
func parseErrorf(name string, line int, format string, args ...any) error {
	return fmt.Errorf("matfile: %s:%d: %s: %w", name, line, fmt.Sprintf(format, args...), ErrParse)
}

// readErrorf wraps ErrRead and the underlying I/O error with the file path.
func readErrorf(name string, err error) error {
	return fmt.Errorf("matfile: %s: %w: %w", name, ErrRead, err)
}
