// SPDX-License-Identifier: MIT

// Package matfile: generic dispatch — the two public entry points reading
// any supported encoding into any Scalar element type.
//
// Design notes:
//   - The numeric type is a compile-time parameter; there is no runtime
//     type-identity branching. Double precision is the single native path
//     (the staging buffer IS the result), everything else goes through one
//     explicit element-wise conversion.
//   - Format resolution happens exactly once per call, before any file
//     I/O, and dispatches through the capability interface shared by the
//     three readers.

package matfile

import "github.com/pmaciel/lssio/coord"

// readerFor maps the closed Format set onto the reader implementations.
// All readers are zero-state values, so sharing them is free and safe.
func readerFor(f Format) formatReader {
	switch f {
	case FormatMatrixMarket:
		return MatrixMarket{}
	case FormatHarwellBoeing:
		return HarwellBoeing{}
	default:
		return CSRHack{}
	}
}

// ReadDense reads fname into a dense matrix of T. The encoding is chosen
// by extension (DetectFormat); rowOriented selects whether Data holds rows
// or columns. For T == float64 the staging buffer is returned without a
// copy; other element types convert element-wise (floats preserve value
// within their precision, integers truncate).
//
// Errors: ErrUnsupportedFormat (before any I/O), ErrRead, ErrParse,
// ErrNaNInf (policy).
func ReadDense[T Scalar](fname string, rowOriented bool, opts ...Option) (*Dense[T], error) {
	format, err := DetectFormat(fname)
	if err != nil {
		return nil, err
	}

	size, staging, err := readerFor(format).ReadDense(fname, rowOriented, opts...)
	if err != nil {
		return nil, err
	}

	// Native path: T is float64, the staging buffer is the result.
	if data, ok := any(staging).([][]T); ok {
		return &Dense[T]{Size: size, Data: data}, nil
	}

	// Conversion path: one explicit element-wise pass, fixed i→j order.
	data := make([][]T, len(staging))
	for i, src := range staging {
		row := make([]T, len(src))
		for j, v := range src {
			row[j] = T(v)
		}
		data[i] = row
	}

	return &Dense[T]{Size: size, Data: data}, nil
}

// ReadSparse reads fname into coordinate form with elements of T, ordered
// row- or column-major per rowOriented and with indices rebased to base
// (0-based and 1-based are the useful choices). The float64 staging slice
// is returned without a copy when T is float64.
//
// Errors: ErrUnsupportedFormat (before any I/O), ErrRead, ErrParse,
// ErrNaNInf (policy).
func ReadSparse[T Scalar](fname string, rowOriented bool, base int, opts ...Option) (*COO[T], error) {
	format, err := DetectFormat(fname)
	if err != nil {
		return nil, err
	}

	size, staging, rowIdx, colIdx, err := readerFor(format).ReadSparse(fname, rowOriented, base, opts...)
	if err != nil {
		return nil, err
	}

	out := &COO[T]{Size: size, RowIdx: rowIdx, ColIdx: colIdx, Base: base}

	// Native path: T is float64, the staging buffer is the result.
	if values, ok := any(staging).([]T); ok {
		out.Values = values
		return out, nil
	}

	// Conversion path: one explicit element-wise pass.
	out.Values = make([]T, len(staging))
	for k, v := range staging {
		out.Values[k] = T(v)
	}

	return out, nil
}

// ReadSize reads only the declared extent of fname, densely parsing the
// file through the dispatch path. Convenience for tools that report on a
// file without keeping its payload.
func ReadSize(fname string, opts ...Option) (coord.Index, error) {
	d, err := ReadDense[float64](fname, true, opts...)
	if err != nil {
		return coord.InvalidIndex(), err
	}

	return d.Size, nil
}
