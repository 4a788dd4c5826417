// SPDX-License-Identifier: MIT

// Package matfile: domain-facing types — the closed Format enumeration,
// the Scalar constraint and the two output containers (Dense, COO).
//
// Design notes:
//   - Format is resolved ONCE from the filename (DetectFormat) and then
//     dispatched through the capability interface shared by all readers;
//     no extension branching happens at read sites.
//   - Output containers own their buffers: each read call populates fresh
//     slices and hands ownership to the caller on return.

package matfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pmaciel/lssio/coord"
)

// Format identifies one of the supported on-disk matrix encodings.
type Format int

// The closed set of supported encodings. FormatUnknown is never returned
// alongside a nil error.
const (
	FormatUnknown       Format = iota // zero value: no reader matched
	FormatMatrixMarket                // text matrix-exchange format (.mtx)
	FormatHarwellBoeing               // fixed-field legacy CSC format (.rua)
	FormatCSRHack                     // quick CSR dump on exchange conventions (.csr)
)

// Extension spellings recognized by DetectFormat. Compression suffixes are
// transparent: they are stripped before format matching and honored again
// when the file is opened.
const (
	extMatrixMarket  = ".mtx"
	extHarwellBoeing = ".rua"
	extCSRHack       = ".csr"
	extGzip          = ".gz"
	extXZ            = ".xz"
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatMatrixMarket:
		return "MatrixMarket"
	case FormatHarwellBoeing:
		return "Harwell-Boeing"
	case FormatCSRHack:
		return "CSR"
	default:
		return "unknown"
	}
}

// DetectFormat resolves the encoding from the filename extension alone:
// .mtx → MatrixMarket, .rua → Harwell-Boeing, .csr → CSR. A trailing
// compression suffix (.gz, .xz) is skipped first, so "A.mtx.gz" detects as
// MatrixMarket. No file I/O is performed.
//
// Errors: ErrUnsupportedFormat when no extension matches.
func DetectFormat(fname string) (Format, error) {
	name := fname
	for {
		ext := strings.ToLower(filepath.Ext(name))
		switch ext {
		case extGzip, extXZ:
			name = name[:len(name)-len(ext)] // peel the compression layer and retry
			continue
		case extMatrixMarket:
			return FormatMatrixMarket, nil
		case extHarwellBoeing:
			return FormatHarwellBoeing, nil
		case extCSRHack:
			return FormatCSRHack, nil
		default:
			return FormatUnknown, fmt.Errorf("matfile: %q: %w", fname, ErrUnsupportedFormat)
		}
	}
}

// Scalar is the set of numeric element types the generic dispatch layer
// can populate. float64 is the native (copy-free) path; float32 converts
// with value preservation within float precision; the integer forms use a
// truncating cast.
type Scalar interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// Dense is a dense read result: the declared matrix extent plus a sequence
// of rows (row-oriented) or columns (column-oriented), each a sequence of
// scalars. Orientation is fixed by the read call that produced it.
type Dense[T Scalar] struct {
	Size coord.Index // declared matrix extent (rows, cols)
	Data [][]T       // Data[i][j] = a(i,j) row-oriented; Data[j][i] = a(i,j) otherwise
}

// RequireSquare returns ErrNonSquare (wrapped with the extent) when the
// declared size is rectangular. Solvers needing square systems call this
// once after reading.
func (d *Dense[T]) RequireSquare() error {
	if !d.Size.IsSquareSize() {
		return fmt.Errorf("matfile: got %dx%d: %w", d.Size.Row, d.Size.Col, ErrNonSquare)
	}

	return nil
}

// COO is a sparse read result in coordinate form: three parallel slices
// (values, row indices, column indices) plus the declared extent and the
// index base the indices were normalized to.
type COO[T Scalar] struct {
	Size   coord.Index // declared matrix extent (rows, cols)
	Values []T         // nonzero values, len == Nnz()
	RowIdx []int       // row coordinate per value, rebased to Base
	ColIdx []int       // column coordinate per value, rebased to Base
	Base   int         // index base of RowIdx/ColIdx (0 or 1 in practice)
}

// Nnz returns the number of stored entries.
func (c *COO[T]) Nnz() int { return len(c.Values) }

// RequireSquare returns ErrNonSquare (wrapped with the extent) when the
// declared size is rectangular.
func (c *COO[T]) RequireSquare() error {
	if !c.Size.IsSquareSize() {
		return fmt.Errorf("matfile: got %dx%d: %w", c.Size.Row, c.Size.Col, ErrNonSquare)
	}

	return nil
}

// formatReader is the capability interface every format implements: one
// dense and one sparse entry point, both operating strictly on
// double-precision storage. The generic layer converts afterwards.
type formatReader interface {
	ReadDense(fname string, rowOriented bool, opts ...Option) (coord.Index, [][]float64, error)
	ReadSparse(fname string, rowOriented bool, base int, opts ...Option) (coord.Index, []float64, []int, []int, error)
}
