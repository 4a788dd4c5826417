// SPDX-License-Identifier: MIT

// Package matfile: the text matrix-exchange reader (.mtx).
//
// Accepted shape of the encoding:
//   - Banner: "%%MatrixMarket matrix array|coordinate real|integer general"
//     (case-insensitive past the banner tag).
//   - '%' comment lines and blank lines are tolerated anywhere after the
//     banner.
//   - Array form: a "rows cols" size line, then rows*cols values in
//     column-major textual order.
//   - Coordinate form: a "rows cols nnz" size line, then nnz triples of
//     1-based "i j value".
//
// Qualifiers outside the accepted set (symmetric, hermitian, skew-symmetric,
// pattern, complex) fail with ErrParse: the ingesting solvers consume
// general real systems, and silently mis-reading a folded symmetric file
// would corrupt them.

package matfile

import (
	"strings"

	"github.com/pmaciel/lssio/coord"
)

// Banner vocabulary (compared case-insensitively).
const (
	mmBannerTag      = "%%matrixmarket"
	mmObjectMatrix   = "matrix"
	mmFormArray      = "array"
	mmFormCoordinate = "coordinate"
	mmFieldReal      = "real"
	mmFieldInteger   = "integer"
	mmSymGeneral     = "general"
)

// MatrixMarket reads the text matrix-exchange format. The zero value is
// ready to use; readers hold no state, so concurrent reads of different
// files are safe.
type MatrixMarket struct{}

var _ formatReader = MatrixMarket{}

// mmPayload is the staging form shared by the dense and sparse paths: the
// declared extent plus either a coordinate list or the raw column-major
// value stream.
type mmPayload struct {
	size       coord.Index
	coordinate bool          // true: entries holds triples; false: values holds the array
	entries    []coord.Entry // coordinate form, 0-based
	values     []float64     // array form, column-major file order
}

// ReadDense parses fname into a dense buffer in the requested orientation.
// Both encoding forms are readable densely; a coordinate file densifies
// with explicit zero fill.
//
// Errors: ErrRead, ErrParse, ErrNaNInf (policy).
func (MatrixMarket) ReadDense(fname string, rowOriented bool, opts ...Option) (coord.Index, [][]float64, error) {
	p, err := parseMatrixMarket(fname, gatherOptions(opts...))
	if err != nil {
		return coord.InvalidIndex(), nil, err
	}
	if p.coordinate {
		return p.size, densify(p.size, p.entries, rowOriented), nil
	}

	// Array form: value k addresses cell (k mod rows, k div rows) —
	// column-major textual order per the exchange conventions.
	rows, cols := p.size.Row, p.size.Col
	a := make([][]float64, rows)
	for i := range a {
		a[i] = make([]float64, cols)
	}
	for k, v := range p.values {
		a[k%rows][k/rows] = v
	}
	if !rowOriented {
		return p.size, transpose(a, rows, cols), nil
	}

	return p.size, a, nil
}

// ReadSparse parses fname into coordinate form, ordered row- or
// column-major and rebased to the requested index base. Array-form files
// are rejected: a fully dense value stream has no meaningful sparse
// reading.
//
// Errors: ErrRead, ErrParse, ErrNaNInf (policy).
func (MatrixMarket) ReadSparse(fname string, rowOriented bool, base int, opts ...Option) (coord.Index, []float64, []int, []int, error) {
	p, err := parseMatrixMarket(fname, gatherOptions(opts...))
	if err != nil {
		return coord.InvalidIndex(), nil, nil, nil, err
	}
	if !p.coordinate {
		return coord.InvalidIndex(), nil, nil, nil,
			parseErrorf(fname, 1, "array form has no sparse reading")
	}

	values, rowIdx, colIdx := finishSparse(p.size, p.entries, rowOriented, base)

	return p.size, values, rowIdx, colIdx, nil
}

// parseMatrixMarket performs the single-pass parse shared by both entry
// points: banner, size line, then the value or triple stream.
func parseMatrixMarket(fname string, o Options) (mmPayload, error) {
	src, err := openSource(fname)
	if err != nil {
		return mmPayload{}, err
	}
	defer src.Close()

	s := newSrcScanner(src, fname)

	// Banner line: %%MatrixMarket matrix array|coordinate real|integer general.
	banner, err := s.rawLine()
	if err != nil {
		return mmPayload{}, err
	}
	fields := strings.Fields(strings.ToLower(banner))
	if len(fields) < 4 || fields[0] != mmBannerTag || fields[1] != mmObjectMatrix {
		return mmPayload{}, parseErrorf(fname, s.line, "not a matrix-exchange banner: %q", banner)
	}
	form := fields[2]
	if form != mmFormArray && form != mmFormCoordinate {
		return mmPayload{}, parseErrorf(fname, s.line, "unsupported form %q", form)
	}
	if field := fields[3]; field != mmFieldReal && field != mmFieldInteger {
		return mmPayload{}, parseErrorf(fname, s.line, "unsupported field type %q", field)
	}
	if len(fields) > 4 && fields[4] != mmSymGeneral {
		return mmPayload{}, parseErrorf(fname, s.line, "unsupported symmetry %q", fields[4])
	}

	// Size line (comments and blanks before it are tolerated).
	rows, err := s.intToken()
	if err != nil {
		return mmPayload{}, err
	}
	cols, err := s.intToken()
	if err != nil {
		return mmPayload{}, err
	}
	size, err := checkSize(fname, s.line, rows, cols)
	if err != nil {
		return mmPayload{}, err
	}

	p := mmPayload{size: size, coordinate: form == mmFormCoordinate}
	if !p.coordinate {
		// Array form: exactly rows*cols values in column-major order.
		total := rows * cols
		p.values = make([]float64, 0, total)
		for k := 0; k < total; k++ {
			v, verr := s.floatToken(o)
			if verr != nil {
				return mmPayload{}, verr
			}
			p.values = append(p.values, v)
		}

		return p, nil
	}

	// Coordinate form: the size line carries the entry count, then nnz
	// 1-based triples follow.
	nnz, err := s.intToken()
	if err != nil {
		return mmPayload{}, err
	}
	if nnz < 0 {
		return mmPayload{}, parseErrorf(fname, s.line, "negative entry count %d", nnz)
	}
	p.entries = make([]coord.Entry, 0, nnz)
	for k := 0; k < nnz; k++ {
		i, ierr := s.intToken()
		if ierr != nil {
			return mmPayload{}, ierr
		}
		j, jerr := s.intToken()
		if jerr != nil {
			return mmPayload{}, jerr
		}
		v, verr := s.floatToken(o)
		if verr != nil {
			return mmPayload{}, verr
		}
		// File triples are 1-based; staging is 0-based.
		if err = checkBounds(fname, s.line, size, i-1, j-1); err != nil {
			return mmPayload{}, err
		}
		p.entries = append(p.entries, coord.NewEntry(i-1, j-1, v))
	}

	return p, nil
}

// transpose flips a rows×cols row-oriented buffer into the column-oriented
// shape. Fixed i→j loop order.
func transpose(a [][]float64, rows, cols int) [][]float64 {
	out := make([][]float64, cols)
	for j := range out {
		out[j] = make([]float64, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j][i] = a[i][j]
		}
	}

	return out
}
