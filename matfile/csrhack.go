// SPDX-License-Identifier: MIT

// Package matfile: the quick CSR dump reader (.csr).
//
// The encoding is a non-standard hack layered on the matrix-exchange
// conventions ('%' comments, free whitespace tokens):
//   - Size line: "rows cols nnz".
//   - rows+1 row pointers, 1-based, first pointer 1.
//   - nnz column indices, 1-based.
//   - nnz values.
//
// The reader rejects every detectable mismatch between the declared counts
// and the compressed-row skeleton: a wrong first pointer, a pointer span
// disagreeing with nnz, non-monotonic pointers and out-of-range columns.

package matfile

import "github.com/pmaciel/lssio/coord"

// CSRHack reads quick CSR dumps. The zero value is ready to use.
type CSRHack struct{}

var _ formatReader = CSRHack{}

// ReadDense parses fname and densifies the compressed rows into the
// requested orientation.
//
// Errors: ErrRead, ErrParse, ErrNaNInf (policy).
func (CSRHack) ReadDense(fname string, rowOriented bool, opts ...Option) (coord.Index, [][]float64, error) {
	size, entries, err := parseCSRHack(fname, gatherOptions(opts...))
	if err != nil {
		return coord.InvalidIndex(), nil, err
	}

	return size, densify(size, entries, rowOriented), nil
}

// ReadSparse parses fname into coordinate form, ordered row- or
// column-major and rebased to the requested index base.
//
// Errors: ErrRead, ErrParse, ErrNaNInf (policy).
func (CSRHack) ReadSparse(fname string, rowOriented bool, base int, opts ...Option) (coord.Index, []float64, []int, []int, error) {
	size, entries, err := parseCSRHack(fname, gatherOptions(opts...))
	if err != nil {
		return coord.InvalidIndex(), nil, nil, nil, err
	}

	values, rowIdx, colIdx := finishSparse(size, entries, rowOriented, base)

	return size, values, rowIdx, colIdx, nil
}

// parseCSRHack reads the size line and the three index/value sections,
// expanding the CSR structure into a flat 0-based coordinate list.
func parseCSRHack(fname string, o Options) (coord.Index, []coord.Entry, error) {
	bad := coord.InvalidIndex()

	src, err := openSource(fname)
	if err != nil {
		return bad, nil, err
	}
	defer src.Close()

	s := newSrcScanner(src, fname)

	// Size line: rows cols nnz.
	rows, err := s.intToken()
	if err != nil {
		return bad, nil, err
	}
	cols, err := s.intToken()
	if err != nil {
		return bad, nil, err
	}
	nnz, err := s.intToken()
	if err != nil {
		return bad, nil, err
	}
	size, err := checkSize(fname, s.line, rows, cols)
	if err != nil {
		return bad, nil, err
	}
	if nnz < 0 {
		return bad, nil, parseErrorf(fname, s.line, "negative entry count %d", nnz)
	}

	// Row pointers: rows+1 entries, 1-based.
	ptr := make([]int, rows+1)
	for k := range ptr {
		if ptr[k], err = s.intToken(); err != nil {
			return bad, nil, err
		}
	}
	if ptr[0] != 1 {
		return bad, nil, parseErrorf(fname, s.line, "row pointers must start at 1, got %d", ptr[0])
	}
	if ptr[rows]-1 != nnz {
		return bad, nil, parseErrorf(fname, s.line, "pointer span %d disagrees with entry count %d", ptr[rows]-1, nnz)
	}
	// Pointers must be nondecreasing and stay within the entry count;
	// checking up front keeps the expansion below panic-free.
	for i := 0; i < rows; i++ {
		if ptr[i] > ptr[i+1] || ptr[i+1] > nnz+1 {
			return bad, nil, parseErrorf(fname, s.line, "row pointers not nondecreasing at row %d", i+1)
		}
	}

	// Column indices, 1-based.
	ja := make([]int, nnz)
	for k := range ja {
		if ja[k], err = s.intToken(); err != nil {
			return bad, nil, err
		}
	}

	// Values.
	val := make([]float64, nnz)
	for k := range val {
		if val[k], err = s.floatToken(o); err != nil {
			return bad, nil, err
		}
	}

	// Expand CSR into the flat coordinate list (0-based).
	entries := make([]coord.Entry, 0, nnz)
	for i := 0; i < rows; i++ {
		for p := ptr[i] - 1; p < ptr[i+1]-1; p++ {
			j := ja[p] - 1
			if err = checkBounds(fname, s.line, size, i, j); err != nil {
				return bad, nil, err
			}
			entries = append(entries, coord.NewEntry(i, j, val[p]))
		}
	}

	return size, entries, nil
}
