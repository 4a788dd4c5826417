// Package matfile_test: unit tests for the Harwell-Boeing reader.
package matfile_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmaciel/lssio/coord"
	"github.com/pmaciel/lssio/matfile"
	"github.com/stretchr/testify/require"
)

// hbFixture assembles a minimal RUA file for the shared reference matrix
//
//	4 0 0
//	0 5 0
//	6 0 0
//
// stored column-compressed: ptr=[1,3,4,4], ind=[1,3,2], val=[4,6,5].
// The value section uses two cards of two 16-wide fields.
func hbFixture(mxtype string, nnz int) string {
	var b strings.Builder
	b.WriteString("lssio test matrix                                                       LSSIO\n")
	b.WriteString(fmt.Sprintf("%14d%14d%14d%14d\n", 4, 1, 1, 2))
	b.WriteString(fmt.Sprintf("%-14s%14d%14d%14d\n", mxtype, 3, 3, nnz))
	b.WriteString("(4I14)          (4I14)          (2E16.8)\n")
	b.WriteString(fmt.Sprintf("%14d%14d%14d%14d\n", 1, 3, 4, 4))
	b.WriteString(fmt.Sprintf("%14d%14d%14d\n", 1, 3, 2))
	b.WriteString(fmt.Sprintf("%16.8E%16.8E\n", 4.0, 6.0))
	b.WriteString(fmt.Sprintf("%16.8E\n", 5.0))

	return b.String()
}

// TestHarwellBoeingDense densifies the CSC fixture row-oriented.
func TestHarwellBoeingDense(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "a.rua", hbFixture("RUA", 3))

	size, a, err := matfile.HarwellBoeing{}.ReadDense(path, true)
	require.NoError(t, err)
	require.Equal(t, coord.NewIndex(3, 3), size)
	require.Equal(t, [][]float64{
		{4, 0, 0},
		{0, 5, 0},
		{6, 0, 0},
	}, a)
}

// TestHarwellBoeingSparse reads the fixture into 0-based row-major COO.
func TestHarwellBoeingSparse(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "a.rua", hbFixture("RUA", 3))

	size, values, rowIdx, colIdx, err := matfile.HarwellBoeing{}.ReadSparse(path, true, 0)
	require.NoError(t, err)
	require.Equal(t, coord.NewIndex(3, 3), size)
	require.Equal(t, []float64{4.0, 5.0, 6.0}, values)
	require.Equal(t, []int{0, 1, 2}, rowIdx)
	require.Equal(t, []int{0, 1, 0}, colIdx)
}

// TestHarwellBoeingSparseColumnMajor keeps the file's natural CSC order.
func TestHarwellBoeingSparseColumnMajor(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "a.rua", hbFixture("RUA", 3))

	_, values, rowIdx, colIdx, err := matfile.HarwellBoeing{}.ReadSparse(path, false, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{4.0, 6.0, 5.0}, values)
	require.Equal(t, []int{1, 3, 2}, rowIdx)
	require.Equal(t, []int{1, 1, 2}, colIdx)
}

// TestHarwellBoeingFortranExponent tolerates the Fortran D exponent in
// value fields.
func TestHarwellBoeingFortranExponent(t *testing.T) {
	content := strings.ReplaceAll(hbFixture("RUA", 3), "E+0", "D+0")
	path := writeFixture(t, t.TempDir(), "a.rua", content)

	_, values, _, _, err := matfile.HarwellBoeing{}.ReadSparse(path, true, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{4.0, 5.0, 6.0}, values)
}

// TestHarwellBoeingRejectsOtherTypes: only real unsymmetric assembled
// matrices are served; folded symmetric storage would need expansion.
func TestHarwellBoeingRejectsOtherTypes(t *testing.T) {
	for _, mxtype := range []string{"RSA", "CUA", "PUA", "RUE"} {
		t.Run(mxtype, func(t *testing.T) {
			path := writeFixture(t, t.TempDir(), "a.rua", hbFixture(mxtype, 3))

			_, _, err := matfile.HarwellBoeing{}.ReadDense(path, true)
			require.ErrorIs(t, err, matfile.ErrParse)
		})
	}
}

// TestHarwellBoeingPointerMismatch: a header entry count disagreeing with
// the pointer span must be rejected, not silently truncated.
func TestHarwellBoeingPointerMismatch(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "a.rua", hbFixture("RUA", 4))

	_, _, err := matfile.HarwellBoeing{}.ReadDense(path, true)
	require.ErrorIs(t, err, matfile.ErrParse)
}

// TestHarwellBoeingTruncated: a value section running short of NNZERO is a
// malformation surfacing ErrParse.
func TestHarwellBoeingTruncated(t *testing.T) {
	full := hbFixture("RUA", 3)
	lines := strings.Split(strings.TrimRight(full, "\n"), "\n")
	content := strings.Join(lines[:len(lines)-1], "\n") + "\n" // drop the last value card
	path := writeFixture(t, t.TempDir(), "a.rua", content)

	_, _, err := matfile.HarwellBoeing{}.ReadDense(path, true)
	require.ErrorIs(t, err, matfile.ErrParse)
}
