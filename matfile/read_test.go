// Package matfile_test: unit tests for format detection and the generic
// dispatch layer.
package matfile_test

import (
	"io/fs"
	"math"
	"testing"

	"github.com/pmaciel/lssio/coord"
	"github.com/pmaciel/lssio/matfile"
	"github.com/stretchr/testify/require"
)

// TestDetectFormat resolves every supported spelling, including
// compression suffixes and case variance, without touching the disk.
func TestDetectFormat(t *testing.T) {
	cases := []struct {
		fname string
		want  matfile.Format
	}{
		{"A.mtx", matfile.FormatMatrixMarket},
		{"A.MTX", matfile.FormatMatrixMarket},
		{"A.rua", matfile.FormatHarwellBoeing},
		{"A.csr", matfile.FormatCSRHack},
		{"dir/with.dots/A.mtx.gz", matfile.FormatMatrixMarket},
		{"A.rua.xz", matfile.FormatHarwellBoeing},
	}
	for _, tc := range cases {
		t.Run(tc.fname, func(t *testing.T) {
			got, err := matfile.DetectFormat(tc.fname)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestUnsupportedExtensionNoIO: an unrecognized extension fails with
// ErrUnsupportedFormat without attempting any file I/O — the path does
// not exist, so any open attempt would surface a different error.
func TestUnsupportedExtensionNoIO(t *testing.T) {
	_, err := matfile.ReadDense[float64]("nonexistent.xyz", true)
	require.ErrorIs(t, err, matfile.ErrUnsupportedFormat)

	_, err = matfile.ReadSparse[float64]("nonexistent.xyz", true, 0)
	require.ErrorIs(t, err, matfile.ErrUnsupportedFormat)

	_, err = matfile.DetectFormat("nonexistent")
	require.ErrorIs(t, err, matfile.ErrUnsupportedFormat)
}

// TestMissingFile: a supported extension on a missing file surfaces
// ErrRead with the OS error kept on the chain.
func TestMissingFile(t *testing.T) {
	_, err := matfile.ReadDense[float64]("nonexistent.mtx", true)
	require.ErrorIs(t, err, matfile.ErrRead)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

// TestReadDenseNative: the float64 path reproduces the array fixture
// exactly (round-trip scenario through the dispatch layer).
func TestReadDenseNative(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "a.mtx", mtxArray3x3)

	d, err := matfile.ReadDense[float64](path, true)
	require.NoError(t, err)
	require.Equal(t, coord.NewIndex(3, 3), d.Size)
	require.Equal(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, d.Data)
}

// TestReadDenseFloat32: integer-valued doubles convert to numerically
// equal float32 values.
func TestReadDenseFloat32(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "a.mtx", mtxArray3x3)

	d, err := matfile.ReadDense[float32](path, true)
	require.NoError(t, err)
	require.Equal(t, [][]float32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, d.Data)
}

// TestReadSparseIntTruncates: integer element types use a truncating cast.
func TestReadSparseIntTruncates(t *testing.T) {
	content := "%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1.9\n2 2 -2.7\n"
	path := writeFixture(t, t.TempDir(), "a.mtx", content)

	c, err := matfile.ReadSparse[int](path, true, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, -2}, c.Values)
	require.Equal(t, 2, c.Nnz())
}

// TestReadSparseDispatch exercises all three formats through the generic
// entry point; the multiset of triples must agree.
func TestReadSparseDispatch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFixture(t, dir, "a.mtx", mtxCoordinate),
		writeFixture(t, dir, "a.csr", csrFixture),
		writeFixture(t, dir, "a.rua", hbFixture("RUA", 3)),
	}
	for _, path := range paths {
		c, err := matfile.ReadSparse[float64](path, true, 0)
		require.NoError(t, err, path)
		require.Equal(t, coord.NewIndex(3, 3), c.Size)
		require.Equal(t, []float64{4.0, 5.0, 6.0}, c.Values, path)
		require.Equal(t, []int{0, 1, 2}, c.RowIdx, path)
		require.Equal(t, []int{0, 1, 0}, c.ColIdx, path)
	}
}

// TestReadCompressed round-trips the fixtures through gzip and xz
// wrappers; detection and decompression are both transparent.
func TestReadCompressed(t *testing.T) {
	dir := t.TempDir()

	gz := writeGzipFixture(t, dir, "a.mtx.gz", mtxCoordinate)
	c, err := matfile.ReadSparse[float64](gz, true, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{4.0, 5.0, 6.0}, c.Values)

	xzPath := writeXZFixture(t, dir, "b.mtx.xz", mtxArray3x3)
	d, err := matfile.ReadDense[float64](xzPath, true)
	require.NoError(t, err)
	require.Equal(t, coord.NewIndex(3, 3), d.Size)
	require.Equal(t, 9.0, d.Data[2][2])
}

// TestNaNPolicy: the default ingestion policy rejects non-finite values;
// WithNoValidateNaNInf lets them through.
func TestNaNPolicy(t *testing.T) {
	content := "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 NaN\n"
	path := writeFixture(t, t.TempDir(), "a.mtx", content)

	_, err := matfile.ReadSparse[float64](path, true, 0)
	require.ErrorIs(t, err, matfile.ErrNaNInf)

	c, err := matfile.ReadSparse[float64](path, true, 0, matfile.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(c.Values[0]))
}

// TestRequireSquare: rectangular extents fail with ErrNonSquare where
// squareness is demanded downstream.
func TestRequireSquare(t *testing.T) {
	content := "%%MatrixMarket matrix coordinate real general\n2 3 1\n1 1 5.0\n"
	path := writeFixture(t, t.TempDir(), "rect.mtx", content)

	c, err := matfile.ReadSparse[float64](path, true, 0)
	require.NoError(t, err)
	require.ErrorIs(t, c.RequireSquare(), matfile.ErrNonSquare)

	square := writeFixture(t, t.TempDir(), "sq.mtx", mtxCoordinate)
	d, err := matfile.ReadDense[float64](square, true)
	require.NoError(t, err)
	require.NoError(t, d.RequireSquare())
}

// TestReadSize reports the declared extent through the dispatch path.
func TestReadSize(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "a.mtx", mtxArray3x3)

	size, err := matfile.ReadSize(path)
	require.NoError(t, err)
	require.Equal(t, coord.NewIndex(3, 3), size)
	require.True(t, size.IsValidSize())
}

// TestFormatString pins the conventional names used in diagnostics.
func TestFormatString(t *testing.T) {
	require.Equal(t, "MatrixMarket", matfile.FormatMatrixMarket.String())
	require.Equal(t, "Harwell-Boeing", matfile.FormatHarwellBoeing.String())
	require.Equal(t, "CSR", matfile.FormatCSRHack.String())
	require.Equal(t, "unknown", matfile.FormatUnknown.String())
}
