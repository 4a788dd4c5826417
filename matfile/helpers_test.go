// Package matfile_test: shared fixture helpers for the reader tests.
package matfile_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

// writeFixture materializes one matrix file under dir and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// writeGzipFixture materializes a gzip-compressed matrix file.
func writeGzipFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	return path
}

// writeXZFixture materializes an xz-compressed matrix file.
func writeXZFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = xw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, xw.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	return path
}

// mtxCoordinate is the shared reference matrix: 3 nonzeros at 1-based
// positions (1,1,4.0), (2,2,5.0), (3,1,6.0).
const mtxCoordinate = `%%MatrixMarket matrix coordinate real general
% quick three-entry fixture
3 3 3
1 1 4.0
2 2 5.0
3 1 6.0
`

// mtxArray3x3 enumerates the dense matrix
//
//	1 2 3
//	4 5 6
//	7 8 9
//
// in column-major textual order.
const mtxArray3x3 = `%%MatrixMarket matrix array real general
% values run down each column
3 3
1 4 7
2 5 8
3 6 9
`
