// Package matfile parses on-disk textual matrix encodings into dense or
// sparse in-memory form, with on-the-fly numeric-type conversion.
//
// The matfile package provides:
//
//   - A closed Format enumeration resolved once per filename
//     (DetectFormat): MatrixMarket (.mtx), Harwell-Boeing (.rua) and a
//     quick CSR dump format (.csr); gzip (.gz) and xz (.xz) compression
//     suffixes are transparent.
//   - Three independent readers sharing one capability surface: a dense
//     read and a sparse (coordinate-form) read, both operating strictly on
//     double-precision storage.
//   - Two generic entry points, ReadDense and ReadSparse, parameterized by
//     the element type: float64 is the native copy-free path; float32 and
//     the integer forms convert element-wise from the staging buffer.
//
// Sparse results are sorted row-major or column-major on request and their
// index slices are normalized to the caller-chosen base (0 or 1). Dense
// results are shaped row- or column-oriented on request.
//
// Error policy: malformed input always surfaces as a typed sentinel
// (ErrParse, ErrNaNInf, ...) wrapped with the file path and line number —
// never a boolean, never a partial result. There are no retries; an
// unreadable file is a terminal, synchronous failure.
//
// All reads are synchronous and share no mutable state: concurrent reads
// of different files need no locking.
//
// No write path exists: this package only prepares and transports matrix
// data toward linear-system solvers.
package matfile
