// Package lssio moves numerical matrices between on-disk textual exchange
// formats and the in-memory structures linear-system solvers consume, and
// provides the index-ordering machinery those structures require.
//
// 🚀 What is lssio?
//
//	A small, deterministic toolkit that brings together:
//		• Index primitives: (row, column) cell addresses with validity and
//		  ordering predicates, plus coordinate (COO) entries
//		• Sparsity patterns: composable index-sequence pipelines producing
//		  sorted, deduplicated, diagonal-first orderings
//		• Format readers: MatrixMarket (.mtx), Harwell-Boeing (.rua) and a
//		  quick CSR dump format (.csr), dense or sparse, gzip/xz aware
//		• Generic ingestion: read into float32/float64/integer storage with
//		  the double-precision path free of copies
//
// ✨ Why choose lssio?
//
//   - Read-only by design - it prepares and transports matrix data; it never
//     factors, multiplies or inverts
//   - Rock-solid guarantees - sentinel errors, no partial results, no panics
//     on user input
//   - Pure Go - no cgo; concurrent reads of distinct files are safe
//
// Everything is organized under three subpackages and one command:
//
//	coord/      — Index and Entry value types, orderings and predicates
//	pattern/    — transformation chains building sparsity patterns
//	matfile/    — format detection, readers and generic dispatch
//	cmd/lssinfo — command-line inspector for matrix files
//
// Dive into each package's doc.go for contracts, complexity notes and
// examples.
package lssio
