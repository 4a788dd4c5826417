// SPDX-License-Identifier: MIT

// Package matfile: the Harwell-Boeing reader (.rua).
//
// Accepted shape of the encoding (fixed-field legacy CSC):
//   - Card 1: title (72 cols) + key — content ignored.
//   - Card 2: TOTCRD PTRCRD INDCRD VALCRD [RHSCRD] — card counts.
//   - Card 3: MXTYPE NROW NCOL NNZERO [NELTVL] — only "RUA" (real,
//     unsymmetric, assembled) is accepted; the extension promises exactly
//     that, and folded symmetric storage would need expansion this reader
//     does not perform.
//   - Card 4: PTRFMT INDFMT VALFMT [RHSFMT] — Fortran edit descriptors
//     such as (16I5), (3E26.18) or (1P,4D25.16); repeat count and field
//     width are honored, scale prefixes are skipped.
//   - Card 5 (only when RHSCRD > 0): RHS format — skipped; right-hand
//     sides are loaded separately by the solvers, never through here.
//   - Data: NCOL+1 column pointers, NNZERO row indices, NNZERO values, all
//     1-based, in fixed-width fields. D exponents are tolerated.

package matfile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pmaciel/lssio/coord"
)

// hbTypeRealUnsymAssembled is the only MXTYPE this reader serves.
const hbTypeRealUnsymAssembled = "RUA"

// hbFormatRe captures the repeat count, the edit letter and the field
// width of one Fortran descriptor, after parens/scale-prefix stripping.
var hbFormatRe = regexp.MustCompile(`^(\d*)([IEDFG])(\d+)`)

// HarwellBoeing reads the fixed-field legacy column-compressed format.
// The zero value is ready to use.
type HarwellBoeing struct{}

var _ formatReader = HarwellBoeing{}

// fieldFormat is one parsed Fortran edit descriptor: how many fields per
// card and how wide each field is.
type fieldFormat struct {
	perLine int // repeat count (fields per card)
	width   int // field width in characters
}

// parseFortranFormat extracts (repeat, width) from descriptors such as
// "(16I5)", "(4E20.13)" or "(1P,3D25.16)". Precision digits after the
// width are irrelevant to slicing and are ignored.
func parseFortranFormat(name string, line int, spec string) (fieldFormat, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(spec))
	cleaned = strings.Trim(cleaned, "()")
	// A leading scale factor (e.g. "1P," or "1P") only affects how the
	// producer printed the mantissa; slicing ignores it.
	if p := strings.IndexByte(cleaned, 'P'); p >= 0 && p < strings.IndexAny(cleaned, "IEDFG") {
		cleaned = strings.TrimPrefix(cleaned[p+1:], ",")
	}
	m := hbFormatRe.FindStringSubmatch(cleaned)
	if m == nil {
		return fieldFormat{}, parseErrorf(name, line, "unreadable Fortran format %q", spec)
	}

	perLine := 1
	if m[1] != "" {
		perLine, _ = strconv.Atoi(m[1])
	}
	width, _ := strconv.Atoi(m[3])
	if perLine < 1 || width < 1 {
		return fieldFormat{}, parseErrorf(name, line, "degenerate Fortran format %q", spec)
	}

	return fieldFormat{perLine: perLine, width: width}, nil
}

// ReadDense parses fname and densifies the column-compressed payload into
// the requested orientation.
//
// Errors: ErrRead, ErrParse, ErrNaNInf (policy).
func (HarwellBoeing) ReadDense(fname string, rowOriented bool, opts ...Option) (coord.Index, [][]float64, error) {
	size, entries, err := parseHarwellBoeing(fname, gatherOptions(opts...))
	if err != nil {
		return coord.InvalidIndex(), nil, err
	}

	return size, densify(size, entries, rowOriented), nil
}

// ReadSparse parses fname into coordinate form, ordered row- or
// column-major and rebased to the requested index base.
//
// Errors: ErrRead, ErrParse, ErrNaNInf (policy).
func (HarwellBoeing) ReadSparse(fname string, rowOriented bool, base int, opts ...Option) (coord.Index, []float64, []int, []int, error) {
	size, entries, err := parseHarwellBoeing(fname, gatherOptions(opts...))
	if err != nil {
		return coord.InvalidIndex(), nil, nil, nil, err
	}

	values, rowIdx, colIdx := finishSparse(size, entries, rowOriented, base)

	return size, values, rowIdx, colIdx, nil
}

// parseHarwellBoeing reads the header cards and the three data sections,
// expanding the CSC structure into a flat 0-based coordinate list.
func parseHarwellBoeing(fname string, o Options) (coord.Index, []coord.Entry, error) {
	bad := coord.InvalidIndex()

	src, err := openSource(fname)
	if err != nil {
		return bad, nil, err
	}
	defer src.Close()

	s := newSrcScanner(src, fname)

	// Card 1: title + key, content ignored.
	if _, err = s.rawLine(); err != nil {
		return bad, nil, err
	}

	// Card 2: card counts; only RHSCRD matters here (presence of card 5).
	counts, err := s.rawLine()
	if err != nil {
		return bad, nil, err
	}
	countFields := strings.Fields(counts)
	if len(countFields) < 4 {
		return bad, nil, parseErrorf(fname, s.line, "short card-count line %q", counts)
	}
	rhscrd := 0
	if len(countFields) >= 5 {
		if rhscrd, err = strconv.Atoi(countFields[4]); err != nil {
			return bad, nil, parseErrorf(fname, s.line, "unreadable RHS card count %q", countFields[4])
		}
	}

	// Card 3: matrix type and extents.
	header, err := s.rawLine()
	if err != nil {
		return bad, nil, err
	}
	headerFields := strings.Fields(header)
	if len(headerFields) < 4 {
		return bad, nil, parseErrorf(fname, s.line, "short header line %q", header)
	}
	if mxtype := strings.ToUpper(headerFields[0]); mxtype != hbTypeRealUnsymAssembled {
		return bad, nil, parseErrorf(fname, s.line, "unsupported matrix type %q (want %s)", headerFields[0], hbTypeRealUnsymAssembled)
	}
	nrow, err1 := strconv.Atoi(headerFields[1])
	ncol, err2 := strconv.Atoi(headerFields[2])
	nnz, err3 := strconv.Atoi(headerFields[3])
	if err1 != nil || err2 != nil || err3 != nil || nnz < 0 {
		return bad, nil, parseErrorf(fname, s.line, "unreadable extents in %q", header)
	}
	size, err := checkSize(fname, s.line, nrow, ncol)
	if err != nil {
		return bad, nil, err
	}

	// Card 4: the three (or four) edit descriptors.
	formats, err := s.rawLine()
	if err != nil {
		return bad, nil, err
	}
	formatFields := strings.Fields(formats)
	if len(formatFields) < 3 {
		return bad, nil, parseErrorf(fname, s.line, "short format line %q", formats)
	}
	ptrFmt, err := parseFortranFormat(fname, s.line, formatFields[0])
	if err != nil {
		return bad, nil, err
	}
	indFmt, err := parseFortranFormat(fname, s.line, formatFields[1])
	if err != nil {
		return bad, nil, err
	}
	valFmt, err := parseFortranFormat(fname, s.line, formatFields[2])
	if err != nil {
		return bad, nil, err
	}

	// Card 5: RHS format, present only when RHS cards follow the values.
	if rhscrd > 0 {
		if _, err = s.rawLine(); err != nil {
			return bad, nil, err
		}
	}

	// Data sections: pointers, indices, values.
	ptr, err := readFixedInts(s, ptrFmt, ncol+1)
	if err != nil {
		return bad, nil, err
	}
	ind, err := readFixedInts(s, indFmt, nnz)
	if err != nil {
		return bad, nil, err
	}
	val, err := readFixedFloats(s, valFmt, nnz, o)
	if err != nil {
		return bad, nil, err
	}

	// Structural validation of the compressed-column skeleton.
	if ptr[0] != 1 {
		return bad, nil, parseErrorf(fname, s.line, "column pointers must start at 1, got %d", ptr[0])
	}
	if ptr[ncol]-1 != nnz {
		return bad, nil, parseErrorf(fname, s.line, "pointer span %d disagrees with entry count %d", ptr[ncol]-1, nnz)
	}
	// Pointers must be nondecreasing and stay within the entry count;
	// checking up front keeps the expansion below panic-free.
	for j := 0; j < ncol; j++ {
		if ptr[j] > ptr[j+1] || ptr[j+1] > nnz+1 {
			return bad, nil, parseErrorf(fname, s.line, "column pointers not nondecreasing at column %d", j+1)
		}
	}

	// Expand CSC into the flat coordinate list (0-based).
	entries := make([]coord.Entry, 0, nnz)
	for j := 0; j < ncol; j++ {
		for p := ptr[j] - 1; p < ptr[j+1]-1; p++ {
			i := ind[p] - 1
			if err = checkBounds(fname, s.line, size, i, j); err != nil {
				return bad, nil, err
			}
			entries = append(entries, coord.NewEntry(i, j, val[p]))
		}
	}

	return size, entries, nil
}

// readFixedInts collects n integers from fixed-width cards.
func readFixedInts(s *srcScanner, f fieldFormat, n int) ([]int, error) {
	out := make([]int, 0, n)
	for len(out) < n {
		fields, err := fixedFields(s, f, n-len(out))
		if err != nil {
			return nil, err
		}
		for _, field := range fields {
			v, cerr := strconv.Atoi(field)
			if cerr != nil {
				return nil, parseErrorf(s.name, s.line, "unreadable integer field %q", field)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// readFixedFloats collects n values from fixed-width cards, honoring the
// numeric ingestion policy and D exponents.
func readFixedFloats(s *srcScanner, f fieldFormat, n int, o Options) ([]float64, error) {
	out := make([]float64, 0, n)
	for len(out) < n {
		fields, err := fixedFields(s, f, n-len(out))
		if err != nil {
			return nil, err
		}
		for _, field := range fields {
			v, cerr := parseValue(s.name, s.line, field, o)
			if cerr != nil {
				return nil, cerr
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// fixedFields slices one card into at most f.perLine fields of f.width
// characters (the last field may be shorter on a right-trimmed card) and
// returns up to want of them, trimmed. An entirely blank card is a
// malformation: the section ran short.
func fixedFields(s *srcScanner, f fieldFormat, want int) ([]string, error) {
	card, err := s.rawLine()
	if err != nil {
		return nil, err
	}

	fields := make([]string, 0, f.perLine)
	for k := 0; k < f.perLine && len(fields) < want; k++ {
		start := k * f.width
		if start >= len(card) {
			break
		}
		end := start + f.width
		if end > len(card) {
			end = len(card)
		}
		field := strings.TrimSpace(card[start:end])
		if field == "" {
			break // right padding; nothing further on this card
		}
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		return nil, parseErrorf(s.name, s.line, "blank card inside a data section")
	}

	return fields, nil
}
