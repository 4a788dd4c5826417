// SPDX-License-Identifier: MIT

// Package matfile: input plumbing shared by all readers — compressed-file
// opening and a line/token scanner that tracks positions for error
// reporting.
//
// Design notes:
//   - Every reader funnels file access through openSource, so gzip/xz
//     transparency exists in exactly one place.
//   - The scanner offers two disciplines: raw lines (Harwell-Boeing fixed
//     cards) and whitespace tokens with '%'-comment skipping (the
//     matrix-exchange conventions shared by .mtx and .csr).

package matfile

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

// maxLineBytes bounds a single input line; matrix-exchange producers emit
// short lines, but dense array dumps occasionally pack a full row per line.
const maxLineBytes = 1 << 20

// commentPrefix starts a comment line under matrix-exchange conventions.
const commentPrefix = '%'

// source couples the decompressed stream with every closer it owns.
type source struct {
	io.Reader
	closers []io.Closer
}

// Close releases the decompressor (when present) and the file, reporting
// the first failure.
func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// openSource opens fname and transparently unwraps one trailing
// compression layer (.gz via stdlib, .xz via ulikunitz/xz).
//
// Errors: ErrRead wrapping the underlying failure.
func openSource(fname string) (io.ReadCloser, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, readErrorf(fname, err)
	}

	switch strings.ToLower(filepath.Ext(fname)) {
	case extGzip:
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			_ = f.Close()
			return nil, readErrorf(fname, zerr)
		}
		return &source{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case extXZ:
		xr, xerr := xz.NewReader(f)
		if xerr != nil {
			_ = f.Close()
			return nil, readErrorf(fname, xerr)
		}
		return &source{Reader: xr, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// srcScanner walks an input stream line by line, tracking the current line
// number for diagnostics. Token mode splits lines on whitespace and skips
// blank and comment lines; raw mode hands lines back verbatim.
type srcScanner struct {
	sc     *bufio.Scanner
	name   string   // file path, used in error context only
	line   int      // 1-based line number of the most recent line
	fields []string // remaining tokens of the current line (token mode)
	next   int      // cursor into fields
}

// newSrcScanner wraps r; name is carried into every error message.
func newSrcScanner(r io.Reader, name string) *srcScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &srcScanner{sc: sc, name: name}
}

// rawLine returns the next line verbatim, including blanks and comments.
//
// Errors: ErrParse on premature end of file, ErrRead on stream failure.
func (s *srcScanner) rawLine() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", readErrorf(s.name, err)
		}
		return "", parseErrorf(s.name, s.line, "unexpected end of file")
	}
	s.line++

	return s.sc.Text(), nil
}

// token returns the next whitespace-delimited token, consuming blank lines
// and '%'-comment lines on the way.
//
// Errors: ErrParse on premature end of file, ErrRead on stream failure.
func (s *srcScanner) token() (string, error) {
	for s.next >= len(s.fields) {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return "", readErrorf(s.name, err)
			}
			return "", parseErrorf(s.name, s.line, "unexpected end of file")
		}
		s.line++

		text := s.sc.Text()
		if trimmed := strings.TrimSpace(text); trimmed == "" || trimmed[0] == commentPrefix {
			continue // skip blank and comment lines
		}
		s.fields = strings.Fields(text)
		s.next = 0
	}

	tok := s.fields[s.next]
	s.next++

	return tok, nil
}

// intToken parses the next token as a decimal integer.
func (s *srcScanner) intToken() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseErrorf(s.name, s.line, "unreadable integer field %q", tok)
	}

	return n, nil
}

// floatToken parses the next token as a double-precision value, tolerating
// Fortran-style D exponents and enforcing the numeric ingestion policy.
func (s *srcScanner) floatToken(o Options) (float64, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}

	return parseValue(s.name, s.line, tok, o)
}

// parseValue converts one textual field into a float64 under the numeric
// policy. Fortran producers write 1.0D+00 where Go expects 1.0E+00.
func parseValue(name string, line int, field string, o Options) (float64, error) {
	normalized := strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'E'
		}
		return r
	}, field)

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, parseErrorf(name, line, "unreadable field %q", field)
	}
	if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return 0, fmt.Errorf("matfile: %s:%d: value %q: %w", name, line, field, ErrNaNInf)
	}

	return v, nil
}
