package alignment

import (
	"io"

	"github.com/zeebo/blake3"
)

// initialRows sizes the first buffer allocation; the buffer grows by append
// afterwards since the record count is unknown until the source is drained.
const initialRows = 16

// Store is the sole owner of the residue buffer. Record r occupies
// buf[r*numPositions : (r+1)*numPositions]; nothing else addresses it.
type Store struct {
	source       string
	numRecords   int
	numPositions int
	headers      []string
	buf          []byte
	digest       [32]byte
}

// BuildStore drains src exactly once. It fails with *FormatError when src
// yields no records or when any record's length differs from the first one;
// errors from src itself are returned unchanged. No partial store escapes.
func BuildStore(name string, src Source) (*Store, error) {
	s := &Store{source: name}
	for {
		hdr, seq, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if s.numRecords == 0 {
			s.numPositions = len(seq)
			s.buf = make([]byte, 0, len(seq)*initialRows)
		} else if len(seq) != s.numPositions {
			id, _ := ParseHeader(hdr)
			return nil, &FormatError{Source: name, Record: s.numRecords, ID: id, Want: s.numPositions, Got: len(seq)}
		}
		start := len(s.buf)
		s.buf = append(s.buf, seq...)
		foldUpper(s.buf[start:])
		s.headers = append(s.headers, hdr)
		s.numRecords++
	}
	if s.numRecords == 0 {
		return nil, &FormatError{Source: name, Record: -1}
	}
	s.digest = blake3.Sum256(s.buf)
	return s, nil
}

func (s *Store) Source() string    { return s.source }
func (s *Store) NumRecords() int   { return s.numRecords }
func (s *Store) NumPositions() int { return s.numPositions }

// Digest is the BLAKE3 hash of the case-folded buffer in record order.
func (s *Store) Digest() [32]byte { return s.digest }

// ResidueAt returns the residue of record r at position p.
func (s *Store) ResidueAt(r, p int) (byte, error) {
	if err := checkIndex(AxisRecord, r, s.numRecords); err != nil {
		return 0, err
	}
	if err := checkIndex(AxisPosition, p, s.numPositions); err != nil {
		return 0, err
	}
	return s.buf[s.offset(r, p)], nil
}

// Header returns the raw header of record r.
func (s *Store) Header(r int) (string, error) {
	if err := checkIndex(AxisRecord, r, s.numRecords); err != nil {
		return "", err
	}
	return s.headers[r], nil
}

func (s *Store) offset(r, p int) int { return r*s.numPositions + p }

// row is the unchecked slice of record r; callers validate r first.
func (s *Store) row(r int) []byte {
	start := s.offset(r, 0)
	return s.buf[start : start+s.numPositions : start+s.numPositions]
}

func foldUpper(b []byte) {
	for i, c := range b {
		b[i] = upper(c)
	}
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
