package alignment

import "io"

// Source yields (header, sequence) pairs in file order. Headers carry no '>'
// marker and sequences are already joined from wrapped lines. Next returns
// io.EOF once the stream is exhausted; any other error is handed back to the
// caller of FromAligned unchanged.
type Source interface {
	Next() (header string, seq []byte, err error)
}

// Record is an in-memory (header, sequence) pair.
type Record struct {
	Header string
	Seq    string
}

// SliceSource serves records from memory.
type SliceSource struct {
	recs []Record
	pos  int
}

func NewSliceSource(recs ...Record) *SliceSource { return &SliceSource{recs: recs} }

func (s *SliceSource) Next() (string, []byte, error) {
	if s.pos >= len(s.recs) {
		return "", nil, io.EOF
	}
	r := s.recs[s.pos]
	s.pos++
	return r.Header, []byte(r.Seq), nil
}
