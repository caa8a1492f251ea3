package alignment

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches any *FormatError via errors.Is.
	ErrFormat = errors.New("alignment format error")
	// ErrIndex matches any *IndexError via errors.Is.
	ErrIndex = errors.New("alignment index out of range")
)

// FormatError reports input that cannot form an alignment: no records at all,
// or a record whose length differs from the first record's.
type FormatError struct {
	Source string
	Record int    // ingestion index of the offending record; -1 for empty input
	ID     string // id of the offending record
	Want   int
	Got    int
}

func (e *FormatError) Error() string {
	src := e.Source
	if src == "" {
		src = "<input>"
	}
	if e.Record < 0 {
		return fmt.Sprintf("%s: no sequences in alignment", src)
	}
	return fmt.Sprintf("%s: record %d (%s) has %d positions, want %d: sequences are not all the same length",
		src, e.Record, e.ID, e.Got, e.Want)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Axis names used by IndexError.
const (
	AxisRecord   = "record"
	AxisPosition = "position"
)

// IndexError reports an out-of-range record or position.
type IndexError struct {
	Axis  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Axis, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndex }

func checkIndex(axis string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Axis: axis, Index: i, Len: n}
	}
	return nil
}
