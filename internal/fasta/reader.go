// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrUnreadable matches any *UnreadableSourceError via errors.Is.
var ErrUnreadable = errors.New("unreadable sequence source")

// UnreadableSourceError reports a source that could not be opened, decoded
// or scanned. Line is 0 when the failure is not tied to a line.
type UnreadableSourceError struct {
	Path string
	Line int
	Err  error
}

func (e *UnreadableSourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *UnreadableSourceError) Unwrap() error        { return e.Err }
func (e *UnreadableSourceError) Is(target error) bool { return target == ErrUnreadable }

// Record is one de-wrapped FASTA entry; Header excludes the '>' marker.
type Record struct {
	Header string
	Seq    []byte
}

// Reader pulls records one at a time. It satisfies alignment.Source.
type Reader struct {
	ctx    context.Context
	path   string
	rc     io.Closer
	sc     *bufio.Scanner
	line   int
	header string
	have   bool
	seq    []byte
}

// Open opens path ("-" for stdin; gzip and zstd are detected) for reading.
func Open(ctx context.Context, path string) (*Reader, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &UnreadableSourceError{Path: path, Err: err}
	}
	r := NewReader(ctx, path, rc)
	r.rc = rc
	return r, nil
}

// NewReader scans FASTA from an already open stream; name is used in errors.
func NewReader(ctx context.Context, name string, in io.Reader) *Reader {
	sc := bufio.NewScanner(in)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{ctx: ctx, path: name, sc: sc, seq: make([]byte, 0, 1<<16)}
}

// Next returns the next record; each call hands back a fresh slice. It
// returns io.EOF when the input is exhausted and ctx.Err() if the context is
// canceled.
func (r *Reader) Next() (string, []byte, error) {
	for r.sc.Scan() {
		select {
		case <-r.ctx.Done():
			return "", nil, r.ctx.Err()
		default:
		}
		r.line++
		line := bytes.TrimSpace(r.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			hdr := string(bytes.TrimSpace(line[1:]))
			if r.have {
				out := r.header
				r.header = hdr
				seq := r.seq
				r.seq = make([]byte, 0, cap(seq))
				return out, seq, nil
			}
			r.header, r.have = hdr, true
			continue
		}
		if !r.have {
			return "", nil, &UnreadableSourceError{Path: r.path, Line: r.line, Err: errors.New("sequence data before the first '>' header")}
		}
		r.seq = append(r.seq, line...)
	}
	if err := r.sc.Err(); err != nil {
		return "", nil, &UnreadableSourceError{Path: r.path, Line: r.line, Err: fmt.Errorf("fasta scan: %w", err)}
	}
	if r.have {
		r.have = false
		seq := r.seq
		r.seq = nil
		return r.header, seq, nil
	}
	return "", nil, io.EOF
}

// Path is the name the reader was opened with.
func (r *Reader) Path() string { return r.path }

// Close releases the underlying file, decompressor or memory map.
func (r *Reader) Close() error {
	if r.rc == nil {
		return nil
	}
	err := r.rc.Close()
	r.rc = nil
	return err
}

// ReadAll opens path and collects every record.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	r, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var out []Record
	for {
		hdr, seq, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Record{Header: hdr, Seq: seq})
	}
}
