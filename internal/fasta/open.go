// internal/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// mappedFile serves a read-only memory map of a plain file.
type mappedFile struct {
	*bytes.Reader
	m  mmap.MMap
	fh *os.File
}

func (f *mappedFile) Close() error {
	err := f.m.Unmap()
	if cerr := f.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// openReader handles "-" (stdin), gzip and zstd (by magic number or suffix),
// and memory-maps everything else.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		br := bufio.NewReaderSize(os.Stdin, 1<<20)
		sig, _ := br.Peek(len(zstdMagic))
		return decompress(br, sig, "", nopCloser{})
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if isCompressed(sig[:n], path) {
		return decompress(fh, sig[:n], path, fh)
	}
	return mapFile(fh)
}

func isCompressed(sig []byte, path string) bool {
	return bytes.HasPrefix(sig, gzipMagic) || bytes.HasPrefix(sig, zstdMagic) ||
		strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".zst")
}

func decompress(r io.Reader, sig []byte, path string, under io.Closer) (io.ReadCloser, error) {
	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(r)
		if err != nil {
			_ = under.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, under}}, nil
	case bytes.HasPrefix(sig, zstdMagic) || strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			_ = under.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: dec, closers: []io.Closer{dec.IOReadCloser(), under}}, nil
	}
	return &multiReadCloser{Reader: r, closers: []io.Closer{under}}, nil
}

func mapFile(fh *os.File) (io.ReadCloser, error) {
	fi, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	// mmap cannot map empty files, and pipes/devices have no size.
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return fh, nil
	}
	m, err := mmap.Map(fh, mmap.RDONLY, 0)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &mappedFile{Reader: bytes.NewReader(m), m: m, fh: fh}, nil
}
