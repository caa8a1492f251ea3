// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"

	"msasnp/internal/jsonutil"
)

// Start spins up a JSONL encoder goroutine for values of type T: one value per
// line, flushed after each so a slow alignment does not hold back earlier
// reports.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 8
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := jsonutil.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			if err = encode(enc, v); err == nil {
				err = bw.Flush()
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
