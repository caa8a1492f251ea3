package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe, as
// seen when downstream consumers (like `head`) exit early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed))
}

// IgnoreBrokenPipe maps broken-pipe errors to nil and passes others through.
func IgnoreBrokenPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
