// Package logging builds the leveled stderr logger shared by all commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when neither a flag nor the config names a level.
const DefaultLevel = "info"

// ParseLevel maps a level name to a log.Level. The empty string is info.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// New returns a logger writing to w. quiet forces the error level.
func New(w io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "msasnp",
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
