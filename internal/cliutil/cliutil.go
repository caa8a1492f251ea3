// Package cliutil holds small helpers for positional command-line inputs.
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// StdinPath is the positional that selects standard input.
const StdinPath = "-"

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals. Literal
// paths are passed through unchanged; a glob that matches nothing is an error.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == StdinPath {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// CountStdin reports how many times "-" appears in paths.
func CountStdin(paths []string) int {
	n := 0
	for _, p := range paths {
		if p == StdinPath {
			n++
		}
	}
	return n
}
