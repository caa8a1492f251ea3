package runutil

import "runtime"

// EffectiveThreads resolves a --threads value: n > 0 is used as-is,
// anything else means all CPUs.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Range is a half-open interval [Lo, Hi).
type Range struct{ Lo, Hi int }

// SplitRange cuts [0, n) into at most parts contiguous ranges of near-equal
// size, none smaller than minSize (except when n itself is smaller).
// Ranges are returned in ascending order and cover [0, n) exactly.
func SplitRange(n, parts, minSize int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if minSize < 1 {
		minSize = 1
	}
	if limit := n / minSize; parts > limit {
		parts = limit
	}
	if parts < 1 {
		parts = 1
	}
	out := make([]Range, 0, parts)
	step, rem := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + step
		if i < rem {
			hi++
		}
		out = append(out, Range{Lo: lo, Hi: hi})
		lo = hi
	}
	return out
}
