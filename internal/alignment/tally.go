package alignment

// Tally counts residues by upper-cased symbol. Any byte is a valid key; there
// is no alphabet check, so ambiguity codes and gaps are counted like bases.
type Tally struct {
	counts [256]uint64
	total  uint64
}

// Add counts every symbol of seq after upper-casing it.
func (t *Tally) Add(seq []byte) {
	for _, c := range seq {
		t.counts[upper(c)]++
	}
	t.total += uint64(len(seq))
}

// Merge adds all of o's counts into t.
func (t *Tally) Merge(o *Tally) {
	for i, n := range o.counts {
		t.counts[i] += n
	}
	t.total += o.total
}

// Count returns how often sym (case-insensitive) was seen; 0 if never.
func (t *Tally) Count(sym byte) uint64 { return t.counts[upper(sym)] }

// Total is the number of symbols counted.
func (t *Tally) Total() uint64 { return t.total }

// Symbols lists the seen symbols in byte order.
func (t *Tally) Symbols() []byte {
	var out []byte
	for i, n := range t.counts {
		if n > 0 {
			out = append(out, byte(i))
		}
	}
	return out
}

// Map returns the non-zero counts keyed by one-character strings.
func (t *Tally) Map() map[string]uint64 {
	m := make(map[string]uint64)
	for i, n := range t.counts {
		if n > 0 {
			m[string(rune(i))] = n
		}
	}
	return m
}
