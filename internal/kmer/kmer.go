// internal/kmer/kmer.go
package kmer

import "bytes"

var complement [256]byte

func init() {
	for _, p := range []string{
		"AT", "CG", "GC", "TA", "UA",
		"RY", "YR", "SS", "WW", "KM", "MK",
		"BV", "VB", "DH", "HD", "NN", "--",
	} {
		complement[p[0]] = p[1]
	}
}

// RevComp reverse-complements an upper-case sequence. Symbols outside the
// IUPAC table become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// Canonical upper-cases k and returns the lexicographically smaller of it and
// its reverse complement, so a k-mer and its reverse complement share a key.
func Canonical(k string) string {
	fwd := bytes.ToUpper([]byte(k))
	rev := RevComp(fwd)
	if bytes.Compare(rev, fwd) < 0 {
		return string(rev)
	}
	return string(fwd)
}
