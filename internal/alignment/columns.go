package alignment

import (
	"math/bits"
	"sync"

	"msasnp/internal/runutil"
)

// DefaultGap marks missing data in a column.
const DefaultGap = '-'

// minColumnsPerWorker keeps tiny alignments on one goroutine.
const minColumnsPerWorker = 4096

// Column is the classification of one alignment position.
type Column struct {
	Distinct int  // distinct non-gap residues
	Gaps     int  // records holding the gap symbol
	HasGap   bool // Gaps > 0
	SNP      bool // Distinct >= 2
	Core     bool // Gaps <= MaxMissing (strict: no gaps at all)
}

// CoreSNP reports a SNP column that is also core.
func (c Column) CoreSNP() bool { return c.SNP && c.Core }

// ColumnOptions tunes the column pass.
type ColumnOptions struct {
	Gap        byte // 0 means DefaultGap
	MaxMissing int  // gapped records tolerated in a core column; 0 is strict
	Threads    int  // <= 1 runs serially
}

// ColumnStats holds one Column per position plus cached totals.
type ColumnStats struct {
	cols       []Column
	coreSize   int
	numSNP     int
	numCoreSNP int
}

// ComputeColumns classifies every position of s in one pass over
// records × positions. Positions are split into contiguous ranges, one per
// worker; each worker scans rows left to right over its own range and writes
// only cols[lo:hi], so results are already in position order and the store
// is only ever read.
func ComputeColumns(s *Store, opt ColumnOptions) *ColumnStats {
	gap := upper(opt.Gap)
	if gap == 0 {
		gap = DefaultGap
	}
	maxMissing := opt.MaxMissing
	if maxMissing < 0 {
		maxMissing = 0
	}

	cols := make([]Column, s.numPositions)
	ranges := runutil.SplitRange(s.numPositions, opt.Threads, minColumnsPerWorker)
	if len(ranges) <= 1 {
		scanColumns(s, cols, 0, s.numPositions, gap, maxMissing)
	} else {
		var wg sync.WaitGroup
		wg.Add(len(ranges))
		for _, rg := range ranges {
			go func(lo, hi int) {
				defer wg.Done()
				scanColumns(s, cols, lo, hi, gap, maxMissing)
			}(rg.Lo, rg.Hi)
		}
		wg.Wait()
	}

	st := &ColumnStats{cols: cols}
	for _, c := range cols {
		if c.Core {
			st.coreSize++
		}
		if c.SNP {
			st.numSNP++
		}
		if c.CoreSNP() {
			st.numCoreSNP++
		}
	}
	return st
}

func scanColumns(s *Store, cols []Column, lo, hi int, gap byte, maxMissing int) {
	if lo >= hi {
		return
	}
	seen := make([][4]uint64, hi-lo)
	out := cols[lo:hi]
	for r := 0; r < s.numRecords; r++ {
		for j, c := range s.row(r)[lo:hi] {
			if c == gap {
				out[j].Gaps++
				continue
			}
			seen[j][c>>6] |= 1 << (c & 63)
		}
	}
	for j := range out {
		set := &seen[j]
		c := &out[j]
		c.Distinct = bits.OnesCount64(set[0]) + bits.OnesCount64(set[1]) +
			bits.OnesCount64(set[2]) + bits.OnesCount64(set[3])
		c.HasGap = c.Gaps > 0
		c.SNP = c.Distinct >= 2
		c.Core = c.Gaps <= maxMissing
	}
}

func (cs *ColumnStats) Len() int        { return len(cs.cols) }
func (cs *ColumnStats) CoreSize() int   { return cs.coreSize }
func (cs *ColumnStats) NumSNP() int     { return cs.numSNP }
func (cs *ColumnStats) NumCoreSNP() int { return cs.numCoreSNP }

// At returns the classification of position p.
func (cs *ColumnStats) At(p int) (Column, error) {
	if err := checkIndex(AxisPosition, p, len(cs.cols)); err != nil {
		return Column{}, err
	}
	return cs.cols[p], nil
}
