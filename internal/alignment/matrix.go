package alignment

import "fmt"

// Options configures FromAligned.
type Options struct {
	Source     string // name carried into errors and reports
	Gap        byte   // gap/missing-data symbol; 0 means DefaultGap
	MaxMissing int    // gapped records tolerated in a core column; 0 is strict
	Threads    int    // workers for the column pass
}

// Matrix is the read-only facade over a built alignment. There is no way to
// add or change records: any content change means building a new Matrix, so
// the store, tallies and column statistics can never disagree.
type Matrix struct {
	store   *Store
	tallies []Tally
	total   Tally
	views   []SequenceView
	cols    *ColumnStats
	gap     byte
	maxMiss int
}

// FromAligned builds the store from src, then the per-record and aggregate
// tallies, then the column statistics, in that order. Any failure returns a
// nil Matrix.
func FromAligned(src Source, opt Options) (*Matrix, error) {
	st, err := BuildStore(opt.Source, src)
	if err != nil {
		return nil, err
	}

	m := &Matrix{
		store:   st,
		tallies: make([]Tally, st.numRecords),
		views:   make([]SequenceView, st.numRecords),
		gap:     upper(opt.Gap),
		maxMiss: opt.MaxMissing,
	}
	if m.gap == 0 {
		m.gap = DefaultGap
	}
	if m.maxMiss < 0 {
		m.maxMiss = 0
	}
	for r := 0; r < st.numRecords; r++ {
		t := &m.tallies[r]
		t.Add(st.row(r))
		m.total.Merge(t)
		m.views[r] = newView(st, t, r)
	}
	m.cols = ComputeColumns(st, ColumnOptions{Gap: m.gap, MaxMissing: m.maxMiss, Threads: opt.Threads})
	return m, nil
}

// FromRecords is FromAligned over an in-memory record list.
func FromRecords(recs []Record, opt Options) (*Matrix, error) {
	return FromAligned(NewSliceSource(recs...), opt)
}

func (m *Matrix) Source() string    { return m.store.source }
func (m *Matrix) NumRecords() int   { return m.store.numRecords }
func (m *Matrix) NumPositions() int { return m.store.numPositions }
func (m *Matrix) Digest() [32]byte  { return m.store.digest }
func (m *Matrix) GapSymbol() byte   { return m.gap }
func (m *Matrix) MaxMissing() int   { return m.maxMiss }

// Store exposes the underlying store for read-only access.
func (m *Matrix) Store() *Store { return m.store }

// Record returns a view of record i.
func (m *Matrix) Record(i int) (SequenceView, error) {
	if err := checkIndex(AxisRecord, i, len(m.views)); err != nil {
		return SequenceView{}, err
	}
	return m.views[i], nil
}

// Records returns views of all records in ingestion order.
func (m *Matrix) Records() []SequenceView {
	return append([]SequenceView(nil), m.views...)
}

// ResidueCount is the count of sym in record i.
func (m *Matrix) ResidueCount(i int, sym byte) (uint64, error) {
	if err := checkIndex(AxisRecord, i, len(m.tallies)); err != nil {
		return 0, err
	}
	return m.tallies[i].Count(sym), nil
}

// RecordTally returns a copy of record i's tally.
func (m *Matrix) RecordTally(i int) (Tally, error) {
	if err := checkIndex(AxisRecord, i, len(m.tallies)); err != nil {
		return Tally{}, err
	}
	return m.tallies[i], nil
}

// Composition returns a copy of the whole-alignment tally.
func (m *Matrix) Composition() Tally { return m.total }

func (m *Matrix) Column(p int) (Column, error) { return m.cols.At(p) }

func (m *Matrix) IsSNP(p int) (bool, error) {
	c, err := m.cols.At(p)
	return c.SNP, err
}

func (m *Matrix) IsCore(p int) (bool, error) {
	c, err := m.cols.At(p)
	return c.Core, err
}

func (m *Matrix) IsCoreSNP(p int) (bool, error) {
	c, err := m.cols.At(p)
	return c.CoreSNP(), err
}

func (m *Matrix) CoreSize() int   { return m.cols.coreSize }
func (m *Matrix) NumSNP() int     { return m.cols.numSNP }
func (m *Matrix) NumCoreSNP() int { return m.cols.numCoreSNP }

// SiteKind selects positions for Sites.
type SiteKind string

const (
	SitesNone    SiteKind = "none"
	SitesSNP     SiteKind = "snp"
	SitesCoreSNP SiteKind = "core-snp"
	SitesCore    SiteKind = "core"
	SitesAll     SiteKind = "all"
)

// ParseSiteKind validates a site selector name.
func ParseSiteKind(s string) (SiteKind, error) {
	switch k := SiteKind(s); k {
	case SitesNone, SitesSNP, SitesCoreSNP, SitesCore, SitesAll:
		return k, nil
	}
	return "", fmt.Errorf("invalid site selection %q (want none|snp|core-snp|core|all)", s)
}

// Sites lists, in ascending order, the positions selected by kind.
func (m *Matrix) Sites(kind SiteKind) []int {
	var keep func(Column) bool
	switch kind {
	case SitesSNP:
		keep = func(c Column) bool { return c.SNP }
	case SitesCoreSNP:
		keep = Column.CoreSNP
	case SitesCore:
		keep = func(c Column) bool { return c.Core }
	case SitesAll:
		keep = func(Column) bool { return true }
	default:
		return nil
	}
	var out []int
	for p, c := range m.cols.cols {
		if keep(c) {
			out = append(out, p)
		}
	}
	return out
}
