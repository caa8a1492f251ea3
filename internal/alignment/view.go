package alignment

import "iter"

// SequenceView is a read-only window onto one record's row of a Store. It
// owns no residues; it is an index plus references back into the matrix, so
// it stays valid exactly as long as the matrix that issued it is reachable.
type SequenceView struct {
	store       *Store
	tally       *Tally
	index       int
	id          string
	description string
}

func newView(s *Store, t *Tally, index int) SequenceView {
	id, desc := ParseHeader(s.headers[index])
	return SequenceView{store: s, tally: t, index: index, id: id, description: desc}
}

func (v SequenceView) Index() int          { return v.index }
func (v SequenceView) ID() string          { return v.id }
func (v SequenceView) Description() string { return v.description }
func (v SequenceView) Header() string      { return v.store.headers[v.index] }
func (v SequenceView) Len() int            { return v.store.numPositions }

// At returns the residue at position p.
func (v SequenceView) At(p int) (byte, error) {
	return v.store.ResidueAt(v.index, p)
}

// Residues yields (position, residue) pairs over [0, Len()). Each call starts
// a fresh pass.
func (v SequenceView) Residues() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for p, c := range v.store.row(v.index) {
			if !yield(p, c) {
				return
			}
		}
	}
}

// ResidueCount is the number of times sym (case-insensitive) occurs in the record.
func (v SequenceView) ResidueCount(sym byte) uint64 { return v.tally.Count(sym) }

// String copies the record's residues.
func (v SequenceView) String() string { return string(v.store.row(v.index)) }
