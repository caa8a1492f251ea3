package output

import (
	"encoding/hex"

	"msasnp/internal/alignment"
	"msasnp/internal/composition"
	"msasnp/pkg/api"
)

// ReportOptions selects the optional blocks of a report.
type ReportOptions struct {
	Records bool               // include per-record composition
	Sites   alignment.SiteKind // per-site rows; "" or none omits them
}

// ToAPIReport converts a built matrix to the stable wire schema (v1).
func ToAPIReport(m *alignment.Matrix, o ReportOptions) api.ReportV1 {
	digest := m.Digest()
	comp := m.Composition()
	r := api.ReportV1{
		Input:      m.Source(),
		Digest:     hex.EncodeToString(digest[:]),
		Records:    m.NumRecords(),
		Positions:  m.NumPositions(),
		Gap:        string(rune(m.GapSymbol())),
		MaxMissing: m.MaxMissing(),
		CoreSize:   m.CoreSize(),
		SNPs:       m.NumSNP(),
		CoreSNPs:   m.NumCoreSNP(),
		Residues:   comp.Map(),
	}
	if o.Records {
		r.RecordStats = make([]api.RecordV1, 0, m.NumRecords())
		for i, v := range m.Records() {
			t, _ := m.RecordTally(i)
			r.RecordStats = append(r.RecordStats, toAPIRecord(v.ID(), v.Description(), &t))
		}
	}
	for _, p := range m.Sites(o.Sites) {
		c, _ := m.Column(p)
		r.Sites = append(r.Sites, api.SiteV1{Pos: p, Distinct: c.Distinct, Gaps: c.Gaps, SNP: c.SNP, Core: c.Core})
	}
	return r
}

// ToAPIComposition converts a composition result to the wire schema (v1).
func ToAPIComposition(res composition.Result) api.CompositionV1 {
	out := api.CompositionV1{
		Input:       res.Input,
		BP:          res.Total.Total(),
		Records:     len(res.Records),
		Residues:    res.Total.Map(),
		RecordStats: make([]api.RecordV1, 0, len(res.Records)),
	}
	for i := range res.Records {
		rc := &res.Records[i]
		out.RecordStats = append(out.RecordStats, toAPIRecord(rc.ID, rc.Description, &rc.Tally))
	}
	return out
}

func toAPIRecord(id, desc string, t *alignment.Tally) api.RecordV1 {
	return api.RecordV1{ID: id, Description: desc, BP: t.Total(), Residues: t.Map()}
}
