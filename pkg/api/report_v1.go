package api

// ReportV1 is the stable JSON/JSONL/CBOR schema for one analyzed alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Input      string            `json:"input"`
	Digest     string            `json:"digest"` // BLAKE3, hex, of the case-folded residues
	Records    int               `json:"records"`
	Positions  int               `json:"positions"`
	Gap        string            `json:"gap"`
	MaxMissing int               `json:"max_missing"`
	CoreSize   int               `json:"core_size"`
	SNPs       int               `json:"snps"`
	CoreSNPs   int               `json:"core_snps"`
	Residues   map[string]uint64 `json:"residues"`

	RecordStats []RecordV1 `json:"record_stats,omitempty"`
	Sites       []SiteV1   `json:"sites,omitempty"`
}

// RecordV1 is the composition of one record.
type RecordV1 struct {
	ID          string            `json:"id"`
	Description string            `json:"description,omitempty"`
	BP          uint64            `json:"bp"`
	Residues    map[string]uint64 `json:"residues"`
}

// SiteV1 is the classification of one alignment column. Pos is 0-based.
type SiteV1 struct {
	Pos      int  `json:"pos"`
	Distinct int  `json:"distinct"`
	Gaps     int  `json:"gaps"`
	SNP      bool `json:"snp"`
	Core     bool `json:"core"`
}

// CompositionV1 is the schema for the composition tool.
type CompositionV1 struct {
	Input       string            `json:"input"`
	BP          uint64            `json:"bp"`
	Records     int               `json:"records"`
	Residues    map[string]uint64 `json:"residues"`
	RecordStats []RecordV1        `json:"record_stats"`
}
