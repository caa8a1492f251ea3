package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatCBOR  = "cbor"
	FormatFASTA = "fasta"
)

// Canonical header rows for text/TSV outputs. Keep these as the single source
// of truth; all writers should use them.
const (
	SummaryHeader     = "input\trecords\tpositions\tcore_size\tsnps\tcore_snps\tgap\tmax_missing"
	RecordHeader      = "id\tdescription\tbp\tresidues"
	SiteHeader        = "pos\tdistinct\tgaps\tsnp\tcore"
	CompositionHeader = "input\tid\tbp\tresidues"
)
