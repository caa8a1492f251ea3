package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msasnp/internal/alignment"
	"msasnp/internal/composition"
	"msasnp/pkg/api"
)

func sample(t *testing.T) *alignment.Matrix {
	t.Helper()
	m, err := alignment.FromRecords([]alignment.Record{
		{Header: "s1 sample one", Seq: "ACGTA-"},
		{Header: "s2", Seq: "ACGA--"},
		{Header: "s3 third", Seq: "acCTT-"},
	}, alignment.Options{Source: "aln.fa"})
	require.NoError(t, err)
	return m
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatCBOR != "cbor" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
}

func TestSummaryHeader_Stable(t *testing.T) {
	const want = "input\trecords\tpositions\tcore_size\tsnps\tcore_snps\tgap\tmax_missing"
	if SummaryHeader != want {
		t.Fatalf("SummaryHeader changed:\n got:  %q\n want: %q", SummaryHeader, want)
	}
}

func TestToAPIReport(t *testing.T) {
	r := ToAPIReport(sample(t), ReportOptions{})
	assert.Equal(t, "aln.fa", r.Input)
	assert.Len(t, r.Digest, 64)
	assert.Equal(t, 3, r.Records)
	assert.Equal(t, 6, r.Positions)
	assert.Equal(t, "-", r.Gap)
	assert.Equal(t, 4, r.CoreSize)
	assert.Equal(t, 3, r.SNPs)
	assert.Equal(t, 2, r.CoreSNPs)
	assert.Equal(t, map[string]uint64{"-": 4, "A": 5, "C": 4, "G": 2, "T": 3}, r.Residues)
	assert.Nil(t, r.RecordStats)
	assert.Nil(t, r.Sites)
}

func TestToAPIReport_SitesAndRecords(t *testing.T) {
	r := ToAPIReport(sample(t), ReportOptions{Records: true, Sites: alignment.SitesSNP})
	require.Len(t, r.RecordStats, 3)
	assert.Equal(t, api.RecordV1{ID: "s1", Description: "sample one", BP: 6,
		Residues: map[string]uint64{"-": 1, "A": 2, "C": 1, "G": 1, "T": 1}}, r.RecordStats[0])
	assert.Equal(t, []api.SiteV1{
		{Pos: 2, Distinct: 2, SNP: true, Core: true},
		{Pos: 3, Distinct: 2, SNP: true, Core: true},
		{Pos: 4, Distinct: 2, Gaps: 1, SNP: true, Core: false},
	}, r.Sites)
}

func TestWriteReportText_Golden(t *testing.T) {
	var buf bytes.Buffer
	r := ToAPIReport(sample(t), ReportOptions{Records: true, Sites: alignment.SitesAll})
	require.NoError(t, WriteReportText(&buf, r, true))

	g := goldie.New(t)
	g.Assert(t, "report_text", buf.Bytes())
}

func TestWriteReportText_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReportText(&buf, ToAPIReport(sample(t), ReportOptions{}), false))
	assert.Equal(t, "aln.fa\t3\t6\t4\t3\t2\t-\t0\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	want := ToAPIReport(sample(t), ReportOptions{Sites: alignment.SitesCoreSNP})
	require.NoError(t, WriteJSON(&buf, []api.ReportV1{want}))
	var got []api.ReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
	assert.Contains(t, buf.String(), `"core_snps": 2`)
}

func TestWriteCBOR_Deterministic(t *testing.T) {
	r := ToAPIReport(sample(t), ReportOptions{Records: true})
	var a, b bytes.Buffer
	require.NoError(t, WriteCBOR(&a, []api.ReportV1{r}))
	require.NoError(t, WriteCBOR(&b, []api.ReportV1{r}))
	assert.Equal(t, a.Bytes(), b.Bytes())

	var got []api.ReportV1
	require.NoError(t, cbor.Unmarshal(a.Bytes(), &got))
	assert.Equal(t, []api.ReportV1{r}, got)
}

func TestWriteSiteFASTA(t *testing.T) {
	m := sample(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSiteFASTA(&buf, m, m.Sites(alignment.SitesCoreSNP)))
	assert.Equal(t, ">s1 sample one\nGT\n>s2\nGA\n>s3 third\nCT\n", buf.String())
}

func TestToAPIComposition(t *testing.T) {
	res, err := composition.Count("g.fa", alignment.NewSliceSource(
		alignment.Record{Header: "r1 d", Seq: "AAC"},
		alignment.Record{Header: "r2", Seq: "gg"},
	))
	require.NoError(t, err)
	c := ToAPIComposition(res)
	assert.Equal(t, "g.fa", c.Input)
	assert.EqualValues(t, 5, c.BP)
	assert.Equal(t, 2, c.Records)
	assert.Equal(t, map[string]uint64{"A": 2, "C": 1, "G": 2}, c.Residues)
	assert.Equal(t, "d", c.RecordStats[0].Description)

	var buf bytes.Buffer
	require.NoError(t, WriteCompositionText(&buf, []api.CompositionV1{c}, false))
	assert.Equal(t, "g.fa\tr1\t3\tA=2 C=1\ng.fa\tr2\t2\tG=2\ng.fa\t*\t5\tA=2 C=1 G=2\n", buf.String())
}

func TestFormatResidues(t *testing.T) {
	assert.Equal(t, "", FormatResidues(nil))
	assert.Equal(t, "-=2 A=1 N=3", FormatResidues(map[string]uint64{"N": 3, "A": 1, "-": 2}))
}
