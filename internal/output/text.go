package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"msasnp/pkg/api"
)

// FormatResidues renders counts as "A=3 C=1", sorted by symbol.
func FormatResidues(m map[string]uint64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%d", k, m[k])
	}
	return sb.String()
}

// FormatSummaryRow returns the summary columns (no trailing newline).
func FormatSummaryRow(r api.ReportV1) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d\t%d\t%s\t%d",
		r.Input, r.Records, r.Positions, r.CoreSize, r.SNPs, r.CoreSNPs, r.Gap, r.MaxMissing)
}

// WriteReportText writes one report as TSV: the summary row, then the record
// and site tables when present, each separated by a blank line.
func WriteReportText(w io.Writer, r api.ReportV1, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		fmt.Fprintln(bw, SummaryHeader)
	}
	fmt.Fprintln(bw, FormatSummaryRow(r))

	if len(r.RecordStats) > 0 {
		fmt.Fprintln(bw)
		if header {
			fmt.Fprintln(bw, RecordHeader)
		}
		for _, rec := range r.RecordStats {
			fmt.Fprintf(bw, "%s\t%s\t%d\t%s\n", rec.ID, rec.Description, rec.BP, FormatResidues(rec.Residues))
		}
	}
	if len(r.Sites) > 0 {
		fmt.Fprintln(bw)
		if header {
			fmt.Fprintln(bw, SiteHeader)
		}
		for _, s := range r.Sites {
			fmt.Fprintf(bw, "%d\t%d\t%d\t%t\t%t\n", s.Pos, s.Distinct, s.Gaps, s.SNP, s.Core)
		}
	}
	return bw.Flush()
}

// WriteCompositionText writes one row per record followed by a "*" row with
// the file totals.
func WriteCompositionText(w io.Writer, list []api.CompositionV1, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		fmt.Fprintln(bw, CompositionHeader)
	}
	for _, c := range list {
		for _, rec := range c.RecordStats {
			fmt.Fprintf(bw, "%s\t%s\t%d\t%s\n", c.Input, rec.ID, rec.BP, FormatResidues(rec.Residues))
		}
		fmt.Fprintf(bw, "%s\t*\t%d\t%s\n", c.Input, c.BP, FormatResidues(c.Residues))
	}
	return bw.Flush()
}
