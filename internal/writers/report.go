package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"msasnp/internal/alignment"
	"msasnp/internal/jsonlutil"
	"msasnp/internal/output"
	"msasnp/pkg/api"
)

// ReportConfig controls how analyzed alignments are rendered.
type ReportConfig struct {
	Format string
	Header bool
	Report output.ReportOptions
	// FASTASites picks the columns written by the fasta format.
	FASTASites alignment.SiteKind
}

// StartReportWriter spins up a writer goroutine consuming built matrices in
// input order. text, jsonl and fasta stream; json and cbor buffer the reports
// (not the matrices) and write one array at the end. After a write error the
// goroutine keeps draining so senders never block.
func StartReportWriter(out io.Writer, cfg ReportConfig, bufSize int) (chan<- *alignment.Matrix, <-chan error) {
	if bufSize <= 0 {
		bufSize = 4
	}
	if cfg.Format == output.FormatJSONL {
		return startReportJSONL(out, cfg, bufSize)
	}

	in := make(chan *alignment.Matrix, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var (
			err     error
			reports []api.ReportV1
			n       int
		)
		for m := range in {
			if err != nil {
				continue
			}
			switch cfg.Format {
			case output.FormatJSON, output.FormatCBOR:
				reports = append(reports, output.ToAPIReport(m, cfg.Report))
			case output.FormatText:
				if n > 0 {
					_, err = fmt.Fprintln(out)
				}
				if err == nil {
					err = output.WriteReportText(out, output.ToAPIReport(m, cfg.Report), cfg.Header)
				}
			case output.FormatFASTA:
				err = output.WriteSiteFASTA(out, m, m.Sites(cfg.FASTASites))
			default:
				err = fmt.Errorf("unknown report format %q (no writer registered)", cfg.Format)
			}
			n++
		}
		if err == nil {
			switch cfg.Format {
			case output.FormatJSON:
				err = output.WriteJSON(out, reports)
			case output.FormatCBOR:
				if reports == nil {
					reports = []api.ReportV1{}
				}
				err = output.WriteCBOR(out, reports)
			case output.FormatText, output.FormatFASTA:
			default:
				err = fmt.Errorf("unknown report format %q (no writer registered)", cfg.Format)
			}
		}
		errCh <- err
	}()

	return in, errCh
}

// startReportJSONL streams each report as one JSON line (v1).
func startReportJSONL(out io.Writer, cfg ReportConfig, bufSize int) (chan<- *alignment.Matrix, <-chan error) {
	return jsonlutil.Start[*alignment.Matrix](out, bufSize,
		func(enc *json.Encoder, m *alignment.Matrix) error {
			return enc.Encode(output.ToAPIReport(m, cfg.Report))
		},
		IsBrokenPipe,
	)
}
