// Package composition counts residues per record and per file without
// requiring the records to be aligned.
package composition

import (
	"io"

	"msasnp/internal/alignment"
)

// RecordCounts is the composition of one record.
type RecordCounts struct {
	ID          string
	Description string
	Tally       alignment.Tally
}

// Result is the composition of one input.
type Result struct {
	Input   string
	Records []RecordCounts
	Total   alignment.Tally
}

// Count drains src; src errors are returned unchanged.
func Count(input string, src alignment.Source) (Result, error) {
	res := Result{Input: input}
	for {
		hdr, seq, err := src.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return Result{}, err
		}
		rc := RecordCounts{}
		rc.ID, rc.Description = alignment.ParseHeader(hdr)
		rc.Tally.Add(seq)
		res.Total.Merge(&rc.Tally)
		res.Records = append(res.Records, rc)
	}
}
