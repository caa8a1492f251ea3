package output

import (
	"bufio"
	"fmt"
	"io"

	"msasnp/internal/alignment"
)

// WriteSiteFASTA writes one record per alignment row holding only the residues
// at sites (ascending positions), i.e. a SNP-only alignment when sites are
// the core SNPs. Headers are written back as read.
func WriteSiteFASTA(w io.Writer, m *alignment.Matrix, sites []int) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, len(sites))
	for _, v := range m.Records() {
		for i, p := range sites {
			c, err := v.At(p)
			if err != nil {
				return err
			}
			row[i] = c
		}
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", v.Header(), row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
