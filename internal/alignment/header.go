package alignment

import "strings"

// ParseHeader splits a FASTA header into id (text up to the first whitespace)
// and description (the rest, leading whitespace trimmed). A leading '>' is
// dropped if the source left it in.
func ParseHeader(header string) (id, description string) {
	header = strings.TrimPrefix(strings.TrimSpace(header), ">")
	i := strings.IndexAny(header, " \t")
	if i < 0 {
		return header, ""
	}
	return header[:i], strings.TrimLeft(header[i+1:], " \t")
}
