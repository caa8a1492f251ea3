// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewEncoder returns a compact encoder that leaves '<', '>' and '&' unescaped;
// residue symbols are written verbatim.
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
