package output

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"msasnp/internal/jsonutil"
	"msasnp/pkg/api"
)

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []api.ReportV1) error {
	if list == nil {
		list = []api.ReportV1{}
	}
	return jsonutil.EncodePretty(w, list)
}

// WriteCompositionJSON writes a JSON array of v1 composition results.
func WriteCompositionJSON(w io.Writer, list []api.CompositionV1) error {
	if list == nil {
		list = []api.CompositionV1{}
	}
	return jsonutil.EncodePretty(w, list)
}

// cborMode uses Core Deterministic Encoding so identical inputs give
// byte-identical output (map keys sorted).
var cborMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// WriteCBOR encodes v (a report or composition list) as one CBOR item.
func WriteCBOR(w io.Writer, v any) error {
	return cborMode.NewEncoder(w).Encode(v)
}
