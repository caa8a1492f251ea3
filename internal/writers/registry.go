// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"msasnp/internal/output"
	"msasnp/pkg/api"
)

// CompositionWriter renders a batch of composition results.
type CompositionWriter func(w io.Writer, list []api.CompositionV1, header bool) error

// Writer registry (format → handler). Register in init() blocks.
var compositionWriters = map[string]CompositionWriter{}

// RegisterComposition adds or replaces (last wins) the handler for format.
func RegisterComposition(format string, fn CompositionWriter) { compositionWriters[format] = fn }

// WriteComposition dispatches to the handler registered for format.
func WriteComposition(format string, w io.Writer, list []api.CompositionV1, header bool) error {
	fn, ok := compositionWriters[format]
	if !ok {
		return fmt.Errorf("unknown composition format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

// CompositionFormats lists the registered formats, sorted.
func CompositionFormats() []string {
	out := make([]string, 0, len(compositionWriters))
	for f := range compositionWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterComposition(output.FormatText, output.WriteCompositionText)
	RegisterComposition(output.FormatJSON, func(w io.Writer, list []api.CompositionV1, _ bool) error {
		return output.WriteCompositionJSON(w, list)
	})
	RegisterComposition(output.FormatCBOR, func(w io.Writer, list []api.CompositionV1, _ bool) error {
		if list == nil {
			list = []api.CompositionV1{}
		}
		return output.WriteCBOR(w, list)
	})
}
