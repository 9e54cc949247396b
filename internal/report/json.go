// Package report provides output formatters for Scrutiny review
// reports in JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// WriteJSON writes the full review report as formatted JSON. The
// document mirrors the data model exactly, with no fields omitted,
// so CI tooling can parse every number the engine computed.
func WriteJSON(w io.Writer, rpt *taxonomy.ReviewReport) error {
	out := *rpt
	if out.Files == nil {
		out.Files = []taxonomy.ReviewedFile{}
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&out)
}
