package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// WriteRulesJSON writes the rule catalog as formatted JSON. Detector
// functions are not serialized; the document lists metadata only.
func WriteRulesJSON(w io.Writer, catalog []taxonomy.Rule) error {
	if catalog == nil {
		catalog = []taxonomy.Rule{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Rules []taxonomy.Rule `json:"rules"`
	}{Rules: catalog})
}

// WriteRulesText writes the rule catalog as a styled table.
func WriteRulesText(w io.Writer, catalog []taxonomy.Rule) error {
	s := DefaultStyles()

	rows := make([][]string, 0, len(catalog))
	for _, r := range catalog {
		rows = append(rows, []string{
			r.ID,
			string(r.Category),
			string(r.Severity),
			fmt.Sprintf("%d", r.Weight),
			r.Description,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 2 && row >= 0 && row < len(rows) {
				return s.SeverityStyle(rows[row][2])
			}
			return lipgloss.NewStyle().PaddingRight(1)
		}).
		Headers("ID", "CATEGORY", "SEVERITY", "WEIGHT", "DESCRIPTION").
		Rows(rows...)

	fmt.Fprintln(w, t)
	fmt.Fprintf(w, "%s\n", s.Muted.Render(
		fmt.Sprintf("%d rule(s) across %d categories", len(catalog), len(taxonomy.Categories))))
	return nil
}
