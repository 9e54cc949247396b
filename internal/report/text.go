package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// maxViolationsShown caps per-file violation detail in verbose mode;
// the remainder is reported as an overflow count.
const maxViolationsShown = 5

// progressBarWidth is the character width of category score bars.
const progressBarWidth = 20

// WriteText writes the review report as human-readable styled text.
// Formatting is presentation-only; no scoring happens here. When
// verbose is set, per-file detail is appended, sorted worst-first.
func WriteText(w io.Writer, rpt *taxonomy.ReviewReport, verbose bool) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render("=== Test Quality Review ==="))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    %s", rpt.RootDir)))
	fmt.Fprintln(w)

	// Overall score.
	overall := rpt.Summary.OverallScore
	fmt.Fprintf(w, "%s  %s\n", s.Label.Render("Overall score:"),
		s.ScoreStyle(overall).Render(fmt.Sprintf("%d/100", overall)))
	fmt.Fprintln(w)

	writeStatistics(w, rpt, s)
	writeCategoryBars(w, rpt.Summary.Categories, s)
	writeSeverityBreakdown(w, rpt.Summary.ViolationsBySeverity, s)
	writeTopIssues(w, rpt.Summary.TopIssues, s)
	writeRecommendations(w, rpt.Recommendations, s)

	if verbose {
		writeFileDetail(w, rpt.Files, s)
	}
	return nil
}

func writeStatistics(w io.Writer, rpt *taxonomy.ReviewReport, s Styles) {
	fmt.Fprintln(w, s.Header.Render("--- Statistics ---"))
	fmt.Fprintf(w, "%s  %d\n", s.Label.Render("Files reviewed:"), rpt.Summary.TotalFiles)
	fmt.Fprintf(w, "%s  %d\n", s.Label.Render("Tests:"), rpt.Summary.TotalTests)
	fmt.Fprintf(w, "%s  %d\n", s.Label.Render("Assertions:"), rpt.Summary.TotalAssertions)
	fmt.Fprintf(w, "%s  %d\n", s.Label.Render("Violations:"), rpt.Summary.TotalViolations)
	fmt.Fprintln(w)
}

func writeCategoryBars(w io.Writer, categories []taxonomy.CategoryScore, s Styles) {
	if len(categories) == 0 {
		return
	}
	fmt.Fprintln(w, s.Header.Render("--- Categories ---"))
	for _, c := range categories {
		bar := progressBar(c.Score)
		fmt.Fprintf(w, "  %-16s %s %s  %s\n",
			string(c.Category),
			s.ScoreStyle(c.Score).Render(bar),
			s.ScoreStyle(c.Score).Render(fmt.Sprintf("%3d", c.Score)),
			s.Muted.Render(fmt.Sprintf("(%d violation(s), weight %d)", c.Violations, c.Weight)))
	}
	fmt.Fprintln(w)
}

// progressBar renders a fixed-width bar for a 0-100 score.
func progressBar(score int) string {
	filled := score * progressBarWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
}

func writeSeverityBreakdown(w io.Writer, bySeverity map[taxonomy.Severity]int, s Styles) {
	if len(bySeverity) == 0 {
		return
	}
	fmt.Fprintln(w, s.Header.Render("--- Severity ---"))
	for _, sev := range []taxonomy.Severity{
		taxonomy.SeverityError, taxonomy.SeverityWarning, taxonomy.SeverityInfo,
	} {
		fmt.Fprintf(w, "  %s  %d\n",
			s.SeverityStyle(string(sev)).Render(fmt.Sprintf("%-8s", string(sev))),
			bySeverity[sev])
	}
	fmt.Fprintln(w)
}

func writeTopIssues(w io.Writer, issues []taxonomy.IssueCount, s Styles) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(w, s.Header.Render("--- Top Issues ---"))

	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{
			issue.RuleID,
			string(issue.Severity),
			fmt.Sprintf("%d", issue.Count),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 1 && row >= 0 && row < len(rows) {
				return s.SeverityStyle(rows[row][1])
			}
			return lipgloss.NewStyle().PaddingRight(1)
		}).
		Headers("RULE", "SEVERITY", "COUNT").
		Rows(rows...)

	fmt.Fprintln(w, t)
	fmt.Fprintln(w)
}

func writeRecommendations(w io.Writer, recs []string, s Styles) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintln(w, s.Header.Render("--- Recommendations ---"))
	for _, r := range recs {
		fmt.Fprintf(w, "  - %s\n", r)
	}
	fmt.Fprintln(w)
}

// writeFileDetail lists per-file results sorted worst-first, capping
// each file's violations at maxViolationsShown plus an overflow count.
func writeFileDetail(w io.Writer, files []taxonomy.ReviewedFile, s Styles) {
	if len(files) == 0 {
		return
	}
	sorted := make([]taxonomy.ReviewedFile, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score < sorted[j].Score
		}
		return sorted[i].Path < sorted[j].Path
	})

	fmt.Fprintln(w, s.Header.Render("--- Files (worst first) ---"))
	for _, f := range sorted {
		fmt.Fprintf(w, "\n  %s  %s\n",
			s.ScoreStyle(f.Score).Render(fmt.Sprintf("%3d", f.Score)),
			f.Path)
		fmt.Fprintf(w, "       %s\n", s.Muted.Render(f.Summary))

		shown := f.Violations
		if len(shown) > maxViolationsShown {
			shown = shown[:maxViolationsShown]
		}
		for _, v := range shown {
			loc := ""
			if v.Line > 0 {
				loc = fmt.Sprintf(":%d", v.Line)
			}
			fmt.Fprintf(w, "       - %s%s  %s\n", v.RuleID, loc, v.Message)
			if v.Snippet != "" {
				fmt.Fprintf(w, "         %s\n", s.Muted.Render(v.Snippet))
			}
		}
		if overflow := len(f.Violations) - maxViolationsShown; overflow > 0 {
			fmt.Fprintf(w, "       %s\n",
				s.Muted.Render(fmt.Sprintf("... and %d more", overflow)))
		}
	}
	fmt.Fprintln(w)
}
