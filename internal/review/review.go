// Package review applies selected rules to test files, computes
// per-file and per-category scores, aggregates project summaries,
// and derives recommendations.
package review

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/unbound-force/scrutiny/internal/rules"
	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Options configures a review run.
type Options struct {
	// Version is the Scrutiny version string for report metadata.
	Version string

	// Workers bounds the number of files reviewed concurrently.
	// Values below 1 fall back to the number of CPUs.
	Workers int

	// Stderr receives warnings about contained rule failures and
	// other non-fatal issues. If nil, warnings are suppressed.
	Stderr io.Writer
}

// File is one discovered test file with its already-loaded content.
// Reading files is the discovery collaborator's concern; the
// reviewer itself performs no I/O.
type File struct {
	Path    string
	Content string
}

// ReviewFile applies the selected rules to one file's content and
// produces the complete per-file result. It never fails: a detector
// panic is contained, logged, and treated as zero violations from
// that rule for this file.
func ReviewFile(content, filename string, selected []taxonomy.Rule, opts Options) taxonomy.ReviewedFile {
	var violations []taxonomy.Violation
	for _, rule := range selected {
		violations = append(violations, runDetector(rule, content, filename, opts.Stderr)...)
	}

	testCount := rules.CountTests(content)
	assertionCount := rules.CountAssertions(content)

	categories := scoreCategories(violations, selected)
	overall := overallScore(categories)

	return taxonomy.ReviewedFile{
		Path:           filename,
		Violations:     violations,
		Score:          overall,
		Categories:     categories,
		TestCount:      testCount,
		AssertionCount: assertionCount,
		Summary:        summarize(violations, overall, testCount, assertionCount),
	}
}

// runDetector invokes one rule's detector with panic containment.
// One rule's failure must be invisible to the other rules' results.
func runDetector(rule taxonomy.Rule, content, filename string, stderr io.Writer) (found []taxonomy.Violation) {
	defer func() {
		if r := recover(); r != nil {
			if stderr != nil {
				fmt.Fprintf(stderr, "warning: rule %s failed on %s: %v\n",
					rule.ID, filename, r)
			}
			found = nil
		}
	}()
	if rule.Detect == nil {
		return nil
	}
	return rule.Detect(content, filename)
}

// scoreCategories computes the seven CategoryScores in fixed
// category order. For each category, maxDeduction is the summed
// weight of the selected rules in it; every violation deducts its
// rule's weight scaled by the severity multiplier; the score is the
// deduction normalized against the budget.
func scoreCategories(violations []taxonomy.Violation, selected []taxonomy.Rule) []taxonomy.CategoryScore {
	budget := make(map[taxonomy.Category]int)
	ruleByID := make(map[string]taxonomy.Rule, len(selected))
	for _, r := range selected {
		budget[r.Category] += r.Weight
		ruleByID[r.ID] = r
	}

	deduction := make(map[taxonomy.Category]float64)
	count := make(map[taxonomy.Category]int)
	for _, v := range violations {
		r, ok := ruleByID[v.RuleID]
		if !ok {
			continue
		}
		deduction[r.Category] += float64(r.Weight) * r.Severity.Multiplier()
		count[r.Category]++
	}

	scores := make([]taxonomy.CategoryScore, 0, len(taxonomy.Categories))
	for _, cat := range taxonomy.Categories {
		score := 100
		if budget[cat] > 0 {
			raw := 100 - deduction[cat]/float64(budget[cat])*100
			score = taxonomy.ClampScore(int(math.Round(raw)))
		}
		scores = append(scores, taxonomy.CategoryScore{
			Category:        cat,
			Description:     taxonomy.CategoryDescriptions[cat],
			Score:           score,
			Weight:          taxonomy.CategoryWeights[cat],
			Violations:      count[cat],
			MaxDeduction:    budget[cat],
			ActualDeduction: deduction[cat],
		})
	}
	return scores
}

// overallScore is the weighted mean of the category scores. The
// seven category weights always sum to exactly 100.
func overallScore(categories []taxonomy.CategoryScore) int {
	sum := 0.0
	weights := 0
	for _, c := range categories {
		sum += float64(c.Score * c.Weight)
		weights += c.Weight
	}
	if weights == 0 {
		return 100
	}
	return taxonomy.ClampScore(int(math.Round(sum / float64(weights))))
}

// summarize produces the one-line per-file outcome.
func summarize(violations []taxonomy.Violation, score, tests, assertions int) string {
	if len(violations) == 0 {
		return fmt.Sprintf("Clean: %d test(s), %d assertion(s), no issues found",
			tests, assertions)
	}
	errors := 0
	warnings := 0
	for _, v := range violations {
		if r, ok := rules.ByID(v.RuleID); ok {
			switch r.Severity {
			case taxonomy.SeverityError:
				errors++
			case taxonomy.SeverityWarning:
				warnings++
			}
		}
	}
	parts := []string{}
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", errors))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", warnings))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d issue(s)", len(violations)))
	}
	return fmt.Sprintf("%s, score %d/100", strings.Join(parts, ", "), score)
}
