package review

import (
	"fmt"
	"sort"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// focusAreaLimit is how many low-scoring categories get a targeted
// recommendation.
const focusAreaLimit = 2

// Recommend derives prioritized guidance from the aggregate summary.
// All applicable messages are emitted, in fixed priority order, so
// output is deterministic. selectedRules is the size of the rule
// selection; an empty selection gets an explicit note so a vacuous
// 100 is distinguishable from a genuinely clean suite.
func Recommend(s taxonomy.ReviewSummary, selectedRules int) []string {
	if s.TotalFiles == 0 {
		return []string{
			"No test files found. Add tests before worrying about their quality.",
		}
	}

	var recs []string

	if n := s.ViolationsByCategory[taxonomy.Theater]; n > 0 {
		recs = append(recs, fmt.Sprintf(
			"Testing theater detected: %d violation(s) where tests run code but verify nothing. These tests give false confidence.", n))
	}
	if n := s.ViolationsByCategory[taxonomy.Flaky]; n > 3 {
		recs = append(recs, fmt.Sprintf(
			"%d flakiness violation(s) will erode trust in CI. Remove timing, randomness, and network dependencies first.", n))
	}
	if n := s.ViolationsByCategory[taxonomy.OverMocking]; n > 2 {
		recs = append(recs, fmt.Sprintf(
			"Over-mocking in %d place(s): these tests verify mock wiring, not behavior. Mock at process boundaries only.", n))
	}
	if n := s.ViolationsByCategory[taxonomy.Isolation]; n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d isolation violation(s): tests are leaking state. Add cleanup hooks so order and parallelism stop mattering.", n))
	}
	if s.OverallScore < 60 {
		recs = append(recs, fmt.Sprintf(
			"Overall score is %d/100. Prioritize fixing error-severity violations before adding new tests.", s.OverallScore))
	}
	if s.TotalTests > 0 && s.TotalAssertions < s.TotalTests {
		recs = append(recs, fmt.Sprintf(
			"Low assertion density: %d assertion(s) across %d test(s). Tests without assertions only prove the code doesn't crash.",
			s.TotalAssertions, s.TotalTests))
	}
	if s.OverallScore >= 80 {
		recs = append(recs, fmt.Sprintf(
			"Test quality is strong (%d/100). Keep the bar where it is.", s.OverallScore))
	}
	if s.TotalViolations == 0 {
		recs = append(recs, "No issues found across the reviewed files.")
	}

	recs = append(recs, focusAreas(s.Categories)...)

	if selectedRules == 0 {
		recs = append(recs,
			"Note: the current filters selected zero rules, so no file was actually evaluated.")
	}
	return recs
}

// focusAreas returns targeted messages for the lowest-scoring
// categories that have at least one violation and score below 70.
func focusAreas(categories []taxonomy.CategoryScore) []string {
	candidates := make([]taxonomy.CategoryScore, 0, len(categories))
	for _, c := range categories {
		if c.Violations > 0 && c.Score < 70 {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	if len(candidates) > focusAreaLimit {
		candidates = candidates[:focusAreaLimit]
	}

	var recs []string
	for _, c := range candidates {
		recs = append(recs, fmt.Sprintf(
			"Focus area: %s scored %d/100 with %d violation(s). %s.",
			c.Category, c.Score, c.Violations, c.Description))
	}
	return recs
}
