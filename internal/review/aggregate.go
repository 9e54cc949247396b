package review

import (
	"math"
	"sort"

	"github.com/unbound-force/scrutiny/internal/rules"
	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// topIssueLimit caps the ranked issue list.
const topIssueLimit = 10

// Aggregate combines per-file reviews into a project-level summary.
//
// Aggregate category scores are arithmetic means of the per-file
// category scores, and the overall score is the mean of per-file
// overall scores. The two are computed independently and do not
// satisfy the weighted-sum relationship that holds per file; that
// divergence is deliberate (each file is an independent judgment).
//
// Zero files reviewed yields an overall score of 0 with all counts
// zero: "nothing was evaluated" is distinct from a perfect score.
func Aggregate(files []taxonomy.ReviewedFile, selected []taxonomy.Rule) taxonomy.ReviewSummary {
	byCategory := make(map[taxonomy.Category]int, len(taxonomy.Categories))
	for _, cat := range taxonomy.Categories {
		byCategory[cat] = 0
	}
	bySeverity := map[taxonomy.Severity]int{
		taxonomy.SeverityError:   0,
		taxonomy.SeverityWarning: 0,
		taxonomy.SeverityInfo:    0,
	}

	summary := taxonomy.ReviewSummary{
		TotalFiles:           len(files),
		ViolationsByCategory: byCategory,
		ViolationsBySeverity: bySeverity,
	}

	scoreSum := 0
	catScoreSum := make(map[taxonomy.Category]int)
	catDeduction := make(map[taxonomy.Category]float64)
	occurrences := make(map[string]int)

	for _, f := range files {
		summary.TotalTests += f.TestCount
		summary.TotalAssertions += f.AssertionCount
		summary.TotalViolations += len(f.Violations)
		scoreSum += f.Score

		for _, c := range f.Categories {
			catScoreSum[c.Category] += c.Score
			catDeduction[c.Category] += c.ActualDeduction
		}
		for _, v := range f.Violations {
			occurrences[v.RuleID]++
			if r, ok := rules.ByID(v.RuleID); ok {
				byCategory[r.Category]++
				bySeverity[r.Severity]++
			}
		}
	}

	budget := make(map[taxonomy.Category]int)
	for _, r := range selected {
		budget[r.Category] += r.Weight
	}

	n := len(files)
	for _, cat := range taxonomy.Categories {
		score := 0
		if n > 0 {
			score = taxonomy.ClampScore(int(math.Round(
				float64(catScoreSum[cat]) / float64(n))))
		}
		summary.Categories = append(summary.Categories, taxonomy.CategoryScore{
			Category:        cat,
			Description:     taxonomy.CategoryDescriptions[cat],
			Score:           score,
			Weight:          taxonomy.CategoryWeights[cat],
			Violations:      byCategory[cat],
			MaxDeduction:    budget[cat],
			ActualDeduction: catDeduction[cat],
		})
	}

	if n > 0 {
		summary.OverallScore = taxonomy.ClampScore(int(math.Round(
			float64(scoreSum) / float64(n))))
	}

	summary.TopIssues = rankIssues(occurrences)
	return summary
}

// rankIssues orders violations by severity (error > warning > info),
// then by descending occurrence count, then by rule id so that two
// runs over identical inputs produce identical output. Truncated to
// the ten most significant.
func rankIssues(occurrences map[string]int) []taxonomy.IssueCount {
	issues := make([]taxonomy.IssueCount, 0, len(occurrences))
	for id, count := range occurrences {
		severity := taxonomy.SeverityInfo
		if r, ok := rules.ByID(id); ok {
			severity = r.Severity
		}
		issues = append(issues, taxonomy.IssueCount{
			RuleID:   id,
			Count:    count,
			Severity: severity,
		})
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Severity.Rank() != issues[j].Severity.Rank() {
			return issues[i].Severity.Rank() > issues[j].Severity.Rank()
		}
		if issues[i].Count != issues[j].Count {
			return issues[i].Count > issues[j].Count
		}
		return issues[i].RuleID < issues[j].RuleID
	})

	if len(issues) > topIssueLimit {
		issues = issues[:topIssueLimit]
	}
	return issues
}
