// Package taxonomy defines the rule category system, severity
// ordering, and the core data structures shared by the Scrutiny
// review pipeline.
package taxonomy

import (
	"encoding/json"
	"time"
)

// Category enumerates the seven fixed rule groupings. Every rule
// belongs to exactly one category.
type Category string

// Category constants.
const (
	Flaky           Category = "flaky"
	Theater         Category = "theater"
	OverMocking     Category = "over-mocking"
	Assertions      Category = "assertions"
	Isolation       Category = "isolation"
	Maintainability Category = "maintainability"
	Structure       Category = "structure"
)

// Categories lists all categories in their fixed scoring order.
var Categories = []Category{
	Flaky, Theater, OverMocking, Assertions,
	Isolation, Maintainability, Structure,
}

// CategoryWeights maps each category to its share of the overall
// score. The weights are fixed constants and always sum to 100.
var CategoryWeights = map[Category]int{
	Flaky:           20,
	Theater:         25,
	OverMocking:     15,
	Assertions:      15,
	Isolation:       10,
	Maintainability: 10,
	Structure:       5,
}

// CategoryDescriptions provides a one-line description per category
// for report output.
var CategoryDescriptions = map[Category]string{
	Flaky:           "Tests that depend on timing, randomness, or external state",
	Theater:         "Tests that run code but verify nothing",
	OverMocking:     "Tests that mock so much they test the mocks",
	Assertions:      "Weak or imprecise assertions",
	Isolation:       "Tests that leak state into each other",
	Maintainability: "Tests that are hard to read or keep current",
	Structure:       "Poorly organized test suites",
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	_, ok := CategoryWeights[c]
	return ok
}

// Severity classifies how strongly a rule's finding counts against
// the score.
type Severity string

// Severity constants, ordered info < warning < error.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// severityRank gives the total order used for filtering and for
// ranking top issues.
var severityRank = map[Severity]int{
	SeverityInfo:    0,
	SeverityWarning: 1,
	SeverityError:   2,
}

// Rank returns the numeric position of s in the severity order.
// Unknown severities rank below info.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether s is at or above the threshold min.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}

// Multiplier returns the deduction multiplier applied to a rule's
// weight when a violation of this severity is scored.
func (s Severity) Multiplier() float64 {
	switch s {
	case SeverityError:
		return 1.0
	case SeverityWarning:
		return 0.6
	default:
		return 0.3
	}
}

// DetectFunc is a pure lexical detector: it scans raw file content
// and returns every occurrence of one anti-pattern, in source order.
// Detectors must not perform I/O and must be deterministic; the
// filename is provided only for exemption logic (e.g. suppressing
// a rule for integration test files).
type DetectFunc func(content, filename string) []Violation

// Rule is one registered anti-pattern detector. Rules are created
// once at process start and are immutable for the process lifetime.
type Rule struct {
	// ID is the stable identifier, namespaced as "category/name"
	// (the over-mocking category uses the "mock" prefix).
	ID string `json:"id"`

	// Name is the short human-readable rule name.
	Name string `json:"name"`

	// Description explains what the rule detects.
	Description string `json:"description"`

	// Category is the rule's single category.
	Category Category `json:"category"`

	// Severity scales the rule's deduction.
	Severity Severity `json:"severity"`

	// Weight is the rule's maximum contribution to its category's
	// deduction budget (0-10).
	Weight int `json:"weight"`

	// Detect is the detector function. Never serialized.
	Detect DetectFunc `json:"-"`
}

// Violation is one occurrence of a rule firing on a specific file.
type Violation struct {
	// RuleID identifies the rule that fired.
	RuleID string `json:"rule_id"`

	// Message describes the specific occurrence.
	Message string `json:"message"`

	// Line is the 1-based source line of the match, 0 when unknown.
	Line int `json:"line,omitempty"`

	// Column is the 1-based column of the match, 0 when unknown.
	Column int `json:"column,omitempty"`

	// Snippet is the offending source line, trimmed.
	Snippet string `json:"snippet,omitempty"`

	// Suggestion is an optional remediation hint.
	Suggestion string `json:"suggestion,omitempty"`
}

// CategoryScore is the per-category scoring result for one file or
// for the aggregate summary.
type CategoryScore struct {
	// Category names the scored category.
	Category Category `json:"category"`

	// Description is the category's one-line description.
	Description string `json:"description"`

	// Score is the normalized 0-100 integer score.
	Score int `json:"score"`

	// Weight is the category's fixed share of the overall score.
	Weight int `json:"weight"`

	// Violations is the number of violations in this category.
	Violations int `json:"violations"`

	// MaxDeduction is the sum of weights of all selected rules in
	// this category.
	MaxDeduction int `json:"max_deduction"`

	// ActualDeduction is the severity-adjusted deduction incurred.
	ActualDeduction float64 `json:"actual_deduction"`
}

// ReviewedFile is the complete review outcome for one file. It is
// immutable after creation and recomputed from scratch on every run.
type ReviewedFile struct {
	// Path is the file path as supplied by discovery.
	Path string `json:"path"`

	// Violations lists every rule occurrence, in rule-registration
	// order then match order.
	Violations []Violation `json:"violations"`

	// Score is the weighted overall score for the file (0-100).
	Score int `json:"score"`

	// Categories holds the seven per-category scores, in fixed
	// category order.
	Categories []CategoryScore `json:"categories"`

	// TestCount is the number of test declarations found.
	TestCount int `json:"test_count"`

	// AssertionCount is the number of assertion calls found.
	AssertionCount int `json:"assertion_count"`

	// Summary is a one-line human-readable outcome.
	Summary string `json:"summary"`
}

// IssueCount is one entry in the ranked top-issues list.
type IssueCount struct {
	// RuleID identifies the rule.
	RuleID string `json:"rule_id"`

	// Count is the number of occurrences across all files.
	Count int `json:"count"`

	// Severity is the rule's severity.
	Severity Severity `json:"severity"`
}

// ReviewSummary holds project-level aggregate results.
type ReviewSummary struct {
	// TotalFiles is the number of files reviewed.
	TotalFiles int `json:"total_files"`

	// TotalTests is the sum of per-file test counts.
	TotalTests int `json:"total_tests"`

	// TotalAssertions is the sum of per-file assertion counts.
	TotalAssertions int `json:"total_assertions"`

	// TotalViolations is the sum of per-file violation counts.
	TotalViolations int `json:"total_violations"`

	// OverallScore is the mean of per-file overall scores (0-100).
	// Zero files reviewed yields 0, signaling "nothing evaluated".
	OverallScore int `json:"overall_score"`

	// Categories holds the seven aggregate category scores, each the
	// mean of that category's per-file scores.
	Categories []CategoryScore `json:"categories"`

	// ViolationsByCategory tallies violations per category.
	ViolationsByCategory map[Category]int `json:"violations_by_category"`

	// ViolationsBySeverity tallies violations per severity.
	ViolationsBySeverity map[Severity]int `json:"violations_by_severity"`

	// TopIssues ranks rules by severity then occurrence count,
	// truncated to the ten most significant.
	TopIssues []IssueCount `json:"top_issues"`
}

// Metadata holds review run metadata.
type Metadata struct {
	ScrutinyVersion string        `json:"scrutiny_version"`
	Timestamp       time.Time     `json:"-"`
	Duration        time.Duration `json:"-"`
}

// MarshalJSON customizes encoding to use duration_ms and an ISO 8601
// timestamp.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type Alias Metadata
	ts := ""
	if !m.Timestamp.IsZero() {
		ts = m.Timestamp.UTC().Format(time.RFC3339)
	}
	return json.Marshal(&struct {
		Alias
		DurationMS int64  `json:"duration_ms"`
		Timestamp  string `json:"timestamp,omitempty"`
	}{
		Alias:      Alias(m),
		DurationMS: m.Duration.Milliseconds(),
		Timestamp:  ts,
	})
}

// ReviewReport is the top-level output of a project review. Built
// once at the end of a run and never mutated afterward.
type ReviewReport struct {
	// RootDir is the scanned root directory.
	RootDir string `json:"root_dir"`

	// Files lists per-file reviews in discovery order.
	Files []ReviewedFile `json:"files"`

	// Summary is the aggregate result.
	Summary ReviewSummary `json:"summary"`

	// Recommendations is the ordered guidance list.
	Recommendations []string `json:"recommendations"`

	// Metadata contains run information.
	Metadata Metadata `json:"metadata"`
}

// ClampScore forces v into the valid [0, 100] score range.
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
