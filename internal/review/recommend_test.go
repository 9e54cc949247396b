package review

import (
	"strings"
	"testing"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

func hasRecContaining(recs []string, substr string) bool {
	for _, r := range recs {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}

func TestRecommend_NoFiles(t *testing.T) {
	recs := Recommend(taxonomy.ReviewSummary{}, 26)
	if len(recs) != 1 {
		t.Fatalf("expected exactly 1 recommendation, got %v", recs)
	}
	if !strings.Contains(recs[0], "No test files found") {
		t.Errorf("recommendation = %q", recs[0])
	}
}

func TestRecommend_Theater(t *testing.T) {
	s := taxonomy.ReviewSummary{
		TotalFiles:   1,
		OverallScore: 94,
		ViolationsByCategory: map[taxonomy.Category]int{
			taxonomy.Theater: 1,
		},
	}
	recs := Recommend(s, 26)
	if !hasRecContaining(recs, "Testing theater") {
		t.Errorf("expected a theater recommendation, got %v", recs)
	}
}

func TestRecommend_FlakyThreshold(t *testing.T) {
	s := taxonomy.ReviewSummary{
		TotalFiles:           1,
		OverallScore:         85,
		ViolationsByCategory: map[taxonomy.Category]int{taxonomy.Flaky: 3},
	}
	if hasRecContaining(Recommend(s, 26), "flakiness") {
		t.Error("three flaky violations should stay below the threshold")
	}

	s.ViolationsByCategory[taxonomy.Flaky] = 4
	if !hasRecContaining(Recommend(s, 26), "flakiness") {
		t.Error("four flaky violations should trigger the recommendation")
	}
}

func TestRecommend_LowScore(t *testing.T) {
	s := taxonomy.ReviewSummary{TotalFiles: 2, OverallScore: 45}
	recs := Recommend(s, 26)
	if !hasRecContaining(recs, "45/100") {
		t.Errorf("expected a low-score recommendation, got %v", recs)
	}
}

func TestRecommend_AssertionDensity(t *testing.T) {
	s := taxonomy.ReviewSummary{
		TotalFiles:      1,
		TotalTests:      10,
		TotalAssertions: 4,
		OverallScore:    75,
	}
	recs := Recommend(s, 26)
	if !hasRecContaining(recs, "assertion density") {
		t.Errorf("expected a density recommendation, got %v", recs)
	}
}

func TestRecommend_CleanSuite(t *testing.T) {
	s := taxonomy.ReviewSummary{
		TotalFiles:      3,
		TotalTests:      12,
		TotalAssertions: 30,
		OverallScore:    100,
	}
	recs := Recommend(s, 26)
	if !hasRecContaining(recs, "strong") {
		t.Errorf("expected a strong-quality recommendation, got %v", recs)
	}
	if !hasRecContaining(recs, "No issues found") {
		t.Errorf("expected a no-issues recommendation, got %v", recs)
	}
}

func TestRecommend_ZeroRulesNote(t *testing.T) {
	s := taxonomy.ReviewSummary{TotalFiles: 2, OverallScore: 100}
	recs := Recommend(s, 0)
	if !hasRecContaining(recs, "zero rules") {
		t.Errorf("expected the zero-rules note, got %v", recs)
	}
	// The note goes last.
	if !strings.Contains(recs[len(recs)-1], "zero rules") {
		t.Errorf("zero-rules note should be last, got %v", recs)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	s := taxonomy.ReviewSummary{
		TotalFiles:      2,
		TotalTests:      5,
		TotalAssertions: 2,
		OverallScore:    55,
		ViolationsByCategory: map[taxonomy.Category]int{
			taxonomy.Theater:   2,
			taxonomy.Isolation: 1,
		},
	}
	a := Recommend(s, 26)
	b := Recommend(s, 26)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestFocusAreas(t *testing.T) {
	categories := []taxonomy.CategoryScore{
		{Category: taxonomy.Flaky, Score: 50, Violations: 3, Description: "d1"},
		{Category: taxonomy.Theater, Score: 30, Violations: 2, Description: "d2"},
		{Category: taxonomy.Isolation, Score: 65, Violations: 1, Description: "d3"},
		{Category: taxonomy.Structure, Score: 90, Violations: 1, Description: "d4"},
		{Category: taxonomy.Assertions, Score: 40, Violations: 0, Description: "d5"},
	}

	recs := focusAreas(categories)
	if len(recs) != 2 {
		t.Fatalf("expected 2 focus areas, got %v", recs)
	}
	if !strings.Contains(recs[0], "theater") {
		t.Errorf("lowest-scoring category should come first, got %q", recs[0])
	}
	if !strings.Contains(recs[1], "flaky") {
		t.Errorf("second focus area should be flaky, got %q", recs[1])
	}
}
