package taxonomy

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCategoryWeights_SumTo100(t *testing.T) {
	sum := 0
	for _, cat := range Categories {
		sum += CategoryWeights[cat]
	}
	if sum != 100 {
		t.Errorf("category weights sum to %d, want 100", sum)
	}
}

func TestCategoryWeights_CoverAllCategories(t *testing.T) {
	if len(Categories) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(Categories))
	}
	for _, cat := range Categories {
		if _, ok := CategoryWeights[cat]; !ok {
			t.Errorf("category %q has no weight", cat)
		}
		if _, ok := CategoryDescriptions[cat]; !ok {
			t.Errorf("category %q has no description", cat)
		}
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, cat := range Categories {
		if !cat.Valid() {
			t.Errorf("category %q should be valid", cat)
		}
	}
	if Category("performance").Valid() {
		t.Error("unknown category should not be valid")
	}
}

func TestSeverity_Ordering(t *testing.T) {
	if !(SeverityInfo.Rank() < SeverityWarning.Rank()) {
		t.Error("info should rank below warning")
	}
	if !(SeverityWarning.Rank() < SeverityError.Rank()) {
		t.Error("warning should rank below error")
	}
}

func TestSeverity_AtLeast(t *testing.T) {
	tests := []struct {
		severity Severity
		min      Severity
		want     bool
	}{
		{SeverityError, SeverityInfo, true},
		{SeverityError, SeverityError, true},
		{SeverityWarning, SeverityError, false},
		{SeverityInfo, SeverityWarning, false},
		{SeverityInfo, SeverityInfo, true},
	}
	for _, tt := range tests {
		if got := tt.severity.AtLeast(tt.min); got != tt.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v",
				tt.severity, tt.min, got, tt.want)
		}
	}
}

func TestSeverity_Multiplier(t *testing.T) {
	if got := SeverityError.Multiplier(); got != 1.0 {
		t.Errorf("error multiplier = %v, want 1.0", got)
	}
	if got := SeverityWarning.Multiplier(); got != 0.6 {
		t.Errorf("warning multiplier = %v, want 0.6", got)
	}
	if got := SeverityInfo.Multiplier(); got != 0.3 {
		t.Errorf("info multiplier = %v, want 0.3", got)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{140, 100},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMetadata_MarshalJSON(t *testing.T) {
	m := Metadata{
		ScrutinyVersion: "test",
		Timestamp:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Duration:        1500 * time.Millisecond,
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"duration_ms":1500`) {
		t.Errorf("expected duration_ms 1500, got %s", out)
	}
	if !strings.Contains(out, `"timestamp":"2025-06-01T12:00:00Z"`) {
		t.Errorf("expected RFC3339 timestamp, got %s", out)
	}
}

func TestMetadata_MarshalJSON_ZeroTimestamp(t *testing.T) {
	data, err := json.Marshal(Metadata{ScrutinyVersion: "test"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "timestamp") {
		t.Errorf("zero timestamp should be omitted, got %s", data)
	}
}
