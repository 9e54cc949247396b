package rules

import (
	"strings"
	"testing"
)

func TestDetectFocusedTest(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"it.only", `it.only('just this one', () => {});`, 1},
		{"describe.only", `describe.only('suite', () => {});`, 1},
		{"fit", `fit('focused', () => {});`, 1},
		{"fdescribe", `fdescribe('suite', () => {});`, 1},
		{"normal", `it('runs with the others', () => {});`, 0},
		{"profit is not fit", `profit('earnings', () => {});`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFocusedTest(tt.content, "x.test.js")
			if len(got) != tt.want {
				t.Errorf("got %d violations, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDetectSkippedTest(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"it.skip", `it.skip('later', () => {});`, 1},
		{"xit", `xit('later', () => {});`, 1},
		{"pytest mark", "@pytest.mark.skip(reason=\"flaky\")\ndef test_later():\n    pass\n", 1},
		{"go skip", "func TestLater(t *testing.T) {\n\tt.Skip(\"later\")\n}\n", 1},
		{"normal", `it('runs', () => {});`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectSkippedTest(tt.content, "x.test.js")
			if len(got) != tt.want {
				t.Errorf("got %d violations, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDetectDuplicateTestName(t *testing.T) {
	content := `it('saves the user', () => {});
it('loads the user', () => {});
it('saves the user', () => {});
it('saves the user', () => {});
`
	got := detectDuplicateTestName(content, "user.test.js")
	if len(got) != 2 {
		t.Fatalf("expected 2 violations (second and third copy), got %d", len(got))
	}
	if got[0].Line != 3 || got[1].Line != 4 {
		t.Errorf("lines = %d, %d; want 3, 4", got[0].Line, got[1].Line)
	}
}

func TestDetectDuplicateTestName_DistinctClean(t *testing.T) {
	content := `it('saves', () => {});
it('loads', () => {});
`
	if got := detectDuplicateTestName(content, "user.test.js"); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestDetectOversizedTest(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("it('does everything', () => {\n")
	for i := 0; i < 60; i++ {
		sb.WriteString("  doStep();\n")
	}
	sb.WriteString("});\n")

	got := detectOversizedTest(sb.String(), "big.test.js")
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
	if got[0].RuleID != "maint/oversized-test" {
		t.Errorf("rule id = %s", got[0].RuleID)
	}
}

func TestDetectOversizedTest_SmallBodyClean(t *testing.T) {
	content := `it('adds', () => {
  expect(add(1, 2)).toBe(3);
});
`
	if got := detectOversizedTest(content, "math.test.js"); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestBraceSpanLines(t *testing.T) {
	content := "it('x', () => {\n  a();\n  b();\n});\n"
	// Block opens after the declaration comma.
	lines := braceSpanLines(content, strings.Index(content, ",")+1)
	if lines != 4 {
		t.Errorf("braceSpanLines = %d, want 4", lines)
	}
	if braceSpanLines("no braces here", 0) != 0 {
		t.Error("no block should span zero lines")
	}
}
