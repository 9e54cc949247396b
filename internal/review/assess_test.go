package review

import (
	"context"
	"reflect"
	"testing"

	"github.com/unbound-force/scrutiny/internal/rules"
)

func TestAssess_PreservesDiscoveryOrder(t *testing.T) {
	files := []File{
		{Path: "z.test.js", Content: `it('z', () => { expect(f()).toBe(1); });`},
		{Path: "a.test.js", Content: `it('should work', () => {})`},
		{Path: "m.test.js", Content: ""},
	}

	rpt := Assess(context.Background(), "proj", files, rules.Catalog(), Options{Version: "test"})

	if rpt.RootDir != "proj" {
		t.Errorf("root dir = %q, want proj", rpt.RootDir)
	}
	if len(rpt.Files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(rpt.Files))
	}
	for i, want := range []string{"z.test.js", "a.test.js", "m.test.js"} {
		if rpt.Files[i].Path != want {
			t.Errorf("position %d = %s, want %s", i, rpt.Files[i].Path, want)
		}
	}
	if rpt.Metadata.ScrutinyVersion != "test" {
		t.Errorf("version = %q, want test", rpt.Metadata.ScrutinyVersion)
	}
	if rpt.Metadata.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestAssess_Deterministic(t *testing.T) {
	files := []File{
		{Path: "a.test.js", Content: `it('should work', () => {})`},
		{Path: "b.test.js", Content: `setTimeout(() => poll(), 500);`},
		{Path: "c.test.js", Content: `it('adds', () => { expect(add(1, 2)).toBe(3); });`},
	}

	// Force single-worker and multi-worker runs to agree.
	a := Assess(context.Background(), ".", files, rules.Catalog(), Options{Workers: 1})
	b := Assess(context.Background(), ".", files, rules.Catalog(), Options{Workers: 4})

	if !reflect.DeepEqual(a.Files, b.Files) {
		t.Error("worker count changed per-file results")
	}
	if !reflect.DeepEqual(a.Summary, b.Summary) {
		t.Error("worker count changed the summary")
	}
	if !reflect.DeepEqual(a.Recommendations, b.Recommendations) {
		t.Error("worker count changed the recommendations")
	}
}

func TestAssess_ZeroFiles(t *testing.T) {
	rpt := Assess(context.Background(), ".", nil, rules.Catalog(), Options{})

	if rpt.Summary.TotalFiles != 0 {
		t.Errorf("total files = %d, want 0", rpt.Summary.TotalFiles)
	}
	if rpt.Summary.OverallScore != 0 {
		t.Errorf("overall score = %d, want 0", rpt.Summary.OverallScore)
	}
	if len(rpt.Recommendations) != 1 {
		t.Fatalf("expected the no-files recommendation, got %v", rpt.Recommendations)
	}
}

func TestAssess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []File{{Path: "a.test.js", Content: `it('should work', () => {})`}}
	rpt := Assess(ctx, ".", files, rules.Catalog(), Options{})

	if len(rpt.Files) != 0 {
		t.Errorf("cancelled run should discard partial results, got %d files", len(rpt.Files))
	}
	if rpt.Summary.TotalFiles != 0 {
		t.Errorf("cancelled run summary should be empty, got %+v", rpt.Summary)
	}
}
