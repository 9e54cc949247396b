package rules

import "testing"

func TestDetectEmptyTest(t *testing.T) {
	content := `it('should work', () => {})`
	got := detectEmptyTest(content, "example.test.ts")
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
	if got[0].RuleID != "theater/empty-test" {
		t.Errorf("rule id = %s", got[0].RuleID)
	}
	if got[0].Line != 1 {
		t.Errorf("line = %d, want 1", got[0].Line)
	}
}

func TestDetectEmptyTest_Python(t *testing.T) {
	content := "def test_placeholder():\n    pass\n"
	got := detectEmptyTest(content, "test_placeholder.py")
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
}

func TestDetectEmptyTest_RealBodyClean(t *testing.T) {
	content := `it('adds', () => { expect(add(1, 2)).toBe(3); });`
	if got := detectEmptyTest(content, "math.test.ts"); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestDetectAlwaysTrue(t *testing.T) {
	content := `test(() => {
  expect(true).toBe(true);
  expect(1).toEqual(1);
});
`
	got := detectAlwaysTrue(content, "tautology.test.js")
	if len(got) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(got))
	}
	for _, v := range got {
		if v.RuleID != "theater/always-true" {
			t.Errorf("rule id = %s", v.RuleID)
		}
	}
	if got[0].Line != 2 || got[1].Line != 3 {
		t.Errorf("lines = %d, %d; want 2, 3", got[0].Line, got[1].Line)
	}
}

func TestDetectAlwaysTrue_RealExpectationClean(t *testing.T) {
	content := `expect(result).toBe(true);
expect(items.length).toEqual(3);
`
	if got := detectAlwaysTrue(content, "real.test.js"); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestDetectAlwaysTrue_Python(t *testing.T) {
	content := "def test_sanity():\n    assert True\n"
	got := detectAlwaysTrue(content, "test_sanity.py")
	if len(got) != 1 {
		t.Errorf("expected 1 violation, got %d", len(got))
	}
}

func TestDetectNoAssertions(t *testing.T) {
	content := `it('runs the handler', () => {
  handler.process(event);
});
`
	got := detectNoAssertions(content, "handler.test.js")
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
	if got[0].RuleID != "theater/no-assertions" {
		t.Errorf("rule id = %s", got[0].RuleID)
	}
}

func TestDetectNoAssertions_SkipsAllEmptyFiles(t *testing.T) {
	// Files where every test is empty are theater/empty-test's
	// territory; flagging them twice would double-charge the file.
	content := `it('should work', () => {})`
	if got := detectNoAssertions(content, "empty.test.ts"); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestDetectNoAssertions_AssertedFileClean(t *testing.T) {
	content := `it('adds', () => { expect(add(1, 2)).toBe(3); });`
	if got := detectNoAssertions(content, "math.test.js"); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestDetectConsoleOnly(t *testing.T) {
	content := `it('logs the result', () => {
  console.log(compute());
});
`
	got := detectConsoleOnly(content, "compute.test.js")
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
	if got[0].Line != 2 {
		t.Errorf("line = %d, want 2", got[0].Line)
	}
}

func TestDetectConsoleOnly_WithAssertionsClean(t *testing.T) {
	content := `it('logs and asserts', () => {
  console.log(compute());
  expect(compute()).toBe(4);
});
`
	if got := detectConsoleOnly(content, "compute.test.js"); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestDetectCommentedAssertions(t *testing.T) {
	content := `it('used to check', () => {
  const r = run();
  // expect(r.ok).toBe(true);
});
`
	got := detectCommentedAssertions(content, "run.test.js")
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
	if got[0].Line != 3 {
		t.Errorf("line = %d, want 3", got[0].Line)
	}
}

func TestDetectCommentedAssertions_PythonComment(t *testing.T) {
	content := "def test_thing():\n    r = run()\n    # self.assertTrue(r.ok)\n"
	got := detectCommentedAssertions(content, "test_thing.py")
	if len(got) != 1 {
		t.Errorf("expected 1 violation, got %d", len(got))
	}
}
