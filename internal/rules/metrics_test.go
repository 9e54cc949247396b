package rules

import "testing"

func TestCountTests(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"jest it", `it('adds', () => { expect(add(1, 2)).toBe(3); });`, 1},
		{"jest test", `test("subtracts", () => {});`, 1},
		{"no quote no test", `test(() => { expect(true).toBe(true); });`, 0},
		{"pytest", "def test_add():\n    assert add(1, 2) == 3\n", 1},
		{"go", "func TestAdd(t *testing.T) {\n\tt.Error(\"no\")\n}\n", 1},
		{"mixed dialects", "it('a', () => {});\ndef test_b():\n    pass\nfunc TestC(t *testing.T) {}\n", 3},
		{"helper named unit", `unit('not a test', () => {});`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountTests(tt.content); got != tt.want {
				t.Errorf("CountTests = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountAssertions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"expect", `expect(x).toBe(1); expect(y).toEqual(2);`, 2},
		{"chai should", `x.should.equal(1);`, 1},
		{"xunit call", `assertEqual(x, 1)`, 1},
		{"testify", `assert.Equal(t, 1, x)
require.NoError(t, err)`, 2},
		{"py bare assert", "assert x == 1\n", 1},
		{"py assert call not double counted", "    assertEqual(x, 1)\n", 1},
		{"go failures", "t.Errorf(\"got %d\", x)\nt.Fatal(\"boom\")\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountAssertions(tt.content); got != tt.want {
				t.Errorf("CountAssertions = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountEmptyTests(t *testing.T) {
	content := `it('should work', () => {})
it('real', () => { expect(f()).toBe(1); })
test("also empty", function () {})
`
	if got := countEmptyTests(content); got != 2 {
		t.Errorf("countEmptyTests = %d, want 2", got)
	}

	py := "def test_nothing():\n    pass\n\ndef test_real():\n    assert f() == 1\n"
	if got := countEmptyTests(py); got != 1 {
		t.Errorf("countEmptyTests(py) = %d, want 1", got)
	}
}

func TestLineCol(t *testing.T) {
	content := "abc\ndef\nghi"
	tests := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{9, 3, 2},
	}
	for _, tt := range tests {
		line, col := lineCol(content, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("lineCol(%d) = (%d, %d), want (%d, %d)",
				tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestIsIntegrationFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"api.integration.test.ts", true},
		{"checkout.e2e.spec.js", true},
		{"test_smoke.py", true},
		{"user.test.ts", false},
		{"src/integration/user.test.ts", false},
	}
	for _, tt := range tests {
		if got := isIntegrationFile(tt.path); got != tt.want {
			t.Errorf("isIntegrationFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
