package rules

import (
	"fmt"
	"regexp"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Testing theater: tests that execute code but verify nothing.

var (
	// alwaysTrueJS matches expect(<literal>).toBe(<literal>) and
	// friends: both sides are compile-time constants, so the
	// assertion can never fail meaningfully.
	alwaysTrueJS = regexp.MustCompile(`\bexpect\s*\(\s*(?:true|false|null|undefined|\d+(?:\.\d+)?|'[^']*'|"[^"]*")\s*\)\s*(?:\.not)?\.(?:toBe|toEqual|toStrictEqual)\s*\(\s*(?:true|false|null|undefined|\d+(?:\.\d+)?|'[^']*'|"[^"]*")\s*\)`)

	// alwaysTruePy matches assertTrue(True) / assert True style
	// tautologies.
	alwaysTruePy = regexp.MustCompile(`(?m)\bassertTrue\s*\(\s*(?:True|true|1)\s*\)|^\s*assert\s+(?:True|1)\s*(?:#.*)?$`)

	// consoleOutput matches debug-print calls.
	consoleOutput = regexp.MustCompile(`(?m)\bconsole\.(?:log|info|debug)\s*\(|^\s*print\s*\(|\bfmt\.Println\s*\(`)

	// commentedAssertion matches assertion calls that have been
	// commented out rather than fixed or deleted.
	commentedAssertion = regexp.MustCompile(`(?m)^\s*(?://|#)\s*(?:expect\s*\(|assert\w*\s*[.(]|\bself\.assert)`)
)

func detectEmptyTest(content, filename string) []taxonomy.Violation {
	var out []taxonomy.Violation
	for _, re := range []*regexp.Regexp{jsEmptyTest, pyEmptyTest} {
		for _, loc := range re.FindAllStringIndex(content, -1) {
			out = append(out, violationAt(content, loc[0], "theater/empty-test",
				"test has an empty body and can never fail",
				"implement the test or delete it; an empty test inflates coverage confidence"))
		}
	}
	return out
}

func detectAlwaysTrue(content, filename string) []taxonomy.Violation {
	var out []taxonomy.Violation
	for _, re := range []*regexp.Regexp{alwaysTrueJS, alwaysTruePy} {
		for _, loc := range re.FindAllStringIndex(content, -1) {
			out = append(out, violationAt(content, loc[0], "theater/always-true",
				"assertion compares constants and always passes",
				"assert on a value produced by the code under test"))
		}
	}
	return out
}

func detectNoAssertions(content, filename string) []taxonomy.Violation {
	tests := CountTests(content)
	if tests == 0 || CountAssertions(content) > 0 {
		return nil
	}
	// Empty tests are already covered by theater/empty-test; only
	// flag files where some test runs real code without asserting.
	if tests <= countEmptyTests(content) {
		return nil
	}
	return []taxonomy.Violation{{
		RuleID:     "theater/no-assertions",
		Message:    fmt.Sprintf("%d test(s) execute code but make no assertions", tests),
		Suggestion: "add assertions on return values or observable effects",
	}}
}

func detectConsoleOnly(content, filename string) []taxonomy.Violation {
	if CountTests(content) == 0 || CountAssertions(content) > 0 {
		return nil
	}
	var out []taxonomy.Violation
	for _, loc := range consoleOutput.FindAllStringIndex(content, -1) {
		out = append(out, violationAt(content, loc[0], "theater/console-only",
			"test prints output instead of asserting",
			"replace the print with an assertion; humans don't read CI logs"))
	}
	return out
}

func detectCommentedAssertions(content, filename string) []taxonomy.Violation {
	return matchAll(commentedAssertion, content, "theater/commented-assertions",
		"assertion is commented out",
		"fix the assertion or delete it; commented assertions hide regressions")
}
