package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Maintainability: tests that are hard to read or quietly rotting.

// oversizedTestLines is the body length beyond which a single test
// is flagged.
const oversizedTestLines = 50

var (
	focusedTest = regexp.MustCompile(`\b(?:it|test|describe)\.only\s*\(|\bfdescribe\s*\(|\bfit\s*\(`)

	skippedTest = regexp.MustCompile(`\b(?:it|test|describe)\.skip\s*\(|\bxit\s*\(|\bxdescribe\s*\(|@pytest\.mark\.skip\b|\bunittest\.skip\b|\bt\.Skip\s*\(`)

	namedTestDecl = regexp.MustCompile(`\b(?:it|test)\s*\(\s*['"]([^'"]+)['"]`)

	testDeclStart = regexp.MustCompile(`\b(?:it|test)\s*\(\s*['"][^'"]*['"]\s*,`)
)

func detectFocusedTest(content, filename string) []taxonomy.Violation {
	return matchAll(focusedTest, content, "maint/focused-test",
		"focused test disables the rest of the suite",
		"remove .only before committing; CI is running one test and reporting green")
}

func detectSkippedTest(content, filename string) []taxonomy.Violation {
	return matchAll(skippedTest, content, "maint/skipped-test",
		"test is skipped",
		"fix and re-enable the test, or delete it with a note in the tracker")
}

func detectDuplicateTestName(content, filename string) []taxonomy.Violation {
	seen := make(map[string]bool)
	var out []taxonomy.Violation
	for _, m := range namedTestDecl.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[2]:m[3]]
		if seen[name] {
			out = append(out, violationAt(content, m[0], "maint/duplicate-test-name",
				fmt.Sprintf("duplicate test name %q", name),
				"give each test a distinct name so failures point at one test"))
			continue
		}
		seen[name] = true
	}
	return out
}

func detectOversizedTest(content, filename string) []taxonomy.Violation {
	var out []taxonomy.Violation
	for _, loc := range testDeclStart.FindAllStringIndex(content, -1) {
		lines := braceSpanLines(content, loc[1])
		if lines <= oversizedTestLines {
			continue
		}
		out = append(out, violationAt(content, loc[0], "maint/oversized-test",
			fmt.Sprintf("test body spans %d lines", lines),
			"extract setup into helpers or split the scenario into focused tests"))
	}
	return out
}

// braceSpanLines counts the lines spanned by the first balanced
// brace block starting at or after offset. Returns 0 when no block
// opens within the same statement. The scan is lexical; a brace
// inside a string literal will skew the count, which is acceptable
// for a size heuristic.
func braceSpanLines(content string, offset int) int {
	open := strings.IndexByte(content[offset:], '{')
	if open < 0 {
		return 0
	}
	start := offset + open
	depth := 0
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.Count(content[start:i], "\n") + 1
			}
		}
	}
	return strings.Count(content[start:], "\n") + 1
}
