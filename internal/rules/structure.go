package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Structure: suite organization problems.

// ungroupedThreshold is the number of tests above which a JS/TS file
// without describe blocks is flagged.
const ungroupedThreshold = 5

var (
	describeBlock = regexp.MustCompile(`\bdescribe\s*\(`)

	assertionLine = regexp.MustCompile(`\bexpect\s*\(|\bassert\w*\s*[.(]`)

	conditionalOpen = regexp.MustCompile(`^\s*(?:\}\s*else\s+)?if\s*[\s(]`)
)

func detectUngroupedTests(content, filename string) []taxonomy.Violation {
	if !isJSFile(filename) {
		return nil
	}
	tests := CountTests(content)
	if tests <= ungroupedThreshold || describeBlock.MatchString(content) {
		return nil
	}
	return []taxonomy.Violation{{
		RuleID:     "structure/ungrouped-tests",
		Message:    fmt.Sprintf("%d tests with no describe grouping", tests),
		Suggestion: "group related tests in describe blocks so failures read as sentences",
	}}
}

func detectDeepNesting(content, filename string) []taxonomy.Violation {
	var out []taxonomy.Violation
	offset := 0
	for _, rawLine := range strings.SplitAfter(content, "\n") {
		line := strings.TrimRight(rawLine, "\n")
		if describeBlock.MatchString(line) && indentLevel(line) >= 3 {
			at := offset + len(line) - len(strings.TrimLeft(line, " \t"))
			out = append(out, violationAt(content, at, "structure/deep-nesting",
				"describe block nested three or more levels deep",
				"flatten the hierarchy; deep nesting hides which setup applies to a test"))
		}
		offset += len(rawLine)
	}
	return out
}

func detectConditionalAssertion(content, filename string) []taxonomy.Violation {
	var out []taxonomy.Violation
	lines := strings.SplitAfter(content, "\n")
	offset := 0
	prevConditional := false
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, "\n")
		hasAssertion := assertionLine.MatchString(line)
		isConditional := conditionalOpen.MatchString(line)

		// Same-line "if (...) expect(...)" or an assertion directly
		// under an if opens the possibility that the test silently
		// asserts nothing on the other branch.
		if hasAssertion && (isConditional || prevConditional) {
			at := offset + strings.Index(rawLine, strings.TrimSpace(line))
			out = append(out, violationAt(content, at, "structure/conditional-assertion",
				"assertion only runs on one branch of a conditional",
				"assert unconditionally, or split the branches into separate tests"))
		}
		prevConditional = isConditional
		offset += len(rawLine)
	}
	return out
}

// indentLevel estimates nesting from leading whitespace, treating a
// tab or two spaces as one level.
func indentLevel(line string) int {
	spaces := 0
	for _, r := range line {
		switch r {
		case ' ':
			spaces++
		case '\t':
			spaces += 2
		default:
			return spaces / 2
		}
	}
	return spaces / 2
}
