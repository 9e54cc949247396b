package rules

import (
	"fmt"
	"regexp"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Assertion quality: assertions that are present but too weak to
// catch real regressions.

var (
	weakAssertion = regexp.MustCompile(`\.toBeTruthy\s*\(|\.toBeFalsy\s*\(|\.toBeDefined\s*\(|\.toBeUndefined\s*\(|\.to\.exist\b|\bassertIsNotNone\s*\(`)

	snapshotAssertion = regexp.MustCompile(`\.toMatchSnapshot\s*\(|\.toMatchInlineSnapshot\s*\(`)

	pyAssertStmt = regexp.MustCompile(`(?m)^\s*assert\s+[^,\n]+$`)
)

func detectWeakAssertion(content, filename string) []taxonomy.Violation {
	return matchAll(weakAssertion, content, "assert/weak-assertion",
		"truthiness assertion accepts almost any value",
		"assert the exact expected value instead of mere truthiness")
}

func detectSnapshotOveruse(content, filename string) []taxonomy.Violation {
	locs := snapshotAssertion.FindAllStringIndex(content, -1)
	if len(locs) <= 3 {
		return nil
	}
	v := violationAt(content, locs[0][0], "assert/snapshot-overuse",
		fmt.Sprintf("%d snapshot assertions in one file", len(locs)),
		"snapshots assert everything and therefore nothing; keep a few, make the rest explicit")
	return []taxonomy.Violation{v}
}

func detectBareAssert(content, filename string) []taxonomy.Violation {
	if !isPythonFile(filename) {
		return nil
	}
	var out []taxonomy.Violation
	for _, loc := range pyAssertStmt.FindAllStringIndex(content, -1) {
		out = append(out, violationAt(content, loc[0], "assert/bare-assert",
			"assert without a failure message",
			"add a message: assert cond, \"what went wrong\""))
	}
	return out
}
