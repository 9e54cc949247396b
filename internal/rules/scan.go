// Package rules holds the Scrutiny rule catalog: pure lexical
// detectors for test anti-patterns, grouped into seven categories,
// plus the selector that filters the catalog for a run.
//
// Detection is pattern matching over raw text rather than parsing.
// Test files are frequently syntactically incomplete or written in
// varied dialects (Jest, Mocha, Vitest, pytest, unittest, Go
// testing), so detectors degrade gracefully instead of failing to
// parse.
package rules

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// lineCol converts a byte offset into 1-based line and column
// numbers.
func lineCol(content string, offset int) (line, col int) {
	if offset > len(content) {
		offset = len(content)
	}
	line = 1
	col = 1
	for _, r := range content[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// lineAt returns the trimmed source line containing the byte offset.
func lineAt(content string, offset int) string {
	if offset > len(content) {
		offset = len(content)
	}
	start := strings.LastIndexByte(content[:offset], '\n') + 1
	end := strings.IndexByte(content[offset:], '\n')
	if end < 0 {
		end = len(content)
	} else {
		end += offset
	}
	return strings.TrimSpace(content[start:end])
}

// violationAt builds a Violation for a match at the given offset.
func violationAt(content string, offset int, ruleID, message, suggestion string) taxonomy.Violation {
	line, col := lineCol(content, offset)
	return taxonomy.Violation{
		RuleID:     ruleID,
		Message:    message,
		Line:       line,
		Column:     col,
		Snippet:    lineAt(content, offset),
		Suggestion: suggestion,
	}
}

// matchAll returns one violation per regexp match, in source order.
func matchAll(re *regexp.Regexp, content, ruleID, message, suggestion string) []taxonomy.Violation {
	var out []taxonomy.Violation
	for _, loc := range re.FindAllStringIndex(content, -1) {
		out = append(out, violationAt(content, loc[0], ruleID, message, suggestion))
	}
	return out
}

// integrationMarkers flag filenames whose tests are expected to hit
// real collaborators. Rules about real network or filesystem access
// are suppressed for these files.
var integrationMarkers = []string{
	"integration", "e2e", "end2end", "end-to-end", "acceptance", "smoke",
}

// isIntegrationFile reports whether the filename marks the file as
// an integration-style test.
func isIntegrationFile(filename string) bool {
	base := strings.ToLower(filepath.Base(filename))
	for _, m := range integrationMarkers {
		if strings.Contains(base, m) {
			return true
		}
	}
	return false
}

// fileExt returns the lowercased extension of the filename, without
// the leading dot.
func fileExt(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// isJSFile reports whether the filename looks like JavaScript or
// TypeScript source.
func isJSFile(filename string) bool {
	switch fileExt(filename) {
	case "js", "jsx", "ts", "tsx", "mjs", "cjs":
		return true
	}
	return false
}

// isPythonFile reports whether the filename looks like Python source.
func isPythonFile(filename string) bool {
	return fileExt(filename) == "py"
}
