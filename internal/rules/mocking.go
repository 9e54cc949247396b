package rules

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Over-mocking: tests that replace so many collaborators that they
// end up exercising the mocks instead of the code under test.
// Rule IDs use the "mock" prefix.

var (
	mockRegistration = regexp.MustCompile(`\bjest\.mock\s*\(|\bjest\.spyOn\s*\(|\bvi\.mock\s*\(|\bsinon\.(?:stub|mock|spy|fake)\s*\(|\bmocker\.patch\b|@(?:mock\.)?patch\b|\bMagicMock\s*\(|\bmock\.Mock\s*\(`)

	mockVerification = regexp.MustCompile(`\.toHaveBeenCalled\w*\s*\(|\.toBeCalled\w*\s*\(|\.assert_called\w*\s*\(|\bverify\s*\(`)

	moduleMock = regexp.MustCompile(`\b(?:jest|vi)\.mock\s*\(\s*['"]([^'"]+)['"]`)
)

func detectExcessiveMocking(content, filename string) []taxonomy.Violation {
	mocks := len(mockRegistration.FindAllStringIndex(content, -1))
	assertions := CountAssertions(content)
	// Threshold: more than five mocks, and mocks outnumbering
	// assertions two to one.
	if mocks <= 5 || mocks <= 2*assertions {
		return nil
	}
	return []taxonomy.Violation{{
		RuleID: "mock/excessive-mocking",
		Message: fmt.Sprintf("%d mock registrations against %d assertion(s)",
			mocks, assertions),
		Suggestion: "mock only process boundaries; use real collaborators for in-process logic",
	}}
}

func detectVerifyOnly(content, filename string) []taxonomy.Violation {
	verifications := len(mockVerification.FindAllStringIndex(content, -1))
	if verifications == 0 || verifications < CountAssertions(content) {
		return nil
	}
	return []taxonomy.Violation{{
		RuleID:     "mock/verify-only",
		Message:    "every assertion verifies a mock interaction, none checks an outcome",
		Suggestion: "assert on results or state changes, not just that mocks were called",
	}}
}

func detectMockingSubject(content, filename string) []taxonomy.Violation {
	subject := testSubjectName(filename)
	if subject == "" {
		return nil
	}
	var out []taxonomy.Violation
	for _, m := range moduleMock.FindAllStringSubmatchIndex(content, -1) {
		target := content[m[2]:m[3]]
		base := strings.TrimSuffix(filepath.Base(target), filepath.Ext(filepath.Base(target)))
		if strings.EqualFold(base, subject) {
			out = append(out, violationAt(content, m[0], "mock/mocking-subject",
				fmt.Sprintf("test mocks %q, the module it is supposed to test", target),
				"remove the mock; a test of a mocked module verifies nothing"))
		}
	}
	return out
}

// testSubjectName derives the module-under-test name from the test
// filename: "user.test.ts" -> "user", "order.spec.js" -> "order".
func testSubjectName(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, suffix := range []string{".test", ".spec"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return ""
}
