package rules

import "github.com/unbound-force/scrutiny/internal/taxonomy"

// catalog is the fixed rule table. Registration order is the order
// violations are reported in, so it never changes between runs.
// Rules dispatch through named detector functions; the set is closed
// at compile time.
var catalog = []taxonomy.Rule{
	// flaky (category weight 20, selectable deduction budget 32)
	{
		ID:          "flaky/timing-dependency",
		Name:        "Timing dependency",
		Description: "Test sleeps or waits on real timers",
		Category:    taxonomy.Flaky,
		Severity:    taxonomy.SeverityWarning,
		Weight:      7,
		Detect:      detectTimingDependency,
	},
	{
		ID:          "flaky/random-data",
		Name:        "Random test data",
		Description: "Test input comes from an unseeded random source",
		Category:    taxonomy.Flaky,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectRandomData,
	},
	{
		ID:          "flaky/wall-clock",
		Name:        "Wall clock dependency",
		Description: "Test reads the current date or time",
		Category:    taxonomy.Flaky,
		Severity:    taxonomy.SeverityWarning,
		Weight:      5,
		Detect:      detectWallClock,
	},
	{
		ID:          "flaky/network-call",
		Name:        "Real network call",
		Description: "Unit test talks to a real network endpoint",
		Category:    taxonomy.Flaky,
		Severity:    taxonomy.SeverityError,
		Weight:      8,
		Detect:      detectNetworkCall,
	},
	{
		ID:          "flaky/unawaited-promise",
		Name:        "Unawaited promise",
		Description: "Promise chain races the end of the test",
		Category:    taxonomy.Flaky,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectUnawaitedPromise,
	},

	// theater (category weight 25, selectable deduction budget 42)
	{
		ID:          "theater/empty-test",
		Name:        "Empty test",
		Description: "Test body is empty and can never fail",
		Category:    taxonomy.Theater,
		Severity:    taxonomy.SeverityError,
		Weight:      10,
		Detect:      detectEmptyTest,
	},
	{
		ID:          "theater/always-true",
		Name:        "Always-true assertion",
		Description: "Assertion compares constants to constants",
		Category:    taxonomy.Theater,
		Severity:    taxonomy.SeverityError,
		Weight:      9,
		Detect:      detectAlwaysTrue,
	},
	{
		ID:          "theater/no-assertions",
		Name:        "No assertions",
		Description: "Tests execute code without asserting anything",
		Category:    taxonomy.Theater,
		Severity:    taxonomy.SeverityError,
		Weight:      10,
		Detect:      detectNoAssertions,
	},
	{
		ID:          "theater/console-only",
		Name:        "Console output only",
		Description: "Test prints results instead of asserting them",
		Category:    taxonomy.Theater,
		Severity:    taxonomy.SeverityWarning,
		Weight:      7,
		Detect:      detectConsoleOnly,
	},
	{
		ID:          "theater/commented-assertions",
		Name:        "Commented-out assertions",
		Description: "Assertions are commented out rather than fixed",
		Category:    taxonomy.Theater,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectCommentedAssertions,
	},

	// over-mocking (category weight 15, selectable deduction budget 23)
	{
		ID:          "mock/excessive-mocking",
		Name:        "Excessive mocking",
		Description: "Mock registrations dwarf the assertions",
		Category:    taxonomy.OverMocking,
		Severity:    taxonomy.SeverityWarning,
		Weight:      8,
		Detect:      detectExcessiveMocking,
	},
	{
		ID:          "mock/verify-only",
		Name:        "Mock verification only",
		Description: "Assertions only verify mock interactions",
		Category:    taxonomy.OverMocking,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectVerifyOnly,
	},
	{
		ID:          "mock/mocking-subject",
		Name:        "Mocking the subject",
		Description: "Test mocks the very module it tests",
		Category:    taxonomy.OverMocking,
		Severity:    taxonomy.SeverityError,
		Weight:      9,
		Detect:      detectMockingSubject,
	},

	// assertions (category weight 15, selectable deduction budget 14)
	{
		ID:          "assert/weak-assertion",
		Name:        "Weak assertion",
		Description: "Truthiness check instead of an exact expectation",
		Category:    taxonomy.Assertions,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectWeakAssertion,
	},
	{
		ID:          "assert/snapshot-overuse",
		Name:        "Snapshot overuse",
		Description: "File leans on snapshot assertions",
		Category:    taxonomy.Assertions,
		Severity:    taxonomy.SeverityWarning,
		Weight:      5,
		Detect:      detectSnapshotOveruse,
	},
	{
		ID:          "assert/bare-assert",
		Name:        "Bare assert",
		Description: "Python assert without a failure message",
		Category:    taxonomy.Assertions,
		Severity:    taxonomy.SeverityInfo,
		Weight:      3,
		Detect:      detectBareAssert,
	},

	// isolation (category weight 10, selectable deduction budget 19)
	{
		ID:          "isolation/global-mutation",
		Name:        "Global state mutation",
		Description: "Test writes to globals or the process environment",
		Category:    taxonomy.Isolation,
		Severity:    taxonomy.SeverityError,
		Weight:      8,
		Detect:      detectGlobalMutation,
	},
	{
		ID:          "isolation/no-cleanup",
		Name:        "Missing cleanup",
		Description: "Spies and stubs are never restored",
		Category:    taxonomy.Isolation,
		Severity:    taxonomy.SeverityWarning,
		Weight:      5,
		Detect:      detectNoCleanup,
	},
	{
		ID:          "isolation/shared-file-state",
		Name:        "Shared filesystem state",
		Description: "Test writes files outside a temp directory",
		Category:    taxonomy.Isolation,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectSharedFileState,
	},

	// maintainability (category weight 10, selectable deduction budget 21)
	{
		ID:          "maint/focused-test",
		Name:        "Focused test",
		Description: "A committed .only disables the rest of the suite",
		Category:    taxonomy.Maintainability,
		Severity:    taxonomy.SeverityError,
		Weight:      7,
		Detect:      detectFocusedTest,
	},
	{
		ID:          "maint/duplicate-test-name",
		Name:        "Duplicate test name",
		Description: "Two tests share the same name",
		Category:    taxonomy.Maintainability,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectDuplicateTestName,
	},
	{
		ID:          "maint/oversized-test",
		Name:        "Oversized test",
		Description: "Single test body over 50 lines",
		Category:    taxonomy.Maintainability,
		Severity:    taxonomy.SeverityWarning,
		Weight:      5,
		Detect:      detectOversizedTest,
	},
	{
		ID:          "maint/skipped-test",
		Name:        "Skipped test",
		Description: "Test is skipped and quietly rotting",
		Category:    taxonomy.Maintainability,
		Severity:    taxonomy.SeverityInfo,
		Weight:      3,
		Detect:      detectSkippedTest,
	},

	// structure (category weight 5, selectable deduction budget 13)
	{
		ID:          "structure/conditional-assertion",
		Name:        "Conditional assertion",
		Description: "Assertion only runs on one branch",
		Category:    taxonomy.Structure,
		Severity:    taxonomy.SeverityWarning,
		Weight:      6,
		Detect:      detectConditionalAssertion,
	},
	{
		ID:          "structure/deep-nesting",
		Name:        "Deep nesting",
		Description: "Describe blocks nested three or more levels",
		Category:    taxonomy.Structure,
		Severity:    taxonomy.SeverityWarning,
		Weight:      4,
		Detect:      detectDeepNesting,
	},
	{
		ID:          "structure/ungrouped-tests",
		Name:        "Ungrouped tests",
		Description: "Many tests with no describe grouping",
		Category:    taxonomy.Structure,
		Severity:    taxonomy.SeverityInfo,
		Weight:      3,
		Detect:      detectUngroupedTests,
	},
}

// Catalog returns the full rule table in registration order. The
// returned slice is a copy; the catalog itself is immutable.
func Catalog() []taxonomy.Rule {
	out := make([]taxonomy.Rule, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a rule by its stable identifier.
func ByID(id string) (taxonomy.Rule, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return taxonomy.Rule{}, false
}
