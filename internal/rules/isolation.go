package rules

import (
	"regexp"
	"strings"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Isolation: tests that leak state into each other through globals,
// unrestored mocks, or the filesystem.

var (
	globalWrite = regexp.MustCompile(`\bglobal\.\w+\s*=[^=]|\bglobalThis\.\w+\s*=[^=]|\bwindow\.\w+\s*=[^=]|\bprocess\.env\.\w+\s*=[^=]|\bos\.environ\[|\bos\.Setenv\s*\(`)

	spyRegistration = regexp.MustCompile(`\bjest\.spyOn\s*\(|\bsinon\.(?:stub|spy)\s*\(|\bmocker\.patch\b`)

	cleanupHook = regexp.MustCompile(`\bafterEach\s*\(|\bafterAll\s*\(|\.mockRestore\s*\(|\brestoreAllMocks\s*\(|\bresetAllMocks\s*\(|\bsinon\.restore\s*\(|\baddCleanup\s*\(|\btearDown\s*\(|\bt\.Cleanup\s*\(`)

	fileWrite = regexp.MustCompile(`\bfs\.writeFileSync\s*\(|\bfs\.writeFile\s*\(|\bopen\s*\([^)\n]*,\s*['"][wa]b?['"]|\bos\.WriteFile\s*\(|\bioutil\.WriteFile\s*\(`)
)

func detectGlobalMutation(content, filename string) []taxonomy.Violation {
	return matchAll(globalWrite, content, "isolation/global-mutation",
		"test writes to shared global state",
		"scope the state to the test and restore it in a cleanup hook")
}

func detectNoCleanup(content, filename string) []taxonomy.Violation {
	locs := spyRegistration.FindAllStringIndex(content, -1)
	if len(locs) == 0 || cleanupHook.MatchString(content) {
		return nil
	}
	v := violationAt(content, locs[0][0], "isolation/no-cleanup",
		"spies or stubs are installed but never restored",
		"restore mocks in afterEach so later tests see the real implementation")
	return []taxonomy.Violation{v}
}

func detectSharedFileState(content, filename string) []taxonomy.Violation {
	// Integration suites legitimately touch the filesystem.
	if isIntegrationFile(filename) {
		return nil
	}
	var out []taxonomy.Violation
	for _, loc := range fileWrite.FindAllStringIndex(content, -1) {
		line := strings.ToLower(lineAt(content, loc[0]))
		if strings.Contains(line, "tmp") || strings.Contains(line, "temp") {
			continue
		}
		out = append(out, violationAt(content, loc[0], "isolation/shared-file-state",
			"test writes a file outside a temp directory",
			"write into a per-test temp directory that is removed afterwards"))
	}
	return out
}
