package rules

import (
	"regexp"
	"strings"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Flakiness: tests whose outcome depends on timing, randomness, the
// wall clock, or external services.

var (
	timingCall = regexp.MustCompile(`\bsetTimeout\s*\(|\bsetInterval\s*\(|\btime\.sleep\s*\(|\btime\.Sleep\s*\(|\bThread\.sleep\s*\(|\bawait\s+sleep\s*\(|\bdelay\s*\(\s*\d`)

	randomCall = regexp.MustCompile(`\bMath\.random\s*\(|\brandom\.(?:random|randint|choice|shuffle|uniform)\s*\(|\bfaker\.\w|\brand\.(?:Int|Intn|Float\d*)\s*\(`)

	wallClock = regexp.MustCompile(`\bnew Date\s*\(\s*\)|\bDate\.now\s*\(\s*\)|\bdatetime\.now\s*\(|\bdatetime\.today\s*\(|\btime\.Now\s*\(`)

	networkCall = regexp.MustCompile(`\bfetch\s*\(|\baxios\.(?:get|post|put|patch|delete|request)\s*\(|\brequests\.(?:get|post|put|patch|delete)\s*\(|\bhttp\.(?:Get|Post|Head)\s*\(|\burllib\.request\b`)

	thenChain = regexp.MustCompile(`\.then\s*\(`)
)

func detectTimingDependency(content, filename string) []taxonomy.Violation {
	return matchAll(timingCall, content, "flaky/timing-dependency",
		"test waits on real time",
		"use fake timers or poll for the condition instead of sleeping")
}

func detectRandomData(content, filename string) []taxonomy.Violation {
	return matchAll(randomCall, content, "flaky/random-data",
		"test input is generated randomly",
		"seed the generator or use a fixed fixture so failures reproduce")
}

func detectWallClock(content, filename string) []taxonomy.Violation {
	return matchAll(wallClock, content, "flaky/wall-clock",
		"test reads the current date or time",
		"inject a fixed clock so the test passes at midnight and on Feb 29")
}

func detectNetworkCall(content, filename string) []taxonomy.Violation {
	// Integration and e2e suites are expected to hit real services.
	if isIntegrationFile(filename) {
		return nil
	}
	return matchAll(networkCall, content, "flaky/network-call",
		"unit test performs a real network call",
		"stub the transport, or mark the file as an integration test")
}

func detectUnawaitedPromise(content, filename string) []taxonomy.Violation {
	if !isJSFile(filename) {
		return nil
	}
	var out []taxonomy.Violation
	for _, loc := range thenChain.FindAllStringIndex(content, -1) {
		line := lineAt(content, loc[0])
		// A .then chain that is awaited or returned resolves before
		// the test ends; a dangling one races the test runner.
		if strings.Contains(line, "await") || strings.HasPrefix(line, "return") {
			continue
		}
		out = append(out, violationAt(content, loc[0], "flaky/unawaited-promise",
			"promise chain is neither awaited nor returned",
			"await the promise (or return it) so assertions run before the test exits"))
	}
	return out
}
