// Package discover walks a directory tree and finds test files by
// naming convention, loading their content for review. It is the
// engine's only I/O boundary: the reviewer itself always receives
// already-loaded text.
package discover

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// TestFile is one discovered test file with its raw content.
type TestFile struct {
	// Path is the file path relative to the scanned root.
	Path string

	// Content is the full text of the file.
	Content string
}

// DefaultIgnoreDirs are directory names skipped during the walk, in
// addition to hidden directories.
var DefaultIgnoreDirs = []string{
	"node_modules", "vendor", "dist", "build", "coverage",
	"__pycache__", "target", ".git",
}

// testFilePatterns match test-file naming conventions across the
// ecosystems Scrutiny reviews.
var testFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.test\.[jt]sx?$`),
	regexp.MustCompile(`\.spec\.[jt]sx?$`),
	regexp.MustCompile(`\.test\.(?:mjs|cjs)$`),
	regexp.MustCompile(`^test_\w+\.py$`),
	regexp.MustCompile(`_test\.py$`),
	regexp.MustCompile(`_test\.go$`),
}

// Options configures a Scan.
type Options struct {
	// IgnorePatterns are extra glob patterns (matched against the
	// root-relative path) merged with the default ignore list.
	IgnorePatterns []string

	// Stderr receives warnings about unreadable files. If nil,
	// warnings are suppressed.
	Stderr io.Writer
}

// Scan walks root, collects files matching test-file conventions
// minus the ignore list, and loads their content. Results are sorted
// by path so discovery order is deterministic regardless of
// filesystem iteration order. Unreadable files are skipped with a
// warning and excluded from all counts; they never fail the run.
func Scan(root string, opts Options) ([]TestFile, error) {
	var files []TestFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// A vanished or unreadable entry is not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skipDir(d.Name()) || matchesIgnore(rel, opts.IgnorePatterns) {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsTestFile(rel) || matchesIgnore(rel, opts.IgnorePatterns) {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			if opts.Stderr != nil {
				fmt.Fprintf(opts.Stderr, "warning: skipping unreadable file %s: %v\n",
					rel, readErr)
			}
			return nil
		}

		files = append(files, TestFile{Path: rel, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// IsTestFile reports whether the root-relative path matches a known
// test-file convention, including anything under a __tests__
// directory.
func IsTestFile(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)

	for _, part := range strings.Split(filepath.Dir(rel), "/") {
		if part == "__tests__" {
			return true
		}
	}
	for _, re := range testFilePatterns {
		if re.MatchString(base) {
			return true
		}
	}
	return false
}

// skipDir reports whether a directory name is ignored by default.
func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	for _, ignored := range DefaultIgnoreDirs {
		if name == ignored {
			return true
		}
	}
	return false
}

// matchesIgnore checks the root-relative path against user ignore
// patterns. Patterns support simple globs plus "dir/**" prefixes.
func matchesIgnore(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/**") {
			prefix := strings.TrimSuffix(pattern, "/**")
			if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
				return true
			}
			continue
		}
		if matched, err := filepath.Match(pattern, rel); err == nil && matched {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if matched, err := filepath.Match(pattern, filepath.Base(rel)); err == nil && matched {
				return true
			}
		}
	}
	return false
}
