package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/scrutiny/internal/config"
	"github.com/unbound-force/scrutiny/internal/discover"
	"github.com/unbound-force/scrutiny/internal/report"
	"github.com/unbound-force/scrutiny/internal/review"
	"github.com/unbound-force/scrutiny/internal/rules"
	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "scrutiny",
		Short: "Scrutiny scores the quality of your test suites",
		Long: `Scrutiny inspects the text of automated test files, detects
anti-patterns (flaky tests, testing theater, over-mocking, weak
assertions, isolation leaks), and reduces the findings to a weighted
0-100 quality score per file and per project.`,
		Version: version,
	}

	root.AddCommand(newReviewCmd())
	root.AddCommand(newRulesCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// reviewParams holds the parsed flags for the review command.
type reviewParams struct {
	rootDir     string
	format      string
	verbose     bool
	interactive bool

	includeCategories []string
	excludeCategories []string
	minSeverity       string
	ignorePatterns    []string

	minScore  int
	maxErrors int

	stdout io.Writer
	stderr io.Writer
}

// runReview is the extracted, testable body of the review command.
func runReview(p reviewParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cfg, err := config.Load(p.rootDir)
	if err != nil {
		return err
	}
	opts, err := mergeOptions(cfg, p)
	if err != nil {
		return err
	}

	selected := rules.Select(rules.Catalog(), opts)
	logger.Info("reviewing test files", "dir", p.rootDir, "rules", len(selected))

	files, err := discover.Scan(p.rootDir, discover.Options{
		IgnorePatterns: append(cfg.IgnorePatterns, p.ignorePatterns...),
		Stderr:         p.stderr,
	})
	if err != nil {
		return err
	}

	input := make([]review.File, 0, len(files))
	for _, f := range files {
		input = append(input, review.File{Path: f.Path, Content: f.Content})
	}

	rpt := review.Assess(context.Background(), p.rootDir, input, selected, review.Options{
		Version: version,
		Stderr:  p.stderr,
	})

	logger.Info("review complete",
		"files", rpt.Summary.TotalFiles,
		"violations", rpt.Summary.TotalViolations,
		"score", rpt.Summary.OverallScore)

	if p.interactive {
		return runInteractiveReview(&rpt)
	}

	switch p.format {
	case "json":
		if err := report.WriteJSON(p.stdout, &rpt); err != nil {
			return err
		}
	default:
		if err := report.WriteText(p.stdout, &rpt, p.verbose); err != nil {
			return err
		}
	}

	printCISummary(p.stderr, &rpt, p.minScore, p.maxErrors)
	return checkThresholds(&rpt, p.minScore, p.maxErrors)
}

// mergeOptions applies CLI flags over the project config file.
func mergeOptions(cfg config.Config, p reviewParams) (rules.SelectOptions, error) {
	opts := rules.SelectOptions{
		IncludeCategories: cfg.IncludeCategories,
		ExcludeCategories: cfg.ExcludeCategories,
		MinSeverity:       cfg.MinSeverity,
	}

	if len(p.includeCategories) > 0 {
		cats, err := parseCategories(p.includeCategories)
		if err != nil {
			return rules.SelectOptions{}, err
		}
		opts.IncludeCategories = cats
	}
	if len(p.excludeCategories) > 0 {
		cats, err := parseCategories(p.excludeCategories)
		if err != nil {
			return rules.SelectOptions{}, err
		}
		opts.ExcludeCategories = cats
	}
	if p.minSeverity != "" {
		sev := taxonomy.Severity(p.minSeverity)
		if sev.Rank() < 0 {
			return rules.SelectOptions{}, fmt.Errorf(
				"invalid severity %q: must be 'info', 'warning', or 'error'", p.minSeverity)
		}
		opts.MinSeverity = sev
	}
	return opts, nil
}

// parseCategories validates comma- or flag-separated category names.
func parseCategories(raw []string) ([]taxonomy.Category, error) {
	var cats []taxonomy.Category
	for _, chunk := range raw {
		for _, name := range strings.Split(chunk, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			cat := taxonomy.Category(name)
			if !cat.Valid() {
				return nil, fmt.Errorf("unknown category %q", name)
			}
			cats = append(cats, cat)
		}
	}
	return cats, nil
}

// printCISummary prints a one-line CI summary to stderr when
// threshold enforcement is active.
func printCISummary(w io.Writer, rpt *taxonomy.ReviewReport, minScore, maxErrors int) {
	if minScore <= 0 && maxErrors < 0 {
		return
	}

	var parts []string
	if minScore > 0 {
		status := "PASS"
		if rpt.Summary.OverallScore < minScore {
			status = "FAIL"
		}
		parts = append(parts, fmt.Sprintf("score: %d/%d (%s)",
			rpt.Summary.OverallScore, minScore, status))
	}
	if maxErrors >= 0 {
		errors := rpt.Summary.ViolationsBySeverity[taxonomy.SeverityError]
		status := "PASS"
		if errors > maxErrors {
			status = "FAIL"
		}
		parts = append(parts, fmt.Sprintf("errors: %d/%d (%s)",
			errors, maxErrors, status))
	}
	fmt.Fprintln(w, strings.Join(parts, " | "))
}

// checkThresholds implements the exit-status policy: the engine only
// computes the numbers, the CLI decides the exit code.
func checkThresholds(rpt *taxonomy.ReviewReport, minScore, maxErrors int) error {
	if minScore > 0 && rpt.Summary.OverallScore < minScore {
		return fmt.Errorf("overall score %d is below minimum %d",
			rpt.Summary.OverallScore, minScore)
	}
	if maxErrors >= 0 {
		if errors := rpt.Summary.ViolationsBySeverity[taxonomy.SeverityError]; errors > maxErrors {
			return fmt.Errorf("%d error-severity violation(s) exceed maximum %d",
				errors, maxErrors)
		}
	}
	return nil
}

func newReviewCmd() *cobra.Command {
	var p reviewParams

	cmd := &cobra.Command{
		Use:   "review [dir]",
		Short: "Review test files and score their quality",
		Long: `Review discovers test files under the given directory (default
"."), applies the rule catalog to each, and reports per-file and
project-level quality scores.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.rootDir = "."
			if len(args) == 1 {
				p.rootDir = args[0]
			}
			p.stdout = os.Stdout
			p.stderr = os.Stderr
			return runReview(p)
		},
	}

	cmd.Flags().StringVar(&p.format, "format", "text",
		"output format: text or json")
	cmd.Flags().BoolVarP(&p.verbose, "verbose", "v", false,
		"include per-file detail in the text report")
	cmd.Flags().BoolVarP(&p.interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")
	cmd.Flags().StringSliceVar(&p.includeCategories, "include", nil,
		"restrict to these categories (comma-separated)")
	cmd.Flags().StringSliceVar(&p.excludeCategories, "exclude", nil,
		"drop these categories (comma-separated)")
	cmd.Flags().StringVar(&p.minSeverity, "min-severity", "",
		"drop rules below this severity: info, warning, or error")
	cmd.Flags().StringSliceVar(&p.ignorePatterns, "ignore", nil,
		"extra path patterns to ignore during discovery")
	cmd.Flags().IntVar(&p.minScore, "min-score", 50,
		"fail if the overall score is below this (0 = no limit)")
	cmd.Flags().IntVar(&p.maxErrors, "max-errors", 5,
		"fail if error-severity violations exceed this (negative = no limit)")

	return cmd
}

// rulesParams holds the parsed flags for the rules command.
type rulesParams struct {
	format string
	stdout io.Writer
}

// runRules is the extracted, testable body of the rules command.
func runRules(p rulesParams) error {
	switch p.format {
	case "json":
		return report.WriteRulesJSON(p.stdout, rules.Catalog())
	case "text":
		return report.WriteRulesText(p.stdout, rules.Catalog())
	default:
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}
}

func newRulesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog",
		Long: `List every registered rule with its id, category, severity, and
weight. Use the ids and categories with review --include, --exclude,
and --min-severity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(rulesParams{format: format, stdout: cmd.OutOrStdout()})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for Scrutiny review output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of scrutiny review --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
