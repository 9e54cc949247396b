package rules

import "github.com/unbound-force/scrutiny/internal/taxonomy"

// SelectOptions filters the catalog before a review run.
type SelectOptions struct {
	// IncludeCategories, when non-empty, restricts selection to
	// these categories only.
	IncludeCategories []taxonomy.Category

	// ExcludeCategories drops these categories, applied after
	// inclusion.
	ExcludeCategories []taxonomy.Category

	// MinSeverity drops rules below this threshold (info < warning
	// < error). Empty means no severity filter.
	MinSeverity taxonomy.Severity
}

// Select filters rules by category inclusion, category exclusion,
// and minimum severity, preserving registration order. An empty
// result is valid: with no rules there are no violations, and every
// file scores 100.
func Select(rules []taxonomy.Rule, opts SelectOptions) []taxonomy.Rule {
	included := categorySet(opts.IncludeCategories)
	excluded := categorySet(opts.ExcludeCategories)

	var out []taxonomy.Rule
	for _, r := range rules {
		if len(included) > 0 && !included[r.Category] {
			continue
		}
		if excluded[r.Category] {
			continue
		}
		if opts.MinSeverity != "" && !r.Severity.AtLeast(opts.MinSeverity) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func categorySet(cats []taxonomy.Category) map[taxonomy.Category]bool {
	if len(cats) == 0 {
		return nil
	}
	set := make(map[taxonomy.Category]bool, len(cats))
	for _, c := range cats {
		set[c] = true
	}
	return set
}
