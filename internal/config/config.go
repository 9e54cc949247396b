// Package config loads the optional .scrutiny.yml project
// configuration. CLI flags override file values; the file overrides
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// FileName is the project configuration file looked up at the
// scanned root.
const FileName = ".scrutiny.yml"

// Config mirrors the YAML file structure.
type Config struct {
	// IncludeCategories restricts the rule selection to these
	// categories only.
	IncludeCategories []taxonomy.Category `yaml:"include_categories"`

	// ExcludeCategories drops these categories after inclusion.
	ExcludeCategories []taxonomy.Category `yaml:"exclude_categories"`

	// MinSeverity drops rules below this threshold.
	MinSeverity taxonomy.Severity `yaml:"min_severity"`

	// IgnorePatterns are extra path globs merged with the default
	// ignore list during discovery.
	IgnorePatterns []string `yaml:"ignore_patterns"`
}

// Default returns the zero configuration: all categories, all
// severities, default ignores only.
func Default() Config {
	return Config{}
}

// Load reads the configuration file from the given root directory.
// A missing file is not an error and yields the default config.
func Load(root string) (Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown categories and severities early, before
// they silently select zero rules.
func (c Config) Validate() error {
	for _, cat := range c.IncludeCategories {
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q in include_categories", cat)
		}
	}
	for _, cat := range c.ExcludeCategories {
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q in exclude_categories", cat)
		}
	}
	if c.MinSeverity != "" && c.MinSeverity.Rank() < 0 {
		return fmt.Errorf("unknown severity %q in min_severity", c.MinSeverity)
	}
	return nil
}
