package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// Good, Warn, and Bad color-code scores and counts.
	Good lipgloss.Style
	Warn lipgloss.Style
	Bad  lipgloss.Style

	// Error, Warning, and Info color-code severities.
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Label styles summary line labels.
	Label lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Good: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		Warn: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Bad:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Label:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ScoreStyle returns the style for a 0-100 score: green at 80+,
// yellow at 60-79, red below.
func (s Styles) ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return s.Good
	case score >= 60:
		return s.Warn
	default:
		return s.Bad
	}
}

// SeverityStyle returns the style for a severity string.
func (s Styles) SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "error":
		return s.Error
	case "warning":
		return s.Warning
	case "info":
		return s.Info
	default:
		return s.Muted
	}
}
