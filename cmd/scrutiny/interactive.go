package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	scoreGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	scoreWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	scoreBadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return scoreGoodStyle
	case score >= 60:
		return scoreWarnStyle
	default:
		return scoreBadStyle
	}
}

// reviewModel is the Bubble Tea model for browsing review results.
type reviewModel struct {
	report   *taxonomy.ReviewReport
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newReviewModel(rpt *taxonomy.ReviewReport) reviewModel {
	return reviewModel{
		report:  rpt,
		help:    help.New(),
		keys:    defaultKeyMap,
		content: renderReviewContent(rpt),
	}
}

func renderReviewContent(rpt *taxonomy.ReviewReport) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf(
		"Scrutiny Review: %d file(s), %d violation(s), score %d/100",
		rpt.Summary.TotalFiles,
		rpt.Summary.TotalViolations,
		rpt.Summary.OverallScore)))
	sb.WriteString("\n\n")

	for _, f := range rpt.Files {
		score := scoreStyle(f.Score).Render(fmt.Sprintf("%3d", f.Score))
		sb.WriteString(tuiHeaderStyle.Render(fmt.Sprintf("=== %s ===", f.Path)))
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(fmt.Sprintf("    %s  %s", score, f.Summary)))
		sb.WriteString("\n")

		if len(f.Violations) == 0 {
			sb.WriteString(statusStyle.Render("    No violations."))
			sb.WriteString("\n\n")
			continue
		}

		rows := make([][]string, 0, len(f.Violations))
		for _, v := range f.Violations {
			line := ""
			if v.Line > 0 {
				line = fmt.Sprintf("%d", v.Line)
			}
			msg := v.Message
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			rows = append(rows, []string{v.RuleID, line, msg})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				return lipgloss.NewStyle().PaddingRight(1)
			}).
			Headers("RULE", "LINE", "MESSAGE").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	if len(rpt.Recommendations) > 0 {
		sb.WriteString(tuiHeaderStyle.Render("=== Recommendations ==="))
		sb.WriteString("\n")
		for _, r := range rpt.Recommendations {
			sb.WriteString(fmt.Sprintf("  - %s\n", r))
		}
	}

	return sb.String()
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m reviewModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveReview launches the Bubble Tea TUI for browsing
// review results.
func runInteractiveReview(rpt *taxonomy.ReviewReport) error {
	model := newReviewModel(rpt)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
