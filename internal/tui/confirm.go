package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cacheClearWarnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	cacheClearHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cacheClearDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// CacheClearPrompt describes what "gittype cache clear" is about to delete,
// for the confirmation dialog to show before it runs.
type CacheClearPrompt struct {
	Dir        string
	EntryCount int
	TotalBytes int64
}

// ConfirmResult is the user's answer to a destructive-action prompt.
type ConfirmResult struct {
	Confirmed bool
	Aborted   bool
}

type cacheClearModel struct {
	prompt   CacheClearPrompt
	selected bool // true = Yes, false = No
	result   ConfirmResult
}

func newCacheClearModel(prompt CacheClearPrompt) cacheClearModel {
	return cacheClearModel{prompt: prompt}
}

func (m cacheClearModel) Init() tea.Cmd {
	return nil
}

func (m cacheClearModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.result.Aborted = true
			return m, tea.Quit

		case "left", "right", "tab", "h", "l":
			m.selected = !m.selected
			return m, nil

		case "y", "Y":
			m.selected = true
			m.result.Confirmed = true
			return m, tea.Quit

		case "n", "N":
			m.selected = false
			m.result.Confirmed = false
			return m, tea.Quit

		case "enter":
			m.result.Confirmed = m.selected
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m cacheClearModel) View() string {
	var sb strings.Builder

	sb.WriteString(cacheClearWarnStyle.Render("Clear the challenge cache?") + "\n")
	sb.WriteString(cacheClearDimStyle.Render(fmt.Sprintf(
		"  %d cached repository %s, %s — %s\n\n",
		m.prompt.EntryCount, pluralize(m.prompt.EntryCount, "set", "sets"),
		humanizeBytes(m.prompt.TotalBytes), m.prompt.Dir)))

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)

	if m.selected {
		yesStyle = yesStyle.Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0"))
	} else {
		noStyle = noStyle.Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0"))
	}

	sb.WriteString(fmt.Sprintf("  %s  %s\n", yesStyle.Render("Yes, delete"), noStyle.Render("No")))
	sb.WriteString("\n" + cacheClearHintStyle.Render("←/→: select • enter: confirm • y/n: quick select • esc: cancel"))

	return sb.String()
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func humanizeBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// RunCacheClearPrompt runs the destructive-action confirmation dialog gated
// behind "gittype cache clear" (without --force).
func RunCacheClearPrompt(prompt CacheClearPrompt) (ConfirmResult, error) {
	m := newCacheClearModel(prompt)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{Aborted: true}, err
	}

	return finalModel.(cacheClearModel).result, nil
}
