// Package tui implements gittype's typing screen and the shared bubbletea
// plumbing it needs, grounded on the teacher's internal/tui package: one
// bubbletea Model per screen, package-scope lipgloss styles, a keyMap of
// key.Binding values, and a RunX(...) (Result, error) entry point.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/config"
	"github.com/unhappychoice/gittype/internal/scoring"
	"github.com/unhappychoice/gittype/internal/typing"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
)

type stageKeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

var stageKeys = stageKeyMap{
	Pause: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// StageResult is what RunStage hands back once a stage finishes, combining
// the tracker's raw snapshot with the scoring package's derived metrics.
type StageResult struct {
	Score          scoring.StageScore
	Keystrokes     int
	CompletionTime time.Duration
	Skipped        bool
	Failed         bool
	Quit           bool
}

// Model drives one typing stage: the countdown overlay, the running
// keystroke loop, and the esc-triggered pause dialog.
type Model struct {
	core      *typing.Core
	title     string
	theme     config.Theme
	countdown int
	paused    bool
	result    StageResult
	done      bool
}

// NewModel builds a stage Model from a Challenge, rendering with theme.
func NewModel(c challenge.Challenge, theme config.Theme) Model {
	return Model{
		core:      typing.NewCore(c),
		title:     c.DisplayTitle(),
		theme:     theme,
		countdown: 3,
	}
}

func (m Model) Init() tea.Cmd {
	m.core.Start()
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.core.Phase() == typing.PhaseCountdown {
			m.countdown--
			if m.countdown <= 0 {
				m.core.BeginRunning()
				return m, nil
			}
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, stageKeys.Quit) {
		m.result.Quit = true
		m.done = true
		return m, tea.Quit
	}

	if m.paused {
		switch msg.String() {
		case "s", "S":
			m.core.Skip()
			data := m.core.Tracker().GetData()
			m.result.Skipped = true
			m.result.Score = scoring.CalculateStage(data)
			m.result.Keystrokes = len(data.Keystrokes)
			m.result.CompletionTime = data.ElapsedTime
			m.done = true
			return m, tea.Quit
		default:
			m.paused = false
			m.core.ResumeFromPause()
		}
		return m, nil
	}

	if key.Matches(msg, stageKeys.Pause) {
		m.paused = true
		m.core.Escape()
		return m, nil
	}

	if m.core.Phase() != typing.PhaseRunning {
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		m.core.Press(byte(msg.Runes[0]))
	} else if msg.Type == tea.KeyEnter {
		m.core.Press('\n')
	} else if msg.Type == tea.KeyTab {
		m.core.Press('\t')
	} else if msg.Type == tea.KeySpace {
		m.core.Press(' ')
	}

	if m.core.Phase() == typing.PhaseFinished {
		data := m.core.Tracker().GetData()
		m.result.Score = scoring.CalculateStage(data)
		m.result.Keystrokes = len(data.Keystrokes)
		m.result.CompletionTime = data.ElapsedTime
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.core.Phase() == typing.PhaseCountdown {
		return headerStyle.Render(m.title) + "\n\n" + fmt.Sprintf("Starting in %d...", m.countdown)
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(m.title) + "\n\n")
	body.WriteString(renderDisplayText(m.core, m.theme))
	body.WriteString("\n\n")

	if m.paused {
		body.WriteString(hintStyle.Render("paused — s: skip stage • any other key: resume"))
	} else {
		body.WriteString(hintStyle.Render("esc: pause • ctrl+c: quit"))
	}
	return body.String()
}

// renderDisplayText colors DisplayText by cursor position: typed text in
// the theme's correct color, the current character in the theme's mistake
// color when the last keystroke missed, and everything after in the
// theme's pending color.
func renderDisplayText(c *typing.Core, theme config.Theme) string {
	runes := []rune(c.DisplayText)
	pos := c.PosDisplay()
	if pos > len(runes) {
		pos = len(runes)
	}

	correct := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.CorrectColor))
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PendingColor))
	mistake := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.MistakeColor)).Underline(true)
	cursor := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(theme.CursorColor))

	var b strings.Builder
	b.WriteString(correct.Render(string(runes[:pos])))
	if pos < len(runes) {
		cur := string(runes[pos])
		if c.IsMistaken() {
			b.WriteString(mistake.Render(cur))
		} else {
			b.WriteString(cursor.Render(cur))
		}
		if pos+1 < len(runes) {
			b.WriteString(pending.Render(string(runes[pos+1:])))
		}
	}
	return b.String()
}

// RunStage drives one typing stage to completion in the terminal.
func RunStage(c challenge.Challenge, theme config.Theme) (StageResult, error) {
	m := NewModel(c, theme)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return StageResult{}, err
	}
	return final.(Model).result, nil
}
