package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unhappychoice/gittype/internal/history"
)

// RepoSelectResult holds the outcome of a repository picker run.
type RepoSelectResult struct {
	Selected history.RepositorySummary
	Abort    bool
}

// repoItem adapts a RepositorySummary to bubbles/list's list.Item.
type repoItem struct {
	repo history.RepositorySummary
}

func (i repoItem) Title() string { return i.repo.UserName + "/" + i.repo.RepositoryName }
func (i repoItem) Description() string {
	if i.repo.RemoteURL == "" {
		return "(no remote recorded)"
	}
	return i.repo.RemoteURL
}
func (i repoItem) FilterValue() string { return i.Title() }

type repoSelectModel struct {
	list   list.Model
	result RepoSelectResult
}

func newRepoSelectModel(repos []history.RepositorySummary) repoSelectModel {
	items := make([]list.Item, len(repos))
	for i, r := range repos {
		items[i] = repoItem{repo: r}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("212"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("241"))

	l := list.New(items, delegate, 60, 15)
	l.Title = "Select Repository"
	l.Styles.Title = headerStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return repoSelectModel{list: l}
}

func (m repoSelectModel) Init() tea.Cmd {
	return nil
}

func (m repoSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.result.Abort = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(repoItem); ok {
				m.result.Selected = item.repo
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m repoSelectModel) View() string {
	return m.list.View() + "\n" + hintStyle.Render("enter: select • /: search • esc: cancel")
}

// RunRepoSelect runs the repository picker and returns the chosen entry.
func RunRepoSelect(repos []history.RepositorySummary) (RepoSelectResult, error) {
	if len(repos) == 0 {
		return RepoSelectResult{Abort: true}, fmt.Errorf("no repositories recorded yet")
	}

	m := newRepoSelectModel(repos)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return RepoSelectResult{Abort: true}, err
	}
	return finalModel.(repoSelectModel).result, nil
}
