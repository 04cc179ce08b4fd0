package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listWidth     = 80
	maxListHeight = 20
	minListHeight = 10
)

// option is a list entry
type option string

func (o option) Title() string       { return string(o) }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return string(o) }

// selectModel picks one entry from a filterable list
type selectModel struct {
	title   string
	list    list.Model
	choice  string
	done    bool
	aborted bool
}

func newSelectModel(title string, options []string) selectModel {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = option(o)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	height := len(options) + 6
	if height > maxListHeight {
		height = maxListHeight
	}
	if height < minListHeight {
		height = minListHeight
	}

	l := list.New(items, delegate, listWidth, height)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(len(options) > maxListHeight)
	l.SetFilteringEnabled(true)
	l.KeyMap.Quit.SetEnabled(false)

	return selectModel{title: title, list: l}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - 1
		if h > maxListHeight {
			h = maxListHeight
		}
		m.list.SetSize(msg.Width, h)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}
		// While the filter prompt is open, enter and esc belong to the list
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "esc":
				if m.list.FilterState() == list.FilterApplied {
					break
				}
				m.aborted = true
				return m, tea.Quit
			case "enter":
				if item, ok := m.list.SelectedItem().(option); ok {
					m.choice = string(item)
					m.done = true
					return m, tea.Quit
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.done {
		return titleStyle.Render(m.title) + " " + answerStyle.Render(m.choice) + "\n"
	}
	if m.aborted {
		return ""
	}
	return m.list.View()
}
