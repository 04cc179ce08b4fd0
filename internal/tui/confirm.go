package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question. Anything but y means no.
type confirmModel struct {
	question string
	answer   bool
	done     bool
	aborted  bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "enter":
		m.answer = false
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		return promptStyle.Render(m.question) + " " + answerStyle.Render(answer) + "\n"
	}
	if m.aborted {
		return ""
	}
	return promptStyle.Render(m.question) + " " + hintStyle.Render("(y/N)") + "\n"
}
