package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxInputLength bounds a single free-text answer
const maxInputLength = 1024

// inputModel reads one line of text
type inputModel struct {
	prompt  string
	input   textinput.Model
	value   string
	done    bool
	aborted bool
}

func newInputModel(prompt string) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxInputLength
	ti.Focus()
	return inputModel{prompt: prompt, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return promptStyle.Render(m.prompt) + answerStyle.Render(m.value) + "\n"
	}
	if m.aborted {
		return ""
	}
	return promptStyle.Render(m.prompt) + m.input.View() + "\n" +
		hintStyle.Render("enter to submit, esc to cancel") + "\n"
}
