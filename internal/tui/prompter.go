// Package tui implements the interactive prompts of cwlog on bubbletea.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charliek/cwlog/internal/domain"
)

// Prompter asks the operator questions, one small bubbletea program per
// question. Esc or Ctrl+C on any prompt returns domain.ErrAborted.
type Prompter struct {
	opts []tea.ProgramOption
}

// NewPrompter creates a Prompter reading keys from in and drawing to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{opts: []tea.ProgramOption{
		tea.WithInput(in),
		tea.WithOutput(out),
	}}
}

// Select asks the operator to pick one of options
func (p *Prompter) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", title)
	}
	final, err := p.run(newSelectModel(title, options))
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.aborted || !m.done {
		return "", domain.ErrAborted
	}
	return m.choice, nil
}

// Input reads a line of free text
func (p *Prompter) Input(prompt string) (string, error) {
	final, err := p.run(newInputModel(prompt))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted || !m.done {
		return "", domain.ErrAborted
	}
	return m.value, nil
}

// Confirm asks a yes/no question; the default answer is no
func (p *Prompter) Confirm(question string) (bool, error) {
	final, err := p.run(newConfirmModel(question))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted || !m.done {
		return false, domain.ErrAborted
	}
	return m.answer, nil
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, p.opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}
