// Package session holds the search settings an operator builds up across
// menu turns and the policy for asking about them again.
package session

import (
	"fmt"

	"github.com/charliek/cwlog/internal/query"
)

// Prompter is the interactive input surface the session asks through
type Prompter interface {
	// Select asks the operator to pick one of options
	Select(title string, options []string) (string, error)
	// Input reads a line of free text
	Input(prompt string) (string, error)
	// Confirm asks a yes/no question; the default answer is no
	Confirm(question string) (bool, error)
}

// Action is what to do with a field before a query
type Action int

const (
	// ActionPrompt asks for a value that has never been set
	ActionPrompt Action = iota
	// ActionReuse keeps the current value
	ActionReuse
	// ActionPromptWithCurrent asks for a new value, showing the current one
	ActionPromptWithCurrent
)

// Decide applies the resolve policy for one field
func Decide(current string, changeRequested bool) Action {
	switch {
	case current == "":
		return ActionPrompt
	case changeRequested:
		return ActionPromptWithCurrent
	default:
		return ActionReuse
	}
}

// Field describes one session setting
type Field struct {
	Name   string // used in the change question
	Prompt string // shown when asking for a value
}

// Session fields
var (
	FieldKeyword = Field{Name: "search keyword", Prompt: "Search keyword"}
	FieldFrom    = Field{Name: "range start", Prompt: "Range start (yyyy-mm-dd hh:mm:ss)"}
	FieldTo      = Field{Name: "range end", Prompt: "Range end (yyyy-mm-dd hh:mm:ss)"}
	FieldSince   = Field{Name: "tail window", Prompt: "Tail window (e.g. 1w, 1d, 1h, 1m, 1s)"}
)

// Session carries search settings between queries. The zero value is an
// empty session.
type Session struct {
	Keyword string
	From    string
	To      string
	Since   string
}

// Resolver resolves session fields through a Prompter
type Resolver struct {
	prompter Prompter
}

// NewResolver creates a Resolver
func NewResolver(p Prompter) *Resolver {
	return &Resolver{prompter: p}
}

// Resolve fills in or updates a single value according to Decide
func (r *Resolver) Resolve(field Field, current *string) error {
	change := false
	if *current != "" {
		var err error
		change, err = r.prompter.Confirm(fmt.Sprintf("Change the %s?", field.Name))
		if err != nil {
			return err
		}
	}

	switch Decide(*current, change) {
	case ActionPrompt:
		v, err := r.prompter.Input(field.Prompt + ": ")
		if err != nil {
			return err
		}
		*current = v
	case ActionPromptWithCurrent:
		v, err := r.prompter.Input(fmt.Sprintf("%s (current: %s): ", field.Prompt, *current))
		if err != nil {
			return err
		}
		*current = v
	case ActionReuse:
	}
	return nil
}

// ResolveKeyword resolves the search keyword
func (r *Resolver) ResolveKeyword(s *Session) error {
	return r.Resolve(FieldKeyword, &s.Keyword)
}

// ResolveRange resolves the range start then the range end
func (r *Resolver) ResolveRange(s *Session) error {
	if err := r.Resolve(FieldFrom, &s.From); err != nil {
		return err
	}
	return r.Resolve(FieldTo, &s.To)
}

// ResolveSince resolves the tail window and validates it
func (r *Resolver) ResolveSince(s *Session) error {
	if err := r.Resolve(FieldSince, &s.Since); err != nil {
		return err
	}
	if _, err := query.ParseSince(s.Since); err != nil {
		return err
	}
	return nil
}
