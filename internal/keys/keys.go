// Package keys defines the key bindings for every focus area in one place
// so handlers and help lines cannot drift apart.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// ListMap holds the bindings active while the draft list has focus.
type ListMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	New     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// List is the draft list binding set.
var List = ListMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// EditorMap holds the bindings active while the editor has focus.
type EditorMap struct {
	Save      key.Binding
	Generate  key.Binding
	NextField key.Binding
	Back      key.Binding
}

// Editor is the editor binding set.
var Editor = EditorMap{
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Generate:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "ai prompt")),
	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
}

// PromptMap holds the bindings active while the AI prompt bar has focus.
type PromptMap struct {
	Submit key.Binding
	Save   key.Binding
	Back   key.Binding
}

// Prompt is the prompt bar binding set.
var Prompt = PromptMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
	Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "editor")),
}

// HelpLine renders bindings as a status bar help line.
func HelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
