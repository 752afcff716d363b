// Package promptbar provides the AI prompt input line.
package promptbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ManahilHabibb/DraftAI/internal/ui/styles"
)

// SubmitMsg is sent when the user submits a prompt.
type SubmitMsg struct {
	Prompt string
}

// Model is the prompt bar state.
type Model struct {
	input   textinput.Model
	focused bool
	width   int
}

// New returns an empty prompt bar.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Ask the AI to continue your draft..."
	ti.Prompt = "AI> "
	ti.CharLimit = 500
	return Model{input: ti}
}

// Value returns the current prompt text.
func (m Model) Value() string { return m.input.Value() }

// Clear empties the prompt field. Called only after a successful generation;
// a failed one leaves the prompt for retry.
func (m Model) Clear() Model {
	m.input.SetValue("")
	return m
}

// SetSize sets the bar width.
func (m Model) SetSize(width int) Model {
	m.width = width
	if width > 8 {
		m.input.Width = width - 8
	}
	return m
}

// Focus gives the bar key focus.
func (m Model) Focus() Model {
	m.focused = true
	m.input.Focus()
	return m
}

// Blur removes key focus.
func (m Model) Blur() Model {
	m.focused = false
	m.input.Blur()
	return m
}

// Focused reports whether the bar has key focus.
func (m Model) Focused() bool { return m.focused }

// Update routes key messages to the input. Enter submits the prompt as-is;
// validation is the assistant's job.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		prompt := m.input.Value()
		return m, func() tea.Msg { return SubmitMsg{Prompt: prompt} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the bar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())

	style := styles.BlurredBorderStyle
	if m.focused {
		style = styles.FocusedBorderStyle
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}
