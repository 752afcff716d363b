// Package editor provides the edit pane: a title input and a content
// textarea over the open draft's buffers.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ManahilHabibb/DraftAI/internal/ui/styles"
)

// field identifies which input currently has focus within the pane.
type field int

const (
	fieldTitle field = iota
	fieldContent
)

// Model is the edit pane state.
type Model struct {
	title   textinput.Model
	content textarea.Model
	active  field
	focused bool
	width   int
	height  int
}

// New returns an empty edit pane.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Draft title"
	ti.Prompt = ""
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.ShowLineNumbers = false

	return Model{title: ti, content: ta}
}

// SetValues loads title and content into the inputs, replacing whatever was
// there. The caller decides when discarding edits is acceptable.
func (m Model) SetValues(title, content string) Model {
	m.title.SetValue(title)
	m.content.SetValue(content)
	return m
}

// SetContent replaces only the content input, preserving the cursor at the
// end. Used when generated text is merged in.
func (m Model) SetContent(content string) Model {
	m.content.SetValue(content)
	m.content.CursorEnd()
	return m
}

// Clear empties both inputs.
func (m Model) Clear() Model {
	return m.SetValues("", "")
}

// Title returns the title buffer.
func (m Model) Title() string { return m.title.Value() }

// Content returns the content buffer.
func (m Model) Content() string { return m.content.Value() }

// SetSize sets the pane dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	inner := width - 4
	if inner > 0 {
		m.title.Width = inner
		m.content.SetWidth(inner)
	}
	// Title row, its label, and the frame eat into the height.
	if h := height - 7; h > 0 {
		m.content.SetHeight(h)
	}
	return m
}

// Focus gives the pane key focus, starting on the title input.
func (m Model) Focus() Model {
	m.focused = true
	return m.focusField(m.active)
}

// Blur removes key focus from the pane and both inputs.
func (m Model) Blur() Model {
	m.focused = false
	m.title.Blur()
	m.content.Blur()
	return m
}

// Focused reports whether the pane has key focus.
func (m Model) Focused() bool { return m.focused }

// FocusContent moves focus directly to the content textarea.
func (m Model) FocusContent() Model {
	m.focused = true
	return m.focusField(fieldContent)
}

func (m Model) focusField(f field) Model {
	m.active = f
	switch f {
	case fieldTitle:
		m.title.Focus()
		m.content.Blur()
	case fieldContent:
		m.title.Blur()
		m.content.Focus()
	}
	return m
}

// Update routes key messages to the focused input. Tab switches between the
// title and content fields.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyTab:
			if m.active == fieldTitle {
				return m.focusField(fieldContent), nil
			}
			return m.focusField(fieldTitle), nil
		case tea.KeyEnter:
			// Enter on the title drops into the content, like a form.
			if m.active == fieldTitle {
				return m.focusField(fieldContent), nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// View renders the pane with the given header label.
func (m Model) View(label string) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(label))
	b.WriteByte('\n')
	b.WriteString(styles.DimStyle.Render("Title"))
	b.WriteByte('\n')
	b.WriteString(m.title.View())
	b.WriteByte('\n')
	b.WriteString(m.content.View())

	style := styles.BlurredBorderStyle
	if m.focused {
		style = styles.FocusedBorderStyle
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}
