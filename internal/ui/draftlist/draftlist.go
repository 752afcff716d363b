// Package draftlist provides the draft list pane: a cursor over the cached
// draft list with select and delete actions.
package draftlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ManahilHabibb/DraftAI/internal/draft"
	"github.com/ManahilHabibb/DraftAI/internal/keys"
	"github.com/ManahilHabibb/DraftAI/internal/ui/styles"
)

// SelectMsg is sent when the user opens the draft under the cursor.
type SelectMsg struct {
	Draft draft.Draft
}

// DeleteRequestMsg is sent when the user asks to delete the draft under the
// cursor. Confirmation is the parent's policy.
type DeleteRequestMsg struct {
	Draft draft.Draft
}

// Model is the draft list pane state.
type Model struct {
	drafts  []draft.Draft
	cursor  int
	keys    keys.ListMap
	width   int
	height  int
	focused bool
}

// New returns an empty list pane.
func New() Model {
	return Model{keys: keys.List}
}

// SetDrafts replaces the rows shown, clamping the cursor into range.
func (m Model) SetDrafts(drafts []draft.Draft) Model {
	m.drafts = drafts
	if m.cursor >= len(drafts) {
		m.cursor = len(drafts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// SetSize sets the pane dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Focus gives the pane key focus.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes key focus.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the pane has key focus.
func (m Model) Focused() bool { return m.focused }

// Selected returns the draft under the cursor.
func (m Model) Selected() (draft.Draft, bool) {
	if len(m.drafts) == 0 {
		return draft.Draft{}, false
	}
	return m.drafts[m.cursor], true
}

// SelectByID moves the cursor to the draft with the given id.
func (m Model) SelectByID(id string) Model {
	for i, d := range m.drafts {
		if d.ID == id {
			m.cursor = i
			break
		}
	}
	return m
}

// Update handles key messages while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.drafts)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Open):
		if d, ok := m.Selected(); ok {
			return m, func() tea.Msg { return SelectMsg{Draft: d} }
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if d, ok := m.Selected(); ok {
			return m, func() tea.Msg { return DeleteRequestMsg{Draft: d} }
		}
	}

	return m, nil
}

// View renders the pane.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Drafts"))
	b.WriteByte('\n')

	if len(m.drafts) == 0 {
		b.WriteString(styles.DimStyle.Render("No drafts yet. Press n to start one."))
		return m.frame(b.String())
	}

	for i, d := range m.drafts {
		title := d.Title
		if title == "" {
			title = "(untitled)"
		}
		row := fmt.Sprintf("%s  %s", title, styles.DimStyle.Render(d.UpdatedAt.Format("Jan 2 15:04")))
		if i == m.cursor {
			b.WriteString(styles.SelectedItemStyle.Render("> " + row))
		} else {
			b.WriteString(styles.ListItemStyle.Render(row))
		}
		b.WriteByte('\n')
	}

	return m.frame(strings.TrimRight(b.String(), "\n"))
}

func (m Model) frame(content string) string {
	style := styles.BlurredBorderStyle
	if m.focused {
		style = styles.FocusedBorderStyle
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(content)
}
