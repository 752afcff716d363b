// Package confirm provides a reusable confirmation modal. It exposes a
// Result enum so callers decide what a confirmation means; the delete
// ask-before flow is caller policy, not part of the delete operation.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ManahilHabibb/DraftAI/internal/ui/styles"
)

// Result indicates the outcome of modal interaction.
type Result int

const (
	ResultNone    Result = iota // Modal still open or not visible
	ResultConfirm               // User confirmed the action
	ResultCancel                // User dismissed the modal
)

// Config controls modal appearance.
type Config struct {
	Title   string // e.g. "Delete draft?"
	Message string // e.g. "This cannot be undone."
}

// Model is the confirmation modal state.
type Model struct {
	cfg     Config
	visible bool
	width   int
	height  int
}

// New creates a hidden modal; call Show to display it.
func New(cfg Config) Model {
	return Model{cfg: cfg}
}

// Show makes the modal visible with the given config.
func (m Model) Show(cfg Config) Model {
	m.cfg = cfg
	m.visible = true
	return m
}

// Hide dismisses the modal.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// IsVisible reports whether the modal is displayed.
func (m Model) IsVisible() bool { return m.visible }

// SetSize sets viewport dimensions for centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update resolves the modal on y/enter (confirm) or n/esc (cancel).
// While visible it swallows all other keys.
func (m Model) Update(msg tea.Msg) (Model, Result) {
	if !m.visible {
		return m, ResultNone
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, ResultNone
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		m.visible = false
		return m, ResultConfirm
	case tea.KeyEscape:
		m.visible = false
		return m, ResultCancel
	case tea.KeyRunes:
		switch string(keyMsg.Runes) {
		case "y", "Y":
			m.visible = false
			return m, ResultConfirm
		case "n", "N":
			m.visible = false
			return m, ResultCancel
		}
	}

	return m, ResultNone
}

// View renders the modal centered in the viewport.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	box := styles.ModalStyle.Render(
		styles.TitleStyle.Render(m.cfg.Title) + "\n\n" +
			m.cfg.Message + "\n\n" +
			styles.HelpStyle.Render("y/enter confirm • n/esc cancel"))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
