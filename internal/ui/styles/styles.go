// Package styles centralizes lipgloss styles shared across the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorPrimary  = lipgloss.Color("#7D56F4")
	ColorSubtle   = lipgloss.Color("#6C6C6C")
	ColorSuccess  = lipgloss.Color("#73F59F")
	ColorError    = lipgloss.Color("#FF5F5F")
	ColorSelected = lipgloss.Color("#F2C14E")
	SpinnerColor  = ColorPrimary
)

var (
	// TitleStyle renders pane headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StatusBarStyle renders the bottom status line.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C1C1C1")).
			Background(lipgloss.Color("#353533"))

	// ErrorStyle renders the error bar, replacing the status bar while a
	// failure message is set.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorError)

	// NoticeStyle renders transient non-error notices in the status bar.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ListItemStyle renders an unselected draft row.
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// SelectedItemStyle renders the draft row under the cursor.
	SelectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(ColorSelected).
				Bold(true)

	// DimStyle renders secondary text such as timestamps and empty states.
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	// FocusedBorderStyle outlines the pane holding focus.
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	// BlurredBorderStyle outlines unfocused panes.
	BlurredBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSubtle)

	// HelpStyle renders the key hint line.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	// ModalStyle renders confirm dialogs.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(1, 2)
)
