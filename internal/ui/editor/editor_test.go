package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSetValues_LoadsBothBuffers(t *testing.T) {
	m := New().SetValues("My title", "My content")

	require.Equal(t, "My title", m.Title())
	require.Equal(t, "My content", m.Content())
}

func TestClear_EmptiesBothBuffers(t *testing.T) {
	m := New().SetValues("t", "c").Clear()

	require.Empty(t, m.Title())
	require.Empty(t, m.Content())
}

func TestUpdate_TypingGoesToTitleFirst(t *testing.T) {
	m := New().Focus()

	m = typeRunes(m, "hello")

	require.Equal(t, "hello", m.Title())
	require.Empty(t, m.Content())
}

func TestUpdate_TabSwitchesToContent(t *testing.T) {
	m := New().Focus()
	m = typeRunes(m, "title")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeRunes(m, "body")

	require.Equal(t, "title", m.Title())
	require.Equal(t, "body", m.Content())
}

func TestUpdate_EnterOnTitleMovesToContent(t *testing.T) {
	m := New().Focus()
	m = typeRunes(m, "title")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeRunes(m, "body")

	require.Equal(t, "title", m.Title())
	require.Equal(t, "body", m.Content())
}

func TestUpdate_EnterInContentInsertsNewline(t *testing.T) {
	m := New().FocusContent()
	m = typeRunes(m, "one")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeRunes(m, "two")

	require.Equal(t, "one\ntwo", m.Content())
}

func TestUpdate_IgnoredWhenBlurred(t *testing.T) {
	m := New()

	m = typeRunes(m, "ignored")

	require.Empty(t, m.Title())
	require.Empty(t, m.Content())
}

func TestSetContent_PreservesTitle(t *testing.T) {
	m := New().SetValues("t", "old")

	m = m.SetContent("old\n\ngenerated")

	require.Equal(t, "t", m.Title())
	require.Equal(t, "old\n\ngenerated", m.Content())
}

func TestView_ShowsLabel(t *testing.T) {
	m := New().SetSize(60, 20)

	require.Contains(t, m.View("New draft"), "New draft")
}
