// Package app implements the root TUI model: the single update loop that
// owns the edit session, the list cache, and the error channel, and drives
// every network operation as an async command.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ManahilHabibb/DraftAI/internal/config"
	"github.com/ManahilHabibb/DraftAI/internal/draft"
	"github.com/ManahilHabibb/DraftAI/internal/keys"
	"github.com/ManahilHabibb/DraftAI/internal/log"
	"github.com/ManahilHabibb/DraftAI/internal/ui/confirm"
	"github.com/ManahilHabibb/DraftAI/internal/ui/draftlist"
	"github.com/ManahilHabibb/DraftAI/internal/ui/editor"
	"github.com/ManahilHabibb/DraftAI/internal/ui/promptbar"
	"github.com/ManahilHabibb/DraftAI/internal/ui/styles"
)

// focusArea identifies which pane holds key focus.
type focusArea int

const (
	focusList focusArea = iota
	focusEditor
	focusPrompt
)

// Pinger checks that the server is reachable. The startup ping gives the
// user a direct "server down" message instead of a generic fetch failure.
type Pinger interface {
	Health(ctx context.Context) error
}

// Services bundles the dependencies the app needs.
type Services struct {
	Config    config.Config
	Store     draft.Store
	Generator draft.Generator
	Pinger    Pinger
}

// Model is the root application state. All shared state (session, cache,
// error channel) is mutated only inside Update; commands do I/O and report
// back as messages.
type Model struct {
	services Services

	session     *draft.EditSession
	cache       *draft.ListCache
	errs        *draft.ErrorChannel
	coordinator *draft.SaveCoordinator
	assistant   *draft.Assistant

	list    draftlist.Model
	editor  editor.Model
	prompt  promptbar.Model
	modal   confirm.Model
	spinner spinner.Model

	focus  focusArea
	width  int
	height int

	// loading covers the initial and manual refreshes; saving is the
	// per-session in-flight guard that prevents overlapping saves.
	// Generations are deliberately unguarded and counted only for display.
	loading    bool
	saving     bool
	generating int

	pendingDelete draft.Draft
	notice        string
}

// New creates the root model.
func New(svc Services) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	return Model{
		services:    svc,
		session:     draft.NewEditSession(),
		cache:       draft.NewListCache(),
		errs:        &draft.ErrorChannel{},
		coordinator: draft.NewSaveCoordinator(svc.Store),
		assistant:   draft.NewAssistant(svc.Generator),
		list:        draftlist.New().Focus(),
		editor:      editor.New(),
		prompt:      promptbar.New(),
		modal:       confirm.New(confirm.Config{}),
		spinner:     s,
		loading:     true,
	}
}

// Init pings the server and triggers the initial list refresh.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, refreshCmd(m.coordinator)}
	if m.services.Pinger != nil {
		cmds = append(cmds, healthCmd(m.services.Pinger))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case draftlist.SelectMsg:
		return m.openDraft(msg.Draft)

	case draftlist.DeleteRequestMsg:
		return m.requestDelete(msg.Draft)

	case promptbar.SubmitMsg:
		return m.startGenerate(msg.Prompt)

	case healthMsg:
		if msg.err != nil {
			m.errs.Set("Cannot reach the server. Check that it is running.")
		}
		return m, nil

	case refreshedMsg:
		return m.handleRefreshed(msg)

	case savedMsg:
		return m.handleSaved(msg)

	case deletedMsg:
		return m.handleDeleted(msg)

	case generatedMsg:
		return m.handleGenerated(msg)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	listWidth := msg.Width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	if listWidth > 40 {
		listWidth = 40
	}
	editorWidth := msg.Width - listWidth
	bodyHeight := msg.Height - 1 // status bar

	m.list = m.list.SetSize(listWidth, bodyHeight)
	m.editor = m.editor.SetSize(editorWidth, bodyHeight-3)
	m.prompt = m.prompt.SetSize(editorWidth)
	m.modal = m.modal.SetSize(msg.Width, msg.Height)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The confirm modal swallows keys while visible.
	if m.modal.IsVisible() {
		var result confirm.Result
		m.modal, result = m.modal.Update(msg)
		switch result {
		case confirm.ResultConfirm:
			return m.startDelete(m.pendingDelete)
		case confirm.ResultCancel:
			m.pendingDelete = draft.Draft{}
		}
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.focus {
	case focusList:
		return m.handleListKey(msg)
	case focusEditor:
		return m.handleEditorKey(msg)
	case focusPrompt:
		return m.handlePromptKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.List.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.List.New):
		return m.startNewDraft()
	case key.Matches(msg, keys.List.Refresh):
		m.errs.Clear()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, refreshCmd(m.coordinator))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Editor.Back):
		return m.setFocus(focusList), nil
	case key.Matches(msg, keys.Editor.Save):
		return m.startSave()
	case key.Matches(msg, keys.Editor.Generate):
		return m.setFocus(focusPrompt), nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	// Local edits flow straight into the session buffers.
	m.session.SetTitle(m.editor.Title())
	m.session.SetContent(m.editor.Content())
	return m, cmd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Prompt.Back):
		return m.setFocus(focusEditor), nil
	case key.Matches(msg, keys.Prompt.Save):
		return m.startSave()
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	m.list = m.list.Blur()
	m.editor = m.editor.Blur()
	m.prompt = m.prompt.Blur()

	switch f {
	case focusList:
		m.list = m.list.Focus()
	case focusEditor:
		m.editor = m.editor.Focus()
	case focusPrompt:
		m.prompt = m.prompt.Focus()
	}
	return m
}

// Operations. Each clears the error channel before doing its own work.

func (m Model) startNewDraft() (tea.Model, tea.Cmd) {
	m.errs.Clear()
	m.session.StartNew()
	m.editor = m.editor.Clear()
	return m.setFocus(focusEditor), nil
}

func (m Model) openDraft(d draft.Draft) (tea.Model, tea.Cmd) {
	m.errs.Clear()
	m.session.Load(d)
	m.editor = m.editor.SetValues(d.Title, d.Content)
	return m.setFocus(focusEditor), nil
}

func (m Model) startSave() (tea.Model, tea.Cmd) {
	m.errs.Clear()
	if m.saving {
		return m.showNotice("Save already in progress")
	}
	m.saving = true
	return m, tea.Batch(m.spinner.Tick, saveCmd(m.coordinator, m.session.Snapshot()))
}

func (m Model) requestDelete(d draft.Draft) (tea.Model, tea.Cmd) {
	if !m.services.Config.UI.ConfirmDelete {
		return m.startDelete(d)
	}
	m.pendingDelete = d
	title := d.Title
	if title == "" {
		title = d.ID
	}
	m.modal = m.modal.Show(confirm.Config{
		Title:   fmt.Sprintf("Delete %q?", title),
		Message: "This cannot be undone.",
	})
	return m, nil
}

func (m Model) startDelete(d draft.Draft) (tea.Model, tea.Cmd) {
	m.errs.Clear()
	m.pendingDelete = draft.Draft{}
	return m, deleteCmd(m.coordinator, d.ID)
}

func (m Model) startGenerate(prompt string) (tea.Model, tea.Cmd) {
	m.errs.Clear()
	m.generating++
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.assistant, prompt))
}

// Continuations. Results are applied in arrival order on this thread; a
// response that lands after the session was reset or rebound is still
// applied, since nothing cancels in-flight requests.

func (m Model) handleRefreshed(msg refreshedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		// Previous snapshot is retained untouched.
		m.errs.SetError(msg.err)
		return m, nil
	}
	m.cache.Replace(msg.drafts)
	m.list = m.list.SetDrafts(m.cache.Drafts())
	if m.session.Bound() {
		m.list = m.list.SelectByID(m.session.BoundID())
	}
	return m, nil
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		// Binding state is exactly as it was before the call.
		m.errs.SetError(msg.err)
		return m, nil
	}

	m.session.Bind(msg.outcome.Draft)

	// A refresh failure after this point is reported independently and
	// does not undo the save.
	model, cmd := m.showNotice("Saved")
	return model, tea.Batch(cmd, refreshCmd(m.coordinator))
}

func (m Model) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Cache and session are left untouched.
		m.errs.SetError(msg.err)
		return m, nil
	}

	if m.session.BoundID() == msg.id {
		m.session.StartNew()
		m.editor = m.editor.Clear()
	}

	model, cmd := m.showNotice("Draft deleted")
	return model, tea.Batch(cmd, refreshCmd(m.coordinator))
}

func (m Model) handleGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	if m.generating > 0 {
		m.generating--
	}
	if msg.err != nil {
		// Content buffer and prompt text stay as they are for a retry.
		m.errs.SetError(msg.err)
		return m, nil
	}

	merged := draft.MergeGenerated(m.session.Content(), msg.text)
	m.session.SetContent(merged)
	m.editor = m.editor.SetContent(merged)
	m.prompt = m.prompt.Clear()
	return m, nil
}

func (m Model) showNotice(text string) (Model, tea.Cmd) {
	m.notice = text
	return m, scheduleNoticeClear()
}

func (m Model) busy() bool {
	return m.loading || m.saving || m.generating > 0
}

// View renders the application.
func (m Model) View() string {
	if m.modal.IsVisible() {
		return m.modal.View()
	}

	label := "New draft"
	if m.session.Bound() {
		title := m.session.Title()
		if title == "" {
			title = m.session.BoundID()
		}
		label = "Editing: " + title
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.editor.View(label),
		m.prompt.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), right)

	return body + "\n" + m.renderStatusBar()
}

func (m Model) renderStatusBar() string {
	if m.errs.HasError() {
		return styles.ErrorStyle.Width(m.width).Render(m.errs.Message())
	}

	var status string
	switch {
	case m.notice != "":
		status = styles.NoticeStyle.Render(m.notice)
	case m.saving:
		status = m.spinner.View() + " saving..."
	case m.generating > 0:
		status = m.spinner.View() + fmt.Sprintf(" generating (%d)...", m.generating)
	case m.loading:
		status = m.spinner.View() + " loading drafts..."
	default:
		status = styles.HelpStyle.Render(m.helpLine())
	}
	return styles.StatusBarStyle.Width(m.width).Render(status)
}

func (m Model) helpLine() string {
	switch m.focus {
	case focusList:
		return keys.HelpLine(keys.List.Open, keys.List.New, keys.List.Delete,
			keys.List.Refresh, keys.List.Quit)
	case focusEditor:
		return keys.HelpLine(keys.Editor.Save, keys.Editor.Generate,
			keys.Editor.NextField, keys.Editor.Back)
	case focusPrompt:
		return keys.HelpLine(keys.Prompt.Submit, keys.Prompt.Save, keys.Prompt.Back)
	}
	return ""
}

// Message types

type healthMsg struct {
	err error
}

type refreshedMsg struct {
	drafts []draft.Draft
	err    error
}

type savedMsg struct {
	outcome draft.SaveOutcome
	err     error
}

type deletedMsg struct {
	id  string
	err error
}

type generatedMsg struct {
	text string
	err  error
}

type clearNoticeMsg struct{}

// Async commands

func healthCmd(p Pinger) tea.Cmd {
	return func() tea.Msg {
		err := p.Health(context.Background())
		if err != nil {
			log.Error(log.CatAPI, "health ping failed", "error", err)
		}
		return healthMsg{err: err}
	}
}

func refreshCmd(c *draft.SaveCoordinator) tea.Cmd {
	return func() tea.Msg {
		drafts, err := c.Refresh(context.Background())
		return refreshedMsg{drafts: drafts, err: err}
	}
}

func saveCmd(c *draft.SaveCoordinator, snap draft.Snapshot) tea.Cmd {
	return func() tea.Msg {
		outcome, err := c.Save(context.Background(), snap)
		return savedMsg{outcome: outcome, err: err}
	}
}

func deleteCmd(c *draft.SaveCoordinator, id string) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{id: id, err: c.Delete(context.Background(), id)}
	}
}

func generateCmd(a *draft.Assistant, prompt string) tea.Cmd {
	return func() tea.Msg {
		text, err := a.Generate(context.Background(), prompt)
		if err != nil {
			log.Debug(log.CatUI, "generate command failed", "error", err)
		}
		return generatedMsg{text: text, err: err}
	}
}

func scheduleNoticeClear() tea.Cmd {
	return tea.Tick(3*time.Second, func(_ time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
