package app

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ManahilHabibb/DraftAI/internal/config"
	"github.com/ManahilHabibb/DraftAI/internal/draft"
)

// fakeBackend implements draft.Store and draft.Generator with an in-memory
// draft list, counting every network call.
type fakeBackend struct {
	mu     sync.Mutex
	drafts []draft.Draft
	nextID int

	listErr   error
	createErr error
	updateErr error
	deleteErr error
	genErr    error
	genText   string
	healthErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	genCalls    int
	healthCalls int
}

func (f *fakeBackend) Health(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthCalls++
	return f.healthErr
}

func (f *fakeBackend) ListDrafts(context.Context) ([]draft.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]draft.Draft, len(f.drafts))
	copy(out, f.drafts)
	return out, nil
}

func (f *fakeBackend) CreateDraft(_ context.Context, title, content string) (draft.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return draft.Draft{}, f.createErr
	}
	f.nextID++
	d := draft.Draft{
		ID:        "d-" + strconv.Itoa(f.nextID),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.drafts = append(f.drafts, d)
	return d, nil
}

func (f *fakeBackend) UpdateDraft(_ context.Context, id, title, content string) (draft.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return draft.Draft{}, f.updateErr
	}
	for i := range f.drafts {
		if f.drafts[i].ID == id {
			f.drafts[i].Title = title
			f.drafts[i].Content = content
			f.drafts[i].UpdatedAt = time.Now()
			return f.drafts[i], nil
		}
	}
	return draft.Draft{}, errors.New("not found")
}

func (f *fakeBackend) DeleteDraft(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.drafts {
		if f.drafts[i].ID == id {
			f.drafts = append(f.drafts[:i], f.drafts[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeBackend) GenerateText(context.Context, string, int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.genCalls++
	if f.genErr != nil {
		return "", f.genErr
	}
	if f.genText != "" {
		return f.genText, nil
	}
	return "generated text", nil
}

func newTestModel(backend *fakeBackend) Model {
	cfg := config.Default()
	return New(Services{Config: cfg, Store: backend, Generator: backend, Pinger: backend})
}

// runCmds executes cmd (recursing into batches) and delivers every message
// back into the model. Commands that don't finish quickly (timers) are
// dropped, matching how tests elsewhere avoid real clock waits.
func runCmds(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		var next tea.Model
		var followUp tea.Cmd
		next, followUp = m.Update(msg)
		m = next.(Model)
		m = runCmds(t, m, followUp)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var msgs []tea.Msg
			for _, c := range batch {
				msgs = append(msgs, collect(c)...)
			}
			return msgs
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		// Timer-backed command (notice clear, spinner frame); skip it.
		return nil
	}
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	return runCmds(t, next.(Model), cmd)
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func ctrlS() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyCtrlS} }
func ctrlG() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyCtrlG} }
func enter() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyEnter} }
func rune1(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// startApp initializes the model and runs the initial refresh.
func startApp(t *testing.T, backend *fakeBackend) Model {
	t.Helper()
	m := newTestModel(backend)
	m = runCmds(t, m, m.Init())
	return m
}

func TestInitialRefresh_EmptyRemoteListShowsNoDraftsState(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)

	require.Equal(t, 1, backend.listCalls)
	require.True(t, m.cache.Empty())
	require.Contains(t, m.View(), "No drafts yet")
}

func TestSave_EmptyTitleFailsValidationWithoutNetworkCalls(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))

	m = press(t, m, ctrlS())

	require.True(t, m.errs.HasError())
	require.Contains(t, m.errs.Message(), "title")
	require.Zero(t, backend.createCalls)
	require.Zero(t, backend.updateCalls)
}

func TestSave_UnboundSessionCreatesOnceAndBinds(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeRunes(t, m, "C")

	m = press(t, m, ctrlS())

	require.Equal(t, 1, backend.createCalls)
	require.True(t, m.session.Bound())
	require.False(t, m.saving)

	// The follow-up refresh shows the created id exactly once.
	count := 0
	for _, d := range m.cache.Drafts() {
		if d.ID == m.session.BoundID() {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestSave_BoundSessionAlwaysUpdatesNeverCreates(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")
	m = press(t, m, ctrlS())
	boundID := m.session.BoundID()
	require.NotEmpty(t, boundID)

	m = press(t, m, ctrlS())
	m = press(t, m, ctrlS())

	require.Equal(t, 1, backend.createCalls)
	require.Equal(t, 2, backend.updateCalls)
	require.Equal(t, boundID, m.session.BoundID())
}

func TestSave_FailureLeavesBindingUntouched(t *testing.T) {
	backend := &fakeBackend{createErr: errors.New("connection refused")}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")

	m = press(t, m, ctrlS())

	require.False(t, m.session.Bound())
	require.True(t, m.errs.HasError())
	require.NotContains(t, m.errs.Message(), "connection refused")
	require.False(t, m.saving, "guard must release after a failed save")
}

func TestSave_SecondSaveWhileInFlightIsRejected(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")

	// First ctrl+s: take only the state change, keep the command pending.
	next, pending := m.Update(ctrlS())
	m = next.(Model)
	require.True(t, m.saving)

	// Second ctrl+s while the first is pending.
	m = press(t, m, ctrlS())
	require.Equal(t, "Save already in progress", m.notice)

	// Now let the first save land.
	m = runCmds(t, m, pending)

	require.Equal(t, 1, backend.createCalls, "overlapping save must not double-create")
}

func TestDelete_BoundDraftUnbindsSessionAndRefreshes(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "victim")
	m = press(t, m, ctrlS())
	id := m.session.BoundID()
	require.Equal(t, 1, m.cache.Len())

	// Back to the list, request delete, confirm in the modal.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = press(t, m, rune1("d"))
	require.True(t, m.modal.IsVisible())
	m = press(t, m, enter())

	require.Equal(t, 1, backend.deleteCalls)
	require.False(t, m.session.Bound())
	require.Empty(t, m.session.Title())
	require.Empty(t, m.session.Content())
	_, stillThere := m.cache.Get(id)
	require.False(t, stillThere)
}

func TestDelete_CancelledModalTouchesNothing(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "keep me")
	m = press(t, m, ctrlS())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = press(t, m, rune1("d"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	require.Zero(t, backend.deleteCalls)
	require.Equal(t, 1, m.cache.Len())
	require.True(t, m.session.Bound())
}

func TestDelete_FailureLeavesCacheAndSessionUntouched(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")
	m = press(t, m, ctrlS())
	backend.deleteErr = errors.New("503")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = press(t, m, rune1("d"))
	m = press(t, m, enter())

	require.True(t, m.errs.HasError())
	require.Equal(t, 1, m.cache.Len())
	require.True(t, m.session.Bound())
}

func TestGenerate_AppendsAfterBlankLineAndClearsPrompt(t *testing.T) {
	backend := &fakeBackend{genText: "a fresh haiku"}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeRunes(t, m, "existing")

	m = press(t, m, ctrlG())
	m = typeRunes(t, m, "write a haiku")
	m = press(t, m, enter())

	require.Equal(t, 1, backend.genCalls)
	require.Equal(t, "existing\n\na fresh haiku", m.session.Content())
	require.Equal(t, m.session.Content(), m.editor.Content())
	require.Empty(t, m.prompt.Value())
}

func TestGenerate_EmptyPromptFailsValidationWithNoNetworkCall(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeRunes(t, m, "untouched")

	m = press(t, m, ctrlG())
	m = press(t, m, enter())

	require.True(t, m.errs.HasError())
	require.Zero(t, backend.genCalls)
	require.Equal(t, "untouched", m.session.Content())
}

func TestGenerate_FailureLeavesBufferAndPromptForRetry(t *testing.T) {
	backend := &fakeBackend{genErr: errors.New("502")}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeRunes(t, m, "existing")

	m = press(t, m, ctrlG())
	m = typeRunes(t, m, "keep this prompt")
	m = press(t, m, enter())

	require.True(t, m.errs.HasError())
	require.Equal(t, "existing", m.session.Content())
	require.Equal(t, "keep this prompt", m.prompt.Value())
}

func TestRefresh_FailureKeepsPreviousSnapshot(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")
	m = press(t, m, ctrlS())
	require.Equal(t, 1, m.cache.Len())

	backend.listErr = errors.New("timeout")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = press(t, m, rune1("r"))

	require.True(t, m.errs.HasError())
	require.Equal(t, 1, m.cache.Len(), "previous snapshot must be retained")
}

func TestOperations_ClearStaleErrorBeforeStarting(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("down")}
	m := startApp(t, backend)
	require.True(t, m.errs.HasError())

	backend.mu.Lock()
	backend.listErr = nil
	backend.mu.Unlock()
	m = press(t, m, rune1("r"))

	require.False(t, m.errs.HasError(), "new attempt must never display a stale error")
}

func TestOpenDraft_LoadsBuffersAndDiscardsEdits(t *testing.T) {
	backend := &fakeBackend{drafts: []draft.Draft{
		{ID: "x", Title: "Existing", Content: "body"},
	}, nextID: 1}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "unsaved stuff")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = press(t, m, enter())

	require.Equal(t, "x", m.session.BoundID())
	require.Equal(t, "Existing", m.session.Title())
	require.Equal(t, "body", m.editor.Content())
}

func TestStartupPing_UnreachableServerSurfacesError(t *testing.T) {
	backend := &fakeBackend{healthErr: errors.New("connection refused")}
	m := startApp(t, backend)

	require.Equal(t, 1, backend.healthCalls)
	require.True(t, m.errs.HasError())
	require.Contains(t, m.errs.Message(), "Cannot reach the server")
}

func TestStartupPing_HealthyServerLeavesNoError(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)

	require.Equal(t, 1, backend.healthCalls)
	require.False(t, m.errs.HasError())
}

func TestEditorHeader_ShowsTitleWithIDFallback(t *testing.T) {
	backend := &fakeBackend{drafts: []draft.Draft{
		{ID: "x", Title: "Shopping list", Content: "eggs"},
	}, nextID: 1}
	m := startApp(t, backend)

	m = press(t, m, enter())
	require.Contains(t, m.View(), "Editing: Shopping list")

	m.session.SetTitle("")
	m.editor = m.editor.SetValues("", "eggs")
	require.Contains(t, m.View(), "Editing: x")
}

func TestLateSaveResolution_StillAppliedAfterReset(t *testing.T) {
	backend := &fakeBackend{}
	m := startApp(t, backend)
	m = press(t, m, rune1("n"))
	m = typeRunes(t, m, "T")

	// Save goes out...
	next, pending := m.Update(ctrlS())
	m = next.(Model)

	// ...and the user resets the session while it is in flight.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = press(t, m, rune1("n"))
	require.False(t, m.session.Bound())

	// The response is applied when it arrives; nothing cancels it.
	m = runCmds(t, m, pending)
	require.True(t, m.session.Bound())
}
