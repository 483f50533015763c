package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seekfs/internal/config"
	"seekfs/internal/domain"
	"seekfs/internal/services"
	"seekfs/internal/state"
)

func newTestModel(t *testing.T, matches []domain.Match) (Model, *services.MockActions) {
	t.Helper()
	appState := state.NewState(config.DefaultConfig())
	searcher := services.NewMockSearcher(matches)
	actions := services.NewMockActions()
	mounts := services.ProcMounts{TablePath: "/definitely/not/a/mount/table"}
	return NewModel(appState, searcher, actions, mounts), actions
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	typed, ok := m.(Model)
	require.True(t, ok)
	return typed
}

func TestEmptyKeywordNeverStartsAWorker(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.state.AppendMatch(domain.Match{Path: "/kept", Kind: domain.KindFile})
	model.input.SetValue("   ")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := asModel(t, updated)

	assert.Nil(t, cmd)
	assert.False(t, next.searching)
	assert.Contains(t, next.status, "keyword")
	// Existing results are not cleared by a rejected submission.
	assert.Len(t, next.state.Results, 1)
}

func TestSearchLifecycle(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.state.AppendMatch(domain.Match{Path: "/old", Kind: domain.KindFile})
	model.input.SetValue("foo")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := asModel(t, updated)
	require.NotNil(t, cmd)
	assert.True(t, next.searching)
	assert.Empty(t, next.state.Results, "starting a search clears prior results")
	assert.Equal(t, "foo", next.state.Keyword)

	updated, _ = next.Update(searchResultMsg{run: next.run, result: services.SearchResult{Keyword: "foo", Matches: 2, Visited: 1200}})
	next = asModel(t, updated)
	assert.False(t, next.searching)
	assert.Contains(t, next.status, "2 results")
}

func TestSecondSearchRefusedWhileRunning(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.input.SetValue("foo")
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := asModel(t, updated)
	require.True(t, next.searching)

	next.input.SetValue("bar")
	updated, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)
	assert.Nil(t, cmd)
	assert.True(t, next.searching)
	assert.Contains(t, next.status, "already running")
}

func TestStopIsCancellingUntilCompletionArrives(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.input.SetValue("foo")
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := asModel(t, updated)
	require.True(t, next.searching)

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = asModel(t, updated)
	assert.True(t, next.searching, "stop does not end the run by itself")
	assert.True(t, next.stopping)
	assert.Contains(t, next.status, "Stopping")

	updated, _ = next.Update(searchResultMsg{run: next.run, err: context.Canceled})
	next = asModel(t, updated)
	assert.False(t, next.searching)
	assert.False(t, next.stopping)
	assert.Contains(t, next.status, "Stopped")
}

func TestMatchEventsAppendInArrivalOrder(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.searching = true

	first := services.SearchEvent{Match: domain.Match{Path: "/a", Kind: domain.KindDir}, HasMatch: true}
	second := services.SearchEvent{Match: domain.Match{Path: "/b", Kind: domain.KindFile}, HasMatch: true}

	updated, _ := model.Update(searchEventMsg{event: first})
	next := asModel(t, updated)
	updated, _ = next.Update(searchEventMsg{event: second})
	next = asModel(t, updated)

	require.Len(t, next.state.Results, 2)
	assert.Equal(t, "/a", next.state.Results[0].Path)
	assert.Equal(t, "/b", next.state.Results[1].Path)
}

func TestStaleRunMessagesAreDropped(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.input.SetValue("foo")
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := asModel(t, updated)
	firstRun := next.run

	// Stop the first run and let its completion land.
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = asModel(t, updated)
	updated, _ = next.Update(searchResultMsg{run: firstRun, err: context.Canceled})
	next = asModel(t, updated)
	require.False(t, next.searching)

	next.input.SetValue("bar")
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)
	require.True(t, next.searching)
	require.Empty(t, next.state.Results)

	// A match still buffered from the stopped run arrives late. It must not
	// land in the new run's list, and its drain must not be re-armed.
	leftover := services.SearchEvent{Match: domain.Match{Path: "/from/run1", Kind: domain.KindFile}, HasMatch: true}
	updated, cmd := next.Update(searchEventMsg{run: firstRun, event: leftover})
	next = asModel(t, updated)
	assert.Nil(t, cmd)
	assert.Empty(t, next.state.Results)

	// Same for a late completion: it must not end the current run.
	updated, _ = next.Update(searchResultMsg{run: firstRun, result: services.SearchResult{Matches: 9}})
	next = asModel(t, updated)
	assert.True(t, next.searching)
}

func TestProgressEventUpdatesStatus(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.searching = true

	updated, _ := model.Update(searchEventMsg{event: services.SearchEvent{Visited: 1500}})
	next := asModel(t, updated)
	assert.Contains(t, next.status, "1500")
}

func TestResultActions(t *testing.T) {
	runAction := func(t *testing.T, match domain.Match, key tea.KeyMsg) services.ActionRequest {
		t.Helper()
		model, actions := newTestModel(t, nil)
		model.state.AppendMatch(match)
		model.focus = focusResults

		_, cmd := model.Update(key)
		require.NotNil(t, cmd)
		msg := cmd()
		_, ok := msg.(actionResultMsg)
		require.True(t, ok)
		require.Len(t, actions.Requests, 1)
		return actions.Requests[0]
	}

	dir := domain.Match{Path: "/tmp/dir", Kind: domain.KindDir}
	file := domain.Match{Path: "/tmp/dir/f.txt", Kind: domain.KindFile}

	t.Run("copy path", func(t *testing.T) {
		request := runAction(t, file, keyRune('c'))
		assert.Equal(t, services.ActionCopyPath, request.Type)
		assert.Equal(t, "/tmp/dir/f.txt", request.Path)
	})

	t.Run("terminal here and parent", func(t *testing.T) {
		request := runAction(t, dir, keyRune('t'))
		assert.Equal(t, services.ActionTerminalHere, request.Type)
		assert.True(t, request.IsDir)

		request = runAction(t, file, keyRune('p'))
		assert.Equal(t, services.ActionTerminalParent, request.Type)
	})

	t.Run("enter opens directories in a terminal", func(t *testing.T) {
		request := runAction(t, dir, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, services.ActionTerminalHere, request.Type)
	})

	t.Run("enter opens files with the default app", func(t *testing.T) {
		request := runAction(t, file, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, services.ActionOpenDefault, request.Type)
	})
}

func TestActionWithoutSelection(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.focus = focusResults

	updated, cmd := model.Update(keyRune('c'))
	next := asModel(t, updated)
	assert.Nil(t, cmd)
	assert.Contains(t, next.status, "No result")
}

func TestNoTerminalNoticeShown(t *testing.T) {
	model, _ := newTestModel(t, nil)
	updated, _ := model.Update(actionResultMsg{err: services.ErrNoTerminal})
	next := asModel(t, updated)
	assert.Contains(t, next.status, "No terminal")
}

func TestRootCapture(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.focus = focusResults
	dir := t.TempDir()

	updated, _ := model.Update(keyRune('a'))
	next := asModel(t, updated)
	require.True(t, next.capturingRoot)

	for _, r := range dir {
		updated, _ = next.Update(keyRune(r))
		next = asModel(t, updated)
	}
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)

	assert.False(t, next.capturingRoot)
	assert.Equal(t, []string{dir}, next.state.CustomRoots)
}

func TestRootCaptureAcceptsSpaces(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.focus = focusResults
	dir := filepath.Join(t.TempDir(), "my docs")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	updated, _ := model.Update(keyRune('a'))
	next := asModel(t, updated)
	for _, r := range dir {
		msg := keyRune(r)
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		updated, _ = next.Update(msg)
		next = asModel(t, updated)
	}
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)

	assert.Equal(t, []string{dir}, next.state.CustomRoots)
}

func TestRootBackspaceRemovesWholeRune(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.capturingRoot = true
	model.rootInput = "/tmp/café"

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	next := asModel(t, updated)
	assert.Equal(t, "/tmp/caf", next.rootInput)
}

func TestClearRootsKey(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.focus = focusResults
	model.state.CustomRoots = []string{"/a"}

	updated, _ := model.Update(keyRune('x'))
	next := asModel(t, updated)
	assert.Empty(t, next.state.CustomRoots)
}

func TestToggleExternalKey(t *testing.T) {
	model, _ := newTestModel(t, nil)
	model.focus = focusResults

	updated, _ := model.Update(keyRune('e'))
	next := asModel(t, updated)
	assert.True(t, next.state.Prefs.IncludeExternal)
	assert.Contains(t, next.status, "included")
}
