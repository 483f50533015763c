package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActions() (*FSActions, *spawnRecord, *string, *string) {
	launcher, record := recordingLauncher("konsole")
	actions := NewFSActions(launcher)
	copied := new(string)
	opened := new(string)
	actions.copyText = func(text string) error {
		*copied = text
		return nil
	}
	actions.open = func(path string) error {
		*opened = path
		return nil
	}
	return actions, record, copied, opened
}

func TestActionsCopyPath(t *testing.T) {
	actions, _, copied, _ := testActions()
	result, err := actions.Execute(context.Background(), ActionRequest{
		Type: ActionCopyPath,
		Path: "/tmp/some file.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/some file.txt", *copied)
	assert.Contains(t, result.Message, "copied")
}

func TestActionsCopyPathFailure(t *testing.T) {
	actions, _, _, _ := testActions()
	actions.copyText = func(string) error { return errors.New("no display") }
	_, err := actions.Execute(context.Background(), ActionRequest{
		Type: ActionCopyPath,
		Path: "/tmp/x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}

func TestActionsTerminalHere(t *testing.T) {
	t.Run("directory opens in place", func(t *testing.T) {
		actions, record, _, _ := testActions()
		_, err := actions.Execute(context.Background(), ActionRequest{
			Type:  ActionTerminalHere,
			Path:  "/tmp/dir",
			IsDir: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "konsole", record.name)
		assert.Equal(t, []string{"--workdir", "/tmp/dir"}, record.args)
	})

	t.Run("file opens at its parent", func(t *testing.T) {
		actions, record, _, _ := testActions()
		_, err := actions.Execute(context.Background(), ActionRequest{
			Type:  ActionTerminalHere,
			Path:  "/tmp/dir/file.txt",
			IsDir: false,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"--workdir", "/tmp/dir"}, record.args)
	})
}

func TestActionsTerminalParent(t *testing.T) {
	actions, record, _, _ := testActions()
	result, err := actions.Execute(context.Background(), ActionRequest{
		Type:  ActionTerminalParent,
		Path:  "/tmp/dir/sub",
		IsDir: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"--workdir", "/tmp/dir"}, record.args)
	assert.Equal(t, ActionTerminalParent, result.Type)
}

func TestActionsOpenDefault(t *testing.T) {
	actions, _, _, opened := testActions()
	result, err := actions.Execute(context.Background(), ActionRequest{
		Type: ActionOpenDefault,
		Path: "/tmp/report.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/report.pdf", *opened)
	assert.Contains(t, result.Message, filepath.Base("/tmp/report.pdf"))
}

func TestActionsRejectsBadRequests(t *testing.T) {
	actions, _, _, _ := testActions()

	_, err := actions.Execute(context.Background(), ActionRequest{Type: ActionCopyPath})
	assert.Error(t, err)

	_, err = actions.Execute(context.Background(), ActionRequest{Type: ActionType("shred"), Path: "/tmp/x"})
	assert.Error(t, err)
}

func TestActionsNoTerminalSurfaced(t *testing.T) {
	launcher, _ := recordingLauncher() // nothing resolvable
	actions := NewFSActions(launcher)
	_, err := actions.Execute(context.Background(), ActionRequest{
		Type:  ActionTerminalHere,
		Path:  "/tmp/dir",
		IsDir: true,
	})
	assert.ErrorIs(t, err, ErrNoTerminal)
}
