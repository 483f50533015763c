package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
)

type FSActions struct {
	terminals *TerminalLauncher
	copyText  func(text string) error
	open      func(path string) error
}

func NewFSActions(terminals *TerminalLauncher) *FSActions {
	return &FSActions{
		terminals: terminals,
		copyText:  clipboard.WriteAll,
		open:      openDefault,
	}
}

// Execute runs one convenience action on a result path. Failures are
// returned to the caller for the status line; none of them is fatal.
func (actions *FSActions) Execute(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if req.Path == "" {
		return ActionResult{Type: req.Type}, fmt.Errorf("no path given")
	}

	switch req.Type {
	case ActionCopyPath:
		if err := actions.copyText(req.Path); err != nil {
			return ActionResult{Type: req.Type}, fmt.Errorf("copy path: %w", err)
		}
		return ActionResult{Type: req.Type, Message: "Path copied to clipboard"}, nil
	case ActionTerminalHere:
		dir := req.Path
		if !req.IsDir {
			dir = filepath.Dir(req.Path)
		}
		return actions.openTerminal(req.Type, dir)
	case ActionTerminalParent:
		return actions.openTerminal(req.Type, filepath.Dir(req.Path))
	case ActionOpenDefault:
		if err := actions.open(req.Path); err != nil {
			return ActionResult{Type: req.Type}, fmt.Errorf("open %s: %w", filepath.Base(req.Path), err)
		}
		return ActionResult{Type: req.Type, Message: fmt.Sprintf("Opened %s", filepath.Base(req.Path))}, nil
	default:
		return ActionResult{Type: req.Type}, fmt.Errorf("unknown action %q", req.Type)
	}
}

func (actions *FSActions) openTerminal(actionType ActionType, dir string) (ActionResult, error) {
	if err := actions.terminals.Open(dir); err != nil {
		return ActionResult{Type: actionType}, err
	}
	return ActionResult{Type: actionType, Message: fmt.Sprintf("Terminal opened at %s", dir)}, nil
}

// openDefault hands the path to the platform file-association handler.
func openDefault(path string) error {
	return startDetached("xdg-open", path)
}
