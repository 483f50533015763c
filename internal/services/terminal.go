package services

import (
	"errors"
	"fmt"
	"os/exec"
)

var ErrNoTerminal = errors.New("no terminal emulator found")

// Probe order, first resolvable on PATH wins.
var DefaultTerminals = []string{
	"konsole",
	"x-terminal-emulator",
	"xfce4-terminal",
	"gnome-terminal",
	"urxvt",
	"xterm",
}

type TerminalLauncher struct {
	candidates []string
	lookPath   func(file string) (string, error)
	start      func(name string, args ...string) error
}

func NewTerminalLauncher(candidates []string) *TerminalLauncher {
	if len(candidates) == 0 {
		candidates = DefaultTerminals
	}
	return &TerminalLauncher{
		candidates: candidates,
		lookPath:   exec.LookPath,
		start:      startDetached,
	}
}

// Open spawns a detached terminal rooted at dir.
func (launcher *TerminalLauncher) Open(dir string) error {
	name, err := launcher.resolve()
	if err != nil {
		return err
	}
	if err := launcher.start(name, terminalArgs(name, dir)...); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return nil
}

func (launcher *TerminalLauncher) resolve() (string, error) {
	for _, candidate := range launcher.candidates {
		if _, err := launcher.lookPath(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNoTerminal
}

// terminalArgs builds the argv tail for a terminal program. The directory is
// always its own argument, never interpolated into a shell string, so paths
// with spaces and shell metacharacters survive.
func terminalArgs(name, dir string) []string {
	switch name {
	case "konsole":
		return []string{"--workdir", dir}
	case "xfce4-terminal", "gnome-terminal":
		return []string{"--working-directory", dir}
	default:
		return []string{"-e", "bash", "-c", `cd -- "$1" && exec bash`, "bash", dir}
	}
}

// startDetached launches the process fire-and-forget: its lifetime is
// independent of ours.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
