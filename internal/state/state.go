package state

import (
	"fmt"
	"os"
	"strings"

	"seekfs/internal/config"
	"seekfs/internal/domain"
)

const defaultRoot = "/"

type Preferences struct {
	IncludeExternal bool
	Theme           string
}

// State is the UI-toolkit-free application state: the root set, the current
// result list and the preferences that survive restarts.
type State struct {
	Keyword     string
	CustomRoots []string
	Results     []domain.Match
	Cursor      int
	Visited     int64
	Prefs       Preferences
	Terminals   []string
	KeyBindings map[string]string
}

func NewState(cfg config.Config) *State {
	return &State{
		CustomRoots: append([]string{}, cfg.Roots...),
		Results:     []domain.Match{},
		Prefs: Preferences{
			IncludeExternal: cfg.IncludeExternal,
			Theme:           cfg.Theme,
		},
		Terminals:   append([]string{}, cfg.Terminals...),
		KeyBindings: ensureBindings(cfg.KeyBindings),
	}
}

func ensureBindings(bindings map[string]string) map[string]string {
	if bindings == nil {
		return map[string]string{}
	}
	return bindings
}

// AddRoot registers an existing directory as a custom search root.
func (appState *State) AddRoot(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return fmt.Errorf("empty path")
	}
	info, err := os.Stat(trimmed)
	if err != nil {
		return fmt.Errorf("add root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("add root: %s is not a directory", trimmed)
	}
	appState.CustomRoots = append(appState.CustomRoots, trimmed)
	return nil
}

func (appState *State) ClearRoots() {
	appState.CustomRoots = nil
}

// SearchRoots assembles the root list for one run: the custom roots, or the
// default root when none are set, plus any external mounts not already
// present.
func (appState *State) SearchRoots(external []string) []string {
	roots := []string{}
	if len(appState.CustomRoots) > 0 {
		roots = append(roots, appState.CustomRoots...)
	} else {
		roots = append(roots, defaultRoot)
	}
	for _, mount := range external {
		if !containsPath(roots, mount) {
			roots = append(roots, mount)
		}
	}
	return roots
}

func (appState *State) RootsLabel() string {
	if len(appState.CustomRoots) == 0 {
		return "Roots: / (default)"
	}
	return "Roots: " + strings.Join(appState.CustomRoots, ", ")
}

func (appState *State) ToggleIncludeExternal() bool {
	appState.Prefs.IncludeExternal = !appState.Prefs.IncludeExternal
	return appState.Prefs.IncludeExternal
}

func (appState *State) ResetResults() {
	appState.Results = appState.Results[:0]
	appState.Cursor = 0
	appState.Visited = 0
}

func (appState *State) AppendMatch(match domain.Match) {
	appState.Results = append(appState.Results, match)
}

func (appState *State) CurrentMatch() *domain.Match {
	if appState.Cursor < 0 || appState.Cursor >= len(appState.Results) {
		return nil
	}
	return &appState.Results[appState.Cursor]
}

func containsPath(paths []string, target string) bool {
	for _, path := range paths {
		if path == target {
			return true
		}
	}
	return false
}
