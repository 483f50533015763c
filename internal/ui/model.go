package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"seekfs/internal/config"
	"seekfs/internal/domain"
	"seekfs/internal/services"
	"seekfs/internal/state"
)

type focusArea int

const (
	focusKeyword focusArea = iota
	focusResults
)

type Model struct {
	state           *state.State
	searcher        services.Searcher
	actions         services.Actions
	events          services.EventsProvider
	mounts          services.MountLister
	keys            KeyMap
	input           textinput.Model
	spin            spinner.Model
	focus           focusArea
	showHelp        bool
	status          string
	searching       bool
	stopping        bool
	run             int
	cancel          context.CancelFunc
	width           int
	height          int
	viewTop         int
	capturingRoot   bool
	rootInput       string
	rootSuggestions []string
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

func NewModel(appState *state.State, searcher services.Searcher, actions services.Actions, mounts services.MountLister) Model {
	input := textinput.New()
	input.Placeholder = "Type a keyword (partial or full name)"
	input.Prompt = "> "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Line

	return Model{
		state:    appState,
		searcher: searcher,
		actions:  actions,
		events:   eventsProvider(searcher),
		mounts:   mounts,
		keys:     DefaultKeyMap(),
		input:    input,
		spin:     spin,
		focus:    focusKeyword,
		status:   "Ready - type a keyword and press enter",
		width:    100,
		height:   30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) ConfigSnapshot() config.Config {
	return config.Config{
		Roots:           model.state.CustomRoots,
		IncludeExternal: model.state.Prefs.IncludeExternal,
		Terminals:       model.state.Terminals,
		Theme:           model.state.Prefs.Theme,
		KeyBindings:     model.state.KeyBindings,
	}
}

func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.input.Width = maxInt(typed.Width-8, 20)
		model.ensureCursorVisible()
		return model, nil
	case spinner.TickMsg:
		if !model.searching {
			return model, nil
		}
		var cmd tea.Cmd
		model.spin, cmd = model.spin.Update(typed)
		return model, cmd
	case searchEventMsg:
		return model.handleSearchEvent(typed)
	case searchResultMsg:
		return model.handleSearchResult(typed)
	case actionResultMsg:
		if typed.err != nil {
			if errors.Is(typed.err, services.ErrNoTerminal) {
				model.status = "No terminal emulator found (konsole, xterm, ...)"
				return model, nil
			}
			model.status = fmt.Sprintf("Action error: %v", typed.err)
			return model, nil
		}
		model.status = typed.result.Message
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleSearchEvent(msg searchEventMsg) (tea.Model, tea.Cmd) {
	if msg.run != model.run {
		// Leftover from a superseded run; its drain ends here.
		return model, nil
	}
	event := msg.event
	if event.Completed {
		// Closed channel from a finished (or superseded) run.
		if model.searching {
			return model, model.eventCmd(msg.run)
		}
		return model, nil
	}
	if event.HasMatch {
		model.state.AppendMatch(event.Match)
	}
	if event.Visited > model.state.Visited {
		model.state.Visited = event.Visited
	}
	if model.searching && !model.stopping && !event.HasMatch {
		model.status = fmt.Sprintf("Searching... visited ~%d folders", model.state.Visited)
	}
	return model, model.eventCmd(msg.run)
}

func (model Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.run != model.run {
		return model, nil
	}
	model.searching = false
	model.stopping = false
	model.cancel = nil
	model.ensureCursorVisible()
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			model.status = fmt.Sprintf("Stopped. %d results", len(model.state.Results))
			return model, nil
		}
		model.status = fmt.Sprintf("Search error: %v", msg.err)
		return model, nil
	}
	model.status = fmt.Sprintf("Done. %d results (~%d folders visited, %s)",
		msg.result.Matches, msg.result.Visited, msg.result.Duration.Round(time.Millisecond))
	return model, nil
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		model = model.abortRun()
		return model, tea.Quit
	}
	if model.capturingRoot {
		return model.handleRootInput(msg)
	}
	if key.Matches(msg, model.keys.Focus) {
		return model.toggleFocus(), nil
	}
	if model.focus == focusKeyword {
		return model.handleKeywordKey(msg)
	}
	return model.handleResultsKey(msg)
}

func (model Model) toggleFocus() Model {
	if model.focus == focusKeyword {
		model.focus = focusResults
		model.input.Blur()
	} else {
		model.focus = focusKeyword
		model.input.Focus()
	}
	return model
}

func (model Model) handleKeywordKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return model.startSearch()
	case tea.KeyEsc:
		if model.searching {
			return model.stopSearch(), nil
		}
		return model.toggleFocus(), nil
	}
	var cmd tea.Cmd
	model.input, cmd = model.input.Update(msg)
	return model, cmd
}

func (model Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		model = model.abortRun()
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Up):
		if model.state.Cursor > 0 {
			model.state.Cursor--
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Down):
		if model.state.Cursor < len(model.state.Results)-1 {
			model.state.Cursor++
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Enter):
		return model.openCurrent()
	case key.Matches(msg, model.keys.Stop):
		if model.searching {
			return model.stopSearch(), nil
		}
		return model, nil
	case key.Matches(msg, model.keys.CopyPath):
		return model.runAction(services.ActionCopyPath)
	case key.Matches(msg, model.keys.Terminal):
		return model.runAction(services.ActionTerminalHere)
	case key.Matches(msg, model.keys.Parent):
		return model.runAction(services.ActionTerminalParent)
	case key.Matches(msg, model.keys.Open):
		return model.runAction(services.ActionOpenDefault)
	case key.Matches(msg, model.keys.AddRoot):
		model.capturingRoot = true
		model.rootInput = ""
		model.rootSuggestions = nil
		model.status = "Add root: type a directory path"
		return model, nil
	case key.Matches(msg, model.keys.ClearRoots):
		model.state.ClearRoots()
		model.status = "Roots reset to / (default)"
		return model, nil
	case key.Matches(msg, model.keys.External):
		if model.state.ToggleIncludeExternal() {
			model.status = "External disks included in next search"
		} else {
			model.status = "External disks excluded"
		}
		return model, nil
	case key.Matches(msg, model.keys.Find):
		model.focus = focusKeyword
		model.input.Focus()
		return model, textinput.Blink
	default:
		return model, nil
	}
}

// startSearch begins a run unless one is active: starting a second search
// while one runs is refused so two walks never interleave into one list.
func (model Model) startSearch() (tea.Model, tea.Cmd) {
	if model.searching {
		model.status = "Search already running - press esc to stop it"
		return model, nil
	}
	keyword := strings.TrimSpace(model.input.Value())
	if keyword == "" {
		model.status = "Enter a keyword first"
		return model, nil
	}

	var external []string
	if model.state.Prefs.IncludeExternal && model.mounts != nil {
		external = model.mounts.External()
	}
	roots := model.state.SearchRoots(external)

	model.state.Keyword = keyword
	model.state.ResetResults()
	model.viewTop = 0
	model.run++
	model.discardStaleEvents()

	ctx, cancel := context.WithCancel(context.Background())
	model.cancel = cancel
	model.searching = true
	model.stopping = false
	model.status = fmt.Sprintf("Searching %q...", keyword)
	return model, tea.Batch(model.searchCmd(ctx, model.run, roots, keyword), model.eventCmd(model.run), model.spin.Tick)
}

// discardStaleEvents empties the previous run's closed channel so the new
// drain cannot replay its leftover matches. Only called between runs, when
// the channel is either nil or closed.
func (model Model) discardStaleEvents() {
	if model.events == nil {
		return
	}
	channel := model.events.Events()
	if channel == nil {
		return
	}
	for {
		select {
		case _, ok := <-channel:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (model Model) searchCmd(ctx context.Context, run int, roots []string, keyword string) tea.Cmd {
	request := services.SearchRequest{Roots: roots, Keyword: keyword}
	return func() tea.Msg {
		result, err := model.searcher.Search(ctx, request)
		return searchResultMsg{run: run, result: result, err: err}
	}
}

func (model Model) eventCmd(run int) tea.Cmd {
	if model.events == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			channel := model.events.Events()
			if channel == nil {
				time.Sleep(50 * time.Millisecond)
				continue
			}
			event, ok := <-channel
			if !ok {
				return searchEventMsg{run: run, event: services.SearchEvent{Completed: true}}
			}
			return searchEventMsg{run: run, event: event}
		}
	}
}

// stopSearch requests cancellation; the run stays active until its
// completion message arrives.
func (model Model) stopSearch() Model {
	if !model.searching || model.cancel == nil {
		return model
	}
	model.stopping = true
	model.status = "Stopping..."
	model.cancel()
	return model
}

func (model Model) abortRun() Model {
	if model.cancel != nil {
		model.cancel()
		model.cancel = nil
	}
	model.searching = false
	model.stopping = false
	return model
}

func (model Model) openCurrent() (tea.Model, tea.Cmd) {
	match := model.state.CurrentMatch()
	if match == nil {
		model.status = "No result selected"
		return model, nil
	}
	if match.Kind == domain.KindDir {
		return model.runAction(services.ActionTerminalHere)
	}
	return model.runAction(services.ActionOpenDefault)
}

func (model Model) runAction(actionType services.ActionType) (tea.Model, tea.Cmd) {
	match := model.state.CurrentMatch()
	if match == nil {
		model.status = "No result selected"
		return model, nil
	}
	request := services.ActionRequest{
		Type:  actionType,
		Path:  match.Path,
		IsDir: match.Kind == domain.KindDir,
	}
	return model, func() tea.Msg {
		result, err := model.actions.Execute(context.Background(), request)
		return actionResultMsg{result: result, err: err}
	}
}

func (model Model) handleRootInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		model.capturingRoot = false
		model.rootSuggestions = nil
		model.status = "Root entry cancelled"
		return model, nil
	case tea.KeyEnter:
		model.capturingRoot = false
		model.rootSuggestions = nil
		if err := model.state.AddRoot(model.rootInput); err != nil {
			model.status = fmt.Sprintf("Root error: %v", err)
			return model, nil
		}
		model.status = model.state.RootsLabel()
		return model, nil
	case tea.KeyTab:
		model.rootInput, model.rootSuggestions = completePath(model.rootInput)
		model.status = fmt.Sprintf("Add root: %s", model.rootInput)
		return model, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if runes := []rune(model.rootInput); len(runes) > 0 {
			model.rootInput = string(runes[:len(runes)-1])
		}
		_, model.rootSuggestions = completePath(model.rootInput)
	case tea.KeySpace:
		model.rootInput += " "
		_, model.rootSuggestions = completePath(model.rootInput)
	default:
		if msg.Type == tea.KeyRunes {
			model.rootInput += string(msg.Runes)
			_, model.rootSuggestions = completePath(model.rootInput)
		}
	}
	model.status = fmt.Sprintf("Add root: %s", model.rootInput)
	return model, nil
}

func eventsProvider(searcher services.Searcher) services.EventsProvider {
	provider, _ := searcher.(services.EventsProvider)
	return provider
}

func (model *Model) ensureCursorVisible() {
	total := len(model.state.Results)
	if total == 0 {
		model.state.Cursor = 0
		model.viewTop = 0
		return
	}
	if model.state.Cursor >= total {
		model.state.Cursor = total - 1
	}
	if model.state.Cursor < 0 {
		model.state.Cursor = 0
	}
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	if model.state.Cursor < model.viewTop {
		model.viewTop = model.state.Cursor
	}
	if model.state.Cursor >= model.viewTop+listHeight {
		model.viewTop = model.state.Cursor - listHeight + 1
	}
	maxTop := total - listHeight
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	height := model.height - 7
	if height < 3 {
		return 3
	}
	return height
}

func completePath(input string) (string, []string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed, nil
	}
	dir := filepath.Dir(trimmed)
	base := filepath.Base(trimmed)
	if strings.HasSuffix(trimmed, string(filepath.Separator)) {
		dir = trimmed
		base = ""
	}
	if dir == "." {
		dir = ""
	}
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return input, nil
	}
	matches := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, base) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return input, nil
	}
	completed := commonPrefix(matches)
	if dir != "" {
		completed = filepath.Join(dir, completed)
	}
	if len(matches) == 1 && entriesHasDir(entries, matches[0]) {
		completed += string(filepath.Separator)
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if dir != "" {
			paths = append(paths, filepath.Join(dir, match))
		} else {
			paths = append(paths, match)
		}
	}
	return completed, paths
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, value := range values[1:] {
		for !strings.HasPrefix(value, prefix) && prefix != "" {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			return ""
		}
	}
	return prefix
}

func entriesHasDir(entries []os.DirEntry, name string) bool {
	for _, entry := range entries {
		if entry.Name() == name {
			return entry.IsDir()
		}
	}
	return false
}
