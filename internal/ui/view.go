package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"seekfs/internal/domain"
)

type uiStyles struct {
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	statusStyle lipgloss.Style
	warnStyle   lipgloss.Style
	cursorStyle lipgloss.Style
	dirStyle    lipgloss.Style
	panelBorder lipgloss.Style
}

func stylesFor(model Model) uiStyles {
	if strings.ToLower(model.state.Prefs.Theme) == "light" {
		return uiStyles{
			headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			dirStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		dirStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	if model.showHelp {
		return renderHelpView(model, styles)
	}
	header := renderHeader(model, styles)
	body := renderBody(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{header, body, footer}, "\n")
}

func renderHeader(model Model, styles uiStyles) string {
	mode := "IDLE"
	if model.searching {
		mode = "SEARCHING"
		if model.stopping {
			mode = "STOPPING"
		}
	}
	title := padLine(styles.headerStyle.Render("SeekFS"), styles.statusStyle.Render(mode), model.width)

	rootsLine := model.state.RootsLabel()
	external := "external disks: off"
	if model.state.Prefs.IncludeExternal {
		external = "external disks: on"
	}
	optsLine := padLine(styles.mutedStyle.Render(rootsLine), styles.mutedStyle.Render(external), model.width)

	return strings.Join([]string{title, model.input.View(), optsLine}, "\n")
}

func renderBody(model Model, styles uiStyles) string {
	if model.capturingRoot {
		return renderRootPanel(model, styles)
	}

	listHeight := model.listHeight()
	results := model.state.Results
	if len(results) == 0 {
		message := "No results yet"
		if model.searching {
			message = "Searching..."
		}
		lines := []string{styles.mutedStyle.Render(message)}
		for len(lines) < listHeight {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}

	start := clamp(model.viewTop, 0, maxInt(len(results)-1, 0))
	end := start + listHeight
	if end > len(results) {
		end = len(results)
	}

	lines := make([]string, 0, listHeight)
	for index := start; index < end; index++ {
		match := results[index]
		name := match.Path
		if match.Kind == domain.KindDir {
			name = styles.dirStyle.Render(name + "/")
		}
		line := fmt.Sprintf("  %s", name)
		if index == model.state.Cursor && model.focus == focusResults {
			line = styles.cursorStyle.Render(fmt.Sprintf("> %s", match.Path+dirSuffix(match)))
		}
		lines = append(lines, trimStatus(line, model.width))
	}
	for len(lines) < listHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderRootPanel(model Model, styles uiStyles) string {
	lines := []string{
		styles.headerStyle.Render("Add root"),
		model.rootInput,
	}
	if len(model.rootSuggestions) > 0 {
		lines = append(lines, "", styles.headerStyle.Render("Suggestions"))
		max := 8
		if len(model.rootSuggestions) < max {
			max = len(model.rootSuggestions)
		}
		lines = append(lines, model.rootSuggestions[:max]...)
		if len(model.rootSuggestions) > max {
			lines = append(lines, "...")
		}
	}
	for len(lines) < model.listHeight() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderFooter(model Model, styles uiStyles) string {
	statusLine := trimStatus(model.status, model.width)
	if model.searching {
		statusLine = fmt.Sprintf("%s %s", model.spin.View(), statusLine)
	}
	statusStyle := styles.mutedStyle
	if strings.Contains(strings.ToLower(model.status), "error") || strings.Contains(strings.ToLower(model.status), "no terminal") {
		statusStyle = styles.warnStyle
	}
	statusLine = statusStyle.Render(statusLine)

	counts := fmt.Sprintf("Results: %d", len(model.state.Results))
	if model.state.Visited > 0 {
		counts = fmt.Sprintf("%s  Visited: ~%d", counts, model.state.Visited)
	}
	keys := "enter search  tab results  esc stop  ? help  q quit"
	if model.focus == focusResults {
		keys = "enter open  c copy  t terminal  p parent  o open-with  a add root  x reset  e external  / keyword"
	}
	if model.capturingRoot {
		keys = "type path  tab complete  enter add  esc cancel"
	}
	footerLine := padLine(counts, keys, model.width)
	return strings.Join([]string{statusLine, styles.mutedStyle.Render(footerLine)}, "\n")
}

func renderHelpView(model Model, styles uiStyles) string {
	bindings := []key.Binding{
		model.keys.Up,
		model.keys.Down,
		model.keys.Enter,
		model.keys.Stop,
		model.keys.Focus,
		model.keys.CopyPath,
		model.keys.Terminal,
		model.keys.Parent,
		model.keys.Open,
		model.keys.AddRoot,
		model.keys.ClearRoots,
		model.keys.External,
		model.keys.Find,
		model.keys.Help,
		model.keys.Quit,
	}

	lines := []string{styles.headerStyle.Render("SeekFS Help"), ""}
	lines = append(lines, styles.headerStyle.Render("Searching"))
	lines = append(lines, "type a keyword, enter to search", "matching is a case-insensitive substring of file and folder names", "esc stops a running search; found results stay")
	lines = append(lines, "", styles.headerStyle.Render("Roots"))
	lines = append(lines, "default root is /", "a add a folder root", "x reset roots", "e include mounted external disks")
	lines = append(lines, "", styles.headerStyle.Render("Result actions"))
	lines = append(lines, "enter: terminal for folders, default app for files", "c copy path", "t terminal here", "p terminal at parent", "o open with default app")
	lines = append(lines, "", styles.headerStyle.Render("Keys"))
	for _, binding := range bindings {
		keysLabel := strings.Join(binding.Keys(), ", ")
		lines = append(lines, fmt.Sprintf("%-14s %s", keysLabel, binding.Help().Desc))
	}
	lines = append(lines, "", "Press ? to close help")
	content := strings.Join(lines, "\n")
	width := model.width
	if width <= 0 {
		width = 80
	}
	return styles.panelBorder.Width(maxInt(width-2, 10)).Render(content)
}

func dirSuffix(match domain.Match) string {
	if match.Kind == domain.KindDir {
		return "/"
	}
	return ""
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func trimStatus(message string, width int) string {
	if width <= 0 {
		return message
	}
	max := width - 4
	runes := []rune(message)
	if max <= 0 || len(runes) <= max {
		return message
	}
	return string(runes[:max]) + "..."
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
