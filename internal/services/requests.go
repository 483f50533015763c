package services

type SearchRequest struct {
	Roots   []string
	Keyword string
}

type ActionType string

const (
	ActionCopyPath       ActionType = "copy"
	ActionTerminalHere   ActionType = "terminal"
	ActionTerminalParent ActionType = "terminal-parent"
	ActionOpenDefault    ActionType = "open"
)

type ActionRequest struct {
	Type  ActionType
	Path  string
	IsDir bool
}
