package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"seekfs/internal/config"
	"seekfs/internal/services"
	"seekfs/internal/state"
	"seekfs/internal/ui"
)

func Run() {
	base := config.DefaultConfig()
	loaded, err := config.LoadConfig()
	if err == nil {
		base = loaded
	}
	cfg := config.ParseFlags(base)
	initialState := state.NewState(cfg)

	searcher := services.NewFSSearcher()
	terminals := services.NewTerminalLauncher(cfg.Terminals)
	actions := services.NewFSActions(terminals)
	mounts := services.NewProcMounts()

	model := ui.NewModel(initialState, searcher, actions, mounts)
	if err != nil {
		model = model.WithStatus("Config warning: using defaults")
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		fmt.Println("SeekFS error:", err)
		return
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok {
		if err := config.SaveConfig(provider.ConfigSnapshot()); err != nil {
			fmt.Println("SeekFS config save error:", err)
		}
	}
}
