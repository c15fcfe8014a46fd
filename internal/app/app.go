package app

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/chronoline/internal/config"
	"github.com/kyaoi/chronoline/internal/ui"
)

// Run executes the Bubble Tea program for the timeline.
func Run(cfg *config.Config) error {
	// The terminal belongs to the program; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "chronoline")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	state, err := LoadInitialState(cfg)
	if err != nil {
		return err
	}
	return runProgram(state)
}

func runProgram(state ui.State) error {
	model := ui.NewModel(state)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
