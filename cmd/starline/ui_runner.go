package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"starline/internal/rating"
	"starline/internal/render"
	"starline/internal/ui"
)

// runBoardUI runs the interactive editor over an initialized board and
// prints the final state once the editor exits, so the session's edits
// stay visible in the scrollback.
func runBoardUI(board *rating.Board) error {
	model := ui.NewBoardModel(board)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive editor failed: %w", err)
	}
	render.Board(os.Stdout, board)
	return nil
}
