package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"starline/internal/document"
	"starline/internal/render"
)

var rateCmd = &cobra.Command{
	Use:   "rate [flags] <board.toml>",
	Short: "Open a rating board for interactive editing",
	Long:  `Open a board manifest in the interactive editor. Falls back to a one-shot render when stdout is not a terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRate,
}

func init() {
	rateCmd.Flags().String("ui", "auto", "interactive mode (auto|on|off)")
}

func runRate(cmd *cobra.Command, args []string) error {
	logger, err := setupOutput(cmd)
	if err != nil {
		return err
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	doc, err := document.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	board := doc.Build()
	board.Init(logger)

	if !shouldUseTUI(mode) {
		render.Board(cmd.OutOrStdout(), board)
		return nil
	}
	return runBoardUI(board)
}
