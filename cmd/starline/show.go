package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"starline/internal/document"
	"starline/internal/rating"
	"starline/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <board.toml>...",
	Short: "Render one or more rating boards",
	Long:  `Render board manifests to stdout. Boards load concurrently and print in argument order.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	logger, err := setupOutput(cmd)
	if err != nil {
		return err
	}

	boards := make([]*rating.Board, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			doc, err := document.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load board: %w", err)
			}
			boards[i] = doc.Build()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, board := range boards {
		if i > 0 {
			fmt.Fprintln(out)
		}
		board.Init(logger)
		render.Board(out, board)
	}
	return nil
}
