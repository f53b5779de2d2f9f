package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// setupOutput reads the persistent output flags and returns the CLI
// logger (tint handler on stderr). It also flips the global color switch
// for the one-shot renderer.
func setupOutput(cmd *cobra.Command) (*slog.Logger, error) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	var noColor bool
	switch strings.TrimSpace(strings.ToLower(colorMode)) {
	case "", "auto":
		noColor = !isTerminal(os.Stdout)
	case "on":
		noColor = false
	case "off":
		noColor = true
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
	}
	color.NoColor = noColor

	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: noColor || !isTerminal(os.Stderr),
	})
	return slog.New(handler), nil
}
