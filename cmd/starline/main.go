package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"starline/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "starline",
	Short: "Terminal star-rating boards",
	Long:  `Starline loads star-rating boards from TOML manifests and renders or edits them in the terminal`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
