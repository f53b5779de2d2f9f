package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Create a starter board manifest",
	Long: `Create a starter stars.toml in the given directory. If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Derive a board title from the directory basename
	title := strings.TrimSpace(filepath.Base(target))
	if title == "" || title == "." || title == string(filepath.Separator) {
		title = "stars"
	}

	manifestPath := filepath.Join(target, "stars.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("board already initialized: %s exists", manifestPath)
	}

	manifest := buildStarterManifest(title)
	if err := os.WriteFile(manifestPath, []byte(manifest), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	fmt.Printf("created %s\n", manifestPath)
	return nil
}

func buildStarterManifest(title string) string {
	return fmt.Sprintf(`title = %q

# Each [[line]] is one rateable item. full is the whole-star count,
# half is 0 or 1; the total must stay between 1 and 5 stars.

[[line]]
label = "first item"
full = 3

[[line]]
label = "second item"
full = 2
half = 1
`, title)
}
