package main

import (
	"path/filepath"
	"testing"

	"starline/internal/document"
)

func TestRunInitScaffoldsLoadableBoard(t *testing.T) {
	dir := t.TempDir()
	if err := runInit(nil, []string{dir}); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	doc, err := document.Load(filepath.Join(dir, "stars.toml"))
	if err != nil {
		t.Fatalf("starter manifest does not load: %v", err)
	}
	if len(doc.Lines) == 0 {
		t.Fatalf("starter manifest has no lines")
	}
}

func TestRunInitRefusesExistingManifest(t *testing.T) {
	dir := t.TempDir()
	if err := runInit(nil, []string{dir}); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	if err := runInit(nil, []string{dir}); err == nil {
		t.Fatalf("runInit overwrote an existing manifest")
	}
}
