package wire

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/modgen/internal/ports/primary"
)

func TestNew_JournalOpensOnFirstUse(t *testing.T) {
	root := t.TempDir()
	var out, diag bytes.Buffer

	c, err := New(context.Background(), Options{ProjectRoot: root, Journal: JournalOn, Out: &out, Err: &diag})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	journalDir := filepath.Join(root, ".modgen")
	if _, err := os.Stat(journalDir); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no journal directory before use, stat err = %v", err)
	}

	gens, err := c.HistoryService.ListGenerations(context.Background(), primary.HistoryRequest{Limit: 10})
	if err != nil {
		t.Fatalf("ListGenerations failed: %v", err)
	}
	if len(gens) != 0 {
		t.Errorf("expected empty journal, got %d entries", len(gens))
	}
	if _, err := os.Stat(filepath.Join(journalDir, "journal.db")); err != nil {
		t.Errorf("expected journal to exist after use: %v", err)
	}
}

func TestNew_JournalIfExistsSkipsMissing(t *testing.T) {
	root := t.TempDir()

	c, err := New(context.Background(), Options{ProjectRoot: root, Journal: JournalIfExists, Out: &bytes.Buffer{}, Err: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	if c.journal != nil {
		t.Error("expected no journal when none exists")
	}
}

func TestNew_VerboseLogsSettings(t *testing.T) {
	root := t.TempDir()
	settings := filepath.Join(root, "config", "module-generator.php")
	if err := os.MkdirAll(filepath.Dir(settings), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settings, []byte("<?php\nreturn [\n    'default_type' => 'web',\n];\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var diag bytes.Buffer

	c, err := New(context.Background(), Options{ProjectRoot: root, Verbose: true, Out: &bytes.Buffer{}, Err: &diag})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	for _, want := range []string{"settings loaded", "published=true", "default_type=web"} {
		if !strings.Contains(diag.String(), want) {
			t.Errorf("diagnostics missing %q:\n%s", want, diag.String())
		}
	}
	if c.Config.DefaultType != "web" {
		t.Errorf("DefaultType = %q, want web", c.Config.DefaultType)
	}
}
