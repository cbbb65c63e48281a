package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/modgen/internal/core/effects"
	"github.com/example/modgen/internal/ports/secondary"
)

func TestEffectExecutor_FileEffects(t *testing.T) {
	fs := newMockFileSystem()
	executor := NewEffectExecutor(fs, nil, nil)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.FileEffect{Operation: effects.OpMkdir, Path: "/p/routes"},
		effects.FileEffect{Operation: effects.OpWrite, Path: "/p/routes/api.php", Content: []byte("<?php")},
		effects.FileEffect{Operation: effects.OpAppend, Path: "/p/routes/api.php", Content: []byte("Route::a();")},
		effects.NoEffect{},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := string(fs.files["/p/routes/api.php"]); got != "<?php\nRoute::a();" {
		t.Errorf("content = %q", got)
	}
	want := []string{"mkdir /p/routes", "write /p/routes/api.php", "append /p/routes/api.php"}
	if len(fs.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", fs.ops, want)
	}
	for i := range want {
		if fs.ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, fs.ops[i], want[i])
		}
	}
}

func TestEffectExecutor_StopsAtFirstFailure(t *testing.T) {
	fs := newMockFileSystem()
	fs.failWrite["/p/a"] = errors.New("disk full")
	executor := NewEffectExecutor(fs, nil, nil)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.FileEffect{Operation: effects.OpWrite, Path: "/p/a"},
		effects.FileEffect{Operation: effects.OpWrite, Path: "/p/b"},
	})
	if !errors.Is(err, secondary.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}
	if _, ok := fs.files["/p/b"]; ok {
		t.Error("effects after a failure must not run")
	}
}

func TestEffectExecutor_Persist(t *testing.T) {
	journal := &mockJournal{}
	executor := NewEffectExecutor(newMockFileSystem(), journal, nil)

	record := &secondary.GenerationRecord{Name: "Order", Type: "api"}
	err := executor.Execute(context.Background(), []effects.Effect{
		effects.PersistEffect{Entity: "generation", Operation: "create", Data: record},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if record.ID != 1 || len(journal.records) != 1 {
		t.Errorf("expected record to be created, got %+v", journal.records)
	}
}

func TestEffectExecutor_PersistErrors(t *testing.T) {
	tests := []struct {
		name    string
		journal secondary.JournalRepository
		effect  effects.PersistEffect
	}{
		{"no journal", nil, effects.PersistEffect{Entity: "generation", Operation: "create", Data: &secondary.GenerationRecord{}}},
		{"unknown entity", &mockJournal{}, effects.PersistEffect{Entity: "widget", Operation: "create"}},
		{"unknown operation", &mockJournal{}, effects.PersistEffect{Entity: "generation", Operation: "delete"}},
		{"wrong data type", &mockJournal{}, effects.PersistEffect{Entity: "generation", Operation: "create", Data: "Order"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := NewEffectExecutor(newMockFileSystem(), tt.journal, nil)
			if err := executor.Execute(context.Background(), []effects.Effect{tt.effect}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEffectExecutor_LogAndComposite(t *testing.T) {
	reporter := &recordingReporter{}
	executor := NewEffectExecutor(newMockFileSystem(), nil, reporter)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.CompositeEffect{Effects: []effects.Effect{
			effects.LogEffect{Level: "info", Message: "hello"},
			effects.LogEffect{Level: "warn", Message: "careful"},
		}},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := []string{"info: hello", "warn: careful"}
	if len(reporter.messages) != 2 || reporter.messages[0] != want[0] || reporter.messages[1] != want[1] {
		t.Errorf("messages = %v, want %v", reporter.messages, want)
	}
}
