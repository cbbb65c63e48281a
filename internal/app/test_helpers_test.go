package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/example/modgen/internal/core/settings"
	"github.com/example/modgen/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.FileSystem        = (*mockFileSystem)(nil)
	_ secondary.StubSource        = (*mockStubSource)(nil)
	_ secondary.LayoutLoader      = (*mockLayoutLoader)(nil)
	_ secondary.JournalRepository = (*mockJournal)(nil)
	_ secondary.Reporter          = (*recordingReporter)(nil)
)

const testRoot = "/srv/shop"

// mockFileSystem is an in-memory secondary.FileSystem.
type mockFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
	ops   []string // "mkdir <path>", "write <path>", "append <path>"

	failWrite map[string]error // Write(path) fails with the given error
	failDir   map[string]error // EnsureDir(path) fails with the given error
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		files:     make(map[string][]byte),
		dirs:      make(map[string]bool),
		failWrite: make(map[string]error),
		failDir:   make(map[string]error),
	}
}

func (m *mockFileSystem) EnsureDir(ctx context.Context, path string) error {
	m.ops = append(m.ops, "mkdir "+path)
	if err := m.failDir[path]; err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", secondary.ErrIOFailure, path, err)
	}
	m.dirs[path] = true
	return nil
}

func (m *mockFileSystem) Write(ctx context.Context, path string, content []byte) error {
	m.ops = append(m.ops, "write "+path)
	if err := m.failWrite[path]; err != nil {
		return fmt.Errorf("%w: write %s: %w", secondary.ErrIOFailure, path, err)
	}
	m.files[path] = append([]byte(nil), content...)
	return nil
}

func (m *mockFileSystem) Append(ctx context.Context, path string, content []byte) error {
	m.ops = append(m.ops, "append "+path)
	m.files[path] = append(m.files[path], '\n')
	m.files[path] = append(m.files[path], content...)
	return nil
}

func (m *mockFileSystem) Read(ctx context.Context, path string) ([]byte, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: read %s: not found", secondary.ErrIOFailure, path)
	}
	return content, nil
}

func (m *mockFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

// writes returns the ops that modify file contents, in order.
func (m *mockFileSystem) writes() []string {
	var out []string
	for _, op := range m.ops {
		if op[:5] == "write" || op[:6] == "append" {
			out = append(out, op)
		}
	}
	return out
}

// mockStubSource serves every stub as a short template naming the stub.
type mockStubSource struct {
	stubs map[string]string
	calls []string
}

func newMockStubSource() *mockStubSource {
	return &mockStubSource{stubs: map[string]string{
		"controller.api": "<?php class {{studly}}Controller /* api */ {}",
		"controller.web": "<?php class {{studly}}Controller /* web */ {}",
		"repository":     "<?php class {{studly}}Repository {}",
		"request.store":  "<?php class {{studly}}Request {}",
		"request.update": "<?php class Update{{studly}}Request {}",
		"migration":      "<?php Schema::create('{{pluralLower}}');",
		"model":          "<?php class {{studly}} { protected $table = '{{pluralLower}}'; }",
		"views.index":    "<h1>{{plural}}</h1>",
		"views.create":   "<h1>Create {{studly}}</h1>",
		"views.edit":     "<h1>Edit {{studly}}</h1>",
		"routes.api":     "Route::apiResource('{{pluralLower}}', {{studly}}Controller::class);",
		"routes.web":     "Route::resource('{{pluralLower}}', {{studly}}Controller::class);",
		settings.TemplateStubID: "<?php\n\nreturn [\n    'default_type' => 'api',\n];\n",
	}}
}

func (m *mockStubSource) Stub(ctx context.Context, id string) (string, error) {
	m.calls = append(m.calls, id)
	content, ok := m.stubs[id]
	if !ok {
		return "", errors.New("unknown stub " + id)
	}
	return content, nil
}

// mockLayoutLoader returns the default Laravel layout under testRoot.
type mockLayoutLoader struct {
	err error
}

func (m *mockLayoutLoader) Load(ctx context.Context, projectRoot string) (*secondary.Layout, error) {
	if m.err != nil {
		return nil, m.err
	}
	p := func(rel string) string { return filepath.Join(testRoot, filepath.FromSlash(rel)) }
	return &secondary.Layout{
		Root:         testRoot,
		Controllers:  p("app/Http/Controllers"),
		Repositories: p("app/Repositories"),
		Requests:     p("app/Http/Requests"),
		Models:       p("app/Models"),
		Migrations:   p("database/migrations"),
		Views:        p("resources/views"),
		APIRoutes:    p("routes/api.php"),
		WebRoutes:    p("routes/web.php"),
		Settings:     p("config/module-generator.php"),
		Stubs:        p("stubs/modgen"),
		Journal:      p(".modgen/journal.db"),
	}, nil
}

// mockJournal is an in-memory secondary.JournalRepository.
type mockJournal struct {
	records   []*secondary.GenerationRecord
	createErr error
	listErr   error
}

func (m *mockJournal) Create(ctx context.Context, record *secondary.GenerationRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, record)
	return nil
}

func (m *mockJournal) ListByName(ctx context.Context, name string) ([]*secondary.GenerationRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.GenerationRecord
	for _, r := range m.records {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockJournal) List(ctx context.Context, limit int) ([]*secondary.GenerationRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := append([]*secondary.GenerationRecord(nil), m.records...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// recordingReporter keeps every message, prefixed by its level.
type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) record(level, format string, args ...any) {
	r.messages = append(r.messages, level+": "+fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Info(format string, args ...any)    { r.record("info", format, args...) }
func (r *recordingReporter) Warn(format string, args ...any)    { r.record("warn", format, args...) }
func (r *recordingReporter) Error(format string, args ...any)   { r.record("error", format, args...) }
func (r *recordingReporter) Success(format string, args ...any) { r.record("success", format, args...) }

func (r *recordingReporter) has(level string) bool {
	for _, m := range r.messages {
		if len(m) > len(level) && m[:len(level)+1] == level+":" {
			return true
		}
	}
	return false
}

// fixedClock returns the same instant for every call.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNow = time.Date(2026, time.March, 7, 9, 5, 2, 0, time.UTC)
