// Package wire provides dependency injection for the modgen application.
// A Container is built once per invocation for a single project root.
package wire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/example/modgen/internal/adapters/clock"
	cliadapter "github.com/example/modgen/internal/adapters/cli"
	"github.com/example/modgen/internal/adapters/filesystem"
	"github.com/example/modgen/internal/adapters/layout"
	"github.com/example/modgen/internal/adapters/stubs"
	"github.com/example/modgen/internal/app"
	"github.com/example/modgen/internal/config"
	"github.com/example/modgen/internal/ports/primary"
	"github.com/example/modgen/internal/ports/secondary"
)

// JournalMode controls whether the generation journal is opened.
type JournalMode int

const (
	JournalOff      JournalMode = iota // never opened
	JournalIfExists                    // opened read-side when already present
	JournalOn                          // opened, created if needed
)

// Options configures a Container.
type Options struct {
	ProjectRoot string
	Journal     JournalMode
	Verbose     bool
	Out         io.Writer // user-facing messages
	Err         io.Writer // diagnostics
}

// Container holds the services for one invocation.
type Container struct {
	Layout *secondary.Layout
	Config *config.Config

	ModuleService  primary.ModuleService
	InstallService primary.InstallService
	HistoryService primary.HistoryService

	out     io.Writer
	journal *lazyJournal // nil when the journal is disabled
}

// New resolves the layout, loads the settings once and builds every service.
func New(ctx context.Context, opts Options) (*Container, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	logger := newLogger(opts.Err, opts.Verbose)

	loader := layout.NewLoader()
	lay, err := loader.Load(ctx, opts.ProjectRoot)
	if err != nil {
		return nil, err
	}
	logger.Debug("layout resolved", "root", lay.Root, "settings", lay.Settings)

	cfg, err := config.Load(lay.Settings)
	if err != nil {
		return nil, err
	}
	logger.Debug("settings loaded", "path", cfg.SettingsPath, "published", cfg.Published, "default_type", cfg.DefaultType)

	c := &Container{Layout: lay, Config: cfg, out: opts.Out}

	var journal secondary.JournalRepository
	if open, err := shouldOpenJournal(opts.Journal, lay.Journal); err != nil {
		return nil, err
	} else if open {
		c.journal = newLazyJournal(lay.Journal, logger)
		journal = c.journal
	}

	stubSource := stubs.NewPackagedSource(overrideFS(lay.Stubs))
	materializer := filesystem.NewMaterializer()
	reporter := cliadapter.NewReporter(opts.Out)
	executor := app.NewEffectExecutor(materializer, journal, reporter)

	c.ModuleService = app.NewModuleService(loader, stubSource, clock.System{}, journal, executor, reporter, logger)
	c.InstallService = app.NewInstallService(loader, stubSource, materializer, executor, reporter, logger)
	c.HistoryService = app.NewHistoryService(journal)

	return c, nil
}

// Close releases the journal database, if it was opened.
func (c *Container) Close() error {
	if c.journal != nil {
		return c.journal.Close()
	}
	return nil
}

// ModuleAdapter returns a new ModuleAdapter writing to the container output.
func (c *Container) ModuleAdapter() *cliadapter.ModuleAdapter {
	return cliadapter.NewModuleAdapter(c.ModuleService, c.out)
}

// InstallAdapter returns a new InstallAdapter.
func (c *Container) InstallAdapter() *cliadapter.InstallAdapter {
	return cliadapter.NewInstallAdapter(c.InstallService)
}

// HistoryAdapter returns a new HistoryAdapter writing to the container output.
func (c *Container) HistoryAdapter() *cliadapter.HistoryAdapter {
	return cliadapter.NewHistoryAdapter(c.HistoryService, c.out)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func shouldOpenJournal(mode JournalMode, path string) (bool, error) {
	switch mode {
	case JournalOn:
		return true, nil
	case JournalIfExists:
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to stat journal: %w", err)
		}
		return true, nil
	default:
		return false, nil
	}
}

// overrideFS returns the project stub override directory, or nil when the
// project has none.
func overrideFS(dir string) fs.FS {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}
