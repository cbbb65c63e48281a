package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/modgen/internal/core/module"
	"github.com/example/modgen/internal/core/settings"
	"github.com/example/modgen/internal/ports/primary"
	"github.com/example/modgen/internal/ports/secondary"
)

// InstallServiceImpl implements the InstallService interface.
type InstallServiceImpl struct {
	layouts  secondary.LayoutLoader
	stubs    secondary.StubSource
	fs       secondary.FileSystem
	executor EffectExecutor
	reporter secondary.Reporter
	logger   *slog.Logger
}

// NewInstallService creates a new InstallService with injected dependencies.
func NewInstallService(
	layouts secondary.LayoutLoader,
	stubs secondary.StubSource,
	fs secondary.FileSystem,
	executor EffectExecutor,
	reporter secondary.Reporter,
	logger *slog.Logger,
) *InstallServiceImpl {
	return &InstallServiceImpl{
		layouts:  layouts,
		stubs:    stubs,
		fs:       fs,
		executor: executor,
		reporter: reporter,
		logger:   logger,
	}
}

// Install sets default_type in the settings document, publishing it from the
// packaged template when absent. A document without the key is left alone.
func (s *InstallServiceImpl) Install(ctx context.Context, req primary.InstallRequest) (*primary.InstallResponse, error) {
	// 1. Validate type
	moduleType, err := module.ParseType(req.DefaultType)
	if err != nil {
		return nil, err
	}

	// 2. Locate settings document
	layout, err := s.layouts.Load(ctx, req.ProjectRoot)
	if err != nil {
		return nil, err
	}
	dest := layout.Settings

	exists, err := s.fs.Exists(ctx, dest)
	if err != nil {
		return nil, err
	}

	// 3. Gather input for the pure patcher
	input := settings.PatchInput{
		Exists:      exists,
		DefaultType: string(moduleType),
	}
	if exists {
		content, err := s.fs.Read(ctx, dest)
		if err != nil {
			return nil, err
		}
		input.Existing = string(content)
	} else {
		tmpl, err := s.stubs.Stub(ctx, settings.TemplateStubID)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings template: %w", err)
		}
		input.Template = tmpl
	}

	result := settings.PlanPatch(input)
	s.logger.Debug("settings patch planned", "path", dest, "outcome", result.Outcome)

	// 4. Persist (content is fully prepared before anything is written)
	if err := s.executor.Execute(ctx, result.Effects(dest)); err != nil {
		return nil, fmt.Errorf("failed to write settings: %w", err)
	}

	rel := displayPath(layout.Root, dest)
	switch result.Outcome {
	case settings.OutcomePublished:
		s.reporter.Info("Config published to %s and default type set to: %s", rel, moduleType)
	case settings.OutcomeUpdated:
		s.reporter.Info("Config updated. Default type set to: %s", moduleType)
	case settings.OutcomeKeyAbsent:
		s.reporter.Warn("Config file %s exists but doesn't contain a 'default_type' setting. Please check manually.", rel)
	}

	return &primary.InstallResponse{
		SettingsPath: dest,
		Outcome:      string(result.Outcome),
		DefaultType:  string(moduleType),
		Warning:      result.Warning,
	}, nil
}

// Ensure InstallServiceImpl implements the interface
var _ primary.InstallService = (*InstallServiceImpl)(nil)
