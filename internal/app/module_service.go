package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/example/modgen/internal/core/effects"
	"github.com/example/modgen/internal/core/module"
	"github.com/example/modgen/internal/core/naming"
	"github.com/example/modgen/internal/ports/primary"
	"github.com/example/modgen/internal/ports/secondary"
)

// ModuleServiceImpl implements the ModuleService interface.
type ModuleServiceImpl struct {
	layouts  secondary.LayoutLoader
	stubs    secondary.StubSource
	clock    secondary.Clock
	journal  secondary.JournalRepository // nil when the journal is disabled
	executor EffectExecutor
	reporter secondary.Reporter
	logger   *slog.Logger
}

// NewModuleService creates a new ModuleService with injected dependencies.
func NewModuleService(
	layouts secondary.LayoutLoader,
	stubs secondary.StubSource,
	clock secondary.Clock,
	journal secondary.JournalRepository,
	executor EffectExecutor,
	reporter secondary.Reporter,
	logger *slog.Logger,
) *ModuleServiceImpl {
	return &ModuleServiceImpl{
		layouts:  layouts,
		stubs:    stubs,
		clock:    clock,
		journal:  journal,
		executor: executor,
		reporter: reporter,
		logger:   logger,
	}
}

// GenerateModule runs Start -> TypeValidated -> NamesDerived -> PlanBuilt ->
// FilesWritten -> RoutesAppended -> Done. Any failure is terminal and files
// written before it stay on disk.
func (s *ModuleServiceImpl) GenerateModule(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	state := primary.StateStart

	// 1. Validate type (explicit flag, then persisted default, then api)
	rawType := req.Type
	if rawType == "" {
		rawType = req.DefaultType
	}
	if rawType == "" {
		rawType = string(module.TypeAPI)
	}
	moduleType, err := module.ParseType(rawType)
	if err != nil {
		return nil, failed(state, nil, err)
	}
	state = primary.StateTypeValidated

	// 2. Derive names
	name, err := naming.Derive(req.Name)
	if err != nil {
		return nil, failed(state, nil, err)
	}
	state = primary.StateNamesDerived
	s.logger.Debug("derived names", "studly", name.Studly, "plural", name.Plural, "type", moduleType)

	// 3. Plan and render
	layout, err := s.layouts.Load(ctx, req.ProjectRoot)
	if err != nil {
		return nil, failed(state, nil, err)
	}
	plan, err := module.GeneratePlan(module.PlanInput{
		Name:  name,
		Type:  string(moduleType),
		Roots: RootsFromLayout(layout),
		Now:   s.clock.Now(),
	})
	if err != nil {
		return nil, failed(state, nil, err)
	}
	stubs, err := s.loadStubs(ctx, plan.StubIDs())
	if err != nil {
		return nil, failed(state, nil, err)
	}
	rendered, err := module.Render(plan, stubs)
	if err != nil {
		return nil, failed(state, nil, err)
	}
	state = primary.StatePlanBuilt

	resp := &primary.GenerateModuleResponse{
		Name:          name.Studly,
		Type:          string(moduleType),
		RoutesFile:    rendered.RoutesPath,
		RouteFragment: rendered.RouteSource,
		State:         state,
		DryRun:        req.DryRun,
	}
	for _, f := range rendered.Files {
		resp.Files = append(resp.Files, primary.GeneratedFile{
			Path:    f.Path,
			StubID:  string(f.StubID),
			Content: f.Content,
		})
	}

	if req.DryRun {
		return resp, nil
	}

	useJournal := req.Journal && s.journal != nil
	if useJournal {
		resp.PriorRuns = s.countPriorRuns(ctx, name.Studly)
		if resp.PriorRuns > 0 {
			s.reporter.Warn("%s was generated %d time(s) before; its routes will be appended again to %s",
				name.Studly, resp.PriorRuns, displayPath(layout.Root, rendered.RoutesPath))
		}
	}

	// 4. Write files in plan order
	var written []string
	for _, f := range rendered.Files {
		step := withProgress(f.Effects(), "Created "+displayPath(layout.Root, f.Path))
		if err := s.executor.Execute(ctx, []effects.Effect{step}); err != nil {
			return nil, failed(state, written, err)
		}
		written = append(written, f.Path)
	}
	state = primary.StateFilesWritten

	// 5. Append routes
	step := withProgress(rendered.RouteEffects(), "Appended routes to "+displayPath(layout.Root, rendered.RoutesPath))
	if err := s.executor.Execute(ctx, []effects.Effect{step}); err != nil {
		return nil, failed(state, written, err)
	}
	state = primary.StateRoutesAppended

	// 6. Journal (best effort, the module is already on disk)
	if useJournal {
		record := &secondary.GenerationRecord{
			Name:       name.Studly,
			Type:       string(moduleType),
			Files:      written,
			RoutesFile: rendered.RoutesPath,
		}
		err := s.executor.Execute(ctx, []effects.Effect{effects.PersistEffect{
			Entity:    "generation",
			Operation: "create",
			Data:      record,
		}})
		if err != nil {
			s.reporter.Warn("could not record generation in journal: %v", err)
		}
	}

	resp.State = primary.StateDone
	s.reporter.Success("%s Module generated successfully for %s!", name.Studly, moduleType)
	return resp, nil
}

// failed builds the terminal error for a generation that stopped after last.
func failed(last primary.GenerationState, written []string, err error) *primary.GenerationError {
	return &primary.GenerationError{State: primary.StateFailed, Last: last, Written: written, Err: err}
}

// withProgress groups effs with the message reported once they all succeed.
func withProgress(effs []effects.Effect, message string) effects.CompositeEffect {
	steps := make([]effects.Effect, 0, len(effs)+1)
	steps = append(steps, effs...)
	steps = append(steps, effects.LogEffect{Level: "info", Message: message})
	return effects.CompositeEffect{Effects: steps}
}

// loadStubs reads each distinct stub once.
func (s *ModuleServiceImpl) loadStubs(ctx context.Context, ids []module.StubID) (map[module.StubID]string, error) {
	stubs := make(map[module.StubID]string, len(ids))
	for _, id := range ids {
		if _, ok := stubs[id]; ok {
			continue
		}
		content, err := s.stubs.Stub(ctx, string(id))
		if err != nil {
			return nil, fmt.Errorf("failed to load stub %s: %w", id, err)
		}
		stubs[id] = content
	}
	return stubs, nil
}

func (s *ModuleServiceImpl) countPriorRuns(ctx context.Context, name string) int {
	records, err := s.journal.ListByName(ctx, name)
	if err != nil {
		s.logger.Debug("journal lookup failed", "error", err)
		return 0
	}
	return len(records)
}

// RootsFromLayout converts a resolved layout into planner roots.
func RootsFromLayout(layout *secondary.Layout) module.Roots {
	return module.Roots{
		Controllers:  layout.Controllers,
		Repositories: layout.Repositories,
		Requests:     layout.Requests,
		Models:       layout.Models,
		Migrations:   layout.Migrations,
		Views:        layout.Views,
		APIRoutes:    layout.APIRoutes,
		WebRoutes:    layout.WebRoutes,
	}
}

// displayPath shortens path relative to root for messages.
func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// Ensure ModuleServiceImpl implements the interface
var _ primary.ModuleService = (*ModuleServiceImpl)(nil)
