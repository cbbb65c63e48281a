// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"
	"fmt"
)

// ModuleService defines the primary port for module generation.
type ModuleService interface {
	// GenerateModule renders and writes every artifact of a module, then
	// appends its route fragment. Failures are terminal and nothing is undone.
	GenerateModule(ctx context.Context, req GenerateModuleRequest) (*GenerateModuleResponse, error)
}

// GenerateModuleRequest contains parameters for generating a module.
type GenerateModuleRequest struct {
	ProjectRoot string
	Name        string
	Type        string // explicit type; empty falls back to DefaultType
	DefaultType string // persisted default, loaded once by the caller
	DryRun      bool   // plan and render only
	Journal     bool   // record the generation in the journal
}

// GenerationState is a step of the generation state machine.
type GenerationState string

const (
	StateStart          GenerationState = "start"
	StateTypeValidated  GenerationState = "type_validated"
	StateNamesDerived   GenerationState = "names_derived"
	StatePlanBuilt      GenerationState = "plan_built"
	StateFilesWritten   GenerationState = "files_written"
	StateRoutesAppended GenerationState = "routes_appended"
	StateDone           GenerationState = "done"
	StateFailed         GenerationState = "failed"
)

// GeneratedFile describes one artifact of a module.
type GeneratedFile struct {
	Path    string
	StubID  string
	Content string
}

// GenerateModuleResponse contains the result of a generation.
type GenerateModuleResponse struct {
	Name          string // studly name
	Type          string
	Files         []GeneratedFile
	RoutesFile    string
	RouteFragment string
	State         GenerationState
	DryRun        bool
	PriorRuns     int // journal entries for the same name before this run
}

// GenerationError reports a generation that ended in StateFailed, the last
// state it reached and the files already written before it failed.
type GenerationError struct {
	State   GenerationState // always StateFailed
	Last    GenerationState
	Written []string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed after %s: %v", e.Last, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
