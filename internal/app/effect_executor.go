// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"github.com/example/modgen/internal/core/effects"
	"github.com/example/modgen/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor against the secondary ports.
type DefaultEffectExecutor struct {
	fs       secondary.FileSystem
	journal  secondary.JournalRepository // nil when the journal is disabled
	reporter secondary.Reporter
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(fs secondary.FileSystem, journal secondary.JournalRepository, reporter secondary.Reporter) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		fs:       fs,
		journal:  journal,
		reporter: reporter,
	}
}

// Execute processes a slice of effects, executing each in sequence.
// It stops at the first failure; earlier effects are not reverted.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed)
	case effects.PersistEffect:
		return e.executePersist(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect) error {
	switch eff.Operation {
	case effects.OpMkdir:
		return e.fs.EnsureDir(ctx, eff.Path)
	case effects.OpWrite:
		return e.fs.Write(ctx, eff.Path, eff.Content)
	case effects.OpAppend:
		return e.fs.Append(ctx, eff.Path, eff.Content)
	default:
		return fmt.Errorf("unknown file operation: %s", eff.Operation)
	}
}

func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) error {
	if e.journal == nil {
		return fmt.Errorf("journal not configured")
	}
	switch eff.Entity {
	case "generation":
		return e.executeGenerationOp(ctx, eff)
	default:
		return fmt.Errorf("unknown entity: %s", eff.Entity)
	}
}

func (e *DefaultEffectExecutor) executeGenerationOp(ctx context.Context, eff effects.PersistEffect) error {
	switch eff.Operation {
	case "create":
		record, ok := eff.Data.(*secondary.GenerationRecord)
		if !ok {
			return fmt.Errorf("invalid generation data type: %T", eff.Data)
		}
		return e.journal.Create(ctx, record)
	default:
		return fmt.Errorf("unknown generation operation: %s", eff.Operation)
	}
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) {
	if e.reporter == nil {
		return
	}
	switch eff.Level {
	case "warn":
		e.reporter.Warn("%s", eff.Message)
	case "error":
		e.reporter.Error("%s", eff.Message)
	default:
		e.reporter.Info("%s", eff.Message)
	}
}
