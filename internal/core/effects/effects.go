// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

// File operations understood by the executor.
const (
	OpMkdir  = "mkdir"
	OpWrite  = "write"
	OpAppend = "append"
)

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a user-visible progress message.
type LogEffect struct {
	Level   string // "info", "warn", "error"
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// PersistEffect represents a journal persistence operation.
type PersistEffect struct {
	Entity    string // e.g., "generation"
	Operation string // e.g., "create"
	Data      any    // The entity data
}

func (e PersistEffect) EffectType() string { return "persist" }

// FileEffect represents a file system operation.
type FileEffect struct {
	Operation string // OpMkdir, OpWrite or OpAppend
	Path      string
	Content   []byte // For write and append operations
	Mode      uint32 // File permissions
}

func (e FileEffect) EffectType() string { return "file" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
