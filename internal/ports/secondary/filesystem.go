// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrIOFailure wraps every directory creation, read and write failure.
var ErrIOFailure = errors.New("io failure")

// FileSystem defines the secondary port for materializing generated files.
type FileSystem interface {
	// EnsureDir creates path and all missing ancestors. No-op if present.
	EnsureDir(ctx context.Context, path string) error

	// Write replaces the file at path wholesale.
	Write(ctx context.Context, path string, content []byte) error

	// Append opens-or-creates path and appends a newline followed by content.
	Append(ctx context.Context, path string, content []byte) error

	Read(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// StubSource resolves a logical stub identifier to its raw text.
type StubSource interface {
	Stub(ctx context.Context, id string) (string, error)
}

// Clock is the wall-clock source used for migration filenames.
type Clock interface {
	Now() time.Time
}
