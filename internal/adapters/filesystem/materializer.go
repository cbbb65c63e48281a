// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/modgen/internal/ports/secondary"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// Materializer implements secondary.FileSystem on the local disk.
type Materializer struct{}

// NewMaterializer creates a new filesystem materializer.
func NewMaterializer() *Materializer {
	return &Materializer{}
}

// EnsureDir creates a directory with all parent directories.
func (m *Materializer) EnsureDir(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return ioFailure("create directory", path, err)
	}
	return nil
}

// Write replaces the file at path. The content goes to a temporary file in the
// same directory first and is renamed over the target, so readers never see a
// half-written file.
func (m *Materializer) Write(ctx context.Context, path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := m.EnsureDir(ctx, dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return ioFailure("write", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return ioFailure("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return ioFailure("write", path, err)
	}
	if err := os.Chmod(tmpPath, fileMode); err != nil {
		os.Remove(tmpPath)
		return ioFailure("write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return ioFailure("write", path, err)
	}

	return nil
}

// Append adds a newline and content to the end of path, creating it if needed.
func (m *Materializer) Append(ctx context.Context, path string, content []byte) error {
	if err := m.EnsureDir(ctx, filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return ioFailure("append", path, err)
	}

	data := make([]byte, 0, len(content)+1)
	data = append(data, '\n')
	data = append(data, content...)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return ioFailure("append", path, err)
	}
	if err := f.Close(); err != nil {
		return ioFailure("append", path, err)
	}
	return nil
}

// Read returns the content of path.
func (m *Materializer) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioFailure("read", path, err)
	}
	return data, nil
}

// Exists checks whether path exists.
func (m *Materializer) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, ioFailure("stat", path, err)
	}
	return true, nil
}

func ioFailure(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", secondary.ErrIOFailure, op, path, err)
}

// Ensure Materializer implements the interface
var _ secondary.FileSystem = (*Materializer)(nil)
