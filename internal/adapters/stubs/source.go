// Package stubs resolves stub identifiers against the packaged stub tree and
// an optional project directory of overrides.
package stubs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/example/modgen/internal/core/settings"
	"github.com/example/modgen/internal/templates"
)

// ErrUnknownStub is returned for an identifier with no packaged file.
var ErrUnknownStub = errors.New("stubs: unknown stub")

// Source implements secondary.StubSource.
type Source struct {
	packaged fs.FS
	override fs.FS // nil when the project has no stub overrides
}

// NewSource creates a Source. override may be nil.
func NewSource(packaged, override fs.FS) *Source {
	return &Source{packaged: packaged, override: override}
}

// NewPackagedSource creates a Source over the stubs compiled into the binary.
func NewPackagedSource(override fs.FS) *Source {
	return NewSource(templates.FS(), override)
}

// Stub returns the text of the stub named id. An override file takes
// precedence over the packaged one.
func (s *Source) Stub(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if id == settings.TemplateStubID {
		return s.read(s.packaged, templates.SettingsTemplate, id)
	}

	rel := StubPath(id)
	if s.override != nil {
		content, err := fs.ReadFile(s.override, rel)
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read stub override %s: %w", rel, err)
		}
	}
	return s.read(s.packaged, "stubs/"+rel, id)
}

func (s *Source) read(fsys fs.FS, path, id string) (string, error) {
	content, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrUnknownStub, id)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read stub %s: %w", id, err)
	}
	return string(content), nil
}

// StubPath maps a stub identifier to its file path relative to a stub
// directory: "views.index" -> "views/index.stub", "model" -> "model.stub".
func StubPath(id string) string {
	if view, ok := strings.CutPrefix(id, "views."); ok {
		return "views/" + view + ".stub"
	}
	return id + ".stub"
}
