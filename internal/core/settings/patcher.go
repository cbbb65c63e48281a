// Package settings contains the pure logic for patching the default_type
// setting inside the settings document.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/example/modgen/internal/core/effects"
)

// TemplateStubID is the stub identifier of the packaged settings document.
const TemplateStubID = "settings"

// ErrKeyAbsent marks a settings document that exists but has no default_type
// assignment. It is reported as a warning and never aborts an install.
var ErrKeyAbsent = errors.New("settings: default_type key not found")

// templateDefault is the assignment shipped in the packaged settings template.
const templateDefault = "'default_type' => 'api'"

var assignmentRe = regexp.MustCompile(`'default_type'\s*=>\s*'([^']+)'`)

// Outcome describes what a patch does to the settings document.
type Outcome string

const (
	OutcomePublished Outcome = "published"
	OutcomeUpdated   Outcome = "updated"
	OutcomeKeyAbsent Outcome = "key_absent"
)

// PatchInput contains pre-fetched data for a settings patch.
// All values must be gathered by the caller - no I/O in the planner.
type PatchInput struct {
	Template    string // packaged default settings document
	Existing    string // current destination content (ignored unless Exists)
	Exists      bool   // whether the destination file exists
	DefaultType string // value to set
}

// PatchResult is the fully prepared outcome of a patch.
type PatchResult struct {
	Outcome Outcome
	Content string // content to write; empty for OutcomeKeyAbsent
	Warning error  // set for OutcomeKeyAbsent
}

// ShouldWrite reports whether the destination needs to be written.
func (r PatchResult) ShouldWrite() bool {
	return r.Outcome == OutcomePublished || r.Outcome == OutcomeUpdated
}

// Effects returns the effects that persist the result at path. The parent
// directory is created first and the write carries the complete content.
func (r PatchResult) Effects(path string) []effects.Effect {
	if !r.ShouldWrite() {
		return []effects.Effect{effects.NoEffect{}}
	}
	return []effects.Effect{
		effects.FileEffect{Operation: effects.OpMkdir, Path: filepath.Dir(path), Mode: 0755},
		effects.FileEffect{Operation: effects.OpWrite, Path: path, Content: []byte(r.Content), Mode: 0644},
	}
}

// Assignment renders the default_type assignment for value.
func Assignment(value string) string {
	return fmt.Sprintf("'default_type' => '%s'", value)
}

// PlanPatch decides how the settings document changes.
// This is a pure function - the file is read and written by the caller.
func PlanPatch(input PatchInput) PatchResult {
	if !input.Exists {
		return PatchResult{
			Outcome: OutcomePublished,
			Content: strings.ReplaceAll(input.Template, templateDefault, Assignment(input.DefaultType)),
		}
	}

	// A key whose value is not a single-quoted literal counts as absent: the
	// document is left for the user to fix.
	if !assignmentRe.MatchString(input.Existing) {
		return PatchResult{
			Outcome: OutcomeKeyAbsent,
			Warning: ErrKeyAbsent,
		}
	}

	replacement := Assignment(input.DefaultType)
	content := assignmentRe.ReplaceAllLiteralString(input.Existing, replacement)
	return PatchResult{
		Outcome: OutcomeUpdated,
		Content: content,
	}
}

// DefaultType extracts the first default_type value from a settings document.
// The second return value is false when no assignment is present.
func DefaultType(content string) (string, bool) {
	match := assignmentRe.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return match[1], true
}
