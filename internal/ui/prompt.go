// Package ui contains interactive prompts and their non-interactive fallbacks.
package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/example/modgen/internal/core/module"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("ui: prompt cancelled")

// typeLabels describe each module type in the select prompt.
var typeLabels = map[module.Type]string{
	module.TypeAPI: "api - JSON controller and API routes",
	module.TypeWeb: "web - resource controller, Blade views and web routes",
}

// TypePrompt asks which module type to use as the default.
type TypePrompt struct {
	headless func() bool
	selectFn func(options []huh.Option[string], value *string) error
}

// NewTypePrompt creates a TypePrompt that falls back to the default when
// stdin is not a terminal.
func NewTypePrompt() *TypePrompt {
	return &TypePrompt{
		headless: IsHeadless,
		selectFn: runSelect,
	}
}

// IsHeadless reports whether stdin is not connected to a terminal.
func IsHeadless() bool {
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Choose returns the selected type. The first option is preselected; in
// headless mode it is returned without prompting.
func (p *TypePrompt) Choose() (string, error) {
	types := module.Types()
	selected := string(types[0])
	if p.headless() {
		return selected, nil
	}

	opts := make([]huh.Option[string], len(types))
	for i, t := range types {
		opts[i] = huh.NewOption(typeLabels[t], string(t))
	}

	if err := p.selectFn(opts, &selected); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt error: %w", err)
	}
	return selected, nil
}

func runSelect(options []huh.Option[string], value *string) error {
	sel := huh.NewSelect[string]().
		Title("Which type of module do you want to generate by default?").
		Options(options...).
		Value(value)

	return huh.NewForm(huh.NewGroup(sel)).
		WithTheme(newTheme()).
		WithAccessible(false).
		Run()
}

// newTheme colors the prompt to match the reporter's palette.
func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(muted)
	t.Blurred = t.Focused
	t.Blurred.SelectSelector = lipgloss.NewStyle().SetString("  ")

	return t
}
