// Package cli contains thin adapters translating CLI operations into
// service calls and their results into terminal output.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/modgen/internal/ports/primary"
)

// ModuleAdapter translates CLI operations to ModuleService calls.
type ModuleAdapter struct {
	service primary.ModuleService
	out     io.Writer
}

// NewModuleAdapter creates a new ModuleAdapter with the given service.
func NewModuleAdapter(service primary.ModuleService, out io.Writer) *ModuleAdapter {
	return &ModuleAdapter{
		service: service,
		out:     out,
	}
}

// GenerateOptions are the CLI inputs of a generation.
type GenerateOptions struct {
	ProjectRoot  string
	Name         string
	Type         string
	DefaultType  string
	DryRun       bool
	Journal      bool
	ShowContents bool // dry run only: print rendered contents
}

// Generate runs a generation. Progress lines come from the service's
// reporter; this adapter prints the dry-run plan and the failure summary.
func (a *ModuleAdapter) Generate(ctx context.Context, opts GenerateOptions) (*primary.GenerateModuleResponse, error) {
	resp, err := a.service.GenerateModule(ctx, primary.GenerateModuleRequest{
		ProjectRoot: opts.ProjectRoot,
		Name:        opts.Name,
		Type:        opts.Type,
		DefaultType: opts.DefaultType,
		DryRun:      opts.DryRun,
		Journal:     opts.Journal,
	})
	if err != nil {
		var genErr *primary.GenerationError
		if errors.As(err, &genErr) && len(genErr.Written) > 0 {
			fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Files written before the failure (not removed):"))
			for _, path := range genErr.Written {
				fmt.Fprintf(a.out, "  %s\n", relTo(opts.ProjectRoot, path))
			}
		}
		return nil, err
	}

	if resp.DryRun {
		a.printPlan(opts, resp)
	}
	return resp, nil
}

func (a *ModuleAdapter) printPlan(opts GenerateOptions, resp *primary.GenerateModuleResponse) {
	fmt.Fprintf(a.out, "Dry run: %s (%s), nothing written\n\n", resp.Name, resp.Type)

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STUB\tPATH")
	fmt.Fprintln(w, "----\t----")
	for _, f := range resp.Files {
		fmt.Fprintf(w, "%s\t%s\n", f.StubID, relTo(opts.ProjectRoot, f.Path))
	}
	fmt.Fprintf(w, "%s\t%s (append)\n", "routes."+resp.Type, relTo(opts.ProjectRoot, resp.RoutesFile))
	w.Flush()

	if !opts.ShowContents {
		return
	}
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "\n%s\n%s\n", color.New(color.FgCyan).Sprintf("==> %s", relTo(opts.ProjectRoot, f.Path)), f.Content)
	}
	fmt.Fprintf(a.out, "\n%s\n%s\n", color.New(color.FgCyan).Sprintf(">>> %s", relTo(opts.ProjectRoot, resp.RoutesFile)), resp.RouteFragment)
}

func relTo(root, path string) string {
	if root == "" {
		return path
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(abs, path)
	if err != nil {
		return path
	}
	return rel
}
