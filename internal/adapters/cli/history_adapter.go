package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/modgen/internal/ports/primary"
)

// HistoryAdapter translates CLI operations to HistoryService calls.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List prints journal entries, optionally only those of one module.
func (a *HistoryAdapter) List(ctx context.Context, name string, limit int) ([]*primary.Generation, error) {
	generations, err := a.service.ListGenerations(ctx, primary.HistoryRequest{
		Name:  name,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	if len(generations) == 0 {
		fmt.Fprintln(a.out, "No generations recorded.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Record one with:")
		fmt.Fprintln(a.out, "  modgen generate Order --journal")
		return generations, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tFILES\tCREATED")
	fmt.Fprintln(w, "--\t----\t----\t-----\t-------")

	for _, g := range generations {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			g.ID,
			g.Name,
			g.Type,
			len(g.Files),
			g.CreatedAt,
		)
	}

	w.Flush()
	return generations, nil
}
