package primary

import "context"

// HistoryService defines the primary port for reading the generation journal.
type HistoryService interface {
	ListGenerations(ctx context.Context, req HistoryRequest) ([]*Generation, error)
}

// HistoryRequest filters journal entries.
type HistoryRequest struct {
	Name  string // studly name; empty lists everything
	Limit int
}

// Generation is a journal entry as exposed to the CLI.
type Generation struct {
	ID         int64
	Name       string
	Type       string
	Files      []string
	RoutesFile string
	CreatedAt  string
}
