package secondary

import "context"

// GenerationRecord is one journal entry for a completed generation.
type GenerationRecord struct {
	ID         int64
	Name       string
	Type       string
	Files      []string
	RoutesFile string
	CreatedAt  string
}

// JournalRepository defines the secondary port for the generation journal.
type JournalRepository interface {
	Create(ctx context.Context, record *GenerationRecord) error
	ListByName(ctx context.Context, name string) ([]*GenerationRecord, error)
	List(ctx context.Context, limit int) ([]*GenerationRecord, error)
}

// Reporter receives human-readable progress messages.
type Reporter interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Success(format string, args ...any)
}
