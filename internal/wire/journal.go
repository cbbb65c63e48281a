package wire

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/example/modgen/internal/adapters/sqlite"
	"github.com/example/modgen/internal/db"
	"github.com/example/modgen/internal/ports/secondary"
)

// lazyJournal opens the journal database on first use. A generation rejected
// before any file is written never touches .modgen.
type lazyJournal struct {
	path   string
	logger *slog.Logger

	once     sync.Once
	database *sql.DB
	repo     *sqlite.JournalRepository
	err      error
}

func newLazyJournal(path string, logger *slog.Logger) *lazyJournal {
	return &lazyJournal{path: path, logger: logger}
}

func (j *lazyJournal) open() (*sqlite.JournalRepository, error) {
	j.once.Do(func() {
		j.database, j.err = db.Open(j.path)
		if j.err != nil {
			j.err = fmt.Errorf("failed to open journal: %w", j.err)
			return
		}
		j.repo = sqlite.NewJournalRepository(j.database)
		j.logger.Debug("journal opened", "path", j.path)
	})
	return j.repo, j.err
}

func (j *lazyJournal) Create(ctx context.Context, record *secondary.GenerationRecord) error {
	repo, err := j.open()
	if err != nil {
		return err
	}
	return repo.Create(ctx, record)
}

func (j *lazyJournal) ListByName(ctx context.Context, name string) ([]*secondary.GenerationRecord, error) {
	repo, err := j.open()
	if err != nil {
		return nil, err
	}
	return repo.ListByName(ctx, name)
}

func (j *lazyJournal) List(ctx context.Context, limit int) ([]*secondary.GenerationRecord, error) {
	repo, err := j.open()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, limit)
}

func (j *lazyJournal) Close() error {
	if j.database != nil {
		return j.database.Close()
	}
	return nil
}

var _ secondary.JournalRepository = (*lazyJournal)(nil)
