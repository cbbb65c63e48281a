// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/modgen/internal/ports/secondary"
)

// JournalRepository implements secondary.JournalRepository with SQLite.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new SQLite journal repository.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Create persists a generation and sets record.ID.
func (r *JournalRepository) Create(ctx context.Context, record *secondary.GenerationRecord) error {
	files := record.Files
	if files == nil {
		files = []string{}
	}
	encoded, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("failed to encode files: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO generations (name, type, files, routes_file) VALUES (?, ?, ?, ?)",
		record.Name, record.Type, string(encoded), record.RoutesFile,
	)
	if err != nil {
		return fmt.Errorf("failed to create generation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read generation id: %w", err)
	}
	record.ID = id

	return nil
}

// ListByName retrieves every generation of a module, newest first.
func (r *JournalRepository) ListByName(ctx context.Context, name string) ([]*secondary.GenerationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, type, files, routes_file, created_at FROM generations WHERE name = ? ORDER BY id DESC",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	return scanGenerations(rows)
}

// List retrieves the most recent generations, newest first.
func (r *JournalRepository) List(ctx context.Context, limit int) ([]*secondary.GenerationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, type, files, routes_file, created_at FROM generations ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	return scanGenerations(rows)
}

func scanGenerations(rows *sql.Rows) ([]*secondary.GenerationRecord, error) {
	var records []*secondary.GenerationRecord
	for rows.Next() {
		var (
			files     string
			createdAt time.Time
		)
		record := &secondary.GenerationRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Type, &files, &record.RoutesFile, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		if err := json.Unmarshal([]byte(files), &record.Files); err != nil {
			return nil, fmt.Errorf("failed to decode files of generation %d: %w", record.ID, err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate generations: %w", err)
	}
	return records, nil
}

// Ensure JournalRepository implements the interface
var _ secondary.JournalRepository = (*JournalRepository)(nil)
