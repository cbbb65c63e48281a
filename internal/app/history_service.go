package app

import (
	"context"
	"fmt"

	"github.com/example/modgen/internal/core/naming"
	"github.com/example/modgen/internal/ports/primary"
	"github.com/example/modgen/internal/ports/secondary"
)

const defaultHistoryLimit = 50

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	journal secondary.JournalRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(journal secondary.JournalRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{journal: journal}
}

// ListGenerations returns journal entries, newest first. A project without
// a journal has no entries.
func (s *HistoryServiceImpl) ListGenerations(ctx context.Context, req primary.HistoryRequest) ([]*primary.Generation, error) {
	if s.journal == nil {
		return []*primary.Generation{}, nil
	}

	var (
		records []*secondary.GenerationRecord
		err     error
	)
	if req.Name != "" {
		records, err = s.journal.ListByName(ctx, studlyName(req.Name))
	} else {
		limit := req.Limit
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		records, err = s.journal.List(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	generations := make([]*primary.Generation, 0, len(records))
	for _, r := range records {
		generations = append(generations, &primary.Generation{
			ID:         r.ID,
			Name:       r.Name,
			Type:       r.Type,
			Files:      r.Files,
			RoutesFile: r.RoutesFile,
			CreatedAt:  r.CreatedAt,
		})
	}
	return generations, nil
}

// studlyName normalizes a module name the way generations record it.
func studlyName(raw string) string {
	name, err := naming.Derive(raw)
	if err != nil {
		return raw
	}
	return name.Studly
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
