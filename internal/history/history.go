// Package history keeps the most recent generations of each client, newest
// first, evicting the oldest entry once a client reaches the capacity.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/saikothasan/neno/internal/models"
)

const DefaultCapacity = 20

type Store interface {
	Append(ctx context.Context, clientID string, entry models.HistoryEntry) error
	// List returns entries newest first.
	List(ctx context.Context, clientID string) ([]models.HistoryEntry, error)
	Clear(ctx context.Context, clientID string) error
}

// NewEntry stamps a generation with an id and the current time.
func NewEntry(req models.GenerationRequest, results []models.GenerationResult) models.HistoryEntry {
	return models.HistoryEntry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
		Results:   results,
	}
}

func normalizeCapacity(capacity int) int {
	if capacity <= 0 {
		return DefaultCapacity
	}
	return capacity
}
