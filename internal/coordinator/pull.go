package coordinator

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// MergeRepository is the part of the record store a pull pass needs.
// MergeWithLocalData must be an upsert keyed by record id that leaves
// PENDING local copies untouched.
type MergeRepository[T any] interface {
	Entity() string
	MergeWithLocalData(ctx context.Context, payloads []T) error
}

// CursorStore persists one continuation token per entity.
type CursorStore interface {
	// GetCursor returns "" when the entity was never pulled.
	GetCursor(ctx context.Context, entity string) (string, error)
	SetCursor(ctx context.Context, entity, token string) error
}

// PullFunc fetches the page after token. An empty token starts from the
// beginning.
type PullFunc[T any] func(ctx context.Context, token string) (models.PullResponse[T], error)

// PullResult summarises a pull pass.
type PullResult struct {
	Pages  int
	Merged int
	// Cursor is the token stored when the pass ended.
	Cursor string
}

// Pull merges server pages into repo until the server returns a page with
// fewer than batchSize payloads.
//
// The stored cursor only moves forward: it is written after its page is
// merged and only when the server returned a new, non-empty token. A failed
// call or merge leaves it where it was.
func Pull[T any](ctx context.Context, repo MergeRepository[T], cursors CursorStore, batchSize int, pull PullFunc[T]) (PullResult, error) {
	var result PullResult
	if batchSize < 1 {
		return result, ErrInvalidBatchSize
	}

	entity := repo.Entity()
	log := logger.FromContext(ctx).WithStr("entity", entity)
	batchCtx := context.WithoutCancel(ctx)

	token, err := cursors.GetCursor(batchCtx, entity)
	if err != nil {
		return result, fmt.Errorf("read %s pull cursor: %w", entity, err)
	}
	result.Cursor = token

	for {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		page, err := pull(batchCtx, token)
		if err != nil {
			return result, fmt.Errorf("pull %s page: %w", entity, err)
		}

		if len(page.Payloads) > 0 {
			if err = repo.MergeWithLocalData(batchCtx, page.Payloads); err != nil {
				return result, fmt.Errorf("merge %s page: %w", entity, err)
			}
		}
		result.Pages++
		result.Merged += len(page.Payloads)

		advanced := page.ProcessToken != "" && page.ProcessToken != token
		if advanced {
			if err = cursors.SetCursor(batchCtx, entity, page.ProcessToken); err != nil {
				return result, fmt.Errorf("store %s pull cursor: %w", entity, err)
			}
			token = page.ProcessToken
			result.Cursor = token
		}

		if len(page.Payloads) < batchSize {
			break
		}
		if !advanced {
			return result, ErrCursorNotAdvancing
		}
	}

	log.Debug().
		Int("pages", result.Pages).
		Int("merged", result.Merged).
		Msg("pull finished")

	return result, nil
}
