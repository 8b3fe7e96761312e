package command

import (
	"context"
	"fmt"

	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

// UpdateEntry applies an edit to a journal entry. Edits that touch the
// entry's text re-embed it and drop its cached translations, since both
// were derived from the old text.
type UpdateEntry struct {
	EntryFetcher datasources.EntryFetcher
	EntryUpdater datasources.EntryUpdater
	EntryPatcher datasources.EntryEmbeddingPatcher
	Invalidator  datasources.TranslationCacheInvalidator
	Embedder     datasources.Embedder
}

type UpdateEntryRequest struct {
	EntryID string
	Update  domain.EntryUpdate
}

var _ Command[UpdateEntryRequest, Empty] = (*UpdateEntry)(nil)

func (c *UpdateEntry) Execute(ctx context.Context, req UpdateEntryRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Update.Empty() {
		return Empty{}, nil
	}

	if err := c.EntryUpdater.UpdateEntry(ctx, req.EntryID, req.Update); err != nil {
		return Empty{}, fmt.Errorf("updating entry: %w", err)
	}

	if !req.Update.TouchesText() {
		return Empty{}, nil
	}

	if err := c.Invalidator.DeleteTranslations(ctx, req.EntryID); err != nil {
		return Empty{}, fmt.Errorf("invalidating translations: %w", err)
	}

	entry, err := c.EntryFetcher.FetchEntry(ctx, req.EntryID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching updated entry: %w", err)
	}

	embedding, err := c.Embedder.EmbedText(ctx, entry.EmbeddingInput())
	if err != nil {
		// Re-embedding is best effort; the next personalization read
		// computes it lazily.
		logger.WarnContext(ctx, "failed to re-embed updated entry",
			"error", err, "entry_id", req.EntryID)
		return Empty{}, nil
	}
	if embedding == nil {
		return Empty{}, nil
	}

	if err := c.EntryPatcher.PatchEntryEmbedding(ctx, req.EntryID, embedding); err != nil {
		return Empty{}, fmt.Errorf("caching entry embedding: %w", err)
	}

	return Empty{}, nil
}
