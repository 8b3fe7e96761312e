package command

import (
	"context"
	"fmt"
	"time"

	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

// RecordInterest is the personalization entrypoint: it folds a single
// interaction signal into the user's interest vector, lazily computing
// and caching the entry's embedding on first use.
//
// Concurrent calls for the same user are deliberately not mutually
// excluded; each reads-then-writes independently and the last writer
// wins. A lost signal only delays convergence, and every write is
// individually valid: finite-valued and normalized.
type RecordInterest struct {
	EntryFetcher   datasources.EntryFetcher
	EntryPatcher   datasources.EntryEmbeddingPatcher
	VectorGetter   datasources.UserVectorGetter
	VectorUpserter datasources.UserVectorUpserter
	Embedder       datasources.Embedder
	Weights        domain.SignalWeights
	Now            func() time.Time
}

type RecordInterestRequest struct {
	UserID  string
	EntryID string
	Kind    domain.SignalKind
}

var _ Command[RecordInterestRequest, *domain.InterestVector] = (*RecordInterest)(nil)

// Execute returns the updated vector, or nil when no embedding is
// available for the entry — personalization is temporarily unavailable
// and the interaction itself still succeeds.
func (c *RecordInterest) Execute(ctx context.Context, req RecordInterestRequest) (*domain.InterestVector, error) {
	logger := domain.LoggerFromContext(ctx)

	weight, ok := c.Weights[req.Kind]
	if !ok {
		return nil, fmt.Errorf("no weight configured for signal kind [%s]", req.Kind)
	}

	embedding, err := c.resolveEmbedding(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}
	if embedding == nil {
		logger.DebugContext(ctx, "no embedding available, skipping personalization",
			"entry_id", req.EntryID)
		return nil, nil
	}

	current, err := c.VectorGetter.GetUserVector(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("getting user vector: %w", err)
	}

	var currentVector []float32
	if current != nil {
		currentVector = current.Vector
		if len(currentVector) != len(embedding) {
			// The embedding dimension changed between deployments;
			// start over from a zero vector.
			logger.WarnContext(ctx, "stored vector length mismatch, resetting",
				"stored", len(currentVector), "embedding", len(embedding))
			currentVector = nil
		}
	}

	next := domain.ApplyInterestSignal(currentVector, embedding, weight)
	domain.NormalizeL2(next)

	updated := domain.InterestVector{
		Vector:     next,
		LastSignal: req.Kind,
		UpdatedAt:  c.Now(),
	}

	if err := c.VectorUpserter.UpsertUserVector(ctx, req.UserID, updated); err != nil {
		return nil, fmt.Errorf("persisting user vector: %w", err)
	}

	logger.DebugContext(ctx, "updated interest vector",
		"entry_id", req.EntryID, "signal", req.Kind)

	return &updated, nil
}

// resolveEmbedding returns the entry's stored embedding, or computes
// one and writes it through onto the entry record so repeated signals
// on the same entry never re-call the gateway.
func (c *RecordInterest) resolveEmbedding(ctx context.Context, entryID string) ([]float32, error) {
	entry, err := c.EntryFetcher.FetchEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("fetching entry: %w", err)
	}

	if entry.Embedding != nil {
		return entry.Embedding, nil
	}

	embedding, err := c.Embedder.EmbedText(ctx, entry.EmbeddingInput())
	if err != nil {
		return nil, fmt.Errorf("embedding entry text: %w", err)
	}
	if embedding == nil {
		return nil, nil
	}

	if err := c.EntryPatcher.PatchEntryEmbedding(ctx, entryID, embedding); err != nil {
		return nil, fmt.Errorf("caching entry embedding: %w", err)
	}

	return embedding, nil
}
