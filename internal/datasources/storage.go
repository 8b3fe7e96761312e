package datasources

import (
	"context"
	"errors"

	"github.com/wanderjot/journal-backend/internal/domain"
)

// ErrNotFound is returned when a referenced entry or user record is absent.
var ErrNotFound = errors.New("record not found")

// JournalRepository is the full storage surface the personalization core
// consumes. Implementations are expected to be safe for concurrent use.
type JournalRepository interface {
	EntryFetcher
	EntryUpdater
	EntryEmbeddingPatcher
	PublicEntryLister
	UserVectorGetter
	UserVectorUpserter
	TranslationCacheGetter
	TranslationCachePutter
	TranslationCacheInvalidator
}

type EntryFetcher interface {
	FetchEntry(ctx context.Context, entryID string) (domain.JournalEntry, error)
}

// EntryUpdater merge-writes an edit. Updates that touch text fields
// clear the stored embedding so a stale vector is never served; the next
// personalization read recomputes it lazily.
type EntryUpdater interface {
	UpdateEntry(ctx context.Context, entryID string, update domain.EntryUpdate) error
}

// EntryEmbeddingPatcher merge-writes a freshly computed embedding onto an
// entry without touching its other fields.
type EntryEmbeddingPatcher interface {
	PatchEntryEmbedding(ctx context.Context, entryID string, embedding []float32) error
}

type PublicEntryLister interface {
	ListLatestPublicEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}

// UserVectorGetter returns the user's stored interest vector, or nil and
// no error when the user has no vector yet.
type UserVectorGetter interface {
	GetUserVector(ctx context.Context, userID string) (*domain.InterestVector, error)
}

// UserVectorUpserter writes the interest vector with merge semantics, so
// a first-time write never clobbers unrelated profile fields.
type UserVectorUpserter interface {
	UpsertUserVector(ctx context.Context, userID string, vector domain.InterestVector) error
}

// TranslationCacheGetter returns the cached translations for an entry and
// language. A missing key yields an empty map and no error.
type TranslationCacheGetter interface {
	GetTranslations(ctx context.Context, entryID, lang string) (domain.TranslatedFields, error)
}

// TranslationCachePutter writes translated fields for an entry and
// language. Writes must be idempotent; concurrent fills of the same key
// may race and any winner is valid.
type TranslationCachePutter interface {
	PutTranslations(ctx context.Context, entryID, lang string, fields domain.TranslatedFields) error
}

// TranslationCacheInvalidator drops all cached translations for an entry,
// across languages. Called when an entry's text is edited.
type TranslationCacheInvalidator interface {
	DeleteTranslations(ctx context.Context, entryID string) error
}
