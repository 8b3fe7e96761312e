package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderjot/journal-backend/internal/datasources/mocks"
	"github.com/wanderjot/journal-backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRecordInterest(
	fetcher *mocks.MockEntryFetcher,
	patcher *mocks.MockEntryEmbeddingPatcher,
	getter *mocks.MockUserVectorGetter,
	upserter *mocks.MockUserVectorUpserter,
	embedder *mocks.MockEmbedder,
) *RecordInterest {
	return &RecordInterest{
		EntryFetcher:   fetcher,
		EntryPatcher:   patcher,
		VectorGetter:   getter,
		VectorUpserter: upserter,
		Embedder:       embedder,
		Weights:        domain.DefaultSignalWeights(),
		Now:            func() time.Time { return testNow },
	}
}

func TestRecordInterest_Execute_StoredEmbedding(t *testing.T) {
	fetcher := mocks.NewMockEntryFetcher(t)
	patcher := mocks.NewMockEntryEmbeddingPatcher(t)
	getter := mocks.NewMockUserVectorGetter(t)
	upserter := mocks.NewMockUserVectorUpserter(t)
	embedder := mocks.NewMockEmbedder(t)

	fetcher.EXPECT().
		FetchEntry(mock.Anything, "entry1").
		Return(domain.JournalEntry{ID: "entry1", Embedding: []float32{1, 0, 0}}, nil)

	getter.EXPECT().
		GetUserVector(mock.Anything, "user1").
		Return(nil, nil)

	upserter.EXPECT().
		UpsertUserVector(mock.Anything, "user1", mock.Anything).
		Return(nil)

	cmd := newRecordInterest(fetcher, patcher, getter, upserter, embedder)

	result, err := cmd.Execute(testContext(), RecordInterestRequest{
		UserID:  "user1",
		EntryID: "entry1",
		Kind:    domain.SignalView,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// A view from a zero vector still normalizes to the embedding's direction.
	assert.InDelta(t, 1, result.Vector[0], 1e-6)
	assert.InDelta(t, 0, result.Vector[1], 1e-6)
	assert.InDelta(t, 0, result.Vector[2], 1e-6)
	assert.Equal(t, domain.SignalView, result.LastSignal)
	assert.Equal(t, testNow, result.UpdatedAt)
}

func TestRecordInterest_Execute_LazyEmbeddingWriteThrough(t *testing.T) {
	fetcher := mocks.NewMockEntryFetcher(t)
	patcher := mocks.NewMockEntryEmbeddingPatcher(t)
	getter := mocks.NewMockUserVectorGetter(t)
	upserter := mocks.NewMockUserVectorUpserter(t)
	embedder := mocks.NewMockEmbedder(t)

	entry := domain.JournalEntry{
		ID:     "entry1",
		Title:  "Three days in Kyoto",
		Region: "Kansai, Japan",
		Body:   "We arrived by shinkansen...",
	}
	embedding := []float32{0, 1, 0}

	fetcher.EXPECT().
		FetchEntry(mock.Anything, "entry1").
		Return(entry, nil)

	embedder.EXPECT().
		EmbedText(mock.Anything, entry.EmbeddingInput()).
		Return(embedding, nil).
		Once()

	patcher.EXPECT().
		PatchEntryEmbedding(mock.Anything, "entry1", embedding).
		Return(nil).
		Once()

	getter.EXPECT().
		GetUserVector(mock.Anything, "user1").
		Return(&domain.InterestVector{Vector: []float32{1, 0, 0}}, nil)

	var persisted domain.InterestVector
	upserter.EXPECT().
		UpsertUserVector(mock.Anything, "user1", mock.Anything).
		Run(func(_ context.Context, _ string, vector domain.InterestVector) {
			persisted = vector
		}).
		Return(nil)

	cmd := newRecordInterest(fetcher, patcher, getter, upserter, embedder)

	result, err := cmd.Execute(testContext(), RecordInterestRequest{
		UserID:  "user1",
		EntryID: "entry1",
		Kind:    domain.SignalSave,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// save weight 0.3: pre-normalization [0.7, 0.3, 0]
	assert.InDelta(t, 0.9191, persisted.Vector[0], 1e-4)
	assert.InDelta(t, 0.3939, persisted.Vector[1], 1e-4)
	assert.InDelta(t, 0, persisted.Vector[2], 1e-6)

	var norm float64
	for _, x := range persisted.Vector {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1, math.Sqrt(norm), 1e-6)
}

func TestRecordInterest_Execute_NilEmbeddingNoOp(t *testing.T) {
	fetcher := mocks.NewMockEntryFetcher(t)
	patcher := mocks.NewMockEntryEmbeddingPatcher(t)
	getter := mocks.NewMockUserVectorGetter(t)
	upserter := mocks.NewMockUserVectorUpserter(t)
	embedder := mocks.NewMockEmbedder(t)

	fetcher.EXPECT().
		FetchEntry(mock.Anything, "entry1").
		Return(domain.JournalEntry{ID: "entry1", Title: "Kyoto"}, nil)

	// No credential configured: the gateway soft-skips.
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.Anything).
		Return(nil, nil)

	cmd := newRecordInterest(fetcher, patcher, getter, upserter, embedder)

	result, err := cmd.Execute(testContext(), RecordInterestRequest{
		UserID:  "user1",
		EntryID: "entry1",
		Kind:    domain.SignalLike,
	})

	// No vector state may be written in this case.
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestRecordInterest_Execute_LengthMismatchResets(t *testing.T) {
	fetcher := mocks.NewMockEntryFetcher(t)
	patcher := mocks.NewMockEntryEmbeddingPatcher(t)
	getter := mocks.NewMockUserVectorGetter(t)
	upserter := mocks.NewMockUserVectorUpserter(t)
	embedder := mocks.NewMockEmbedder(t)

	fetcher.EXPECT().
		FetchEntry(mock.Anything, "entry1").
		Return(domain.JournalEntry{ID: "entry1", Embedding: []float32{0, 1, 0}}, nil)

	// Stored vector comes from an older deployment with a different
	// embedding dimension.
	getter.EXPECT().
		GetUserVector(mock.Anything, "user1").
		Return(&domain.InterestVector{Vector: []float32{1, 1}}, nil)

	var persisted domain.InterestVector
	upserter.EXPECT().
		UpsertUserVector(mock.Anything, "user1", mock.Anything).
		Run(func(_ context.Context, _ string, vector domain.InterestVector) {
			persisted = vector
		}).
		Return(nil)

	cmd := newRecordInterest(fetcher, patcher, getter, upserter, embedder)

	_, err := cmd.Execute(testContext(), RecordInterestRequest{
		UserID:  "user1",
		EntryID: "entry1",
		Kind:    domain.SignalLike,
	})
	require.NoError(t, err)

	require.Len(t, persisted.Vector, 3)
	assert.InDelta(t, 0, persisted.Vector[0], 1e-6)
	assert.InDelta(t, 1, persisted.Vector[1], 1e-6)
}

func TestRecordInterest_Execute_Errors(t *testing.T) {
	cases := []struct {
		name       string
		setup      func(*mocks.MockEntryFetcher, *mocks.MockEntryEmbeddingPatcher, *mocks.MockUserVectorGetter, *mocks.MockUserVectorUpserter, *mocks.MockEmbedder)
		kind       domain.SignalKind
		wantErrMsg string
	}{
		{
			name:       "unknown_signal_kind",
			setup:      func(*mocks.MockEntryFetcher, *mocks.MockEntryEmbeddingPatcher, *mocks.MockUserVectorGetter, *mocks.MockUserVectorUpserter, *mocks.MockEmbedder) {},
			kind:       domain.SignalKind("share"),
			wantErrMsg: "no weight configured",
		},
		{
			name: "fetch_error",
			setup: func(fetcher *mocks.MockEntryFetcher, _ *mocks.MockEntryEmbeddingPatcher, _ *mocks.MockUserVectorGetter, _ *mocks.MockUserVectorUpserter, _ *mocks.MockEmbedder) {
				fetcher.EXPECT().
					FetchEntry(mock.Anything, "entry1").
					Return(domain.JournalEntry{}, errors.New("db down"))
			},
			kind:       domain.SignalView,
			wantErrMsg: "fetching entry",
		},
		{
			name: "embed_error",
			setup: func(fetcher *mocks.MockEntryFetcher, _ *mocks.MockEntryEmbeddingPatcher, _ *mocks.MockUserVectorGetter, _ *mocks.MockUserVectorUpserter, embedder *mocks.MockEmbedder) {
				fetcher.EXPECT().
					FetchEntry(mock.Anything, "entry1").
					Return(domain.JournalEntry{ID: "entry1", Title: "Kyoto"}, nil)
				embedder.EXPECT().
					EmbedText(mock.Anything, mock.Anything).
					Return(nil, errors.New("upstream timeout"))
			},
			kind:       domain.SignalView,
			wantErrMsg: "embedding entry text",
		},
		{
			name: "persist_error_surfaces",
			setup: func(fetcher *mocks.MockEntryFetcher, _ *mocks.MockEntryEmbeddingPatcher, getter *mocks.MockUserVectorGetter, upserter *mocks.MockUserVectorUpserter, _ *mocks.MockEmbedder) {
				fetcher.EXPECT().
					FetchEntry(mock.Anything, "entry1").
					Return(domain.JournalEntry{ID: "entry1", Embedding: []float32{1, 0}}, nil)
				getter.EXPECT().
					GetUserVector(mock.Anything, "user1").
					Return(nil, nil)
				upserter.EXPECT().
					UpsertUserVector(mock.Anything, "user1", mock.Anything).
					Return(errors.New("write failed"))
			},
			kind:       domain.SignalView,
			wantErrMsg: "persisting user vector",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockEntryFetcher(t)
			patcher := mocks.NewMockEntryEmbeddingPatcher(t)
			getter := mocks.NewMockUserVectorGetter(t)
			upserter := mocks.NewMockUserVectorUpserter(t)
			embedder := mocks.NewMockEmbedder(t)

			tc.setup(fetcher, patcher, getter, upserter, embedder)

			cmd := newRecordInterest(fetcher, patcher, getter, upserter, embedder)

			_, err := cmd.Execute(testContext(), RecordInterestRequest{
				UserID:  "user1",
				EntryID: "entry1",
				Kind:    tc.kind,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErrMsg)
		})
	}
}
