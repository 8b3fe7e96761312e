package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderjot/journal-backend/internal/datasources/mocks"
	"github.com/wanderjot/journal-backend/internal/domain"
)

func TestTranslateEntry_Execute_SourceLanguageIdentity(t *testing.T) {
	getter := mocks.NewMockTranslationCacheGetter(t)
	putter := mocks.NewMockTranslationCachePutter(t)
	translator := mocks.NewMockTranslator(t)

	cmd := &TranslateEntry{
		CacheGetter:    getter,
		CachePutter:    putter,
		Translator:     translator,
		SourceLanguage: "en",
	}

	fields := domain.TranslatedFields{"title": "Three days in Kyoto"}

	// Neither the cache nor the gateway may be touched.
	result, err := cmd.Execute(testContext(), TranslateEntryRequest{
		EntryID:  "entry1",
		Language: "en",
		Fields:   fields,
	})
	require.NoError(t, err)
	assert.Equal(t, fields, result)
}

func TestTranslateEntry_Execute_CacheHitSkipsGateway(t *testing.T) {
	getter := mocks.NewMockTranslationCacheGetter(t)
	putter := mocks.NewMockTranslationCachePutter(t)
	translator := mocks.NewMockTranslator(t)

	cached := domain.TranslatedFields{
		"title": "Trois jours à Kyoto",
		"body":  "Nous sommes arrivés...",
	}

	getter.EXPECT().
		GetTranslations(mock.Anything, "entry1", "fr").
		Return(cached, nil)

	cmd := &TranslateEntry{
		CacheGetter:    getter,
		CachePutter:    putter,
		Translator:     translator,
		SourceLanguage: "en",
	}

	req := TranslateEntryRequest{
		EntryID:  "entry1",
		Language: "fr",
		Fields: domain.TranslatedFields{
			"title": "Three days in Kyoto",
			"body":  "We arrived...",
		},
	}

	result, err := cmd.Execute(testContext(), req)
	require.NoError(t, err)
	assert.Equal(t, cached, result)

	// A second lookup for the same key still never invokes the gateway.
	getter.EXPECT().
		GetTranslations(mock.Anything, "entry1", "fr").
		Return(cached, nil)

	result, err = cmd.Execute(testContext(), req)
	require.NoError(t, err)
	assert.Equal(t, cached, result)
	translator.AssertNumberOfCalls(t, "TranslateText", 0)
}

func TestTranslateEntry_Execute_FillsAndWritesBack(t *testing.T) {
	getter := mocks.NewMockTranslationCacheGetter(t)
	putter := mocks.NewMockTranslationCachePutter(t)
	translator := mocks.NewMockTranslator(t)

	getter.EXPECT().
		GetTranslations(mock.Anything, "entry1", "fr").
		Return(domain.TranslatedFields{}, nil)

	translator.EXPECT().
		TranslateText(mock.Anything, "Three days in Kyoto", "fr").
		Return("Trois jours à Kyoto", nil).
		Once()

	translator.EXPECT().
		TranslateText(mock.Anything, "We arrived...", "fr").
		Return("Nous sommes arrivés...", nil).
		Once()

	expected := domain.TranslatedFields{
		"title": "Trois jours à Kyoto",
		"body":  "Nous sommes arrivés...",
	}

	putter.EXPECT().
		PutTranslations(mock.Anything, "entry1", "fr", expected).
		Return(nil)

	cmd := &TranslateEntry{
		CacheGetter:    getter,
		CachePutter:    putter,
		Translator:     translator,
		SourceLanguage: "en",
	}

	result, err := cmd.Execute(testContext(), TranslateEntryRequest{
		EntryID:  "entry1",
		Language: "fr",
		Fields: domain.TranslatedFields{
			"title": "Three days in Kyoto",
			"body":  "We arrived...",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestTranslateEntry_Execute_PartialCacheOnlyTranslatesMissing(t *testing.T) {
	getter := mocks.NewMockTranslationCacheGetter(t)
	putter := mocks.NewMockTranslationCachePutter(t)
	translator := mocks.NewMockTranslator(t)

	getter.EXPECT().
		GetTranslations(mock.Anything, "entry1", "fr").
		Return(domain.TranslatedFields{"title": "Trois jours à Kyoto"}, nil)

	// Only the missing field goes through the gateway.
	translator.EXPECT().
		TranslateText(mock.Anything, "We arrived...", "fr").
		Return("Nous sommes arrivés...", nil).
		Once()

	putter.EXPECT().
		PutTranslations(mock.Anything, "entry1", "fr", domain.TranslatedFields{
			"title": "Trois jours à Kyoto",
			"body":  "Nous sommes arrivés...",
		}).
		Return(nil)

	cmd := &TranslateEntry{
		CacheGetter:    getter,
		CachePutter:    putter,
		Translator:     translator,
		SourceLanguage: "en",
	}

	result, err := cmd.Execute(testContext(), TranslateEntryRequest{
		EntryID:  "entry1",
		Language: "fr",
		Fields: domain.TranslatedFields{
			"title": "Three days in Kyoto",
			"body":  "We arrived...",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Trois jours à Kyoto", result["title"])
	assert.Equal(t, "Nous sommes arrivés...", result["body"])
}

func TestTranslateEntry_Execute_Errors(t *testing.T) {
	t.Run("cache_read_error", func(t *testing.T) {
		getter := mocks.NewMockTranslationCacheGetter(t)
		putter := mocks.NewMockTranslationCachePutter(t)
		translator := mocks.NewMockTranslator(t)

		getter.EXPECT().
			GetTranslations(mock.Anything, "entry1", "fr").
			Return(nil, errors.New("db down"))

		cmd := &TranslateEntry{
			CacheGetter:    getter,
			CachePutter:    putter,
			Translator:     translator,
			SourceLanguage: "en",
		}

		_, err := cmd.Execute(testContext(), TranslateEntryRequest{
			EntryID:  "entry1",
			Language: "fr",
			Fields:   domain.TranslatedFields{"title": "Kyoto"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading translation cache")
	})

	t.Run("cache_write_error", func(t *testing.T) {
		getter := mocks.NewMockTranslationCacheGetter(t)
		putter := mocks.NewMockTranslationCachePutter(t)
		translator := mocks.NewMockTranslator(t)

		getter.EXPECT().
			GetTranslations(mock.Anything, "entry1", "fr").
			Return(domain.TranslatedFields{}, nil)

		translator.EXPECT().
			TranslateText(mock.Anything, "Kyoto", "fr").
			Return("Kyoto", nil)

		putter.EXPECT().
			PutTranslations(mock.Anything, "entry1", "fr", mock.Anything).
			Return(errors.New("write failed"))

		cmd := &TranslateEntry{
			CacheGetter:    getter,
			CachePutter:    putter,
			Translator:     translator,
			SourceLanguage: "en",
		}

		_, err := cmd.Execute(testContext(), TranslateEntryRequest{
			EntryID:  "entry1",
			Language: "fr",
			Fields:   domain.TranslatedFields{"title": "Kyoto"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing translation cache")
	})
}
