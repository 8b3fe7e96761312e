package command

import (
	"context"
	"fmt"

	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

// TranslateEntry returns an entry's fields in a target language,
// memoizing translations per (entry, language) so the gateway is called
// at most once per field. Cache fills for the same key may race under
// concurrency; the write is idempotent and any winner is valid.
type TranslateEntry struct {
	CacheGetter datasources.TranslationCacheGetter
	CachePutter datasources.TranslationCachePutter
	Translator  datasources.Translator
	// SourceLanguage is the canonical language entries are written in;
	// requests for it bypass both the cache and the gateway.
	SourceLanguage string
}

type TranslateEntryRequest struct {
	EntryID  string
	Language string
	// Fields maps field names to their source-language text.
	Fields domain.TranslatedFields
}

var _ Command[TranslateEntryRequest, domain.TranslatedFields] = (*TranslateEntry)(nil)

func (c *TranslateEntry) Execute(ctx context.Context, req TranslateEntryRequest) (domain.TranslatedFields, error) {
	if req.Language == c.SourceLanguage {
		return req.Fields, nil
	}

	requested := make([]string, 0, len(req.Fields))
	for name := range req.Fields {
		requested = append(requested, name)
	}

	cached, err := c.CacheGetter.GetTranslations(ctx, req.EntryID, req.Language)
	if err != nil {
		return nil, fmt.Errorf("reading translation cache: %w", err)
	}
	if cached.HasAll(requested) {
		return cached, nil
	}

	result := make(domain.TranslatedFields, len(req.Fields))
	for name, text := range req.Fields {
		if cached[name] != "" {
			result[name] = cached[name]
			continue
		}

		translated, err := c.Translator.TranslateText(ctx, text, req.Language)
		if err != nil {
			return nil, fmt.Errorf("translating field [%s]: %w", name, err)
		}
		result[name] = translated
	}

	if err := c.CachePutter.PutTranslations(ctx, req.EntryID, req.Language, result); err != nil {
		return nil, fmt.Errorf("writing translation cache: %w", err)
	}

	return result, nil
}
