package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

// GenerateEntryInsight asks the model for a structured travel insight
// about an entry, optionally grounding it on a photo from the entry.
type GenerateEntryInsight struct {
	EntryFetcher datasources.EntryFetcher
	Generator    datasources.InsightGenerator
}

type EntryInsightRequest struct {
	EntryID   string
	ImageData []byte
}

var _ Command[EntryInsightRequest, domain.EntryInsight] = (*GenerateEntryInsight)(nil)

func (c *GenerateEntryInsight) Execute(ctx context.Context, req EntryInsightRequest) (domain.EntryInsight, error) {
	entry, err := c.EntryFetcher.FetchEntry(ctx, req.EntryID)
	if err != nil {
		return domain.EntryInsight{}, fmt.Errorf("fetching entry: %w", err)
	}

	prompt := fmt.Sprintf(
		"You are a travel guide. Given this journal entry, reply with a JSON object "+
			`{"summary": string, "tips": [string], "region_facts": [string]} and nothing else.`+
			"\n\nTitle: %s\nRegion: %s\n\n%s",
		entry.Title, entry.Region, entry.Body,
	)

	raw, err := c.Generator.GenerateInsight(ctx, prompt, req.ImageData)
	if err != nil {
		return domain.EntryInsight{}, fmt.Errorf("generating entry insight: %w", err)
	}

	var insight domain.EntryInsight
	if err := json.Unmarshal(raw, &insight); err != nil {
		return domain.EntryInsight{}, fmt.Errorf("decoding entry insight: %w", err)
	}

	return insight, nil
}
