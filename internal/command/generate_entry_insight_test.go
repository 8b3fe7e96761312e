package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderjot/journal-backend/internal/datasources/genai"
	"github.com/wanderjot/journal-backend/internal/datasources/mocks"
	"github.com/wanderjot/journal-backend/internal/domain"
)

func TestGenerateEntryInsight_Execute(t *testing.T) {
	fetcher := mocks.NewMockEntryFetcher(t)
	generator := mocks.NewMockInsightGenerator(t)

	fetcher.EXPECT().
		FetchEntry(mock.Anything, "entry1").
		Return(domain.JournalEntry{
			ID:     "entry1",
			Title:  "Three days in Kyoto",
			Region: "Kansai, Japan",
			Body:   "We arrived by shinkansen...",
		}, nil)

	generator.EXPECT().
		GenerateInsight(mock.Anything, mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "Three days in Kyoto") &&
				strings.Contains(prompt, "Kansai, Japan")
		}), []byte(nil)).
		Return([]byte(`{"summary":"historic capital","tips":["go early"],"region_facts":["home of matcha"]}`), nil)

	cmd := &GenerateEntryInsight{EntryFetcher: fetcher, Generator: generator}

	insight, err := cmd.Execute(testContext(), EntryInsightRequest{EntryID: "entry1"})
	require.NoError(t, err)
	assert.Equal(t, "historic capital", insight.Summary)
	assert.Equal(t, []string{"go early"}, insight.Tips)
	assert.Equal(t, []string{"home of matcha"}, insight.RegionFacts)
}

func TestGenerateEntryInsight_Execute_MalformedResponse(t *testing.T) {
	fetcher := mocks.NewMockEntryFetcher(t)
	generator := mocks.NewMockInsightGenerator(t)

	fetcher.EXPECT().
		FetchEntry(mock.Anything, "entry1").
		Return(domain.JournalEntry{ID: "entry1", Title: "Kyoto"}, nil)

	generator.EXPECT().
		GenerateInsight(mock.Anything, mock.Anything, []byte(nil)).
		Return(nil, &genai.MalformedResponseError{Raw: "I cannot answer that."})

	cmd := &GenerateEntryInsight{EntryFetcher: fetcher, Generator: generator}

	_, err := cmd.Execute(testContext(), EntryInsightRequest{EntryID: "entry1"})

	var malformed *genai.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestGenerateEntryInsight_Execute_FetchError(t *testing.T) {
	fetcher := mocks.NewMockEntryFetcher(t)
	generator := mocks.NewMockInsightGenerator(t)

	fetcher.EXPECT().
		FetchEntry(mock.Anything, "missing").
		Return(domain.JournalEntry{}, errors.New("record not found"))

	cmd := &GenerateEntryInsight{EntryFetcher: fetcher, Generator: generator}

	_, err := cmd.Execute(testContext(), EntryInsightRequest{EntryID: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching entry")
}
