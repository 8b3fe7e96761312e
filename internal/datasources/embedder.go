package datasources

import (
	"context"
	"errors"
)

// Embedder embeds entry text into a fixed-dimension vector.
// A nil vector with a nil error means "no embedding available" (blank
// input or no credential configured); callers skip personalization.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Translator translates a single text field into a target language.
type Translator interface {
	TranslateText(ctx context.Context, text, targetLanguage string) (string, error)
}

// InsightGenerator produces a structured JSON document from a prompt and
// an optional image payload.
type InsightGenerator interface {
	GenerateInsight(ctx context.Context, prompt string, imageData []byte) ([]byte, error)
}

// NullEmbedder is a null implementation of Embedder.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

// NullInsightGenerator is a null implementation of InsightGenerator,
// reporting insight generation as unavailable.
type NullInsightGenerator struct{}

var _ InsightGenerator = NullInsightGenerator{}

func (NullInsightGenerator) GenerateInsight(_ context.Context, _ string, _ []byte) ([]byte, error) {
	return nil, errors.New("insight generation is not configured")
}

// NullTranslator is a null implementation of Translator, returning its
// input unchanged.
type NullTranslator struct{}

var _ Translator = NullTranslator{}

func (NullTranslator) TranslateText(_ context.Context, text, _ string) (string, error) {
	return text, nil
}
