package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

var _ datasources.Embedder = (*Client)(nil)
var _ datasources.Translator = (*Client)(nil)
var _ datasources.InsightGenerator = (*Client)(nil)

// Inputs to the embedding model are truncated to this many characters
// before transmission.
const maxEmbedInputChars = 8000

// Config holds the client's connection and resiliency settings.
type Config struct {
	// APIKey may be empty, in which case embedding calls return nil
	// vectors and translation calls return their input unchanged.
	APIKey          string
	BaseURL         string
	EmbeddingModel  string
	GenerationModel string
	// SourceLanguage is the canonical language entries are written in.
	SourceLanguage string
	RequestTimeout time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
}

// DefaultConfig returns the production settings for a given credential.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:          apiKey,
		BaseURL:         "https://generativelanguage.googleapis.com",
		EmbeddingModel:  "text-embedding-004",
		GenerationModel: "gemini-1.5-flash",
		SourceLanguage:  "en",
		RequestTimeout:  30 * time.Second,
		MaxRetries:      3,
		InitialBackoff:  2 * time.Second,
	}
}

// Client is the sole boundary to the external generative/embedding model.
// It self-throttles through an injected Throttle and retries quota-class
// failures with exponential backoff so callers never reason about quota.
type Client struct {
	cfg        Config
	httpClient *http.Client
	throttle   *Throttle

	// sleep is swapped out in backoff tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a client sharing the given process-wide throttle.
func NewClient(cfg Config, throttle *Throttle) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		throttle:   throttle,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// withRetry runs op, retrying quota-class failures up to MaxRetries times
// with exponentially doubling delay. No lock is held while sleeping.
func (c *Client) withRetry(ctx context.Context, op func(context.Context) error) error {
	backoff := c.cfg.InitialBackoff

	var err error
	for attempt := 0; ; attempt++ {
		err = op(ctx)
		if err == nil || !isQuotaError(err) || attempt >= c.cfg.MaxRetries {
			return err
		}

		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "model API over quota, backing off",
			"attempt", attempt+1, "backoff", backoff.String())

		if sleepErr := c.sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
		backoff *= 2
	}
}

// EmbedText embeds text into a fixed-dimension vector. It returns a nil
// vector and nil error when the input is blank or no credential is
// configured; callers treat that as "skip personalization", never as
// fatal.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" || c.cfg.APIKey == "" {
		return nil, nil
	}

	if runes := []rune(text); len(runes) > maxEmbedInputChars {
		text = string(runes[:maxEmbedInputChars])
	}

	if err := c.throttle.Admit(); err != nil {
		return nil, err
	}

	reqBody := embeddingRequest{
		Model: "models/" + c.cfg.EmbeddingModel,
	}
	reqBody.Content.Parts = []textPart{{Text: text}}

	var values []float32
	err := c.withRetry(ctx, func(ctx context.Context) error {
		var result embeddingResponse
		url := fmt.Sprintf("%s/v1beta/models/%s:embedContent", c.cfg.BaseURL, c.cfg.EmbeddingModel)
		if err := c.post(ctx, url, reqBody, &result); err != nil {
			return err
		}
		if len(result.Embedding.Values) == 0 {
			return fmt.Errorf("empty embedding response")
		}
		values = result.Embedding.Values
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}

	return values, nil
}

// TranslateText translates text into targetLanguage. It is the identity
// function for the source language, and falls back to the original text
// when the model is unavailable so a failed translation never breaks the
// caller.
func (c *Client) TranslateText(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == c.cfg.SourceLanguage || strings.TrimSpace(text) == "" || c.cfg.APIKey == "" {
		return text, nil
	}

	logger := domain.LoggerFromContext(ctx)

	if err := c.throttle.Admit(); err != nil {
		logger.WarnContext(ctx, "translation denied by rate limit, returning original text",
			"target_language", targetLanguage)
		return text, nil
	}

	prompt := fmt.Sprintf(
		"Translate the following text into the language with ISO 639-1 code %q. "+
			"Reply with the translation only, no preamble or notes.\n\n%s",
		targetLanguage, text,
	)

	translated, err := c.generateText(ctx, prompt, nil)
	if err != nil {
		logger.WarnContext(ctx, "translation failed, returning original text",
			"error", err, "target_language", targetLanguage)
		return text, nil
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return text, nil
	}
	return translated, nil
}

// GenerateInsight sends the prompt (and optional image payload) to the
// generation model and returns the first balanced JSON object in its
// response. A response with no parseable object fails with
// *MalformedResponseError and is never retried.
func (c *Client) GenerateInsight(ctx context.Context, prompt string, imageData []byte) ([]byte, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("no model API credential configured")
	}

	if err := c.throttle.Admit(); err != nil {
		return nil, err
	}

	text, err := c.generateText(ctx, prompt, imageData)
	if err != nil {
		return nil, fmt.Errorf("generating insight: %w", err)
	}

	extracted, ok := extractJSONObject(text)
	if !ok || !json.Valid([]byte(extracted)) {
		return nil, &MalformedResponseError{Raw: text}
	}

	return []byte(extracted), nil
}

// generateText runs a generateContent call under the retry policy and
// returns the first candidate's text.
func (c *Client) generateText(ctx context.Context, prompt string, imageData []byte) (string, error) {
	parts := []generatePart{{Text: prompt}}
	if len(imageData) > 0 {
		parts = append(parts, generatePart{
			InlineData: &inlineData{
				MimeType: http.DetectContentType(imageData),
				Data:     base64.StdEncoding.EncodeToString(imageData),
			},
		})
	}
	reqBody := generateRequest{
		Contents: []generateContent{{Parts: parts}},
	}

	var text string
	err := c.withRetry(ctx, func(ctx context.Context) error {
		var result generateResponse
		url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.GenerationModel)
		if err := c.post(ctx, url, reqBody, &result); err != nil {
			return err
		}
		if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("empty generation response")
		}
		text = result.Candidates[0].Content.Parts[0].Text
		return nil
	})
	if err != nil {
		return "", err
	}

	return text, nil
}

func (c *Client) post(ctx context.Context, url string, reqBody, result any) error {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &apiError{statusCode: resp.StatusCode, body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

type textPart struct {
	Text string `json:"text"`
}

// embeddingRequest is the wire envelope of the embedding call. Its shape
// is a compatibility contract with the deployed model endpoint.
type embeddingRequest struct {
	Model   string `json:"model"`
	Content struct {
		Parts []textPart `json:"parts"`
	} `json:"content"`
}

type embeddingResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
