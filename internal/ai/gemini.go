package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiClient implements CompletionClient using Google's Gemini models.
type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewGeminiClient initializes a Gemini-backed client from the spec.
// Construction validates the credential and sets up the SDK client; no
// generation call is made.
func NewGeminiClient(ctx context.Context, spec ProviderSpec) (CompletionClient, error) {
	if strings.TrimSpace(spec.APIKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	if strings.TrimSpace(spec.Model) == "" {
		return nil, fmt.Errorf("gemini: missing model")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(spec.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &geminiClient{
		client:      client,
		model:       spec.Model,
		temperature: spec.Temperature,
		maxTokens:   spec.MaxTokens,
	}, nil
}

func (c *geminiClient) Name() string {
	return ProviderGemini + "/" + c.model
}

// Close releases the underlying SDK client resources.
func (c *geminiClient) Close() error {
	return c.client.Close()
}

func (c *geminiClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	// A fresh GenerativeModel per call so per-stage limits never leak
	// between concurrent callers.
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(float32(temperature))
	if maxTokens > 0 {
		model.SetMaxOutputTokens(int32(maxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return nil, fmt.Errorf("gemini: API returned empty text parts")
	}

	return &Completion{Text: strings.Join(textParts, "\n"), Model: c.model}, nil
}
