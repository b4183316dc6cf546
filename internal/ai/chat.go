package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Chat-completions endpoints for the OpenAI-compatible providers.
const (
	GroqBaseURL        = "https://api.groq.com/openai/v1/chat/completions"
	OpenAIBaseURL      = "https://api.openai.com/v1/chat/completions"
	HuggingFaceBaseURL = "https://router.huggingface.co/v1/chat/completions"
)

// httpClient is shared by all chat clients; the 30s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// chatClient speaks the OpenAI chat-completions wire format, which Groq,
// OpenAI, and the Hugging Face router all accept.
type chatClient struct {
	provider    string
	model       string
	apiKey      string
	baseURL     string
	temperature float64
	maxTokens   int
}

// NewChatClient builds a client for an OpenAI-compatible chat-completions
// endpoint. Construction is network-free: it validates the spec and fails
// fast on a missing credential, model, or endpoint.
func NewChatClient(spec ProviderSpec) (CompletionClient, error) {
	if strings.TrimSpace(spec.APIKey) == "" {
		return nil, fmt.Errorf("%s: missing api key", spec.Provider)
	}
	if strings.TrimSpace(spec.Model) == "" {
		return nil, fmt.Errorf("%s: missing model", spec.Provider)
	}
	if strings.TrimSpace(spec.BaseURL) == "" {
		return nil, fmt.Errorf("%s: missing endpoint", spec.Provider)
	}
	return &chatClient{
		provider:    spec.Provider,
		model:       spec.Model,
		apiKey:      spec.APIKey,
		baseURL:     spec.BaseURL,
		temperature: spec.Temperature,
		maxTokens:   spec.MaxTokens,
	}, nil
}

func (c *chatClient) Name() string {
	return c.provider + "/" + c.model
}

// Complete sends the prompt as a single user-role message and returns the
// first choice's content.
func (c *chatClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", c.provider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.provider, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: do request: %w", c.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", c.provider, err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("%s: unmarshal response: %w", c.provider, err)
	}
	if cr.Error != nil {
		return nil, fmt.Errorf("%s: api error: %s", c.provider, cr.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d (raw: %s)", c.provider, resp.StatusCode, body)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("%s: API returned empty choices array (raw: %s)", c.provider, body)
	}

	model := cr.Model
	if model == "" {
		model = c.model
	}
	return &Completion{Text: cr.Choices[0].Message.Content, Model: model}, nil
}
