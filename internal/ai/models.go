package ai

// Provider identifiers used in ProviderSpec and log fields.
const (
	ProviderGroq        = "groq"
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderGemini      = "gemini"
)

// DefaultTemperature is the sampling temperature used across the pipeline.
const DefaultTemperature = 0.7

// CompletionRequest is a single-turn, role-tagged prompt with generation limits.
// Zero Temperature/MaxTokens fall back to the spec the client was built from.
type CompletionRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Completion is the uniform result shape returned by every client, so callers
// never probe provider-specific response objects.
type Completion struct {
	Text  string
	Model string
}

// ProviderSpec describes one provider/model/credential combination to try
// during client resolution.
type ProviderSpec struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string // chat-completions endpoint; ignored by SDK-backed providers
	Temperature float64
	MaxTokens   int
}

// ChainConfig holds the credentials used to build the default fallback chain.
type ChainConfig struct {
	GroqKey          string
	HuggingFaceKey   string
	HuggingFaceModel string
	OpenAIKey        string
	GeminiKey        string
}

// FallbackChain builds the ordered provider chain: Groq primary, Groq
// alternates, Hugging Face (configured model plus alternates), OpenAI, Gemini.
// Specs are emitted for every provider regardless of key presence; a missing
// key fails that spec's construction and resolution moves on, which keeps the
// outcome deterministic for a given credential environment.
func FallbackChain(cfg ChainConfig) []ProviderSpec {
	groq := func(model string) ProviderSpec {
		return ProviderSpec{
			Provider:    ProviderGroq,
			Model:       model,
			APIKey:      cfg.GroqKey,
			BaseURL:     GroqBaseURL,
			Temperature: DefaultTemperature,
			MaxTokens:   1000,
		}
	}
	hf := func(model string, maxTokens int) ProviderSpec {
		return ProviderSpec{
			Provider:    ProviderHuggingFace,
			Model:       model,
			APIKey:      cfg.HuggingFaceKey,
			BaseURL:     HuggingFaceBaseURL,
			Temperature: DefaultTemperature,
			MaxTokens:   maxTokens,
		}
	}

	hfModel := cfg.HuggingFaceModel
	if hfModel == "" {
		hfModel = "microsoft/DialoGPT-medium"
	}

	return []ProviderSpec{
		groq("llama3-8b-8192"),
		groq("mixtral-8x7b-32768"),
		groq("llama2-70b-4096"),
		groq("gemma-7b-it"),
		hf(hfModel, 1000),
		hf("google/flan-t5-base", 800),
		hf("microsoft/DialoGPT-small", 800),
		hf("HuggingFaceH4/zephyr-7b-beta", 800),
		{
			Provider:    ProviderOpenAI,
			Model:       "gpt-3.5-turbo",
			APIKey:      cfg.OpenAIKey,
			BaseURL:     OpenAIBaseURL,
			Temperature: DefaultTemperature,
			MaxTokens:   1000,
		},
		{
			Provider:    ProviderGemini,
			Model:       "gemini-2.0-flash",
			APIKey:      cfg.GeminiKey,
			Temperature: DefaultTemperature,
			MaxTokens:   1000,
		},
	}
}
