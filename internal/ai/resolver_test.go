package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type stubClient struct{ name string }

func (c *stubClient) Name() string { return c.name }
func (c *stubClient) Complete(context.Context, CompletionRequest) (*Completion, error) {
	return &Completion{Text: "ok", Model: c.name}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveEmptyChain(t *testing.T) {
	client, err := Resolve(context.Background(), nil, discardLogger())
	if client != nil {
		t.Fatal("got a client from an empty chain")
	}
	if !errors.Is(err, ErrProviderExhausted) {
		t.Fatalf("err = %v, want ErrProviderExhausted", err)
	}
}

func TestResolveStopsAtFirstSuccess(t *testing.T) {
	orig := buildClient
	defer func() { buildClient = orig }()

	var attempted []string
	buildClient = func(_ context.Context, spec ProviderSpec) (CompletionClient, error) {
		attempted = append(attempted, spec.Model)
		if spec.Model == "a" {
			return nil, errors.New("missing api key")
		}
		return &stubClient{name: spec.Provider + "/" + spec.Model}, nil
	}

	specs := []ProviderSpec{
		{Provider: ProviderGroq, Model: "a"},
		{Provider: ProviderGroq, Model: "b"},
		{Provider: ProviderOpenAI, Model: "c"},
	}

	client, err := Resolve(context.Background(), specs, discardLogger())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if client.Name() != "groq/b" {
		t.Errorf("selected %q, want first working spec", client.Name())
	}
	if len(attempted) != 2 || attempted[0] != "a" || attempted[1] != "b" {
		t.Errorf("attempted %v; specs after the first success must not be tried", attempted)
	}
}

func TestResolveCollectsAllReasons(t *testing.T) {
	orig := buildClient
	defer func() { buildClient = orig }()

	buildClient = func(_ context.Context, spec ProviderSpec) (CompletionClient, error) {
		return nil, errors.New(spec.Model + " down")
	}

	specs := []ProviderSpec{
		{Provider: ProviderGroq, Model: "m1"},
		{Provider: ProviderOpenAI, Model: "m2"},
	}

	_, err := Resolve(context.Background(), specs, discardLogger())
	if !errors.Is(err, ErrProviderExhausted) {
		t.Fatalf("err = %v, want ErrProviderExhausted", err)
	}
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("err type %T, want *ExhaustedError", err)
	}
	if len(exhausted.Reasons) != 2 {
		t.Fatalf("got %d reasons, want one per failed spec: %v", len(exhausted.Reasons), exhausted.Reasons)
	}
}

func TestResolveDeterministic(t *testing.T) {
	orig := buildClient
	defer func() { buildClient = orig }()

	buildClient = func(_ context.Context, spec ProviderSpec) (CompletionClient, error) {
		if spec.APIKey == "" {
			return nil, errors.New("missing api key")
		}
		return &stubClient{name: spec.Provider + "/" + spec.Model}, nil
	}

	specs := FallbackChain(ChainConfig{OpenAIKey: "sk-test"})

	first, err := Resolve(context.Background(), specs, discardLogger())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Resolve(context.Background(), specs, discardLogger())
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if again.Name() != first.Name() {
			t.Fatalf("resolution not deterministic: %q then %q", first.Name(), again.Name())
		}
	}
	if first.Name() != "openai/gpt-3.5-turbo" {
		t.Errorf("selected %q; only the OpenAI spec has a key", first.Name())
	}
}

func TestFallbackChainOrder(t *testing.T) {
	specs := FallbackChain(ChainConfig{
		GroqKey:        "g",
		HuggingFaceKey: "h",
		OpenAIKey:      "o",
		GeminiKey:      "m",
	})

	wantProviders := []string{
		ProviderGroq, ProviderGroq, ProviderGroq, ProviderGroq,
		ProviderHuggingFace, ProviderHuggingFace, ProviderHuggingFace, ProviderHuggingFace,
		ProviderOpenAI,
		ProviderGemini,
	}
	if len(specs) != len(wantProviders) {
		t.Fatalf("chain length %d, want %d", len(specs), len(wantProviders))
	}
	for i, spec := range specs {
		if spec.Provider != wantProviders[i] {
			t.Errorf("spec %d provider = %s, want %s", i, spec.Provider, wantProviders[i])
		}
	}

	if specs[0].Model != "llama3-8b-8192" {
		t.Errorf("primary model = %s", specs[0].Model)
	}
	if specs[4].Model != "microsoft/DialoGPT-medium" {
		t.Errorf("default hugging face model = %s", specs[4].Model)
	}
	if specs[9].Model != "gemini-2.0-flash" {
		t.Errorf("gemini model = %s", specs[9].Model)
	}
}

func TestFallbackChainHuggingFaceModelOverride(t *testing.T) {
	specs := FallbackChain(ChainConfig{HuggingFaceModel: "org/custom-model"})
	if specs[4].Model != "org/custom-model" {
		t.Errorf("configured model = %s, want override", specs[4].Model)
	}
}
