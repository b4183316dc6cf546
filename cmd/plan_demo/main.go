// README: One-shot CLI run of the generation pipeline (no DB, cache, or geo).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tripcraft/internal/ai"
	"tripcraft/internal/config"
	"tripcraft/internal/modules/planner"
)

func main() {
	travelType := flag.String("type", "Leisure", "travel type")
	interests := flag.String("interests", "History, Food", "comma-separated interests")
	season := flag.String("season", "Any", "season")
	duration := flag.Int("days", 7, "trip duration in days")
	budget := flag.String("budget", "Mid-range", "budget tier")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	prefs := planner.PreferenceRecord{
		TravelType:   *travelType,
		Interests:    splitInterests(*interests),
		Season:       *season,
		DurationDays: *duration,
		BudgetTier:   *budget,
	}
	if err := prefs.Validate(); err != nil {
		logger.Error("invalid preferences", "error", err)
		os.Exit(1)
	}

	specs := ai.FallbackChain(ai.ChainConfig{
		GroqKey:          cfg.Providers.GroqKey,
		HuggingFaceKey:   cfg.Providers.HuggingFaceKey,
		HuggingFaceModel: cfg.Providers.HuggingFaceModel,
		OpenAIKey:        cfg.Providers.OpenAIKey,
		GeminiKey:        cfg.Providers.GeminiKey,
	})
	resolver := func(ctx context.Context) (ai.CompletionClient, error) {
		return ai.Resolve(ctx, specs, logger)
	}

	svc := planner.NewService(resolver, nil, nil, nil, logger)
	plan := svc.Run(context.Background(), "demo", prefs)

	sections := []struct {
		title string
		text  string
	}{
		{"Recommended Cities", plan.CitySelection},
		{"Destination Insights", plan.CityResearch},
		{"Detailed Itinerary", plan.Itinerary},
		{"Budget Breakdown", plan.BudgetPlan},
	}
	for _, s := range sections {
		fmt.Printf("=== %s ===\n%s\n\n", s.title, s.text)
	}
	fmt.Printf("Selected city: %s\n", plan.City)
}

func splitInterests(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
