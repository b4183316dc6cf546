package planner

import (
	"strings"
	"testing"
)

func TestBuildPromptInterpolation(t *testing.T) {
	prefs := PreferenceRecord{
		TravelType:   "Adventure",
		Interests:    []string{"Hiking", "Street Food"},
		Season:       "Autumn",
		DurationDays: 6,
		BudgetTier:   "Budget",
	}

	tests := []struct {
		stage Stage
		city  string
		want  []string
	}{
		{
			stage: StageCitySelection,
			want:  []string{"Adventure", "Hiking, Street Food", "Autumn", "Budget", "6 days", "numbered list"},
		},
		{
			stage: StageResearch,
			city:  "Kyoto",
			want:  []string{"Kyoto", "Adventure", "Hiking, Street Food", "6 days", "TOP 5 ATTRACTIONS", "LOCAL CUISINE"},
		},
		{
			stage: StageItinerary,
			city:  "Kyoto",
			want:  []string{"6-day itinerary", "Kyoto", "Adventure", "Hiking, Street Food", "DAY NUMBER"},
		},
		{
			stage: StageBudget,
			city:  "Kyoto",
			want:  []string{"6-day trip", "Kyoto", "Budget", "ACCOMMODATION", "EMERGENCY FUND", "10-15%"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			got := BuildPrompt(tt.stage, prefs, tt.city)
			if got == "" {
				t.Fatal("empty prompt")
			}
			for _, sub := range tt.want {
				if !strings.Contains(got, sub) {
					t.Errorf("prompt missing %q:\n%s", sub, got)
				}
			}
		})
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	prefs := PreferenceRecord{
		TravelType:   "Leisure",
		Interests:    []string{"Art"},
		Season:       "Winter",
		DurationDays: 3,
		BudgetTier:   "Luxury",
	}
	for _, stage := range []Stage{StageCitySelection, StageResearch, StageItinerary, StageBudget} {
		a := BuildPrompt(stage, prefs, "Rome")
		b := BuildPrompt(stage, prefs, "Rome")
		if a != b {
			t.Errorf("stage %s: prompt not deterministic", stage)
		}
	}
}

func TestBuildPromptUnknownStage(t *testing.T) {
	if got := BuildPrompt(Stage("bogus"), PreferenceRecord{}, ""); got != "" {
		t.Errorf("unknown stage produced %q, want empty", got)
	}
}
