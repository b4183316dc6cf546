// README: Trip-plan domain records, stages, and placeholder texts.
package planner

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Stage identifies one of the four sequential generation steps. The tag is
// carried on every request and result so output never has to be matched back
// to a stage by sniffing prompt text.
type Stage string

const (
	StageCitySelection Stage = "city_selection"
	StageResearch      Stage = "research"
	StageItinerary     Stage = "itinerary"
	StageBudget        Stage = "budget"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("plan not found")
)

// DefaultCity is returned by the extractor when no confident match is found.
const DefaultCity = "Paris"

// PlaceholderUnavailable replaces a single stage's text when its generation
// call fails.
const PlaceholderUnavailable = "Unable to generate due to error"

// fatalPlaceholder is the city-selection text on the fatal path, where no
// downstream stage can run.
func fatalPlaceholder(err error) string {
	return fmt.Sprintf("Error occurred during city selection: %v. Please check your API configuration and try again.", err)
}

// PreferenceRecord is the immutable traveller input consumed by the prompt
// builders.
type PreferenceRecord struct {
	TravelType   string   `json:"travel_type"`
	Interests    []string `json:"interests"`
	Season       string   `json:"season"`
	DurationDays int      `json:"duration_days"`
	BudgetTier   string   `json:"budget_tier"`
}

func (p PreferenceRecord) Validate() error {
	if strings.TrimSpace(p.TravelType) == "" {
		return fmt.Errorf("%w: travel_type is required", ErrBadRequest)
	}
	if len(p.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", ErrBadRequest)
	}
	for _, in := range p.Interests {
		if strings.TrimSpace(in) == "" {
			return fmt.Errorf("%w: empty interest", ErrBadRequest)
		}
	}
	if strings.TrimSpace(p.Season) == "" {
		return fmt.Errorf("%w: season is required", ErrBadRequest)
	}
	if p.DurationDays < 1 || p.DurationDays > 14 {
		return fmt.Errorf("%w: duration_days must be between 1 and 14", ErrBadRequest)
	}
	if strings.TrimSpace(p.BudgetTier) == "" {
		return fmt.Errorf("%w: budget_tier is required", ErrBadRequest)
	}
	return nil
}

// interestList renders the interests for prompt interpolation.
func (p PreferenceRecord) interestList() string {
	return strings.Join(p.Interests, ", ")
}

// StageResult pairs one stage's raw model output with its tag.
type StageResult struct {
	Stage Stage  `json:"stage"`
	Text  string `json:"text"`
}

// TripPlan is the fully populated pipeline output. Failed stages carry
// placeholder text; no field is ever left empty by the pipeline.
type TripPlan struct {
	ID            string    `json:"id"`
	UID           string    `json:"uid,omitempty"`
	City          string    `json:"city,omitempty"`
	CitySelection string    `json:"city_selection"`
	CityResearch  string    `json:"city_research"`
	Itinerary     string    `json:"itinerary"`
	BudgetPlan    string    `json:"budget_plan"`
	CreatedAt     time.Time `json:"created_at"`
}

// Complete reports whether every stage produced real text (no placeholders).
func (p *TripPlan) Complete() bool {
	if strings.HasPrefix(p.CitySelection, "Error occurred during city selection") {
		return false
	}
	for _, text := range []string{p.CitySelection, p.CityResearch, p.Itinerary, p.BudgetPlan} {
		if text == "" || text == PlaceholderUnavailable {
			return false
		}
	}
	return true
}

func newID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
