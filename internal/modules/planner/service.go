// README: Trip-plan service; runs the four-stage generation pipeline.
package planner

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tripcraft/internal/ai"
)

// ClientResolver yields the completion client used for one pipeline run.
type ClientResolver func(ctx context.Context) (ai.CompletionClient, error)

// Geocoder canonicalises an extracted city name. Implementations are
// best-effort; errors only skip canonicalisation.
type Geocoder interface {
	CanonicalCity(ctx context.Context, city string) (string, error)
}

// stageMaxTokens fixes the per-stage generation budget.
var stageMaxTokens = map[Stage]int{
	StageCitySelection: 1000,
	StageResearch:      2000,
	StageItinerary:     2000,
	StageBudget:        1500,
}

// Service orchestrates provider resolution, the sequential stage calls, city
// extraction, caching, and persistence.
type Service struct {
	resolve ClientResolver
	store   *Store
	cache   *Cache
	geo     Geocoder
	log     *slog.Logger
}

// NewService creates a Service. store, cache, and geo may be nil; the
// pipeline then runs without persistence, caching, or canonicalisation.
func NewService(resolve ClientResolver, store *Store, cache *Cache, geo Geocoder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resolve: resolve, store: store, cache: cache, geo: geo, log: logger}
}

// Run executes the pipeline for one preference record. It never returns an
// error: every internal failure becomes placeholder text inside the returned
// plan. The failure policy is two-tier: provider resolution and the
// city-selection stage are fatal (everything downstream needs the city),
// while each of the three detail stages fails in isolation.
func (s *Service) Run(ctx context.Context, uid string, prefs PreferenceRecord) *TripPlan {
	if cached := s.cachedPlan(ctx, prefs); cached != nil {
		s.log.Info("plan served from cache", "plan_id", cached.ID)
		return cached
	}

	plan := &TripPlan{
		ID:        newID(),
		UID:       uid,
		CreatedAt: time.Now().UTC(),
	}

	client, err := s.resolve(ctx)
	if err != nil {
		s.log.Error("provider resolution failed", "error", err)
		s.failAll(plan, err)
		s.persist(ctx, plan, prefs)
		return plan
	}
	// SDK-backed clients hold connections; release them once the run is done.
	defer func() {
		if closer, ok := client.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				s.log.Warn("client close failed", "client", client.Name(), "error", err)
			}
		}
	}()
	s.log.Info("pipeline started", "plan_id", plan.ID, "client", client.Name())

	selection, err := s.invoke(ctx, client, StageCitySelection, prefs, "")
	if err != nil {
		s.log.Error("city selection failed", "plan_id", plan.ID, "error", err)
		s.failAll(plan, err)
		s.persist(ctx, plan, prefs)
		return plan
	}
	plan.CitySelection = selection.Text

	city := ExtractCity(selection.Text)
	if s.geo != nil {
		if canonical, err := s.geo.CanonicalCity(ctx, city); err != nil {
			s.log.Warn("city canonicalisation skipped", "city", city, "error", err)
		} else if canonical != "" {
			city = canonical
		}
	}
	plan.City = city
	s.log.Info("city selected", "plan_id", plan.ID, "city", city)

	for _, stage := range []Stage{StageResearch, StageItinerary, StageBudget} {
		result, err := s.invoke(ctx, client, stage, prefs, city)
		text := PlaceholderUnavailable
		if err != nil {
			s.log.Warn("stage failed", "plan_id", plan.ID, "stage", stage, "error", err)
		} else {
			text = result.Text
		}
		switch stage {
		case StageResearch:
			plan.CityResearch = text
		case StageItinerary:
			plan.Itinerary = text
		case StageBudget:
			plan.BudgetPlan = text
		}
	}

	if plan.Complete() {
		s.cachePlan(ctx, prefs, plan)
	}
	s.persist(ctx, plan, prefs)
	s.log.Info("pipeline finished", "plan_id", plan.ID, "complete", plan.Complete())
	return plan
}

// GetPlan returns a stored plan by id.
func (s *Service) GetPlan(ctx context.Context, id string) (*TripPlan, error) {
	return s.store.Get(ctx, id)
}

// RecentPlans returns a user's newest plans, most recent first.
func (s *Service) RecentPlans(ctx context.Context, uid string, limit int) ([]*TripPlan, error) {
	return s.store.Recent(ctx, uid, limit)
}

func (s *Service) invoke(ctx context.Context, client ai.CompletionClient, stage Stage, prefs PreferenceRecord, city string) (StageResult, error) {
	req := ai.CompletionRequest{
		Prompt:      BuildPrompt(stage, prefs, city),
		Temperature: ai.DefaultTemperature,
		MaxTokens:   stageMaxTokens[stage],
	}
	resp, err := client.Complete(ctx, req)
	if err != nil {
		return StageResult{Stage: stage}, err
	}
	return StageResult{Stage: stage, Text: StripSurrogates(resp.Text)}, nil
}

func (s *Service) failAll(plan *TripPlan, err error) {
	plan.CitySelection = fatalPlaceholder(err)
	plan.CityResearch = PlaceholderUnavailable
	plan.Itinerary = PlaceholderUnavailable
	plan.BudgetPlan = PlaceholderUnavailable
}

func (s *Service) cachedPlan(ctx context.Context, prefs PreferenceRecord) *TripPlan {
	if s.cache == nil {
		return nil
	}
	plan, err := s.cache.Get(ctx, prefs)
	if err != nil {
		s.log.Warn("cache read failed", "error", err)
		return nil
	}
	return plan
}

func (s *Service) cachePlan(ctx context.Context, prefs PreferenceRecord, plan *TripPlan) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, prefs, plan); err != nil {
		s.log.Warn("cache write failed", "plan_id", plan.ID, "error", err)
	}
}

func (s *Service) persist(ctx context.Context, plan *TripPlan, prefs PreferenceRecord) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, plan, prefs); err != nil {
		s.log.Warn("plan persistence failed", "plan_id", plan.ID, "error", err)
	}
}
