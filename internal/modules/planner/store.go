// README: Trip-plan store backed by PostgreSQL.
package planner

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, plan *TripPlan, prefs PreferenceRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trip_plans (
			id, uid, travel_type, interests, season, duration_days, budget_tier,
			city, city_selection, city_research, itinerary, budget_plan, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13
		)`,
		plan.ID,
		plan.UID,
		prefs.TravelType,
		strings.Join(prefs.Interests, ", "),
		prefs.Season,
		prefs.DurationDays,
		prefs.BudgetTier,
		plan.City,
		plan.CitySelection,
		plan.CityResearch,
		plan.Itinerary,
		plan.BudgetPlan,
		plan.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*TripPlan, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, uid, city, city_selection, city_research, itinerary, budget_plan, created_at
		FROM trip_plans
		WHERE id = $1`, id,
	)

	var p TripPlan
	err := row.Scan(
		&p.ID, &p.UID, &p.City,
		&p.CitySelection, &p.CityResearch, &p.Itinerary, &p.BudgetPlan,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Recent returns the newest plans for a uid, most recent first.
func (s *Store) Recent(ctx context.Context, uid string, limit int) ([]*TripPlan, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, uid, city, city_selection, city_research, itinerary, budget_plan, created_at
		FROM trip_plans
		WHERE uid = $1
		ORDER BY created_at DESC
		LIMIT $2`, uid, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*TripPlan
	for rows.Next() {
		var p TripPlan
		if err := rows.Scan(
			&p.ID, &p.UID, &p.City,
			&p.CitySelection, &p.CityResearch, &p.Itinerary, &p.BudgetPlan,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}
