// README: Redis cache of fully generated plans keyed by preference fingerprint.
package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	planKeyPrefix = "planner:plan:"
	// Plans for identical preferences stay valid for a day; regeneration
	// after that keeps recommendations from going stale.
	planTTL = 24 * time.Hour
)

type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

// fingerprint hashes the canonical form of a preference record. Interest
// order does not affect the key.
func fingerprint(p PreferenceRecord) string {
	interests := make([]string, len(p.Interests))
	for i, in := range p.Interests {
		interests[i] = strings.ToLower(strings.TrimSpace(in))
	}
	sort.Strings(interests)

	canonical := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(p.TravelType)),
		strings.Join(interests, ","),
		strings.ToLower(strings.TrimSpace(p.Season)),
		strconv.Itoa(p.DurationDays),
		strings.ToLower(strings.TrimSpace(p.BudgetTier)),
	}, "|")

	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func planKey(p PreferenceRecord) string {
	return planKeyPrefix + fingerprint(p)
}

// Get returns the cached plan for the preferences, or nil when absent.
func (c *Cache) Get(ctx context.Context, prefs PreferenceRecord) (*TripPlan, error) {
	val, err := c.redis.Get(ctx, planKey(prefs)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var plan TripPlan
	if err := json.Unmarshal([]byte(val), &plan); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &plan, nil
}

// Set stores a plan under the preference fingerprint with the standard TTL.
func (c *Cache) Set(ctx context.Context, prefs PreferenceRecord, plan *TripPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.redis.Set(ctx, planKey(prefs), data, planTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
