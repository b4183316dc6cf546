// README: City canonicalisation backed by the Google Geocoding API.
package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// CityService resolves extracted city names to their canonical locality
// names. It is best-effort plumbing for the planner: callers treat any error
// as "keep the extracted name".
type CityService struct {
	client *maps.Client
}

// NewCityService creates a CityService with the given API key.
func NewCityService(apiKey string) (*CityService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &CityService{client: client}, nil
}

// CanonicalCity geocodes the name and returns the locality component of the
// top result, e.g. "paris" -> "Paris".
func (s *CityService) CanonicalCity(ctx context.Context, city string) (string, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: city})
	if err != nil {
		return "", fmt.Errorf("geocode: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no geocoding result for %q", city)
	}

	for _, component := range results[0].AddressComponents {
		for _, t := range component.Types {
			if t == "locality" {
				return component.LongName, nil
			}
		}
	}
	return "", fmt.Errorf("no locality component for %q", city)
}
