package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"taxifare/internal/types"
)

var (
	ErrNoResult      = errors.New("no location found for address")
	ErrEmptyAddress  = errors.New("address is required")
	ErrNotConfigured = errors.New("address lookup is not configured")
)

// Place is a geocoded address.
type Place struct {
	Address  string      `json:"address"`
	PlaceID  string      `json:"place_id"`
	Location types.Point `json:"location"`
}

// GeocodeService resolves free-form addresses with the Google Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
// Extra client options (e.g. maps.WithBaseURL) are passed through.
func NewGeocodeService(apiKey string, opts ...maps.ClientOption) (*GeocodeService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Lookup returns the best match for address, biased to the United States.
// A nil service reports ErrNotConfigured.
func (s *GeocodeService) Lookup(ctx context.Context, address string) (Place, error) {
	if s == nil {
		return Place{}, ErrNotConfigured
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return Place{}, ErrEmptyAddress
	}

	r := &maps.GeocodingRequest{
		Address: address,
		Region:  "us",
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return Place{}, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return Place{}, ErrNoResult
	}

	best := results[0]
	return Place{
		Address: best.FormattedAddress,
		PlaceID: best.PlaceID,
		Location: types.Point{
			Lat: best.Geometry.Location.Lat,
			Lng: best.Geometry.Location.Lng,
		},
	}, nil
}
