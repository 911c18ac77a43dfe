package google

import (
	"context"

	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/infra/metrics"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// Geocode resolves text to the best Geocoding API match.
func (c *Client) Geocode(ctx context.Context, text string) (*entity.GeocodeResult, error) {
	results, err := c.geocode(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, notFound(text)
	}

	best := results[0]

	return &entity.GeocodeResult{
		Coordinates:      entity.Coordinates{Lat: best.Geometry.Location.Lat, Lng: best.Geometry.Location.Lng},
		FormattedAddress: best.FormattedAddress,
		PlaceID:          best.PlaceID,
	}, nil
}

// Suggest lists up to five geocode matches for partial text.
func (c *Client) Suggest(ctx context.Context, text string) ([]entity.LocationSuggestion, error) {
	results, err := c.geocode(ctx, text)
	if err != nil {
		return nil, err
	}

	suggestions := make([]entity.LocationSuggestion, 0, min(len(results), maxSuggestions))
	for _, r := range results {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, entity.LocationSuggestion{
			Description: r.FormattedAddress,
			PlaceID:     r.PlaceID,
			Types:       r.Types,
		})
	}

	return suggestions, nil
}

func (c *Client) geocode(ctx context.Context, text string) ([]maps.GeocodingResult, error) {
	ctx, cancel := c.timeout(ctx)
	defer cancel()

	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{
		Address: text,
		Region:  c.region,
	})
	if err != nil {
		err = c.classify("geocode", err)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, notFound(text)
		}

		return nil, err
	}

	outcome := metrics.OutcomeOK
	if len(results) == 0 {
		outcome = metrics.OutcomeNotFound
	}
	metrics.ObserveProviderCall(entity.ProviderGoogle, "geocode", outcome)

	return results, nil
}
