package service

import (
	"context"

	"justchoose/internal/domain/entity"
)

// PlaceProvider is one external source of restaurants and geocoding.
// Implementations return domain errors: ErrLocationNotFound, ErrProviderQuota,
// ErrProviderUnavailable or ErrProviderCapability. Anything else is treated as an unexpected failure.
type PlaceProvider interface {
	// Kind identifies the provider.
	Kind() entity.ProviderKind

	// Search returns restaurants around center matching the query filters.
	Search(ctx context.Context, query *entity.SearchQuery, center entity.Coordinates) ([]entity.Place, error)

	// Geocode resolves free text to a single location.
	Geocode(ctx context.Context, text string) (*entity.GeocodeResult, error)

	// Suggest returns autocomplete candidates for partial text.
	Suggest(ctx context.Context, text string) ([]entity.LocationSuggestion, error)
}

// PlaceDetailer looks up the current details of a single place.
type PlaceDetailer interface {
	PlaceDetails(ctx context.Context, placeID string) (*entity.Place, error)
}
