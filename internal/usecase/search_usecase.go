// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"justchoose/internal/domain/entity"
	"justchoose/internal/domain/service"
)

// --- Input DTOs ---

// SearchInput is a restaurant search as submitted by the client.
// Lat and Lng are only authoritative when both are present.
type SearchInput struct {
	LocationText string
	Lat          *float64
	Lng          *float64
	RadiusMiles  float64
	Cuisine      string
	Price        *int // Legacy single price tier, used when PriceRanges is empty.
	PriceRanges  []int
}

// --- Output DTOs ---

// GeocodeOutput is a resolved location and the provider that resolved it.
type GeocodeOutput struct {
	Provider    entity.ProviderKind
	Attribution string
	Result      *entity.GeocodeResult
}

// AutocompleteOutput lists location suggestions for partial input.
type AutocompleteOutput struct {
	Provider    entity.ProviderKind
	Suggestions []entity.LocationSuggestion
}

// SearchUsecase resolves locations and finds candidate restaurants.
type SearchUsecase interface {
	// Execute validates the query, consults the cache and searches the caller's provider.
	Execute(ctx context.Context, caller *entity.Caller, input *SearchInput) (*entity.SearchResult, error)

	// Geocode resolves free text to coordinates.
	Geocode(ctx context.Context, caller *entity.Caller, text string) (*GeocodeOutput, error)

	// Autocomplete suggests locations for partial text. Only the premium provider supports it.
	Autocomplete(ctx context.Context, caller *entity.Caller, text string) (*AutocompleteOutput, error)
}

// ProviderGateway decides which places provider serves a caller.
type ProviderGateway interface {
	// Choose returns the provider kind the caller is entitled to for this request.
	Choose(ctx context.Context, caller *entity.Caller) entity.ProviderKind

	// Provider returns the adapter for kind.
	Provider(kind entity.ProviderKind) (service.PlaceProvider, error)

	// PlaceDetails looks up a place on the premium provider.
	PlaceDetails(ctx context.Context, placeID string) (*entity.Place, error)
}
