package entity

import (
	"slices"
	"strings"
)

const (
	MinRadiusMiles = 1
	MaxRadiusMiles = 25
)

// SearchQuery describes one restaurant search.
// Coordinates take precedence over LocationText when both are set.
type SearchQuery struct {
	LocationText string
	Coordinates  *Coordinates
	RadiusMiles  float64
	Cuisine      string
	PriceTiers   []int
}

// HasCoordinates reports whether the query carries an explicit coordinate pair.
func (q *SearchQuery) HasCoordinates() bool {
	return q.Coordinates != nil
}

// NormalizedText returns the location text trimmed and lower-cased.
func (q *SearchQuery) NormalizedText() string {
	return NormalizeText(q.LocationText)
}

// NormalizedCuisine returns the cuisine keyword, or "" when it means any cuisine.
func (q *SearchQuery) NormalizedCuisine() string {
	cuisine := strings.ToLower(strings.TrimSpace(q.Cuisine))
	if cuisine == "any" {
		return ""
	}

	return cuisine
}

// NormalizedTiers returns the sorted, de-duplicated price tiers within range.
func (q *SearchQuery) NormalizedTiers() []int {
	tiers := make([]int, 0, len(q.PriceTiers))
	for _, t := range q.PriceTiers {
		if t >= MinPriceTier && t <= MaxPriceTier {
			tiers = append(tiers, t)
		}
	}
	slices.Sort(tiers)

	return slices.Compact(tiers)
}

// PriceBounds converts the selected tiers to a 0-based provider scale.
// ok is false when no tier is selected.
func (q *SearchQuery) PriceBounds() (minPrice, maxPrice int, ok bool) {
	tiers := q.NormalizedTiers()
	if len(tiers) == 0 {
		return 0, 0, false
	}

	return tiers[0] - 1, tiers[len(tiers)-1] - 1, true
}

// NormalizeText collapses whitespace and lower-cases free text for comparisons and keys.
func NormalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// GeocodeResult is a resolved location.
type GeocodeResult struct {
	Coordinates
	FormattedAddress string `json:"formatted_address"`
	PlaceID          string `json:"place_id"`
}

// LocationSuggestion is one autocomplete candidate.
type LocationSuggestion struct {
	Description string   `json:"description"`
	PlaceID     string   `json:"place_id"`
	Types       []string `json:"types"`
}

// SearchResult is the normalized answer to a SearchQuery.
type SearchResult struct {
	Places      []Place      `json:"places"`
	Provider    ProviderKind `json:"provider"`
	Attribution string       `json:"attribution,omitempty"`
	Limitations []string     `json:"limitations,omitempty"`
	Cached      bool         `json:"cached"`
}
