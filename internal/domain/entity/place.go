// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

const (
	// MinPriceTier is the cheapest price tier ($).
	MinPriceTier = 1
	// MaxPriceTier is the most expensive price tier ($$$$).
	MaxPriceTier = 4

	// UnnamedPlace is shown for providers that return places without a name.
	UnnamedPlace = "Unnamed Restaurant"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a restaurant candidate normalized across providers.
// Optional attributes are nil when the provider does not know them, never zero.
type Place struct {
	ID               string       `json:"id"`   // Provider-namespaced identifier, unique across providers.
	Name             string       `json:"name"` // Display name, UnnamedPlace when missing.
	Rating           *float64     `json:"rating,omitempty"`
	RatingCount      *int         `json:"rating_count,omitempty"`
	PriceTier        *int         `json:"price_tier,omitempty"`
	Vicinity         *string      `json:"vicinity,omitempty"`          // Short address.
	FormattedAddress *string      `json:"formatted_address,omitempty"` // Full address.
	PhotoReference   *string      `json:"photo_reference,omitempty"`
	Location         *Coordinates `json:"location,omitempty"`
}

// Snapshot captures the display attributes persisted with favorites.
func (p *Place) Snapshot() PlaceSnapshot {
	address := p.FormattedAddress
	if address == nil {
		address = p.Vicinity
	}

	return PlaceSnapshot{
		Name:      p.Name,
		Address:   address,
		Rating:    p.Rating,
		PriceTier: p.PriceTier,
	}
}

// PlaceSnapshot is the frozen display data of a place at the time it was saved.
type PlaceSnapshot struct {
	Name      string   `json:"name"`
	Address   *string  `json:"address,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	PriceTier *int     `json:"price_tier,omitempty"`
}

// IsOSMPlaceID reports whether id was produced by the OpenStreetMap adapter.
func IsOSMPlaceID(id string) bool {
	return strings.HasPrefix(id, OSMPlaceIDPrefix)
}

// OSMPlaceIDPrefix namespaces OpenStreetMap identifiers so they never collide with Google place IDs.
const OSMPlaceIDPrefix = "osm_"

// StringPtr returns a pointer to s, or nil when s is blank.
func StringPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}
