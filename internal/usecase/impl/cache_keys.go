package impl

import (
	"math"
	"strconv"
	"strings"

	"justchoose/internal/domain/entity"
)

const (
	// Coordinates are keyed at four decimals (about 11 m).
	coordinatePrecision = 1e4

	anyToken = "any"

	geocodeModeResolve      = "geocode"
	geocodeModeAutocomplete = "autocomplete"
)

// searchCacheKey derives the provider-scoped key of a search.
// Text-only queries key on the normalized text in place of coordinates.
func searchCacheKey(provider entity.ProviderKind, query *entity.SearchQuery) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(provider.String())
	b.WriteByte(':')

	if query.HasCoordinates() {
		b.WriteString(strconv.FormatInt(roundCoordinate(query.Coordinates.Lat), 10))
		b.WriteByte('|')
		b.WriteString(strconv.FormatInt(roundCoordinate(query.Coordinates.Lng), 10))
	} else {
		b.WriteString("q=")
		b.WriteString(query.NormalizedText())
	}

	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(query.RadiusMiles, 'f', -1, 64))
	b.WriteByte('|')
	b.WriteString(cuisineToken(query))
	b.WriteByte('|')
	b.WriteString(tiersToken(query))

	return b.String()
}

// geocodeCacheKey derives the key of a geocode or autocomplete lookup.
func geocodeCacheKey(provider entity.ProviderKind, text, mode string) string {
	return "geocode:" + provider.String() + ":" + entity.NormalizeText(text) + ":" + mode
}

func roundCoordinate(v float64) int64 {
	return int64(math.Round(v * coordinatePrecision))
}

func cuisineToken(query *entity.SearchQuery) string {
	if cuisine := query.NormalizedCuisine(); cuisine != "" {
		return cuisine
	}

	return anyToken
}

func tiersToken(query *entity.SearchQuery) string {
	tiers := query.NormalizedTiers()
	if len(tiers) == 0 {
		return anyToken
	}

	parts := make([]string, len(tiers))
	for i, t := range tiers {
		parts[i] = strconv.Itoa(t)
	}

	return strings.Join(parts, ",")
}
