package impl

import (
	"testing"

	"justchoose/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func coordinateQuery(lat, lng float64, tiers ...int) *entity.SearchQuery {
	return &entity.SearchQuery{
		Coordinates: &entity.Coordinates{Lat: lat, Lng: lng},
		RadiusMiles: 5,
		PriceTiers:  tiers,
	}
}

func TestSearchCacheKey_Format(t *testing.T) {
	query := coordinateQuery(40.7128, -74.006, 2, 1)
	query.Cuisine = "Thai"

	assert.Equal(t, "search:openstreetmap:407128|-740060|5|thai|1,2", searchCacheKey(entity.ProviderOpenStreetMap, query))
}

func TestSearchCacheKey_TierOrderIndependent(t *testing.T) {
	a := searchCacheKey(entity.ProviderGoogle, coordinateQuery(39.0997, -94.5786, 4, 1))
	b := searchCacheKey(entity.ProviderGoogle, coordinateQuery(39.0997, -94.5786, 1, 4))
	c := searchCacheKey(entity.ProviderGoogle, coordinateQuery(39.0997, -94.5786, 4, 1, 4))

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestSearchCacheKey_PrecisionStable(t *testing.T) {
	a := searchCacheKey(entity.ProviderGoogle, coordinateQuery(40.712801, -74.005999))
	b := searchCacheKey(entity.ProviderGoogle, coordinateQuery(40.712839, -74.006041))
	c := searchCacheKey(entity.ProviderGoogle, coordinateQuery(40.7130, -74.006))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSearchCacheKey_AnyTokens(t *testing.T) {
	blank := coordinateQuery(1, 2)
	anyCuisine := coordinateQuery(1, 2)
	anyCuisine.Cuisine = " Any "

	assert.Equal(t, searchCacheKey(entity.ProviderGoogle, blank), searchCacheKey(entity.ProviderGoogle, anyCuisine))
	assert.Contains(t, searchCacheKey(entity.ProviderGoogle, blank), "|any|any")
}

func TestSearchCacheKey_TextQueries(t *testing.T) {
	a := &entity.SearchQuery{LocationText: "  Austin   TX ", RadiusMiles: 10}
	b := &entity.SearchQuery{LocationText: "austin tx", RadiusMiles: 10}

	assert.Equal(t, searchCacheKey(entity.ProviderOpenStreetMap, a), searchCacheKey(entity.ProviderOpenStreetMap, b))
	assert.Equal(t, "search:openstreetmap:q=austin tx|10|any|any", searchCacheKey(entity.ProviderOpenStreetMap, b))
}

func TestSearchCacheKey_ProviderScoped(t *testing.T) {
	query := coordinateQuery(1, 2)

	assert.NotEqual(t, searchCacheKey(entity.ProviderGoogle, query), searchCacheKey(entity.ProviderOpenStreetMap, query))
}

func TestGeocodeCacheKey(t *testing.T) {
	assert.Equal(t, "geocode:google:kansas city:geocode", geocodeCacheKey(entity.ProviderGoogle, " Kansas  City", geocodeModeResolve))
	assert.NotEqual(t,
		geocodeCacheKey(entity.ProviderGoogle, "austin", geocodeModeResolve),
		geocodeCacheKey(entity.ProviderGoogle, "austin", geocodeModeAutocomplete),
	)
}
